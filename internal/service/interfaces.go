// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client-side authentication operations on
// top of an [adapter.Transport].
//
// Every operation performs exactly one request and never returns a Go error
// or panics: transport failures, error statuses and unexpected bodies are all
// folded into the failure variant of [models.Result].
package service

import (
	"context"

	"github.com/MKhiriev/go-auth-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_client_mock.go -package=mock

// AuthClient defines the client-side contract for e-mail based
// authentication. Implementations are safe for concurrent use; calls share no
// mutable state. Cancellation and timeouts are delegated to the transport via
// ctx. No call is retried.
type AuthClient interface {
	// LoginWithEmail posts {email, password} to sessions/login_with_email.
	// On a 2xx response the body must carry a non-empty string "token",
	// which is returned as the success payload. A 2xx body without such a
	// token yields an "unknown_error" failure.
	LoginWithEmail(ctx context.Context, email, password string) models.Result[models.AuthToken]

	// ResendConfirmationEmail posts {email} to sessions/resend_confirmation.
	// On a 2xx response the body must carry a string "message", returned
	// as the success payload; otherwise the result is an "unknown_error"
	// failure.
	ResendConfirmationEmail(ctx context.Context, email string) models.Result[models.ConfirmationMessage]

	// CreateAccountWithEmail posts {email, password, password_confirmation}
	// to sessions/sign_up_email. Any 2xx response is a success with an empty
	// payload; the body is not inspected.
	CreateAccountWithEmail(ctx context.Context, email, password, passwordConfirmation string) models.Result[struct{}]
}
