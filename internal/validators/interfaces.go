// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the request payloads of the auth API before they
// reach the stub server's account store.
//
// AuthRequestValidator accepts models.LoginRequest, models.SignUpRequest and
// models.ResendConfirmationRequest, by value or by pointer. E-mail syntax is
// checked with net/mail and must be a bare address; passwords must be
// non-empty and fit the bcrypt limit of MaxPasswordBytes. Failures are
// reported through the sentinel errors in errors.go so callers can map them
// to API error codes with errors.Is.
package validators

import "context"

// Validator validates an auth request. When fields are given (FieldEmail,
// FieldPassword, FieldPasswordConfirmation) only those are checked, in order,
// and the first failure is returned. Unsupported payload types yield
// ErrUnsupportedType and unknown field names ErrUnknownField.
type Validator interface {
	Validate(ctx context.Context, request any, fields ...string) error
}

var _ Validator = (*AuthRequestValidator)(nil)
