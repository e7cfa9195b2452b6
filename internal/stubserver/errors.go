// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubserver

import "errors"

// Error codes sent in the error_code field of error responses.
const (
	CodeInvalidJSON        = "invalid_json"
	CodeInvalidParams      = "invalid_params"
	CodeInvalidCredentials = "invalid_credentials"
	CodeEmailNotConfirmed  = "email_not_confirmed"
	CodeEmailTaken         = "email_taken"
	CodePasswordMismatch   = "password_mismatch"
	CodeAccountNotFound    = "account_not_found"
	CodeAlreadyConfirmed   = "already_confirmed"
	CodeInternalError      = "internal_error"
)

var (
	ErrEmailTaken       = errors.New("email is already taken")
	ErrAccountNotFound  = errors.New("account not found")
	ErrAlreadyConfirmed = errors.New("account is already confirmed")

	errServerNotStarted = errors.New("server is not started")
)
