// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST sessions/login_with_email.
type LoginRequest struct {
	// Email identifies the account.
	Email string `json:"email"`

	// Password is sent as typed; hashing is the server's job.
	Password string `json:"password"`
}

// ResendConfirmationRequest is the body of POST sessions/resend_confirmation.
type ResendConfirmationRequest struct {
	Email string `json:"email"`
}

// SignUpRequest is the body of POST sessions/sign_up_email.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// PasswordConfirmation must equal Password; the server checks it.
	PasswordConfirmation string `json:"password_confirmation"`
}

// ConfirmationMessage is the success payload of a confirmation-email resend.
type ConfirmationMessage struct {
	Message string `json:"message"`
}
