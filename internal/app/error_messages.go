// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the stub
// auth server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "error" field of JSON error responses. Keeping them in one place keeps
// the wording consistent across endpoints.
package app

const (
	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgEmailRequired is returned when a request omits the e-mail.
	MsgEmailRequired = "Email is required"

	// MsgInvalidEmail is returned when the e-mail is not a bare address such
	// as "user@example.com".
	MsgInvalidEmail = "Email is invalid"

	// MsgPasswordRequired is returned when a login or sign-up request omits
	// the password.
	MsgPasswordRequired = "Password is required"

	// MsgPasswordTooLong is returned when the password exceeds the bcrypt
	// input limit. It is a format string taking the limit in bytes.
	MsgPasswordTooLong = "Password must be at most %d bytes long"

	// MsgInvalidCredentials is returned when the e-mail/password pair does
	// not match any account.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgEmailNotConfirmed is returned on login to an account whose e-mail
	// has not been confirmed yet.
	MsgEmailNotConfirmed = "Confirm your email address before logging in"

	// MsgAccountNotFound is returned when a resend is requested for an
	// e-mail that has no account.
	MsgAccountNotFound = "No account is registered with this email"

	// MsgAlreadyConfirmed is returned when a resend is requested for an
	// account that is already confirmed.
	MsgAlreadyConfirmed = "Email is already confirmed"

	// MsgPasswordMismatch is returned when the password confirmation differs
	// from the password.
	MsgPasswordMismatch = "Password confirmation does not match"

	// MsgEmailTaken is returned when signing up with an e-mail that already
	// has an account.
	MsgEmailTaken = "Email has already been taken"

	// MsgConfirmationSent is the success message of a resend. It is a format
	// string taking the e-mail.
	MsgConfirmationSent = "Confirmation email sent to %s"

	// MsgEmailConfirmed is the success message of following a confirmation
	// link. It is a format string taking the e-mail.
	MsgEmailConfirmed = "Email %s confirmed"

	// MsgEmailParamRequired is returned when the confirmation link carries no
	// email query parameter.
	MsgEmailParamRequired = "Query parameter email is required"
)
