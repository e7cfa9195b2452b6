// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrOperationFailed is returned by [App.Run] when the auth operation
	// completed with a failure. The failure has already been printed.
	ErrOperationFailed = errors.New("operation failed")

	ErrEmptyPassword = errors.New("password must not be empty")
)
