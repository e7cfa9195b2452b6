// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the authclient command-line application.
//
// It wires configuration, logging, the HTTP transport and the auth service
// into cobra commands. Each invocation performs one auth operation, renders
// its result and exits.
package client
