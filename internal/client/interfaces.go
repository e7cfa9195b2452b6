// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-auth-client/internal/config"
	"github.com/MKhiriev/go-auth-client/internal/logger"
	"github.com/MKhiriev/go-auth-client/internal/service"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line args and returns once the operation has
	// finished.
	Run(ctx context.Context, args []string) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// PasswordReader reads a secret without echoing it.
type PasswordReader interface {
	ReadPassword(prompt string) (string, error)
}

// ServicesFactory builds the services for a parsed configuration.
type ServicesFactory func(cfg *config.ClientConfig, logger *logger.Logger) (*service.ClientServices, error)
