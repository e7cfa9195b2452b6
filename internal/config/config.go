// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

const (
	defaultRequestTimeout = 15 * time.Second
	defaultUserAgent      = "go-auth-client"
	defaultLogLevel       = "info"

	defaultStubAddress       = "localhost:8080"
	defaultStubTokenIssuer   = "auth-stub"
	defaultStubTokenDuration = time.Hour
)

// StructuredConfig is the top-level configuration container for the
// go-auth-client binaries. It aggregates all sub-configurations and is
// populated by merging values from defaults, an optional JSON file,
// environment variables, and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the settings of the outbound HTTP transport used by the
	// client to reach the auth server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds log level and destination.
	Log Log `envPrefix:"LOG_"`

	// Stub holds the settings of the local stub auth server.
	Stub Stub `envPrefix:"STUB_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds configuration for the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the auth API, e.g.
	// "https://api.example.com/api". A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every request.
	// Env: ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the path of the log file. Empty means stderr.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Stub holds settings of the in-memory stub auth server.
type Stub struct {
	// HTTPAddress is the TCP address the stub listens on, "host:port".
	// Env: STUB_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// TokenSignKey signs the HS256 session tokens issued on login.
	// Env: STUB_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: STUB_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued tokens (e.g. "1h").
	// Env: STUB_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AutoConfirm marks new accounts as confirmed on sign-up.
	// Env: STUB_AUTO_CONFIRM
	AutoConfirm bool `env:"AUTO_CONFIRM"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			RequestTimeout: defaultRequestTimeout,
			UserAgent:      defaultUserAgent,
		},
		Log: Log{Level: defaultLogLevel},
		Stub: Stub{
			HTTPAddress:   defaultStubAddress,
			TokenIssuer:   defaultStubTokenIssuer,
			TokenDuration: defaultStubTokenDuration,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Built-in defaults
//  2. JSON file (path taken from flags, then from the CONFIG env variable)
//  3. Environment variables
//  4. Command-line flags (flagsCfg, may be nil)
//
// Returns a merged *StructuredConfig or an error if any source fails to load.
func GetStructuredConfig(flagsCfg *StructuredConfig) (*StructuredConfig, error) {
	jsonPath := os.Getenv("CONFIG")
	if flagsCfg != nil && flagsCfg.JSONFilePath != "" {
		jsonPath = flagsCfg.JSONFilePath
	}

	return newConfigBuilder().
		withDefaults().
		withJSON(jsonPath).
		withEnv().
		withFlags(flagsCfg).
		build()
}
