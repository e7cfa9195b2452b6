package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the auth API.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound client requests.
	RequestTimeout time.Duration
	// UserAgent is the User-Agent header value.
	UserAgent string
}

// ClientLog holds client logging settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the outbound transport address and timeout.
	Adapter ClientAdapter
	// Log contains log level and destination.
	Log ClientLog
}

// StubConfig is the stub auth server configuration assembled from
// [StructuredConfig].
type StubConfig struct {
	HTTPAddress   string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	AutoConfirm   bool
	Log           ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig] using flagsCfg as the
// highest-priority source, maps only the fields relevant to the client
// runtime, and validates the resulting [ClientConfig].
func GetClientConfig(flagsCfg *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flagsCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			UserAgent:      cfg.Adapter.UserAgent,
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
	}

	return clientCfg, clientCfg.validate()
}

// GetStubConfig builds and validates the stub server config view from the
// merged structured configuration.
func GetStubConfig(flagsCfg *StructuredConfig) (*StubConfig, error) {
	cfg, err := GetStructuredConfig(flagsCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	stubCfg := &StubConfig{
		HTTPAddress:   cfg.Stub.HTTPAddress,
		TokenSignKey:  cfg.Stub.TokenSignKey,
		TokenIssuer:   cfg.Stub.TokenIssuer,
		TokenDuration: cfg.Stub.TokenDuration,
		AutoConfirm:   cfg.Stub.AutoConfirm,
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
	}

	return stubCfg, stubCfg.validate()
}
