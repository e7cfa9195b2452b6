package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Success(t *testing.T) {
	cfg, err := GetClientConfig(&StructuredConfig{
		Adapter: Adapter{HTTPAddress: "http://localhost:3000/api"},
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultUserAgent, cfg.Adapter.UserAgent)
	assert.Equal(t, defaultLogLevel, cfg.Log.Level)
}

func TestGetClientConfig_MissingAddress(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "")

	_, err := GetClientConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestGetClientConfig_EnvError(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	cfg, err := GetClientConfig(&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://x"}})
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "http://x", RequestTimeout: time.Second},
		Log:     ClientLog{Level: "info"},
	}

	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "blank address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "  " }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "bad level", mutate: func(c *ClientConfig) { c.Log.Level = "loud" }, wantErr: ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetStubConfig_RequiresSignKey(t *testing.T) {
	t.Setenv("STUB_TOKEN_SIGN_KEY", "")

	_, err := GetStubConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidStubConfigs)
}

func TestGetStubConfig_Success(t *testing.T) {
	cfg, err := GetStubConfig(&StructuredConfig{Stub: Stub{TokenSignKey: "secret"}})
	require.NoError(t, err)

	assert.Equal(t, defaultStubAddress, cfg.HTTPAddress)
	assert.Equal(t, "secret", cfg.TokenSignKey)
	assert.Equal(t, defaultStubTokenIssuer, cfg.TokenIssuer)
	assert.Equal(t, defaultStubTokenDuration, cfg.TokenDuration)
}
