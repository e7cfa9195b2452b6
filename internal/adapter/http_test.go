// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-client/internal/config"
	"github.com/MKhiriev/go-auth-client/internal/logger"
	"github.com/MKhiriev/go-auth-client/internal/utils"
	"github.com/MKhiriev/go-auth-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestTransport creates an httpTransport pointed at the test server.
func newTestTransport(t *testing.T, serverURL string, timeout time.Duration) *httpTransport {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: timeout, UserAgent: "adapter-tests"}

	tr, err := NewHTTPTransport(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return tr.(*httpTransport)
}

// ── NewHTTPTransport ─────────────────────────────────────────────────────────

func TestNewHTTPTransport_InvalidAddress(t *testing.T) {
	_, err := NewHTTPTransport(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "https://api.example.com/api/", want: "https://api.example.com/api"},
		{name: "host and port", raw: "localhost:3000", want: "http://localhost:3000"},
		{name: "surrounding spaces", raw: "  http://127.0.0.1:8080  ", want: "http://127.0.0.1:8080"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
		{name: "bad escape", raw: "http://host/%zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── PostJSON ─────────────────────────────────────────────────────────────────

func TestPostJSON_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sessions/login_with_email", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "adapter-tests", r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get(TraceIDHeader))

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.com", req.Email)
		assert.Equal(t, "pw", req.Password)

		_, _ = utils.WriteJSON(w, map[string]string{"token": "abc123"}, http.StatusOK)
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL+"/api/", time.Second)
	resp, err := tr.PostJSON(context.Background(), "sessions/login_with_email", models.LoginRequest{Email: "a@b.com", Password: "pw"})

	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"token":"abc123"}`, string(resp.Body))
}

func TestPostJSON_ErrorStatusIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "Bad password")
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL, time.Second)
	resp, err := tr.PostJSON(context.Background(), "sessions/login_with_email", models.LoginRequest{})

	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.ErrorIs(t, MapHTTPError(resp), ErrUnauthorized)
}

func TestPostJSON_PropagatesTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-42", r.Header.Get(TraceIDHeader))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL, time.Second)
	resp, err := tr.PostJSON(utils.WithTraceID(context.Background(), "trace-42"), "sessions/sign_up_email", models.SignUpRequest{})

	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Empty(t, resp.Body)
}

func TestPostJSON_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	tr := newTestTransport(t, url, time.Second)
	resp, err := tr.PostJSON(context.Background(), "sessions/login_with_email", models.LoginRequest{})

	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestPostJSON_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	tr := newTestTransport(t, srv.URL, 50*time.Millisecond)
	_, err := tr.PostJSON(context.Background(), "sessions/login_with_email", models.LoginRequest{})

	require.Error(t, err)
}

func TestPostJSON_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := newTestTransport(t, srv.URL, time.Second)
	_, err := tr.PostJSON(ctx, "sessions/login_with_email", models.LoginRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
