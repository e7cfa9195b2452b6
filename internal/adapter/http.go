package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-client/internal/config"
	"github.com/MKhiriev/go-auth-client/internal/logger"
	"github.com/MKhiriev/go-auth-client/internal/utils"
)

// TraceIDHeader carries the per-request trace ID.
const TraceIDHeader = "X-Trace-ID"

type httpTransport struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPTransport constructs the resty-based implementation of [Transport].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL, request
// timeout and User-Agent. The timeout is the only one applied to requests.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPTransport(adapterCfg config.ClientAdapter, logger *logger.Logger) (Transport, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.UserAgent)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpTransport{client: client, ids: utils.NewUUIDGenerator(), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// PostJSON implements [Transport].
func (h *httpTransport) PostJSON(ctx context.Context, path string, body any) (*Response, error) {
	traceID := h.ids.TraceID(ctx)
	start := time.Now()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(TraceIDHeader, traceID).
		SetBody(body).
		Post("/" + strings.TrimLeft(path, "/"))

	log := h.logger.With().
		Str("trace_id", traceID).
		Str("path", path).
		Dur("duration", time.Since(start)).
		Logger()

	if err != nil {
		log.Debug().Err(err).Msg("request failed")
		return nil, err
	}

	log.Debug().Int("status", resp.StatusCode()).Msg("request completed")

	return &Response{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}
