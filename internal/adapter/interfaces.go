// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstraction used by the auth
// client to talk to the auth API.
//
// The primary abstraction is [Transport], which decouples the service layer
// from the underlying HTTP library. The package ships a resty-based
// implementation ([NewHTTPTransport]).
//
// Transport failures are reported as explicit error returns; HTTP error
// statuses are NOT errors at this layer and come back as a [Response] whose
// OK method reports false. [MapHTTPError] turns such a response into one of
// the sentinel errors defined in errors.go so that callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport issues requests against the auth API.
type Transport interface {
	// PostJSON sends body, encoded as JSON, to path (relative to the
	// configured base URL) and returns the response status and raw body.
	//
	// A non-nil error means no response was received: the connection failed,
	// the request timed out or ctx was cancelled. Any HTTP status, including
	// 4xx and 5xx, is returned as a *Response with a nil error.
	PostJSON(ctx context.Context, path string, body any) (*Response, error)
}
