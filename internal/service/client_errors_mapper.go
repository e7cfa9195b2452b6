// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-client/internal/adapter"
	"github.com/MKhiriev/go-auth-client/models"
	"github.com/samber/oops"
)

// Error body fields. errorCode is the legacy spelling still sent by some
// server versions.
const (
	fieldErrorCode       = "error_code"
	fieldLegacyErrorCode = "errorCode"
	fieldErrorMessage    = "error"
)

// mapTransportError turns an error returned by the transport into a failure.
// An error without a message carries nothing useful for the user and is
// reported as unknown_error.
func mapTransportError(err error) *models.Failure {
	if msg := err.Error(); msg != "" {
		return &models.Failure{Code: models.CodeNetworkError, Message: msg, Raw: err}
	}

	return &models.Failure{Code: models.CodeUnknownError, Message: models.MsgUnknownError, Raw: err}
}

// mapServerError turns a non-2xx response into a failure carrying the code
// and message reported by the server. Missing, empty or non-string fields
// fall back to unknown_error and the default message independently. Raw is
// the status mapped by [adapter.MapHTTPError].
func mapServerError(resp *adapter.Response) *models.Failure {
	failure := &models.Failure{
		Code:    models.CodeUnknownError,
		Message: models.MsgUnknownError,
		Raw:     adapter.MapHTTPError(resp),
	}

	var body map[string]any
	if err := resp.DecodeJSON(&body); err != nil {
		return failure
	}

	if code := stringField(body, fieldErrorCode, fieldLegacyErrorCode); code != "" {
		failure.Code = code
	}
	if msg := stringField(body, fieldErrorMessage); msg != "" {
		failure.Message = msg
	}

	return failure
}

// mapUnexpectedBody reports a 2xx response whose body does not have the
// expected shape.
func mapUnexpectedBody(path string, resp *adapter.Response, cause error) *models.Failure {
	raw := oops.
		Code(models.CodeUnknownError).
		In("auth_client").
		With("path", path, "status", resp.StatusCode).
		Wrapf(cause, "unexpected response body")

	return &models.Failure{Code: models.CodeUnknownError, Message: models.MsgUnknownError, Raw: raw}
}

// stringField returns the first non-empty string value found under keys.
func stringField(body map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := body[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// decodeStringField decodes resp as a JSON object and returns the string
// stored under field.
func decodeStringField(resp *adapter.Response, field string) (string, error) {
	var body map[string]any
	if err := resp.DecodeJSON(&body); err != nil {
		return "", err
	}

	value, ok := body[field]
	if !ok {
		return "", fmt.Errorf("field %q is missing", field)
	}

	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q is %T, not a string", field, value)
	}

	return s, nil
}
