// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
)

// ResultType discriminates the two variants of [Result].
type ResultType string

const (
	// ResultSuccess marks a [Result] that carries data.
	ResultSuccess ResultType = "success"
	// ResultError marks a [Result] that carries a [Failure].
	ResultError ResultType = "error"
)

// Failure is the error variant of [Result].
//
// Code is machine-readable (e.g. "network_error" or a code reported by the
// server), Message is meant for humans. Raw optionally holds the underlying
// cause: a transport error, a mapped HTTP status error or a description of an
// unexpected response body. Raw is never serialized.
type Failure struct {
	Code    string
	Message string
	Raw     error
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return f.Code + ": " + f.Message
}

// Unwrap exposes Raw to [errors.Is] and [errors.As].
func (f *Failure) Unwrap() error {
	return f.Raw
}

// Result is a tagged union holding either a successful payload of type T or a
// [Failure]. Exactly one variant is populated; the zero value is not a valid
// Result and must not be used. Build values with [Success] and [Fail].
type Result[T any] struct {
	data    T
	failure *Failure
}

// Success returns a successful Result carrying data.
func Success[T any](data T) Result[T] {
	return Result[T]{data: data}
}

// Fail returns a failed Result. An empty code or message is replaced with
// [CodeUnknownError] and [MsgUnknownError] respectively.
func Fail[T any](code, message string, raw error) Result[T] {
	if code == "" {
		code = CodeUnknownError
	}
	if message == "" {
		message = MsgUnknownError
	}

	return Result[T]{failure: &Failure{Code: code, Message: message, Raw: raw}}
}

// Type reports which variant r holds.
func (r Result[T]) Type() ResultType {
	if r.failure != nil {
		return ResultError
	}
	return ResultSuccess
}

// IsSuccess reports whether r holds the success variant.
func (r Result[T]) IsSuccess() bool {
	return r.failure == nil
}

// Data returns the success payload, or the zero value of T for a failure.
func (r Result[T]) Data() T {
	return r.data
}

// Failure returns the error variant, or nil for a success.
func (r Result[T]) Failure() *Failure {
	return r.failure
}

// Unwrap converts r into the conventional (value, error) pair. The returned
// error, when non-nil, is the *Failure itself.
func (r Result[T]) Unwrap() (T, error) {
	if r.failure != nil {
		var zero T
		return zero, r.failure
	}
	return r.data, nil
}

type resultJSON struct {
	Type         ResultType `json:"type"`
	Data         any        `json:"data,omitempty"`
	ErrorCode    string     `json:"errorCode,omitempty"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
}

// MarshalJSON renders r as {"type":"success","data":...} or
// {"type":"error","errorCode":...,"errorMessage":...}.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.failure != nil {
		return json.Marshal(resultJSON{
			Type:         ResultError,
			ErrorCode:    r.failure.Code,
			ErrorMessage: r.failure.Message,
		})
	}

	return json.Marshal(resultJSON{Type: ResultSuccess, Data: r.data})
}
