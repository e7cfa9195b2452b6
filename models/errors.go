package models

// Failure codes produced by the client itself. Any other code found in a
// [Failure] was reported by the server and passed through verbatim.
const (
	// CodeNetworkError is used when the transport failed before a response
	// was received (connection refused, timeout, cancelled context).
	CodeNetworkError = "network_error"

	// CodeUnknownError is used when the server response lacks the expected
	// fields, cannot be parsed, or the failure cause carries no message.
	CodeUnknownError = "unknown_error"

	// MsgUnknownError is the message paired with CodeUnknownError and the
	// default for error bodies that do not carry their own message.
	MsgUnknownError = "An unknown error occurred"
)
