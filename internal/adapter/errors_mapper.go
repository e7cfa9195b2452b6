package adapter

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

// maxErrorBody caps the part of a response body copied into an error message.
const maxErrorBody = 512

// MapHTTPError translates a non-2xx response into one of the sentinel errors
// of this package, wrapped together with the (truncated) response body.
// Returns nil for 2xx responses.
func MapHTTPError(resp *Response) error {
	if resp.OK() {
		return nil
	}

	body := truncateBody(strings.TrimSpace(string(resp.Body)))

	var sentinel error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	case http.StatusUnprocessableEntity:
		sentinel = ErrUnprocessable
	case http.StatusTooManyRequests:
		sentinel = ErrTooManyRequests
	case http.StatusInternalServerError:
		sentinel = ErrInternalServerError
	case http.StatusBadGateway:
		sentinel = ErrBadGateway
	case http.StatusServiceUnavailable:
		sentinel = ErrServiceUnavailable
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode, body)
	}

	if body == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, body)
}

// truncateBody cuts body to at most maxErrorBody bytes without splitting a
// UTF-8 sequence.
func truncateBody(body string) string {
	if len(body) <= maxErrorBody {
		return body
	}

	cut := maxErrorBody
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}

	return body[:cut] + "..."
}
