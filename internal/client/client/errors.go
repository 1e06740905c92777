package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	// Message is the backend-provided "message" (or "error") field, if any.
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrUnavailable:
		return e.StatusCode == http.StatusBadGateway ||
			e.StatusCode == http.StatusServiceUnavailable ||
			e.StatusCode == http.StatusGatewayTimeout
	}
	return false
}

// TransportError wraps a failure to get any response at all (DNS, refused
// connection, timeout). It matches ErrUnavailable.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() []error { return []error{ErrUnavailable, e.Err} }

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: body}

	var payload struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(payload.Message)
	if apiErr.Message == "" && len(payload.Error) > 0 {
		var s string
		if json.Unmarshal(payload.Error, &s) == nil {
			apiErr.Message = strings.TrimSpace(s)
		}
	}
	return apiErr
}

// ErrorMessage derives user-facing text from err, preferring the
// backend-provided message, then the transport/HTTP error text, then
// fallback.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return apiErr.Error()
	}

	var tErr *TransportError
	if errors.As(err, &tErr) && tErr.Err != nil {
		if msg := tErr.Err.Error(); msg != "" {
			return msg
		}
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
