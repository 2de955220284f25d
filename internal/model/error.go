package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes carried in the "error" field of an API error body.
const (
	CodeValueInvalid     = "value:invalid"
	CodeValueNotFound    = "value:notfound"
	CodePermissionDenied = "permission:forbidden"
	CodeAuthFailed       = "auth:failed"
)

// APIError is the consistent JSON structure for all API error responses.
//
// Application errors travel inside 200 responses with a truthy "error" field.
// Transport failures are synthesized by the client as "HTTP<status>".
type APIError struct {
	Code    string `json:"error"`
	Data    string `json:"data,omitempty"`
	Message string `json:"message,omitempty"`

	// Raw is the response body the error was read from, unchanged.
	// Empty for errors synthesized on the client side.
	Raw json.RawMessage `json:"-"`
	// Status is the HTTP status the error arrived with (0 = no response).
	Status int `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	case e.Message != "":
		return e.Message
	case e.Code != "":
		return e.Code
	default:
		return "api error"
	}
}

// DisplayText returns the text a banner shows for the error: the message,
// else the code, else Error().
func (e *APIError) DisplayText() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return e.Error()
}

// NewAPIError creates an application-level error
func NewAPIError(code, data, message string) *APIError {
	return &APIError{Code: code, Data: data, Message: message}
}

// NetworkError builds the uniform transport failure shape for an HTTP status.
// Status 0 means the request never produced a response.
func NetworkError(status int) *APIError {
	return &APIError{
		Code:    fmt.Sprintf("HTTP%d", status),
		Message: fmt.Sprintf("Network error (HTTP %d)", status),
		Status:  status,
	}
}

// IsNetworkError reports whether the error was synthesized from a transport failure
func (e *APIError) IsNetworkError() bool {
	return e != nil && e.Raw == nil && e.Code == fmt.Sprintf("HTTP%d", e.Status)
}

// ValueError reports an invalid input field
func ValueError(field, message string) *APIError {
	return NewAPIError(CodeValueInvalid, field, message)
}

// NotFoundError reports a missing resource
func NotFoundError(field, message string) *APIError {
	return NewAPIError(CodeValueNotFound, field, message)
}

// PermissionError reports a forbidden operation
func PermissionError(message string) *APIError {
	if message == "" {
		message = http.StatusText(http.StatusForbidden)
	}
	return NewAPIError(CodePermissionDenied, "permission", message)
}

// AuthError reports failed authentication on a field
func AuthError(field, message string) *APIError {
	return NewAPIError(CodeAuthFailed, field, message)
}
