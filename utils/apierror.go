package utils

import "net/http"

// APIError is the single typed error handlers raise for expected failures.
// It carries the HTTP status code the response should use.
type APIError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// NewAPIError builds an APIError. A zero statusCode defaults to 400.
func NewAPIError(message string, statusCode int) *APIError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &APIError{Message: message, StatusCode: statusCode}
}

func (e *APIError) Error() string {
	return e.Message
}
