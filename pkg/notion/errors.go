package notion

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes the Notion API uses for the failure modes this tool
// distinguishes. Everything else is reported verbatim.
const (
	codeObjectNotFound = "object_not_found"
	codeUnauthorized   = "unauthorized"
)

// APIError represents an error response from the Notion API
type APIError struct {
	StatusCode int    `json:"status"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("notion API error %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("notion API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err means the queried database does not
// exist or is not visible to the integration
func IsNotFound(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == codeObjectNotFound || apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err means the bearer token was
// rejected
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == codeUnauthorized || apiErr.StatusCode == http.StatusUnauthorized
}
