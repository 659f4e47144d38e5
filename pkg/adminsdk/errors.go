package adminsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError represents an error response from the admin service. Callers can
// branch on the status code instead of probing the message text:
//
//	var apiErr *adminsdk.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
//	    // user already exists
//	}
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int `json:"-"`

	// Message is the localized, human-readable error message
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("admin service returned %d: %s", e.StatusCode, e.Message)
}

// IsConflict reports whether the error is a 409, i.e. the invited address
// already has an account.
func (e *APIError) IsConflict() bool {
	return e.StatusCode == http.StatusConflict
}

// parseErrorResponse turns a non-2xx response body into an *APIError.
// Returns nil for success status codes.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var msgResp MessageResponse
	if err := json.Unmarshal(body, &msgResp); err == nil && msgResp.Message != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    msgResp.Message,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
