package gateway

import (
	"errors"
	"fmt"
)

// FallbackMessage is shown when the store API gives us nothing better.
const FallbackMessage = "Something went wrong. Please try again."

// APIError is the single failure shape for every store API call: transport
// failures, HTTP-level failures, and business failures all normalize to it.
type APIError struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("store api error %d: %s", e.Code, e.Message)
}

// AsAPIError unwraps err into an *APIError, normalizing unknown errors to a
// code-500 fallback so callers always have something renderable.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{Code: 500, Message: FallbackMessage, Errors: []string{err.Error()}}
}

// IsCode reports whether err is an APIError with the given code.
func IsCode(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}
