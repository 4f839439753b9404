package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidPayload marks a 2xx response whose body does not match the
// expected contract.
var ErrInvalidPayload = errors.New("invalid backend payload")

// APIError is a non-2xx backend response. Message is shown to the user as is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(status int, body []byte) *APIError {
	msg := fmt.Sprintf("%d %s", status, http.StatusText(status))

	var data map[string]interface{}
	if err := json.Unmarshal(body, &data); err == nil {
		for _, field := range []string{"message", "error"} {
			if s, ok := data[field].(string); ok && s != "" {
				msg = s
				break
			}
		}
	}

	return &APIError{Status: status, Message: msg}
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidPayload, fmt.Sprintf(format, args...))
}
