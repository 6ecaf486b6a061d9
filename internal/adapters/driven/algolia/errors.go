package algolia

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned when the app id or api key is absent.
var ErrMissingCredentials = errors.New("algolia: missing credentials")

// APIError is a non-2xx response from the provider.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("algolia: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("algolia: HTTP %d: %s", e.StatusCode, e.Message)
}
