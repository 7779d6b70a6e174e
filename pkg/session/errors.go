package session

import (
	"errors"
	"fmt"
)

var (
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrUnauthorized = errors.New("session rejected by server")
)

// APIError is a non-2xx answer carrying the server's {"error": ...} message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}
