package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrNotAuthenticated = errors.New("not authenticated")
var ErrTokenExpired = errors.New("credential expired")
var ErrAccessDenied = errors.New("access denied")

// TokenDecodeError wraps a failure to decode the stored credential. It is
// always recovered locally by forcing a logout.
type TokenDecodeError struct {
	Err error
}

func (e *TokenDecodeError) Error() string {
	return fmt.Sprintf("malformed credential: %v", e.Err)
}

func (e *TokenDecodeError) Unwrap() error { return e.Err }

// RequestError is a non-2xx reply from the backend. The raw body is kept so
// screens can surface the backend's own message.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Body)
}

// AuthFailure reports whether the backend rejected the credential. Screens
// prompt for a fresh login instead of offering a retry.
func (e *RequestError) AuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// ValidationError collects client-side form failures. It blocks submission
// before any network call is made.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "formulario inválido: " + strings.Join(e.Messages, "; ")
}

// ConnectionError is a transport-level failure where no reply arrived at all.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("could not reach backend at %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }
