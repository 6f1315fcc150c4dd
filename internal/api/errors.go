// Package api implements the HTTP client for the album server: login and
// album listing, with bearer-token and session-cookie authorization.
package api

import (
	"errors"
	"fmt"
)

// NetworkError indicates the album server could not be reached or answered
// a non-2xx status. Status is zero for transport-level failures.
type NetworkError struct {
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("album server returned HTTP %d", e.Status)
	}
	return fmt.Sprintf("album server unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError indicates the server answered 2xx but the body was not usable
// JSON for the endpoint in question.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid response from album server: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// AuthError indicates the login endpoint rejected the supplied credentials.
// It is kept distinct from NetworkError so the login form can stay open with
// an inline message instead of showing a generic load failure.
type AuthError struct {
	Status int
}

func (e *AuthError) Error() string { return "invalid credentials" }

// IsAuthError reports whether err wraps a credential rejection.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}
