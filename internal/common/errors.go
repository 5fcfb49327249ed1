// Package common defines shared constants and sentinel errors used across
// Gatekeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// Malformed or missing input fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so that responses cannot be used to enumerate which
	// emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Missing, expired or otherwise unverifiable session token.
	ErrUnauthenticated = errors.New("unauthenticated")

	// Remote identity service unreachable or failing.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// Unexpected internal failure.
	ErrInternal = errors.New("internal error")
)
