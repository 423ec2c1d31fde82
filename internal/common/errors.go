// Package common defines shared constants and sentinel errors used across
// the emotion-journal client. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Gateway-level errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")

	// ErrSessionExpired is returned after a failed refresh exchange once all
	// stored credentials have been purged. The user has to sign in again.
	ErrSessionExpired = errors.New("session expired")

	// ErrNoRefreshToken means a refresh was attempted without a stored
	// refresh token; it is fatal for the session.
	ErrNoRefreshToken = errors.New("no refresh token available")

	// ErrInvalidTokenResponse means the auth endpoint answered without the
	// expected access/refresh pair.
	ErrInvalidTokenResponse = errors.New("invalid token response from server")
)
