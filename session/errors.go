package session

import "errors"

var (
	// ErrSessionNotFound indicates the requested session is missing or expired.
	ErrSessionNotFound = errors.New("session not found")
)
