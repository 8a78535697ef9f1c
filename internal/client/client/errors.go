package client

import "errors"

var (
	// ErrDuplicateUsername is returned by Signup when the server reports the
	// username as already taken (409).
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredentials is returned by Login when the server rejects the
	// username/password pair (401 or 404).
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotFound is returned when a requested story does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRequestFailed covers any other non-success status as well as
	// network and response-decoding failures.
	ErrRequestFailed = errors.New("request failed")
)
