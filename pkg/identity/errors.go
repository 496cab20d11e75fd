package identity

import "errors"

// Predefined errors for the identity package.
var (
	// ErrInvalidIdentity indicates a malformed feature identity part or encoding.
	ErrInvalidIdentity = errors.New("invalid feature identity")

	// ErrInvalidStableID indicates a stable identifier that is not a valid
	// 128-bit hex identifier.
	ErrInvalidStableID = errors.New("invalid stable identifier")
)
