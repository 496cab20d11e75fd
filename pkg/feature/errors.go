package feature

import "errors"

// Predefined errors for the feature package.
var (
	// ErrInvalidRule indicates rule parameters that cannot form a valid rule,
	// such as a rollout percentage outside [0, 100].
	ErrInvalidRule = errors.New("invalid rule")

	// ErrInvalidDefinition indicates flag definition parameters that cannot
	// form a valid definition, such as a blank salt.
	ErrInvalidDefinition = errors.New("invalid flag definition")
)
