package registry

import (
	"errors"
	"fmt"
)

// Predefined errors for the registry package.
var (
	// ErrNoConfiguration indicates a read from a registry that has never
	// been loaded.
	ErrNoConfiguration = errors.New("no configuration loaded")

	// ErrNilConfiguration indicates a nil configuration passed to Load.
	ErrNilConfiguration = errors.New("nil configuration")

	// ErrInvalidNamespace indicates a blank namespace name.
	ErrInvalidNamespace = errors.New("invalid namespace")

	// ErrHistoryExhausted indicates a rollback deeper than the retained
	// history.
	ErrHistoryExhausted = errors.New("rollback history exhausted")

	// ErrInvalidSteps indicates a rollback step count below one.
	ErrInvalidSteps = errors.New("rollback steps must be at least 1")
)

// HistoryExhaustedError reports how far a rollback overshot the retained
// history.
type HistoryExhaustedError struct {
	Namespace string
	Requested int
	Available int
}

func (e *HistoryExhaustedError) Error() string {
	return fmt.Sprintf("namespace %q: rollback of %d steps requested, only %d configurations retained",
		e.Namespace, e.Requested, e.Available)
}

// Unwrap lets errors.Is match ErrHistoryExhausted.
func (e *HistoryExhaustedError) Unwrap() error { return ErrHistoryExhausted }
