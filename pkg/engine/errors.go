package engine

import (
	"errors"
	"fmt"

	"github.com/flagkit/flagkit/pkg/identity"
)

// Predefined errors for the engine package.
var (
	// ErrNotRegistered indicates an evaluation request for a feature absent
	// from the active configuration: a wiring defect, never a silent default.
	ErrNotRegistered = errors.New("feature not registered")

	// ErrValueType indicates a typed accessor whose flag resolved to a value
	// of a different Go type.
	ErrValueType = errors.New("flag value has unexpected type")

	// ErrNilRegistry indicates an engine constructed without a registry.
	ErrNilRegistry = errors.New("nil registry")
)

// NotRegisteredError identifies the feature an evaluation could not find.
type NotRegisteredError struct {
	Feature   identity.FeatureIdentity
	Namespace string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("feature %s not registered in namespace %q", e.Feature, e.Namespace)
}

// Unwrap lets errors.Is match ErrNotRegistered.
func (e *NotRegisteredError) Unwrap() error { return ErrNotRegistered }

// ValueTypeError reports the mismatch between the type a typed accessor
// expected and the value the flag actually resolved to.
type ValueTypeError struct {
	Feature  identity.FeatureIdentity
	Expected string
	Actual   any
}

func (e *ValueTypeError) Error() string {
	return fmt.Sprintf("feature %s resolved to %T, expected %s", e.Feature, e.Actual, e.Expected)
}

// Unwrap lets errors.Is match ErrValueType.
func (e *ValueTypeError) Unwrap() error { return ErrValueType }
