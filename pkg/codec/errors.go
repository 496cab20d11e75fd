package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDocument is the sentinel wrapped by every DecodeError.
	ErrInvalidDocument = errors.New("invalid flag document")

	// ErrUnsupportedType is returned when encoding a configuration whose
	// default value has no wire type discriminator.
	ErrUnsupportedType = errors.New("unsupported flag value type")
)

// DecodeError reports a validation failure at a specific document path,
// such as "features[2].rules[0].rollout".
type DecodeError struct {
	Path   string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid flag document: %s", e.Reason)
	}
	return fmt.Sprintf("invalid flag document at %s: %s", e.Path, e.Reason)
}

func (e *DecodeError) Unwrap() error { return ErrInvalidDocument }

func decodeErrorf(path, format string, args ...any) *DecodeError {
	return &DecodeError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
