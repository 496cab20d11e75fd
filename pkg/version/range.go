package version

import (
	"errors"
	"fmt"
)

// ErrInvalidRange indicates a range whose bounds are inverted.
var ErrInvalidRange = errors.New("invalid version range")

// Range is an inclusive version interval. It is a closed set of variants:
// Unbounded, AtLeast, AtMost and Between. Consumers may type-switch over
// these four types exhaustively.
type Range interface {
	// Contains reports whether v falls inside the range, inclusive on both
	// ends where bounded.
	Contains(v Version) bool

	// HasBounds reports whether the range constrains at least one end.
	// It is false only for Unbounded.
	HasBounds() bool

	// String returns a human-readable interval form.
	String() string

	rangeVariant()
}

// Unbounded matches every version.
type Unbounded struct{}

func (Unbounded) Contains(Version) bool { return true }
func (Unbounded) HasBounds() bool       { return false }
func (Unbounded) String() string        { return "[*, *]" }
func (Unbounded) rangeVariant()         {}

// AtLeast matches versions >= Min.
type AtLeast struct {
	Min Version
}

func (r AtLeast) Contains(v Version) bool { return r.Min.Compare(v) <= 0 }
func (r AtLeast) HasBounds() bool         { return true }
func (r AtLeast) String() string          { return fmt.Sprintf("[%s, *]", r.Min) }
func (AtLeast) rangeVariant()             {}

// AtMost matches versions <= Max.
type AtMost struct {
	Max Version
}

func (r AtMost) Contains(v Version) bool { return v.Compare(r.Max) <= 0 }
func (r AtMost) HasBounds() bool         { return true }
func (r AtMost) String() string          { return fmt.Sprintf("[*, %s]", r.Max) }
func (AtMost) rangeVariant()             {}

// Between matches versions in [Min, Max]. Construct with NewBetween so that
// inverted bounds are rejected.
type Between struct {
	Min Version
	Max Version
}

func (r Between) Contains(v Version) bool {
	return r.Min.Compare(v) <= 0 && v.Compare(r.Max) <= 0
}
func (r Between) HasBounds() bool { return true }
func (r Between) String() string  { return fmt.Sprintf("[%s, %s]", r.Min, r.Max) }
func (Between) rangeVariant()     {}

// NewBetween builds a fully bound range, rejecting min > max.
func NewBetween(min, max Version) (Between, error) {
	if min.Compare(max) > 0 {
		return Between{}, errors.Join(ErrInvalidRange,
			fmt.Errorf("min %s is greater than max %s", min, max))
	}
	return Between{Min: min, Max: max}, nil
}
