package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidVersion indicates a version that could not be parsed or
// constructed.
var ErrInvalidVersion = errors.New("invalid version")

// ParseError describes why a version string was rejected.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse version %q: %s", e.Input, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidVersion.
func (e *ParseError) Unwrap() error { return ErrInvalidVersion }

// Version is a semantic version triple. The zero value is 0.0.0.
type Version struct {
	Major int
	Minor int
	Patch int
}

// New constructs a version, rejecting negative components.
func New(major, minor, patch int) (Version, error) {
	if major < 0 || minor < 0 || patch < 0 {
		return Version{}, errors.Join(ErrInvalidVersion,
			fmt.Errorf("components must be non-negative, got %d.%d.%d", major, minor, patch))
	}
	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// Parse decodes a dotted "major.minor.patch" string. All three components
// are required; each must be a canonical non-negative decimal: digits only,
// no sign, no leading zeros.
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, &ParseError{Input: s, Reason: fmt.Sprintf("expected 3 dotted components, got %d", len(parts))}
	}

	components := make([]int, 3)
	for i, part := range parts {
		n, reason := parseComponent(part)
		if reason != "" {
			return Version{}, &ParseError{Input: s, Reason: reason}
		}
		components[i] = n
	}

	return Version{Major: components[0], Minor: components[1], Patch: components[2]}, nil
}

func parseComponent(part string) (int, string) {
	if part == "" {
		return 0, "empty component"
	}
	for _, c := range part {
		if c < '0' || c > '9' {
			return 0, fmt.Sprintf("component %q is not a decimal integer", part)
		}
	}
	if len(part) > 1 && part[0] == '0' {
		return 0, fmt.Sprintf("component %q has a leading zero", part)
	}
	n, err := strconv.ParseUint(part, 10, 31)
	if err != nil {
		return 0, fmt.Sprintf("component %q overflows", part)
	}
	return int(n), ""
}

// MustParse is like Parse but panics on invalid input. Use it for versions
// declared at wiring time.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("version: %v", err))
	}
	return v
}

// Compare returns -1, 0 or 1 ordering v against other component-wise.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	return compareInt(v.Patch, other.Patch)
}

// Less reports whether v orders strictly before other.
func (v Version) Less(other Version) bool { return v.Compare(other) < 0 }

// Equal reports component-wise equality.
func (v Version) Equal(other Version) bool { return v == other }

// String returns the dotted form "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
