// Package version provides the semantic version triple and the inclusive
// version ranges used by flag targeting.
//
// A Version is three non-negative integers (major, minor, patch), totally
// ordered component-wise. Parse is strict: malformed or negative input is a
// typed failure, never a default substitution.
//
// Range is a closed set of variants (Unbounded, AtLeast, AtMost, Between)
// implemented as an interface with an unexported marker method so consumers
// can type-switch exhaustively. Bounds are inclusive on both ends.
// HasBounds is false only for Unbounded; targeting specificity uses it
// uniformly, so an explicitly declared Unbounded range scores the same as no
// version constraint at all.
package version
