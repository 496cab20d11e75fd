package identity

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// StableID is a caller-supplied, persistent per-user or per-device
// identifier. It must not change across evaluations; bucketing determinism
// depends on it.
type StableID struct {
	id uuid.UUID
}

// ParseStableID parses a stable identifier from either the 32-character
// canonical hex form or the dashed UUID form.
func ParseStableID(s string) (StableID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return StableID{}, errors.Join(ErrInvalidStableID, fmt.Errorf("parse %q: %v", s, err))
	}
	return StableID{id: id}, nil
}

// MustStableID is like ParseStableID but panics on invalid input.
func MustStableID(s string) StableID {
	id, err := ParseStableID(s)
	if err != nil {
		panic(fmt.Sprintf("identity: %v", err))
	}
	return id
}

// StableIDFromUUID wraps an existing UUID as a stable identifier.
func StableIDFromUUID(u uuid.UUID) StableID {
	return StableID{id: u}
}

// NewStableID generates a random stable identifier. Intended for tests and
// for hosts minting fresh device identifiers; the caller is responsible for
// persisting it.
func NewStableID() StableID {
	return StableID{id: uuid.New()}
}

// CanonicalHex returns the 32-character lowercase hex encoding without
// dashes. This exact string is the bucketing digest input and the allowlist
// membership key; its format is frozen.
func (s StableID) CanonicalHex() string {
	return hex.EncodeToString(s.id[:])
}

// UUID returns the underlying UUID.
func (s StableID) UUID() uuid.UUID { return s.id }

// IsZero reports whether s is the zero identifier.
func (s StableID) IsZero() bool { return s.id == uuid.Nil }

// String returns the canonical hex form.
func (s StableID) String() string { return s.CanonicalHex() }
