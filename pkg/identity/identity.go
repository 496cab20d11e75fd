package identity

import (
	"errors"
	"fmt"
	"strings"
)

// prefix is the fixed domain tag of every encoded feature identity.
const prefix = "feature"

// separator joins the prefix, namespace and key in the encoded form.
const separator = "::"

// FeatureIdentity is the canonical, immutable name of a flag. The zero value
// is not a valid identity; construct one with NewFeatureIdentity or
// ParseFeatureIdentity.
type FeatureIdentity struct {
	namespace string
	key       string
}

// NewFeatureIdentity creates an identity from a namespace seed and a key.
// Both parts must be non-blank and must not contain the ':' separator
// character.
func NewFeatureIdentity(namespace, key string) (FeatureIdentity, error) {
	if err := validatePart("namespace", namespace); err != nil {
		return FeatureIdentity{}, err
	}
	if err := validatePart("key", key); err != nil {
		return FeatureIdentity{}, err
	}
	return FeatureIdentity{namespace: namespace, key: key}, nil
}

// MustFeatureIdentity is like NewFeatureIdentity but panics on invalid input.
// Use it for identities declared as package-level constants, where a bad part
// is a wiring defect that should fail at startup.
func MustFeatureIdentity(namespace, key string) FeatureIdentity {
	id, err := NewFeatureIdentity(namespace, key)
	if err != nil {
		panic(fmt.Sprintf("identity: %v", err))
	}
	return id
}

// ParseFeatureIdentity decodes the canonical "feature::<namespace>::<key>"
// form. Any deviation from the canonical encoding is rejected.
func ParseFeatureIdentity(s string) (FeatureIdentity, error) {
	parts := strings.Split(s, separator)
	if len(parts) != 3 {
		return FeatureIdentity{}, errors.Join(ErrInvalidIdentity,
			fmt.Errorf("expected 3 '::'-separated parts, got %d", len(parts)))
	}
	if parts[0] != prefix {
		return FeatureIdentity{}, errors.Join(ErrInvalidIdentity,
			fmt.Errorf("expected prefix %q, got %q", prefix, parts[0]))
	}
	return NewFeatureIdentity(parts[1], parts[2])
}

// Namespace returns the namespace seed part.
func (f FeatureIdentity) Namespace() string { return f.namespace }

// Key returns the key part.
func (f FeatureIdentity) Key() string { return f.key }

// IsZero reports whether f is the zero (invalid) identity.
func (f FeatureIdentity) IsZero() bool { return f.namespace == "" && f.key == "" }

// String returns the canonical encoded form.
func (f FeatureIdentity) String() string {
	return prefix + separator + f.namespace + separator + f.key
}

// Compare orders identities lexicographically on their encoded form.
func (f FeatureIdentity) Compare(other FeatureIdentity) int {
	return strings.Compare(f.String(), other.String())
}

// Less reports whether f sorts before other.
func (f FeatureIdentity) Less(other FeatureIdentity) bool {
	return f.Compare(other) < 0
}

func validatePart(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.Join(ErrInvalidIdentity, fmt.Errorf("%s cannot be blank", name))
	}
	if strings.Contains(value, ":") {
		return errors.Join(ErrInvalidIdentity, fmt.Errorf("%s cannot contain ':'", name))
	}
	return nil
}
