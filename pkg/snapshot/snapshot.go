package snapshot

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/flagkit/flagkit/pkg/feature"
	"github.com/flagkit/flagkit/pkg/identity"
)

// Predefined errors for the snapshot package.
var (
	// ErrDuplicateFlag indicates two definitions sharing one feature identity.
	ErrDuplicateFlag = errors.New("duplicate flag identity")

	// ErrNilDefinition indicates a nil definition passed to New.
	ErrNilDefinition = errors.New("nil flag definition")
)

// Metadata describes a configuration's provenance. Version and Source are
// opaque caller-supplied strings used only for diagnostics; the engine never
// interprets them.
type Metadata struct {
	// ID uniquely identifies this configuration object, distinguishing loads
	// that carry identical version strings. Filled at construction when zero.
	ID uuid.UUID

	// Version is the caller's version label for the flag set.
	Version string

	// GeneratedAt is when the flag set was produced.
	GeneratedAt time.Time

	// Source names where the flag set came from.
	Source string
}

// Configuration is an immutable set of flag definitions plus metadata. Safe
// to share across goroutines without copying.
type Configuration struct {
	meta  Metadata
	flags map[identity.FeatureIdentity]*feature.Definition
}

// New builds a configuration from flag definitions. Each feature identity
// may appear at most once.
func New(meta Metadata, defs ...*feature.Definition) (*Configuration, error) {
	if meta.ID == uuid.Nil {
		meta.ID = uuid.New()
	}

	flags := make(map[identity.FeatureIdentity]*feature.Definition, len(defs))
	for _, def := range defs {
		if def == nil {
			return nil, ErrNilDefinition
		}
		id := def.Identity()
		if _, dup := flags[id]; dup {
			return nil, errors.Join(ErrDuplicateFlag, fmt.Errorf("identity %s", id))
		}
		flags[id] = def
	}

	return &Configuration{meta: meta, flags: flags}, nil
}

// MustNew is like New but panics on duplicate identities.
func MustNew(meta Metadata, defs ...*feature.Definition) *Configuration {
	c, err := New(meta, defs...)
	if err != nil {
		panic(fmt.Sprintf("snapshot: %v", err))
	}
	return c
}

// Metadata returns the configuration's provenance.
func (c *Configuration) Metadata() Metadata { return c.meta }

// Lookup returns the definition for the given identity.
func (c *Configuration) Lookup(id identity.FeatureIdentity) (*feature.Definition, bool) {
	def, ok := c.flags[id]
	return def, ok
}

// Len returns the number of flags.
func (c *Configuration) Len() int { return len(c.flags) }

// Identities returns all flag identities in lexicographic order.
func (c *Configuration) Identities() []identity.FeatureIdentity {
	ids := make([]identity.FeatureIdentity, 0, len(c.flags))
	for id := range c.flags {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
	return ids
}

// Definitions returns all definitions ordered by identity.
func (c *Configuration) Definitions() []*feature.Definition {
	ids := c.Identities()
	defs := make([]*feature.Definition, len(ids))
	for i, id := range ids {
		defs[i] = c.flags[id]
	}
	return defs
}

// Diff summarizes how two configurations differ, each slice sorted by
// identity.
type Diff struct {
	Added   []identity.FeatureIdentity
	Removed []identity.FeatureIdentity
	Changed []identity.FeatureIdentity
}

// Empty reports whether the diff carries no differences.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// Compare diffs next against prev. Added identities appear only in next,
// removed only in prev; changed identities appear in both with structurally
// different definitions. A nil configuration compares as empty.
func Compare(prev, next *Configuration) Diff {
	var d Diff

	if next != nil {
		for _, id := range next.Identities() {
			var prevDef *feature.Definition
			existed := false
			if prev != nil {
				prevDef, existed = prev.Lookup(id)
			}
			if !existed {
				d.Added = append(d.Added, id)
				continue
			}
			nextDef, _ := next.Lookup(id)
			if !prevDef.Equal(nextDef) {
				d.Changed = append(d.Changed, id)
			}
		}
	}

	if prev != nil {
		for _, id := range prev.Identities() {
			kept := false
			if next != nil {
				_, kept = next.Lookup(id)
			}
			if !kept {
				d.Removed = append(d.Removed, id)
			}
		}
	}

	return d
}
