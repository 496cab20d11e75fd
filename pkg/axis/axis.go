package axis

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Predefined errors for the axis package.
var (
	// ErrInvalidAxis indicates a blank axis id, an empty value set, or
	// duplicate value ids inside one registration.
	ErrInvalidAxis = errors.New("invalid axis definition")

	// ErrAxisConflict indicates a registration that collides with an
	// already-registered axis id.
	ErrAxisConflict = errors.New("axis already registered")
)

// ConflictError describes a collision between two registrations of the same
// axis id.
type ConflictError struct {
	AxisID     string
	Registered reflect.Type // backing type of the existing axis
	Offered    reflect.Type // backing type of the rejected registration
}

func (e *ConflictError) Error() string {
	if e.Registered != e.Offered {
		return fmt.Sprintf("axis %q already registered with backing type %s, cannot re-register with %s",
			e.AxisID, e.Registered, e.Offered)
	}
	return fmt.Sprintf("axis %q already registered", e.AxisID)
}

// Unwrap lets errors.Is match ErrAxisConflict.
func (e *ConflictError) Unwrap() error { return ErrAxisConflict }

// Value is one member of an application-defined axis enumeration. The
// returned id must be stable: it is the string stored in targeting rules and
// evaluation contexts.
type Value interface {
	AxisValueID() string
}

// Axis is a registered targeting dimension. Immutable after registration.
type Axis struct {
	id      string
	backing reflect.Type
	values  map[string]Value
}

// ID returns the axis id.
func (a *Axis) ID() string { return a.id }

// Backing returns the Go type of the axis's value enum.
func (a *Axis) Backing() reflect.Type { return a.backing }

// Contains reports whether valueID is a registered member of the axis.
func (a *Axis) Contains(valueID string) bool {
	_, ok := a.values[valueID]
	return ok
}

// Value returns the registered member with the given id.
func (a *Axis) Value(valueID string) (Value, bool) {
	v, ok := a.values[valueID]
	return v, ok
}

// Values returns all members sorted by value id.
func (a *Axis) Values() []Value {
	ids := make([]string, 0, len(a.values))
	for id := range a.values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	values := make([]Value, len(ids))
	for i, id := range ids {
		values[i] = a.values[id]
	}
	return values
}

// Catalog is a scoped axis registry. Each catalog is fully isolated:
// registrations in one are invisible to lookups in another. Safe for
// concurrent use.
type Catalog struct {
	mu   sync.RWMutex
	axes map[string]*Axis
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{axes: make(map[string]*Axis)}
}

// Register adds a new axis with the given id and value set. All values must
// share one backing Go type. Registering an id twice is a conflict, reported
// as a typed *ConflictError.
func (c *Catalog) Register(id string, values ...Value) (*Axis, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.Join(ErrInvalidAxis, errors.New("axis id cannot be blank"))
	}
	if len(values) == 0 {
		return nil, errors.Join(ErrInvalidAxis, fmt.Errorf("axis %q has no values", id))
	}

	backing := reflect.TypeOf(values[0])
	members := make(map[string]Value, len(values))
	for _, v := range values {
		if t := reflect.TypeOf(v); t != backing {
			return nil, errors.Join(ErrInvalidAxis,
				fmt.Errorf("axis %q mixes backing types %s and %s", id, backing, t))
		}
		valueID := v.AxisValueID()
		if valueID == "" {
			return nil, errors.Join(ErrInvalidAxis, fmt.Errorf("axis %q has a value with a blank id", id))
		}
		if _, dup := members[valueID]; dup {
			return nil, errors.Join(ErrInvalidAxis, fmt.Errorf("axis %q has duplicate value id %q", id, valueID))
		}
		members[valueID] = v
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.axes[id]; ok {
		return nil, &ConflictError{AxisID: id, Registered: existing.backing, Offered: backing}
	}

	a := &Axis{id: id, backing: backing, values: members}
	c.axes[id] = a
	return a, nil
}

// MustRegister is like Register but panics on failure, following the
// fail-fast pattern for wiring-time defects.
func (c *Catalog) MustRegister(id string, values ...Value) *Axis {
	a, err := c.Register(id, values...)
	if err != nil {
		panic(fmt.Sprintf("axis: %v", err))
	}
	return a
}

// Axis returns the registered axis with the given id.
func (c *Catalog) Axis(id string) (*Axis, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.axes[id]
	return a, ok
}

// IDs returns all registered axis ids, sorted.
func (c *Catalog) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.axes))
	for id := range c.axes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ValueIDs extracts the stable ids of the given values, preserving order.
// Convenience for building targeting constraints and evaluation contexts.
func ValueIDs(values ...Value) []string {
	ids := make([]string, len(values))
	for i, v := range values {
		ids[i] = v.AxisValueID()
	}
	return ids
}
