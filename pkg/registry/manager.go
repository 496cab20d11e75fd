package registry

import (
	"sort"
	"sync"
)

// Manager hands out one registry per namespace. Registries are created
// lazily on first access and live for the manager's lifetime; each is fully
// isolated from the others.
type Manager struct {
	mu         sync.RWMutex
	registries map[string]*Registry
	opts       []Option
	disabled   map[string]struct{}
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithRegistryOptions sets the options every managed registry is
// constructed with.
func WithRegistryOptions(opts ...Option) ManagerOption {
	return func(m *Manager) {
		m.opts = append(m.opts, opts...)
	}
}

// WithDisabledNamespaces engages the kill-switch on the named namespaces as
// soon as their registries are created. Pairs with the
// FLAGKIT_DISABLED_NAMESPACES setting.
func WithDisabledNamespaces(names ...string) ManagerOption {
	return func(m *Manager) {
		for _, name := range names {
			m.disabled[name] = struct{}{}
		}
	}
}

// NewManager creates a manager.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		registries: make(map[string]*Registry),
		disabled:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Namespace returns the registry for the given namespace, creating it when
// absent. A blank namespace yields an error.
func (m *Manager) Namespace(name string) (*Registry, error) {
	m.mu.RLock()
	if r, ok := m.registries[name]; ok {
		m.mu.RUnlock()
		return r, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.registries[name]; ok {
		return r, nil
	}
	r, err := New(name, m.opts...)
	if err != nil {
		return nil, err
	}
	if _, off := m.disabled[name]; off {
		r.DisableAll()
	}
	m.registries[name] = r
	return r, nil
}

// Namespaces returns the names of all registries created so far, sorted.
func (m *Manager) Namespaces() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.registries))
	for name := range m.registries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
