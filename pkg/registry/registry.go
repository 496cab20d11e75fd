package registry

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/flagkit/flagkit/pkg/snapshot"
)

// DefaultHistoryCapacity is the number of prior configurations retained for
// rollback when no capacity option is given.
const DefaultHistoryCapacity = 10

// Registry is the per-namespace configuration cell. All methods are safe for
// concurrent use; reads never block on writers.
type Registry struct {
	namespace string
	capacity  int
	logger    *slog.Logger

	current  atomic.Pointer[snapshot.Configuration]
	disabled atomic.Bool

	// mu serializes writers (Load, Rollback). Readers go through the atomic
	// pointer only.
	mu      sync.Mutex
	history []*snapshot.Configuration
}

// Option configures a registry during construction.
type Option func(*Registry)

// WithHistoryCapacity bounds the rollback history. Zero disables rollback
// entirely; negative values are clamped to zero.
func WithHistoryCapacity(n int) Option {
	return func(r *Registry) {
		if n < 0 {
			n = 0
		}
		r.capacity = n
	}
}

// WithLogger attaches a structured logger; lifecycle transitions are logged
// at Info. Nil loggers are ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates an empty registry for the given namespace.
func New(namespace string, opts ...Option) (*Registry, error) {
	if strings.TrimSpace(namespace) == "" {
		return nil, ErrInvalidNamespace
	}

	r := &Registry{
		namespace: namespace,
		capacity:  DefaultHistoryCapacity,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// MustNew is like New but panics on a blank namespace.
func MustNew(namespace string, opts ...Option) *Registry {
	r, err := New(namespace, opts...)
	if err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
	return r
}

// Namespace returns the registry's namespace.
func (r *Registry) Namespace() string { return r.namespace }

// Current returns the active configuration. Lock-free; the returned snapshot
// is immutable and safe to use for any number of evaluations.
func (r *Registry) Current() (*snapshot.Configuration, error) {
	cfg := r.current.Load()
	if cfg == nil {
		return nil, ErrNoConfiguration
	}
	return cfg, nil
}

// Load atomically replaces the current configuration, pushing the previous
// one onto the bounded rollback history. Concurrent loads serialize; the
// last one to publish wins.
func (r *Registry) Load(cfg *snapshot.Configuration) error {
	if cfg == nil {
		return ErrNilConfiguration
	}

	r.mu.Lock()
	prev := r.current.Load()
	if prev != nil {
		r.pushHistory(prev)
	}
	r.current.Store(cfg)
	depth := len(r.history)
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Info("configuration loaded",
			slog.String("namespace", r.namespace),
			slog.String("config_id", cfg.Metadata().ID.String()),
			slog.String("config_version", cfg.Metadata().Version),
			slog.Int("flags", cfg.Len()),
			slog.Int("history_depth", depth),
		)
	}
	return nil
}

// Rollback restores the configuration from `steps` loads ago and discards
// the history entries above it, along with the configuration that was
// current. Fails with a typed error when history is shorter than steps.
func (r *Registry) Rollback(steps int) error {
	if steps < 1 {
		return ErrInvalidSteps
	}

	r.mu.Lock()
	if steps > len(r.history) {
		available := len(r.history)
		r.mu.Unlock()
		return &HistoryExhaustedError{Namespace: r.namespace, Requested: steps, Available: available}
	}

	restored := r.history[len(r.history)-steps]
	r.history = r.history[:len(r.history)-steps]
	r.current.Store(restored)
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Info("configuration rolled back",
			slog.String("namespace", r.namespace),
			slog.Int("steps", steps),
			slog.String("config_id", restored.Metadata().ID.String()),
			slog.String("config_version", restored.Metadata().Version),
		)
	}
	return nil
}

// HistoryLen returns the number of configurations currently retained for
// rollback.
func (r *Registry) HistoryLen() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.history)
}

// DisableAll turns the namespace kill-switch on: every evaluation in this
// namespace returns its flag default until EnableAll.
func (r *Registry) DisableAll() {
	if r.disabled.CompareAndSwap(false, true) && r.logger != nil {
		r.logger.Info("kill-switch enabled", slog.String("namespace", r.namespace))
	}
}

// EnableAll turns the namespace kill-switch off.
func (r *Registry) EnableAll() {
	if r.disabled.CompareAndSwap(true, false) && r.logger != nil {
		r.logger.Info("kill-switch disabled", slog.String("namespace", r.namespace))
	}
}

// Disabled reports the kill-switch state.
func (r *Registry) Disabled() bool { return r.disabled.Load() }

// pushHistory appends prev, evicting the oldest entry beyond capacity.
// Callers hold r.mu.
func (r *Registry) pushHistory(prev *snapshot.Configuration) {
	if r.capacity == 0 {
		return
	}
	r.history = append(r.history, prev)
	if len(r.history) > r.capacity {
		overflow := len(r.history) - r.capacity
		r.history = append(r.history[:0:0], r.history[overflow:]...)
	}
}
