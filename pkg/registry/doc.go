// Package registry holds the per-namespace mutable cell the evaluation
// engine reads from: the current configuration, a bounded rollback history
// and a kill-switch.
//
// # Concurrency
//
// Reads are lock-free: the current configuration lives in an atomic pointer,
// so a reader always observes a complete, self-consistent snapshot: either
// the one before a concurrent load or the one after, never a hybrid. Writes
// (load, rollback, kill-switch toggles) serialize on a per-registry mutex
// and publish through the same atomic pointer, so once Load returns, every
// subsequent read observes the new configuration or a strictly newer one.
//
// # History and rollback
//
// Load pushes the previous configuration onto a bounded history; the oldest
// entries are evicted when the capacity is exceeded. Rollback restores the
// configuration N steps back and reports a typed failure, not a panic,
// when history is shorter than requested.
//
// # Namespaces
//
// A Registry belongs to exactly one namespace. The Manager hands out one
// registry per namespace and guarantees isolation: a kill-switch or load in
// one namespace is invisible to every other.
package registry
