// Package engine evaluates flags against typed contexts.
//
// Evaluation is a pure function of the flag definition, the context, the
// registry's current configuration snapshot and the kill-switch state. It
// performs no I/O, allocates one Result, and finishes in time proportional
// to the flag's rule count.
//
// # Decision taxonomy
//
// Every evaluation yields a concrete value plus exactly one Decision:
//
//   - RegistryDisabled: the namespace kill-switch forced the default.
//   - Inactive: the flag is declared inactive; default returned.
//   - RuleMatched: a rule matched targeting and won its rollout.
//   - DefaultApplied: no rule applied; the declared default returned.
//
// "No rule matched" is not an error: evaluation is total and always returns
// a value. The only failure modes are structural: evaluating a feature that
// is absent from the active configuration, or evaluating against a registry
// that has never been loaded. Those surface as typed errors because
// they indicate a wiring defect, not a data condition.
//
// Decision is a closed interface: the four types above are the only
// implementations, so consumers may type-switch exhaustively.
//
// # Observers
//
// An Observer receives a read-only Record after each evaluation. Observers
// never influence the outcome; an engine with zero observers returns
// bit-identical results to one with many.
package engine
