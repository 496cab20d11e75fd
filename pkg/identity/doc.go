// Package identity provides the stable identifiers the flag engine is built
// on: FeatureIdentity, the canonical name of a flag, and StableID, the
// persistent per-user or per-device identifier used as bucketing input.
//
// # FeatureIdentity
//
// A FeatureIdentity is created once when a flag is declared and never
// mutated. Its canonical string encoding is
//
//	feature::<namespace>::<key>
//
// where namespace and key are non-blank and must not contain the separator
// character. Identities compare lexicographically on the encoded form, which
// makes them usable as sorted map keys and stable diff output.
//
// # StableID
//
// A StableID wraps a 128-bit identifier (UUID). Its canonical hex form (32
// lowercase hex characters, no dashes) is the exact string fed into the
// bucketing digest and stored in rollout allowlists. Callers must supply the
// same StableID for the same user across evaluations; determinism of
// percentage rollouts depends on it.
//
// Malformed input to the parse functions is a structural error: the Must*
// variants panic, following the fail-fast pattern used across flagkit for
// wiring-time defects.
package identity
