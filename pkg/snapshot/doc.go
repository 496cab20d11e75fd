// Package snapshot provides the immutable configuration unit the registry
// activates atomically.
//
// A Configuration maps feature identities to flag definitions and carries
// metadata about where the set came from. It is never edited in place: a
// changed flag set is a new Configuration object, which lets readers share
// one snapshot across goroutines without copying or locking.
//
// Compare diffs two configurations into added, removed and changed
// identities, where "changed" means present in both but differing in
// default, rules, salt or active toggle.
package snapshot
