// Package flagkit is a deterministic feature-flag and dynamic-configuration
// evaluation engine. It decides which value a feature should take for a
// given caller, based on declarative targeting rules, percentage rollouts
// and stable hashing, without performing any I/O of its own.
//
// # Architecture
//
// The library is layered. The root package is a facade over a per-namespace
// registry holding immutable configuration snapshots, an evaluation engine
// producing explained decisions, and strict JSON/YAML codecs guarding the
// parse boundary:
//
//   - pkg/identity: namespaced feature identities and stable caller IDs.
//   - pkg/version: semantic versions and version ranges.
//   - pkg/axis: host-defined targeting dimensions.
//   - pkg/target: evaluation contexts and rule targeting.
//   - pkg/bucket: deterministic rollout bucketing.
//   - pkg/feature: flag definitions and rules.
//   - pkg/snapshot: immutable configuration snapshots.
//   - pkg/registry: atomic snapshot storage with rollback and kill-switch.
//   - pkg/engine: total evaluation with a decision taxonomy.
//   - pkg/codec: strict wire codecs.
//   - pkg/telemetry: log and Prometheus observers.
//
// # Usage
//
//	client, err := flagkit.New("checkout")
//	if err != nil {
//	    return err
//	}
//	if err := client.LoadJSON(file); err != nil {
//	    return err
//	}
//
//	enabled, err := client.Bool("redesign", target.Context{
//	    StableID: identity.MustStableID(userID),
//	    Platform: target.PlatformIOS,
//	    Version:  version.MustParse("2.1.0"),
//	})
//
// Evaluation is total: once a feature is registered, every evaluation
// returns a value, falling back to the feature's default when no rule
// applies. The same context and configuration always produce the same
// result.
package flagkit
