package engine

import (
	"time"

	"github.com/google/uuid"
)

// Record is the read-only diagnostic emitted to observers after each
// evaluation. Produced fresh per call; never stored by the engine.
type Record struct {
	// ID uniquely identifies this evaluation for log correlation.
	ID uuid.UUID

	// Namespace is the registry's namespace.
	Namespace string

	// FeatureKey is the evaluated flag's key part.
	FeatureKey string

	// Kind is the decision outcome.
	Kind DecisionKind

	// Elapsed is the evaluation's duration.
	Elapsed time.Duration

	// Specificity is the winning rule's score; zero unless Kind is
	// rule_matched.
	Specificity int

	// Bucket is the computed bucket, valid only when HasBucket is true.
	Bucket    int
	HasBucket bool

	// ViaAllowlist is true when allowlist membership, not the percentage,
	// drove inclusion.
	ViaAllowlist bool
}

// Observer receives evaluation records. Implementations must be safe for
// concurrent use and must not block: the engine calls them synchronously on
// the evaluation path. Observers never influence evaluation results.
type Observer interface {
	Observe(rec Record)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(rec Record)

// Observe calls f(rec).
func (f ObserverFunc) Observe(rec Record) { f(rec) }

func newRecord(namespace string, result Result) Record {
	rec := Record{
		ID:         uuid.New(),
		Namespace:  namespace,
		FeatureKey: result.Feature.Key(),
		Kind:       result.Decision.Kind(),
		Elapsed:    result.Elapsed,
	}

	switch d := result.Decision.(type) {
	case RuleMatched:
		rec.Specificity = d.Specificity
		rec.Bucket = d.Bucket
		rec.HasBucket = true
		rec.ViaAllowlist = d.ViaAllowlist
	case DefaultApplied:
		if d.Skipped != nil {
			rec.Bucket = d.Skipped.Bucket
			rec.HasBucket = true
		}
	}

	return rec
}
