package engine

import (
	"time"

	"github.com/flagkit/flagkit/pkg/bucket"
	"github.com/flagkit/flagkit/pkg/feature"
	"github.com/flagkit/flagkit/pkg/identity"
	"github.com/flagkit/flagkit/pkg/registry"
	"github.com/flagkit/flagkit/pkg/snapshot"
	"github.com/flagkit/flagkit/pkg/target"
)

// Result is the outcome of one evaluation: a concrete value, the decision
// that produced it, and provenance for diagnostics.
type Result struct {
	// Value is the resolved flag value. Always set, even for RegistryDisabled
	// and Inactive decisions (the flag default).
	Value any

	// Decision is the tagged outcome.
	Decision Decision

	// Feature is the evaluated identity.
	Feature identity.FeatureIdentity

	// Config identifies the configuration snapshot the decision was made
	// against.
	Config snapshot.Metadata

	// Elapsed is the evaluation's wall-clock duration.
	Elapsed time.Duration
}

// Engine evaluates flags against one namespace's registry. Stateless apart
// from its wiring; safe for concurrent use.
type Engine struct {
	reg       *registry.Registry
	observers []Observer
}

// Option configures an engine during construction.
type Option func(*Engine)

// WithObservers attaches telemetry observers. Nil observers are ignored.
func WithObservers(observers ...Observer) Option {
	return func(e *Engine) {
		for _, o := range observers {
			if o != nil {
				e.observers = append(e.observers, o)
			}
		}
	}
}

// New creates an engine reading from the given registry.
func New(reg *registry.Registry, opts ...Option) (*Engine, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	e := &Engine{reg: reg}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Evaluate resolves the effective value of the given feature for ctx.
//
// The state machine, terminal on first hit:
//
//  1. kill-switch on  -> default, RegistryDisabled
//  2. flag inactive   -> default, Inactive
//  3. rule scan in specificity order -> first rule that matches targeting
//     and wins rollout -> rule value, RuleMatched
//  4. otherwise       -> default, DefaultApplied
//
// Requesting a feature absent from the active configuration is a structural
// failure returned as a typed *NotRegisteredError.
func (e *Engine) Evaluate(id identity.FeatureIdentity, ctx target.Context) (Result, error) {
	started := time.Now()

	cfg, err := e.reg.Current()
	if err != nil {
		return Result{}, err
	}

	def, ok := cfg.Lookup(id)
	if !ok {
		return Result{}, &NotRegisteredError{Feature: id, Namespace: e.reg.Namespace()}
	}

	result := Result{
		Feature: id,
		Config:  cfg.Metadata(),
	}

	switch {
	case e.reg.Disabled():
		result.Value = def.Default()
		result.Decision = RegistryDisabled{}

	case !def.Active():
		result.Value = def.Default()
		result.Decision = Inactive{}

	default:
		result.Value, result.Decision = scanRules(def, ctx)
	}

	result.Elapsed = time.Since(started)
	e.observe(result)
	return result, nil
}

// scanRules walks the rules in evaluation order (specificity descending,
// declaration order on ties) and applies rollout inclusion to the ones whose
// targeting matches. A rule excluded by rollout is remembered for
// diagnostics, and scanning continues: a lower-specificity rule may still
// apply.
func scanRules(def *feature.Definition, ctx target.Context) (any, Decision) {
	var skipped *RolloutSkip

	featureKey := def.Identity().Key()
	for _, index := range def.EvaluationOrder() {
		rule := def.Rule(index)
		if !rule.Targeting().Matches(ctx) {
			continue
		}

		b := bucket.Assign(ctx.StableID, featureKey, def.Salt())
		allowlisted := rule.Allowlisted(ctx.StableID)
		if allowlisted || bucket.InRampUp(rule.Rollout(), b) {
			return rule.Value(), RuleMatched{
				RuleIndex:    index,
				Note:         rule.Note(),
				Specificity:  rule.Specificity(),
				Bucket:       b,
				ViaAllowlist: allowlisted,
				Skipped:      skipped,
			}
		}

		if skipped == nil {
			skipped = &RolloutSkip{
				RuleIndex: index,
				Note:      rule.Note(),
				Bucket:    b,
				Threshold: bucket.Threshold(rule.Rollout()),
			}
		}
	}

	return def.Default(), DefaultApplied{Skipped: skipped}
}

func (e *Engine) observe(result Result) {
	if len(e.observers) == 0 {
		return
	}
	rec := newRecord(e.reg.Namespace(), result)
	for _, o := range e.observers {
		o.Observe(rec)
	}
}
