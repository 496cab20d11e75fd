package feature

import (
	"errors"
	"fmt"
	"slices"

	"github.com/flagkit/flagkit/pkg/identity"
	"github.com/flagkit/flagkit/pkg/target"
)

// Rule pairs an output value with targeting criteria and a rollout.
// Immutable once built; construct with NewRule.
type Rule struct {
	targeting target.Targeting
	value     any
	rollout   float64
	allowlist []identity.StableID
	note      string
}

// RuleOption configures a rule during construction.
type RuleOption func(*Rule)

// WithTargeting sets the rule's match criteria. The default zero Targeting
// matches every context.
func WithTargeting(t target.Targeting) RuleOption {
	return func(r *Rule) { r.targeting = t }
}

// WithRollout sets the rollout percentage in [0, 100]. Rules default to 100.
func WithRollout(percent float64) RuleOption {
	return func(r *Rule) { r.rollout = percent }
}

// WithAllowlist force-includes the given stable identifiers regardless of
// their computed bucket, even at 0% rollout.
func WithAllowlist(ids ...identity.StableID) RuleOption {
	return func(r *Rule) { r.allowlist = append(r.allowlist, ids...) }
}

// WithNote attaches a free-text authoring note, surfaced in evaluation
// diagnostics.
func WithNote(note string) RuleOption {
	return func(r *Rule) { r.note = note }
}

// NewRule builds a rule yielding value when it matches and wins rollout.
func NewRule(value any, opts ...RuleOption) (Rule, error) {
	r := Rule{value: value, rollout: 100}
	for _, opt := range opts {
		opt(&r)
	}
	if r.rollout < 0 || r.rollout > 100 {
		return Rule{}, errors.Join(ErrInvalidRule,
			fmt.Errorf("rollout percentage must be in [0, 100], got %v", r.rollout))
	}
	// Detach from the caller's axis map so later mutations of it cannot
	// reach into the rule.
	r.targeting.Axes = target.CopyAxes(r.targeting.Axes)
	return r, nil
}

// MustRule is like NewRule but panics on invalid parameters.
func MustRule(value any, opts ...RuleOption) Rule {
	r, err := NewRule(value, opts...)
	if err != nil {
		panic(fmt.Sprintf("feature: %v", err))
	}
	return r
}

// Targeting returns the rule's match criteria.
func (r Rule) Targeting() target.Targeting { return r.targeting }

// Value returns the value the rule yields when it applies.
func (r Rule) Value() any { return r.value }

// Rollout returns the rollout percentage in [0, 100].
func (r Rule) Rollout() float64 { return r.rollout }

// Allowlist returns the force-included stable identifiers.
func (r Rule) Allowlist() []identity.StableID {
	return slices.Clone(r.allowlist)
}

// Allowlisted reports whether id is force-included by the rule.
func (r Rule) Allowlisted(id identity.StableID) bool {
	return slices.Contains(r.allowlist, id)
}

// Note returns the authoring note.
func (r Rule) Note() string { return r.note }

// Specificity returns the targeting's specificity score.
func (r Rule) Specificity() int { return r.targeting.Specificity() }
