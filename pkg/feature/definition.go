package feature

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/flagkit/flagkit/pkg/identity"
	"github.com/flagkit/flagkit/pkg/target"
)

// DefaultSalt is the bucketing salt applied when none is declared. Changing
// a flag's salt reshuffles its bucket assignments; authors bump it
// deliberately to re-randomize a rollout.
const DefaultSalt = "v1"

// Definition is an immutable flag: identity, default value, active toggle,
// bucketing salt and rules. Construct with New; a reload replaces the whole
// Definition.
type Definition struct {
	id      identity.FeatureIdentity
	def     any
	active  bool
	salt    string
	rules   []Rule
	ordered []int // rule indices in evaluation order
}

// Option configures a flag definition during construction.
type Option func(*Definition)

// WithSalt overrides the bucketing salt.
func WithSalt(salt string) Option {
	return func(d *Definition) { d.salt = salt }
}

// WithRules appends rules in declaration order.
func WithRules(rules ...Rule) Option {
	return func(d *Definition) { d.rules = append(d.rules, rules...) }
}

// Inactive declares the flag inactive: evaluation short-circuits to the
// default without scanning rules.
func Inactive() Option {
	return func(d *Definition) { d.active = false }
}

// New builds a flag definition. The identity must be non-zero and the salt
// non-blank. Rule evaluation order is computed here, eagerly: descending
// specificity, declaration order on ties.
func New(id identity.FeatureIdentity, defaultValue any, opts ...Option) (*Definition, error) {
	if id.IsZero() {
		return nil, errors.Join(ErrInvalidDefinition, errors.New("feature identity is zero"))
	}

	d := &Definition{
		id:     id,
		def:    defaultValue,
		active: true,
		salt:   DefaultSalt,
	}
	for _, opt := range opts {
		opt(d)
	}

	if strings.TrimSpace(d.salt) == "" {
		return nil, errors.Join(ErrInvalidDefinition, fmt.Errorf("flag %s has a blank salt", id))
	}

	d.ordered = make([]int, len(d.rules))
	for i := range d.ordered {
		d.ordered[i] = i
	}
	sort.SliceStable(d.ordered, func(a, b int) bool {
		return d.rules[d.ordered[a]].Specificity() > d.rules[d.ordered[b]].Specificity()
	})

	return d, nil
}

// MustNew is like New but panics on invalid parameters, for flags declared
// at wiring time.
func MustNew(id identity.FeatureIdentity, defaultValue any, opts ...Option) *Definition {
	d, err := New(id, defaultValue, opts...)
	if err != nil {
		panic(fmt.Sprintf("feature: %v", err))
	}
	return d
}

// Identity returns the flag's feature identity.
func (d *Definition) Identity() identity.FeatureIdentity { return d.id }

// Default returns the flag's declared default value.
func (d *Definition) Default() any { return d.def }

// Active reports whether the flag participates in rule evaluation.
func (d *Definition) Active() bool { return d.active }

// Salt returns the bucketing salt.
func (d *Definition) Salt() string { return d.salt }

// Rules returns the rules in declaration order.
func (d *Definition) Rules() []Rule {
	out := make([]Rule, len(d.rules))
	copy(out, d.rules)
	return out
}

// EvaluationOrder returns the declaration indices of the rules in the order
// the engine must scan them: descending specificity, stable on ties.
func (d *Definition) EvaluationOrder() []int {
	out := make([]int, len(d.ordered))
	copy(out, d.ordered)
	return out
}

// Rule returns the rule at the given declaration index.
func (d *Definition) Rule(index int) Rule { return d.rules[index] }

// Len returns the number of rules.
func (d *Definition) Len() int { return len(d.rules) }

// Equal reports structural equality of two definitions: identity, default,
// active toggle, salt and rules. Custom predicates compare by interface
// identity, so two otherwise-identical rules with distinct predicate
// instances are unequal.
func (d *Definition) Equal(other *Definition) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	if d.id != other.id || d.active != other.active || d.salt != other.salt {
		return false
	}
	if !reflect.DeepEqual(d.def, other.def) {
		return false
	}
	if len(d.rules) != len(other.rules) {
		return false
	}
	for i := range d.rules {
		if !rulesEqual(d.rules[i], other.rules[i]) {
			return false
		}
	}
	return true
}

func rulesEqual(a, b Rule) bool {
	if a.rollout != b.rollout || a.note != b.note {
		return false
	}
	if !reflect.DeepEqual(a.value, b.value) {
		return false
	}
	if !reflect.DeepEqual(a.allowlist, b.allowlist) {
		return false
	}
	if !predicatesEqual(a.targeting.Predicate, b.targeting.Predicate) {
		return false
	}
	if !reflect.DeepEqual(a.targeting.Locales, b.targeting.Locales) {
		return false
	}
	if !reflect.DeepEqual(a.targeting.Platforms, b.targeting.Platforms) {
		return false
	}
	if !reflect.DeepEqual(a.targeting.Versions, b.targeting.Versions) {
		return false
	}
	return reflect.DeepEqual(a.targeting.Axes, b.targeting.Axes)
}

// predicatesEqual compares predicates by identity. Predicates whose dynamic
// type is not comparable never compare equal across instances.
func predicatesEqual(a, b target.Predicate) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if !va.Type().Comparable() {
		return false
	}
	return a == b
}
