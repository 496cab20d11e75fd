package engine

// DecisionKind labels the four evaluation outcomes for diagnostics and
// telemetry.
type DecisionKind string

const (
	KindRegistryDisabled DecisionKind = "registry_disabled"
	KindInactive         DecisionKind = "inactive"
	KindRuleMatched      DecisionKind = "rule_matched"
	KindDefaultApplied   DecisionKind = "default_applied"
)

// Decision is the tagged outcome of one evaluation. It is a closed
// interface: RegistryDisabled, Inactive, RuleMatched and DefaultApplied are
// the only implementations.
type Decision interface {
	Kind() DecisionKind

	decisionVariant()
}

// RolloutSkip notes a rule that matched targeting but was excluded by its
// rollout percentage. Diagnostics only; scanning continued past it.
type RolloutSkip struct {
	// RuleIndex is the skipped rule's declaration index.
	RuleIndex int

	// Note is the skipped rule's authoring note.
	Note string

	// Bucket is the context's computed bucket for this flag.
	Bucket int

	// Threshold is the rollout cutoff in basis points that the bucket missed.
	Threshold int
}

// RegistryDisabled reports that the namespace kill-switch forced the flag
// default.
type RegistryDisabled struct{}

func (RegistryDisabled) Kind() DecisionKind { return KindRegistryDisabled }
func (RegistryDisabled) decisionVariant()   {}

// Inactive reports that the flag is declared inactive and returned its
// default without scanning rules.
type Inactive struct{}

func (Inactive) Kind() DecisionKind { return KindInactive }
func (Inactive) decisionVariant()   {}

// RuleMatched reports the winning rule.
type RuleMatched struct {
	// RuleIndex is the winning rule's declaration index.
	RuleIndex int

	// Note is the winning rule's authoring note.
	Note string

	// Specificity is the winning rule's targeting score.
	Specificity int

	// Bucket is the context's bucket for this flag.
	Bucket int

	// ViaAllowlist is true when the allowlist, not the percentage, drove
	// inclusion.
	ViaAllowlist bool

	// Skipped records a higher-specificity rule that matched targeting but
	// lost its rollout before this rule won. Nil when no rule was skipped.
	Skipped *RolloutSkip
}

func (RuleMatched) Kind() DecisionKind { return KindRuleMatched }
func (RuleMatched) decisionVariant()   {}

// DefaultApplied reports that no rule applied and the declared default was
// returned.
type DefaultApplied struct {
	// Skipped records a rule that matched targeting but lost its rollout.
	// Nil when no rule matched targeting at all.
	Skipped *RolloutSkip
}

func (DefaultApplied) Kind() DecisionKind { return KindDefaultApplied }
func (DefaultApplied) decisionVariant()   {}
