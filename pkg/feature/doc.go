// Package feature defines flags and their rules.
//
// A Definition is the unit of flag configuration: a feature identity, a
// default value, an active toggle, a bucketing salt and an ordered list of
// rules. Definitions are immutable once built: a configuration reload
// replaces a Definition wholesale, never edits one in place. They are
// constructed eagerly, so no registration can race with a first evaluation.
//
// Rules pair an output value with a Targeting and a rollout. Rule authoring
// order is preserved, but evaluation order is computed at construction time:
// rules are sorted by descending targeting specificity, with ties broken by
// declaration order (the earlier-declared rule wins). The sort is stable and
// documented here precisely so that competing rules never depend on map or
// iteration-order accidents.
//
// # Usage
//
//	def, err := feature.New(id, false,
//		feature.WithSalt("v2"),
//		feature.WithRules(
//			feature.MustRule(true,
//				feature.WithTargeting(target.Targeting{
//					Platforms: []target.Platform{target.PlatformIOS},
//				}),
//				feature.WithRollout(50),
//			),
//		),
//	)
package feature
