package target

import (
	"slices"

	"golang.org/x/text/language"

	"github.com/flagkit/flagkit/pkg/version"
)

// Predicate is an opaque matching capability supplied by the embedding
// application. The engine treats it as a black box: Matches decides rule
// applicability, Specificity contributes to the rule's score.
type Predicate interface {
	Matches(ctx Context) bool
	Specificity() int
}

// Targeting is the conjunction of a rule's declarative match criteria. The
// zero value matches every context with specificity 0.
type Targeting struct {
	// Locales restricts matching to the listed BCP 47 tags. Empty = any.
	Locales []language.Tag

	// Platforms restricts matching to the listed platforms. Empty = any.
	Platforms []Platform

	// Versions restricts matching to an inclusive version interval. Nil =
	// any. An explicit version.Unbounded{} also matches any version and,
	// having no bounds, scores no specificity.
	Versions version.Range

	// Axes maps axis ids to allowed value sets. A constraint matches when
	// the context's values for that axis intersect the allowed set.
	Axes map[string][]string

	// Predicate is an optional custom matcher.
	Predicate Predicate
}

// Matches reports whether every declared constraint holds for ctx.
func (t Targeting) Matches(ctx Context) bool {
	if len(t.Locales) > 0 && !containsLocale(t.Locales, ctx.Locale) {
		return false
	}
	if len(t.Platforms) > 0 && !slices.Contains(t.Platforms, ctx.Platform) {
		return false
	}
	if t.Versions != nil && !t.Versions.Contains(ctx.Version) {
		return false
	}
	for axisID, allowed := range t.Axes {
		if !intersects(ctx.AxisValues(axisID), allowed) {
			return false
		}
	}
	if t.Predicate != nil && !t.Predicate.Matches(ctx) {
		return false
	}
	return true
}

// Specificity scores how narrow the targeting is. Higher wins when several
// rules match the same context.
func (t Targeting) Specificity() int {
	score := 0
	if len(t.Locales) > 0 {
		score++
	}
	if len(t.Platforms) > 0 {
		score++
	}
	if t.Versions != nil && t.Versions.HasBounds() {
		score++
	}
	score += len(t.Axes)
	if t.Predicate != nil {
		score += t.Predicate.Specificity()
	}
	return score
}

// CopyAxes deep-copies an axis map (ids to value sets). Returns nil for an
// empty input. Used to detach Targeting and Context values from maps the
// caller may keep mutating.
func CopyAxes(axes map[string][]string) map[string][]string {
	if len(axes) == 0 {
		return nil
	}
	out := make(map[string][]string, len(axes))
	for id, values := range axes {
		out[id] = append([]string(nil), values...)
	}
	return out
}

func containsLocale(locales []language.Tag, locale language.Tag) bool {
	for _, candidate := range locales {
		if candidate == locale {
			return true
		}
	}
	return false
}

func intersects(have, allowed []string) bool {
	for _, v := range have {
		if slices.Contains(allowed, v) {
			return true
		}
	}
	return false
}
