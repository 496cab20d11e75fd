package target_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/flagkit/flagkit/pkg/target"
	"github.com/flagkit/flagkit/pkg/version"
)

type minSessionsPredicate struct {
	min         int
	specificity int
	sessions    func(target.Context) int
}

func (p minSessionsPredicate) Matches(ctx target.Context) bool {
	return p.sessions(ctx) >= p.min
}

func (p minSessionsPredicate) Specificity() int { return p.specificity }

func androidContext() target.Context {
	return target.Context{
		Locale:   target.ParseLocale("en-US"),
		Platform: target.PlatformAndroid,
		Version:  version.MustParse("2.3.1"),
		Axes: map[string][]string{
			"environment": {"staging"},
			"tier":        {"free", "pro"},
		},
	}
}

func TestTargetingMatches(t *testing.T) {
	t.Parallel()

	ctx := androidContext()

	t.Run("ZeroTargetingMatchesEverything", func(t *testing.T) {
		t.Parallel()
		assert.True(t, target.Targeting{}.Matches(ctx))
		assert.True(t, target.Targeting{}.Matches(target.Context{}))
	})

	t.Run("Locales", func(t *testing.T) {
		t.Parallel()
		matching := target.Targeting{Locales: []language.Tag{target.ParseLocale("de-DE"), target.ParseLocale("en-US")}}
		assert.True(t, matching.Matches(ctx))

		mismatching := target.Targeting{Locales: []language.Tag{target.ParseLocale("fr-FR")}}
		assert.False(t, mismatching.Matches(ctx))
	})

	t.Run("LocaleCanonicalization", func(t *testing.T) {
		t.Parallel()
		// Underscore and case variants canonicalize to the same tag.
		underscored := target.Targeting{Locales: []language.Tag{target.ParseLocale("en_us")}}
		assert.True(t, underscored.Matches(ctx))
	})

	t.Run("Platforms", func(t *testing.T) {
		t.Parallel()
		matching := target.Targeting{Platforms: []target.Platform{target.PlatformIOS, target.PlatformAndroid}}
		assert.True(t, matching.Matches(ctx))

		mismatching := target.Targeting{Platforms: []target.Platform{target.PlatformWeb}}
		assert.False(t, mismatching.Matches(ctx))
	})

	t.Run("Versions", func(t *testing.T) {
		t.Parallel()
		within := target.Targeting{Versions: version.AtLeast{Min: version.MustParse("2.0.0")}}
		assert.True(t, within.Matches(ctx))

		outside := target.Targeting{Versions: version.AtMost{Max: version.MustParse("2.0.0")}}
		assert.False(t, outside.Matches(ctx))

		unbounded := target.Targeting{Versions: version.Unbounded{}}
		assert.True(t, unbounded.Matches(ctx))
	})

	t.Run("Axes", func(t *testing.T) {
		t.Parallel()
		intersecting := target.Targeting{Axes: map[string][]string{"tier": {"pro", "enterprise"}}}
		assert.True(t, intersecting.Matches(ctx))

		disjoint := target.Targeting{Axes: map[string][]string{"tier": {"enterprise"}}}
		assert.False(t, disjoint.Matches(ctx))

		absentAxis := target.Targeting{Axes: map[string][]string{"region": {"eu"}}}
		assert.False(t, absentAxis.Matches(ctx), "constraint on an axis the context lacks must not match")
	})

	t.Run("Predicate", func(t *testing.T) {
		t.Parallel()
		sessions := func(target.Context) int { return 7 }

		passing := target.Targeting{Predicate: minSessionsPredicate{min: 5, sessions: sessions}}
		assert.True(t, passing.Matches(ctx))

		failing := target.Targeting{Predicate: minSessionsPredicate{min: 10, sessions: sessions}}
		assert.False(t, failing.Matches(ctx))
	})

	t.Run("Conjunction", func(t *testing.T) {
		t.Parallel()
		all := target.Targeting{
			Locales:   []language.Tag{target.ParseLocale("en-US")},
			Platforms: []target.Platform{target.PlatformAndroid},
			Versions:  version.AtLeast{Min: version.MustParse("2.0.0")},
			Axes:      map[string][]string{"environment": {"staging"}},
		}
		assert.True(t, all.Matches(ctx))

		// Flipping any single category to a mismatch fails the whole rule.
		broken := all
		broken.Platforms = []target.Platform{target.PlatformIOS}
		assert.False(t, broken.Matches(ctx))
	})
}

func TestTargetingSpecificity(t *testing.T) {
	t.Parallel()

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, target.Targeting{}.Specificity())
	})

	t.Run("PerCategory", func(t *testing.T) {
		t.Parallel()
		tg := target.Targeting{
			Locales:   []language.Tag{target.ParseLocale("en-US"), target.ParseLocale("de-DE")},
			Platforms: []target.Platform{target.PlatformIOS},
			Versions:  version.AtLeast{Min: version.MustParse("1.0.0")},
			Axes:      map[string][]string{"environment": {"staging"}, "tier": {"pro"}},
		}
		// 1 locale category + 1 platform category + 1 bounded range + 2 axes.
		assert.Equal(t, 5, tg.Specificity())
	})

	t.Run("ExplicitUnboundedScoresNothing", func(t *testing.T) {
		t.Parallel()
		explicit := target.Targeting{Versions: version.Unbounded{}}
		implicit := target.Targeting{}
		assert.Equal(t, implicit.Specificity(), explicit.Specificity())
	})

	t.Run("PredicateContribution", func(t *testing.T) {
		t.Parallel()
		tg := target.Targeting{
			Platforms: []target.Platform{target.PlatformIOS},
			Predicate: minSessionsPredicate{min: 1, specificity: 3, sessions: func(target.Context) int { return 1 }},
		}
		assert.Equal(t, 4, tg.Specificity())
	})
}

func TestParseLocale(t *testing.T) {
	t.Parallel()

	require.Equal(t, target.ParseLocale("en-US"), target.ParseLocale("en_US"))
	assert.Equal(t, language.Und, target.ParseLocale("!!not-a-locale!!"))

	// The undetermined tag never satisfies a locale constraint.
	tg := target.Targeting{Locales: []language.Tag{target.ParseLocale("en-US")}}
	assert.False(t, tg.Matches(target.Context{Locale: target.ParseLocale("??")}))
}
