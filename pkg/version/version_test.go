package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flagkit/flagkit/pkg/version"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("Valid", func(t *testing.T) {
		t.Parallel()
		v, err := version.Parse("1.24.5")
		require.NoError(t, err)
		assert.Equal(t, version.Version{Major: 1, Minor: 24, Patch: 5}, v)
		assert.Equal(t, "1.24.5", v.String())
	})

	t.Run("Zero", func(t *testing.T) {
		t.Parallel()
		v, err := version.Parse("0.0.0")
		require.NoError(t, err)
		assert.Equal(t, version.Version{}, v)
	})

	t.Run("Malformed", func(t *testing.T) {
		t.Parallel()
		for _, input := range []string{
			"", "1", "1.2", "1.2.3.4", "1.x.3", "1..3", "v1.2.3", "1.2.-3", " 1.2.3",
			"+1.2.3", "1.+2.3", "01.2.3", "1.02.3", "1.2.00", "9999999999.0.0",
		} {
			_, err := version.Parse(input)
			require.ErrorIs(t, err, version.ErrInvalidVersion, "input %q", input)

			var parseErr *version.ParseError
			require.ErrorAs(t, err, &parseErr, "input %q", input)
			assert.Equal(t, input, parseErr.Input)
			assert.NotEmpty(t, parseErr.Reason)
		}
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := version.New(1, 2, 3)
	require.NoError(t, err)

	_, err = version.New(-1, 0, 0)
	require.ErrorIs(t, err, version.ErrInvalidVersion)
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { version.MustParse("1.2.3") })
	assert.Panics(t, func() { version.MustParse("1.2") })
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "2.0.0", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.2.0", "1.10.0", -1},
		{"1.2.3", "1.2.4", -1},
		{"0.0.1", "0.0.0", 1},
	}
	for _, tc := range tests {
		a, b := version.MustParse(tc.a), version.MustParse(tc.b)
		assert.Equal(t, tc.want, a.Compare(b), "%s vs %s", tc.a, tc.b)
		assert.Equal(t, tc.want < 0, a.Less(b))
		assert.Equal(t, tc.want == 0, a.Equal(b))
	}
}

func TestRanges(t *testing.T) {
	t.Parallel()

	v := version.MustParse

	t.Run("Unbounded", func(t *testing.T) {
		t.Parallel()
		r := version.Unbounded{}
		assert.True(t, r.Contains(v("0.0.0")))
		assert.True(t, r.Contains(v("99.99.99")))
		assert.False(t, r.HasBounds())
	})

	t.Run("AtLeast", func(t *testing.T) {
		t.Parallel()
		r := version.AtLeast{Min: v("1.2.0")}
		assert.False(t, r.Contains(v("1.1.9")))
		assert.True(t, r.Contains(v("1.2.0")), "inclusive lower bound")
		assert.True(t, r.Contains(v("2.0.0")))
		assert.True(t, r.HasBounds())
	})

	t.Run("AtMost", func(t *testing.T) {
		t.Parallel()
		r := version.AtMost{Max: v("2.0.0")}
		assert.True(t, r.Contains(v("1.9.9")))
		assert.True(t, r.Contains(v("2.0.0")), "inclusive upper bound")
		assert.False(t, r.Contains(v("2.0.1")))
		assert.True(t, r.HasBounds())
	})

	t.Run("Between", func(t *testing.T) {
		t.Parallel()
		r, err := version.NewBetween(v("1.2.0"), v("2.0.0"))
		require.NoError(t, err)
		assert.False(t, r.Contains(v("1.1.9")))
		assert.True(t, r.Contains(v("1.2.0")))
		assert.True(t, r.Contains(v("1.5.0")))
		assert.True(t, r.Contains(v("2.0.0")))
		assert.False(t, r.Contains(v("2.0.1")))
		assert.True(t, r.HasBounds())
	})

	t.Run("BetweenInverted", func(t *testing.T) {
		t.Parallel()
		_, err := version.NewBetween(v("2.0.0"), v("1.0.0"))
		require.ErrorIs(t, err, version.ErrInvalidRange)
	})

	t.Run("SingleVersionBetween", func(t *testing.T) {
		t.Parallel()
		r, err := version.NewBetween(v("1.2.3"), v("1.2.3"))
		require.NoError(t, err)
		assert.True(t, r.Contains(v("1.2.3")))
		assert.False(t, r.Contains(v("1.2.4")))
	})
}
