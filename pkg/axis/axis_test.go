package axis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flagkit/flagkit/pkg/axis"
)

type environment string

func (e environment) AxisValueID() string { return string(e) }

type tier int

func (t tier) AxisValueID() string {
	switch t {
	case tierFree:
		return "free"
	case tierPro:
		return "pro"
	default:
		return ""
	}
}

const (
	envStaging    environment = "staging"
	envProduction environment = "production"

	tierFree tier = iota
	tierPro
)

func TestCatalogRegister(t *testing.T) {
	t.Parallel()

	t.Run("Valid", func(t *testing.T) {
		t.Parallel()
		catalog := axis.NewCatalog()
		a, err := catalog.Register("environment", envStaging, envProduction)
		require.NoError(t, err)
		assert.Equal(t, "environment", a.ID())
		assert.True(t, a.Contains("staging"))
		assert.True(t, a.Contains("production"))
		assert.False(t, a.Contains("qa"))

		values := a.Values()
		require.Len(t, values, 2)
		assert.Equal(t, "production", values[0].AxisValueID(), "values sorted by id")
		assert.Equal(t, "staging", values[1].AxisValueID())
	})

	t.Run("BlankID", func(t *testing.T) {
		t.Parallel()
		_, err := axis.NewCatalog().Register(" ", envStaging)
		require.ErrorIs(t, err, axis.ErrInvalidAxis)
	})

	t.Run("NoValues", func(t *testing.T) {
		t.Parallel()
		_, err := axis.NewCatalog().Register("environment")
		require.ErrorIs(t, err, axis.ErrInvalidAxis)
	})

	t.Run("DuplicateValueID", func(t *testing.T) {
		t.Parallel()
		_, err := axis.NewCatalog().Register("environment", envStaging, envStaging)
		require.ErrorIs(t, err, axis.ErrInvalidAxis)
	})

	t.Run("MixedBackingTypes", func(t *testing.T) {
		t.Parallel()
		_, err := axis.NewCatalog().Register("environment", envStaging, tierPro)
		require.ErrorIs(t, err, axis.ErrInvalidAxis)
	})
}

func TestCatalogConflicts(t *testing.T) {
	t.Parallel()

	t.Run("SameIDSameType", func(t *testing.T) {
		t.Parallel()
		catalog := axis.NewCatalog()
		_, err := catalog.Register("environment", envStaging)
		require.NoError(t, err)

		_, err = catalog.Register("environment", envProduction)
		require.ErrorIs(t, err, axis.ErrAxisConflict)
	})

	t.Run("SameIDDifferentType", func(t *testing.T) {
		t.Parallel()
		catalog := axis.NewCatalog()
		_, err := catalog.Register("environment", envStaging)
		require.NoError(t, err)

		_, err = catalog.Register("environment", tierFree, tierPro)
		require.ErrorIs(t, err, axis.ErrAxisConflict)

		var conflict *axis.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "environment", conflict.AxisID)
		assert.NotEqual(t, conflict.Registered, conflict.Offered)
	})

	t.Run("MustRegisterPanics", func(t *testing.T) {
		t.Parallel()
		catalog := axis.NewCatalog()
		catalog.MustRegister("environment", envStaging)
		assert.Panics(t, func() {
			catalog.MustRegister("environment", tierFree)
		})
	})
}

func TestCatalogIsolation(t *testing.T) {
	t.Parallel()

	first := axis.NewCatalog()
	second := axis.NewCatalog()

	first.MustRegister("environment", envStaging, envProduction)

	// The registration must be invisible to the other catalog.
	_, ok := second.Axis("environment")
	assert.False(t, ok)

	// And the same id may be registered with a different backing type there.
	_, err := second.Register("environment", tierFree, tierPro)
	require.NoError(t, err)

	a, ok := first.Axis("environment")
	require.True(t, ok)
	assert.True(t, a.Contains("staging"))

	b, ok := second.Axis("environment")
	require.True(t, ok)
	assert.False(t, b.Contains("staging"))
	assert.True(t, b.Contains("pro"))
}

func TestCatalogIDs(t *testing.T) {
	t.Parallel()

	catalog := axis.NewCatalog()
	catalog.MustRegister("tier", tierFree, tierPro)
	catalog.MustRegister("environment", envStaging)

	assert.Equal(t, []string{"environment", "tier"}, catalog.IDs())
}

func TestValueIDs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"staging", "production"}, axis.ValueIDs(envStaging, envProduction))
	assert.Empty(t, axis.ValueIDs())
}
