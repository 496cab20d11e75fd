package registry_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flagkit/flagkit/pkg/feature"
	"github.com/flagkit/flagkit/pkg/identity"
	"github.com/flagkit/flagkit/pkg/registry"
	"github.com/flagkit/flagkit/pkg/snapshot"
)

// versioned builds a configuration labelled with the given version string.
func versioned(version string) *snapshot.Configuration {
	return snapshot.MustNew(snapshot.Metadata{Version: version},
		feature.MustNew(identity.MustFeatureIdentity("checkout", "redesign"), false),
	)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("Valid", func(t *testing.T) {
		t.Parallel()
		r, err := registry.New("checkout")
		require.NoError(t, err)
		assert.Equal(t, "checkout", r.Namespace())
		assert.False(t, r.Disabled())
	})

	t.Run("BlankNamespace", func(t *testing.T) {
		t.Parallel()
		_, err := registry.New("  ")
		require.ErrorIs(t, err, registry.ErrInvalidNamespace)
		assert.Panics(t, func() { registry.MustNew("") })
	})

	t.Run("EmptyUntilFirstLoad", func(t *testing.T) {
		t.Parallel()
		r := registry.MustNew("checkout")
		_, err := r.Current()
		require.ErrorIs(t, err, registry.ErrNoConfiguration)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("ReplacesAndRetainsPrevious", func(t *testing.T) {
		t.Parallel()
		r := registry.MustNew("checkout")

		first := versioned("1")
		require.NoError(t, r.Load(first))
		assert.Equal(t, 0, r.HistoryLen(), "first load has no previous configuration")

		second := versioned("2")
		require.NoError(t, r.Load(second))
		assert.Equal(t, 1, r.HistoryLen())

		current, err := r.Current()
		require.NoError(t, err)
		assert.Same(t, second, current)
	})

	t.Run("NilConfiguration", func(t *testing.T) {
		t.Parallel()
		r := registry.MustNew("checkout")
		require.ErrorIs(t, r.Load(nil), registry.ErrNilConfiguration)
	})

	t.Run("HistoryEvictsOldest", func(t *testing.T) {
		t.Parallel()
		r := registry.MustNew("checkout", registry.WithHistoryCapacity(2))

		for i := 1; i <= 5; i++ {
			require.NoError(t, r.Load(versioned(fmt.Sprintf("%d", i))))
		}
		assert.Equal(t, 2, r.HistoryLen())

		// History holds versions 3 and 4; rolling back twice lands on 3.
		require.NoError(t, r.Rollback(2))
		current, err := r.Current()
		require.NoError(t, err)
		assert.Equal(t, "3", current.Metadata().Version)
	})

	t.Run("ZeroCapacityDisablesRollback", func(t *testing.T) {
		t.Parallel()
		r := registry.MustNew("checkout", registry.WithHistoryCapacity(0))
		require.NoError(t, r.Load(versioned("1")))
		require.NoError(t, r.Load(versioned("2")))
		assert.Equal(t, 0, r.HistoryLen())
		require.ErrorIs(t, r.Rollback(1), registry.ErrHistoryExhausted)
	})
}

func TestRollback(t *testing.T) {
	t.Parallel()

	t.Run("RestoresExactPriorObject", func(t *testing.T) {
		t.Parallel()
		r := registry.MustNew("checkout")
		first := versioned("1")
		second := versioned("2")
		require.NoError(t, r.Load(first))
		require.NoError(t, r.Load(second))

		require.NoError(t, r.Rollback(1))
		current, err := r.Current()
		require.NoError(t, err)
		assert.Same(t, first, current)
		assert.Equal(t, 0, r.HistoryLen())
	})

	t.Run("MultipleSteps", func(t *testing.T) {
		t.Parallel()
		r := registry.MustNew("checkout")
		configs := make([]*snapshot.Configuration, 4)
		for i := range configs {
			configs[i] = versioned(fmt.Sprintf("%d", i+1))
			require.NoError(t, r.Load(configs[i]))
		}

		require.NoError(t, r.Rollback(2))
		current, err := r.Current()
		require.NoError(t, err)
		assert.Same(t, configs[1], current)
		assert.Equal(t, 1, r.HistoryLen())
	})

	t.Run("ExhaustedHistoryFailsTyped", func(t *testing.T) {
		t.Parallel()
		r := registry.MustNew("checkout")
		require.NoError(t, r.Load(versioned("1")))

		err := r.Rollback(1)
		require.ErrorIs(t, err, registry.ErrHistoryExhausted)

		var exhausted *registry.HistoryExhaustedError
		require.ErrorAs(t, err, &exhausted)
		assert.Equal(t, "checkout", exhausted.Namespace)
		assert.Equal(t, 1, exhausted.Requested)
		assert.Equal(t, 0, exhausted.Available)

		// The failed rollback must leave the current configuration intact.
		current, cerr := r.Current()
		require.NoError(t, cerr)
		assert.Equal(t, "1", current.Metadata().Version)
	})

	t.Run("InvalidSteps", func(t *testing.T) {
		t.Parallel()
		r := registry.MustNew("checkout")
		require.ErrorIs(t, r.Rollback(0), registry.ErrInvalidSteps)
		require.ErrorIs(t, r.Rollback(-3), registry.ErrInvalidSteps)
	})
}

func TestKillSwitch(t *testing.T) {
	t.Parallel()

	r := registry.MustNew("checkout")
	assert.False(t, r.Disabled())

	r.DisableAll()
	assert.True(t, r.Disabled())
	r.DisableAll() // idempotent
	assert.True(t, r.Disabled())

	r.EnableAll()
	assert.False(t, r.Disabled())
}

func TestAtomicLoadUnderConcurrency(t *testing.T) {
	t.Parallel()

	r := registry.MustNew("checkout")
	require.NoError(t, r.Load(versioned("seed")))

	const writers = 8
	const readers = 8
	const iterations = 500

	var wg sync.WaitGroup

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				_ = r.Load(versioned(fmt.Sprintf("w%d-i%d", w, i)))
			}
		}(w)
	}

	for g := 0; g < readers; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				cfg, err := r.Current()
				// A reader must always see a complete configuration: never
				// nil, never missing the flag every writer includes.
				if !assert.NoError(t, err) || !assert.NotNil(t, cfg) {
					return
				}
				assert.Equal(t, 1, cfg.Len())
				assert.NotEmpty(t, cfg.Metadata().Version)
			}
		}()
	}

	wg.Wait()
}

func TestManager(t *testing.T) {
	t.Parallel()

	t.Run("GetOrCreate", func(t *testing.T) {
		t.Parallel()
		m := registry.NewManager()
		first, err := m.Namespace("checkout")
		require.NoError(t, err)
		again, err := m.Namespace("checkout")
		require.NoError(t, err)
		assert.Same(t, first, again)

		_, err = m.Namespace("")
		require.ErrorIs(t, err, registry.ErrInvalidNamespace)

		_, err = m.Namespace("search")
		require.NoError(t, err)
		assert.Equal(t, []string{"checkout", "search"}, m.Namespaces())
	})

	t.Run("KillSwitchIsolation", func(t *testing.T) {
		t.Parallel()
		m := registry.NewManager()
		checkout, err := m.Namespace("checkout")
		require.NoError(t, err)
		search, err := m.Namespace("search")
		require.NoError(t, err)

		checkout.DisableAll()
		assert.True(t, checkout.Disabled())
		assert.False(t, search.Disabled(), "kill-switch must not leak across namespaces")
	})

	t.Run("SharedOptions", func(t *testing.T) {
		t.Parallel()
		m := registry.NewManager(registry.WithRegistryOptions(registry.WithHistoryCapacity(1)))
		r, err := m.Namespace("checkout")
		require.NoError(t, err)

		require.NoError(t, r.Load(versioned("1")))
		require.NoError(t, r.Load(versioned("2")))
		require.NoError(t, r.Load(versioned("3")))
		assert.Equal(t, 1, r.HistoryLen())
	})

	t.Run("DisabledAtCreation", func(t *testing.T) {
		t.Parallel()
		m := registry.NewManager(registry.WithDisabledNamespaces("legacy"))

		legacy, err := m.Namespace("legacy")
		require.NoError(t, err)
		assert.True(t, legacy.Disabled())

		live, err := m.Namespace("checkout")
		require.NoError(t, err)
		assert.False(t, live.Disabled())
	})
}
