package omap_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/scottcagno/omap/pkg/bench"
)

// The removal cases double the map from 16k to ~1M entries and fail if
// the time to remove every key grows four times or more per doubling,
// which is what a linear scan removal would show.
func TestOrderedMap_RemoveIsConstantTime(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}
	for _, name := range []string{"remove", "remove-entry", "remove-missing", "remove-entry-missing"} {
		t.Run(name, func(t *testing.T) {
			g, err := bench.GrowthFor[int](bench.IntKeys{}, name, 1<<14, 1<<20, 4)
			require.NoError(t, err)
			g.Rounds = 3
			samples, err := g.Run(context.Background())
			for _, s := range samples {
				t.Logf("capacity=%d count=%d elapsed=%v ratio=%.2f", s.Capacity, s.Count, s.Elapsed, s.Ratio)
			}
			require.NoError(t, err)
		})
	}
}

func TestOrderedMap_ContainsParity(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}
	p, err := bench.ContainsParity[int](context.Background(), bench.IntKeys{}, 1<<20, 200*time.Millisecond)
	require.NoError(t, err)
	t.Logf("ordered=%d builtin=%d linked=%d", p.Ordered, p.Builtin, p.Linked)
	// a linear scan would be orders of magnitude slower, a few times
	// slower is only noise from boxing the value for comparison
	require.NoError(t, bench.Compare(p.Ordered, p.Builtin, 0.75))
}
