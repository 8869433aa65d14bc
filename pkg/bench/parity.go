package bench

import (
	"context"
	"time"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// sink keeps the compiler from discarding the checks being timed
var sink bool

// Parity holds how many contains-entry checks each map completed in
// the same amount of time
type Parity struct {
	Ordered int // omap.OrderedMap.Contains
	Builtin int // map lookup plus value compare
	Linked  int // gods linkedhashmap Get plus value compare
}

// ContainsParity times a contains-entry check for the pair
// (Keys[1], 1) on each map of capacity entries, one after the other
func ContainsParity[K comparable](ctx context.Context, gen KeyGen[K], capacity int, d time.Duration) (Parity, error) {
	var p Parity
	var err error
	keys := gen.Keys(max(capacity, 2))
	probe := keys[1]
	gen = fixedKeys[K]{keys: keys, missing: gen.Missing()}

	p.Ordered, err = Throughput[*Fixture[K]]{
		Duration: d,
		Create:   func() *Fixture[K] { return NewFixture(gen, capacity) },
		Act:      func(f *Fixture[K]) { sink = f.Map.Contains(probe, 1) },
	}.Run(ctx)
	if err != nil {
		return p, err
	}
	p.Builtin, err = Throughput[map[K]int]{
		Duration: d,
		Create:   func() map[K]int { return NewBuiltin(gen, capacity) },
		Act: func(m map[K]int) {
			v, ok := m[probe]
			sink = ok && v == 1
		},
	}.Run(ctx)
	if err != nil {
		return p, err
	}
	p.Linked, err = Throughput[*linkedhashmap.Map]{
		Duration: d,
		Create:   func() *linkedhashmap.Map { return NewLinked(gen, capacity) },
		Act: func(m *linkedhashmap.Map) {
			v, ok := m.Get(probe)
			sink = ok && v == 1
		},
	}.Run(ctx)
	return p, err
}

// fixedKeys replays one key set so all three maps hold the same keys
type fixedKeys[K comparable] struct {
	keys    []K
	missing K
}

func (f fixedKeys[K]) Keys(n int) []K { return f.keys[:min(n, len(f.keys))] }
func (f fixedKeys[K]) Missing() K     { return f.missing }
