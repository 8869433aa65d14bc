package bench

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/scottcagno/omap/pkg/generic/omap"
)

// Fixture is an ordered map populated with keys[i] -> i
type Fixture[K comparable] struct {
	Map     *omap.OrderedMap[K, int]
	Keys    []K
	Missing K
}

// NewFixture builds a map of capacity entries from gen
func NewFixture[K comparable](gen KeyGen[K], capacity int) *Fixture[K] {
	f := &Fixture[K]{
		Map:     omap.New[K, int](capacity),
		Keys:    gen.Keys(capacity),
		Missing: gen.Missing(),
	}
	for i, k := range f.Keys {
		f.Map.Set(k, i)
	}
	return f
}

// NewBuiltin builds the unordered reference map for the same keys
func NewBuiltin[K comparable](gen KeyGen[K], capacity int) map[K]int {
	m := make(map[K]int, capacity)
	for i, k := range gen.Keys(capacity) {
		m[k] = i
	}
	return m
}

// NewLinked builds a gods linked hash map, an ordered reference map
func NewLinked[K comparable](gen KeyGen[K], capacity int) *linkedhashmap.Map {
	m := linkedhashmap.New()
	for i, k := range gen.Keys(capacity) {
		m.Put(k, i)
	}
	return m
}

// Case is a named operation timed by a Growth run over a Fixture
type Case[K comparable] struct {
	Name    string
	Arrange func(f *Fixture[K])
	Act     func(f *Fixture[K], count int)
}

// Cases returns every growth case, keyed by name
func Cases[K comparable]() map[string]Case[K] {
	cases := []Case[K]{
		{
			Name:    "remove",
			Arrange: func(f *Fixture[K]) { f.Map.Remove(f.Missing) },
			Act: func(f *Fixture[K], count int) {
				for _, k := range f.Keys[:count] {
					f.Map.Remove(k)
				}
			},
		},
		{
			Name:    "remove-entry",
			Arrange: func(f *Fixture[K]) { f.Map.RemoveEntry(f.Missing, -1) },
			Act: func(f *Fixture[K], count int) {
				for i, k := range f.Keys[:count] {
					f.Map.RemoveEntry(k, i)
				}
			},
		},
		{
			Name:    "remove-missing",
			Arrange: func(f *Fixture[K]) { f.Map.Remove(f.Missing) },
			Act: func(f *Fixture[K], count int) {
				for i := 0; i < count; i++ {
					f.Map.Remove(f.Missing)
				}
			},
		},
		{
			// the first call removes Keys[0], every later one misses
			Name:    "remove-entry-missing",
			Arrange: func(f *Fixture[K]) {},
			Act: func(f *Fixture[K], count int) {
				for i := 0; i < count; i++ {
					f.Map.RemoveEntry(f.Keys[0], 0)
				}
			},
		},
		{
			Name:    "set",
			Arrange: func(f *Fixture[K]) {},
			Act: func(f *Fixture[K], count int) {
				for i, k := range f.Keys[:count] {
					f.Map.Set(k, -i)
				}
			},
		},
		{
			Name:    "insert",
			Arrange: func(f *Fixture[K]) { f.Map.Clear() },
			Act: func(f *Fixture[K], _ int) {
				for i, k := range f.Keys {
					if err := f.Map.Insert(k, i); err != nil {
						panic(err)
					}
				}
			},
		},
	}
	m := make(map[string]Case[K], len(cases))
	for _, c := range cases {
		m[c.Name] = c
	}
	return m
}

// CaseNames lists the growth cases in a stable order
func CaseNames() []string {
	names := make([]string, 0, 8)
	for name := range Cases[int]() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GrowthFor wires a Case into a Growth run over fixtures built by gen
func GrowthFor[K comparable](gen KeyGen[K], name string, start, limit int, maxRatio float64) (Growth[*Fixture[K]], error) {
	c, ok := Cases[K]()[name]
	if !ok {
		return Growth[*Fixture[K]]{}, fmt.Errorf("bench: unknown case %q", name)
	}
	g := Growth[*Fixture[K]]{
		Start:    start,
		Limit:    limit,
		MaxRatio: maxRatio,
		Create:   func(capacity int) *Fixture[K] { return NewFixture(gen, capacity) },
		Arrange:  c.Arrange,
		Len:      func(f *Fixture[K]) int { return len(f.Keys) },
		Act:      c.Act,
	}
	return g, nil
}
