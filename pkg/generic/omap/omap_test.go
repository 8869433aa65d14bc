package omap

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeKey(i int) string {
	return fmt.Sprintf("key-%06d", i)
}

func makeVal(i int) string {
	return fmt.Sprintf("value-%08d", i)
}

func makeNEntries(n int) *OrderedMap[string, string] {
	om := New[string, string](n)
	for i := 0; i < n; i++ {
		om.Set(makeKey(i), makeVal(i))
	}
	return om
}

// keysOf collects keys by walking the map with an Iterator
func keysOf[K comparable, V any](t *testing.T, om *OrderedMap[K, V]) []K {
	t.Helper()
	keys := []K{}
	it := om.Iter()
	for it.Next() {
		keys = append(keys, it.Key())
	}
	require.NoError(t, it.Err())
	return keys
}

func assertKeys[K comparable, V any](t *testing.T, om *OrderedMap[K, V], want []K) {
	t.Helper()
	if diff := cmp.Diff(want, keysOf(t, om)); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderedMap_PreservesOrder(t *testing.T) {
	om := New[int, int](0)
	for i := 1; i < 5; i++ {
		require.NoError(t, om.Insert(i, i))
	}
	om.Remove(1)
	om.Set(5, 5)
	assertKeys(t, om, []int{2, 3, 4, 5})
}

func TestOrderedMap_Insert(t *testing.T) {
	om := New[int, int](0)
	require.NoError(t, om.Insert(1, 1))
	err := om.Insert(1, 1)
	require.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, 1, om.Len())

	var n int
	for range om.All() {
		n++
	}
	assert.Equal(t, 1, n)
}

func TestOrderedMap_InsertDuplicateKeepsValue(t *testing.T) {
	om := New[string, string](0)
	require.NoError(t, om.Insert("a", "first"))
	require.ErrorIs(t, om.Insert("a", "second"), ErrDuplicateKey)
	v, err := om.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "first", v)
}

func TestOrderedMap_Get(t *testing.T) {
	om := makeNEntries(64)
	for i := 0; i < 64; i++ {
		v, err := om.Get(makeKey(i))
		require.NoError(t, err)
		assert.Equal(t, makeVal(i), v)
	}
	v, err := om.Get(makeKey(64))
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Contains(t, err.Error(), makeKey(64))
	assert.Equal(t, "", v)
}

func TestOrderedMap_TryGet(t *testing.T) {
	om := makeNEntries(8)
	v, ok := om.TryGet(makeKey(3))
	assert.True(t, ok)
	assert.Equal(t, makeVal(3), v)

	v, ok = om.TryGet("missing")
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestOrderedMap_SetUpdatesInPlace(t *testing.T) {
	om := New[string, any](0)
	om.Set("foo", "bar")
	om.Set("wk", 28)
	om.Set("po", 100)
	om.Set("bar", "baz")

	om.Set("po", 102)
	assertKeys(t, om, []string{"foo", "wk", "po", "bar"})
	assert.Equal(t, []any{"bar", 28, 102, "baz"}, om.Values().Slice())
	assert.Equal(t, 4, om.Len())
}

func TestOrderedMap_ReinsertMovesToEnd(t *testing.T) {
	om := New[int, int](0)
	require.NoError(t, om.Insert(1, 1))
	require.NoError(t, om.Insert(2, 2))
	require.NoError(t, om.Insert(3, 3))
	assert.True(t, om.Remove(2))
	require.NoError(t, om.Insert(2, 2))
	assertKeys(t, om, []int{1, 3, 2})
}

func TestOrderedMap_ContainsKey(t *testing.T) {
	om := makeNEntries(16)
	assert.True(t, om.ContainsKey(makeKey(0)))
	assert.True(t, om.ContainsKey(makeKey(15)))
	assert.False(t, om.ContainsKey(makeKey(16)))
}

func TestOrderedMap_Contains(t *testing.T) {
	om := makeNEntries(16)
	assert.True(t, om.Contains(makeKey(4), makeVal(4)))
	assert.False(t, om.Contains(makeKey(4), makeVal(5)))
	assert.False(t, om.Contains(makeKey(16), makeVal(16)))
}

func TestOrderedMap_Remove(t *testing.T) {
	om := makeNEntries(10)
	assert.True(t, om.Remove(makeKey(0)))
	assert.True(t, om.Remove(makeKey(5)))
	assert.True(t, om.Remove(makeKey(9)))
	assert.False(t, om.Remove(makeKey(5)))
	assert.False(t, om.Remove("missing"))
	assert.Equal(t, 7, om.Len())
	assertKeys(t, om, []string{
		makeKey(1), makeKey(2), makeKey(3), makeKey(4),
		makeKey(6), makeKey(7), makeKey(8),
	})
}

func TestOrderedMap_RemoveEntry(t *testing.T) {
	om := New[int, string](0)
	require.NoError(t, om.Insert(1, "a"))

	assert.False(t, om.RemoveEntry(1, "b"))
	v, err := om.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	assert.False(t, om.RemoveEntry(2, "a"))
	assert.True(t, om.RemoveEntry(1, "a"))
	assert.Equal(t, 0, om.Len())
	assert.False(t, om.ContainsKey(1))
}

func TestOrderedMap_RemoveAll(t *testing.T) {
	om := makeNEntries(100)
	for i := 99; i >= 0; i -= 2 {
		require.True(t, om.Remove(makeKey(i)))
	}
	for i := 0; i < 100; i += 2 {
		require.True(t, om.Remove(makeKey(i)))
	}
	assert.Equal(t, 0, om.Len())
	assertKeys(t, om, []string{})
	_, _, ok := om.Oldest()
	assert.False(t, ok)
}

func TestOrderedMap_Clear(t *testing.T) {
	om := makeNEntries(32)
	om.Clear()
	assert.Equal(t, 0, om.Len())
	assert.False(t, om.ContainsKey(makeKey(1)))
	assertKeys(t, om, []string{})

	om.Set("b", "2")
	om.Set("a", "1")
	assertKeys(t, om, []string{"b", "a"})
}

func TestOrderedMap_ZeroValue(t *testing.T) {
	var om OrderedMap[string, int]
	assert.Equal(t, 0, om.Len())
	assert.False(t, om.ContainsKey("a"))
	assert.False(t, om.Contains("a", 0))
	assert.False(t, om.Remove("a"))
	_, err := om.Get("a")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assertKeys(t, &om, []string{})
	require.NoError(t, om.CopyTo([]Entry[string, int]{}, 0))
	om.Clear()

	om.Set("a", 1)
	require.NoError(t, om.Insert("b", 2))
	assertKeys(t, &om, []string{"a", "b"})
	assert.True(t, om.Contains("b", 2))
}

func TestOrderedMap_NegativeCapacity(t *testing.T) {
	om := New[int, int](-5)
	om.Set(1, 1)
	assert.Equal(t, 1, om.Len())
}

func TestOrderedMap_OldestNewest(t *testing.T) {
	om := New[string, int](0)
	_, _, ok := om.Newest()
	assert.False(t, ok)

	om.Set("a", 1)
	om.Set("b", 2)
	om.Set("c", 3)
	k, v, ok := om.Oldest()
	assert.True(t, ok)
	assert.Equal(t, "a", k)
	assert.Equal(t, 1, v)
	k, v, ok = om.Newest()
	assert.True(t, ok)
	assert.Equal(t, "c", k)
	assert.Equal(t, 3, v)

	om.Remove("a")
	k, _, _ = om.Oldest()
	assert.Equal(t, "b", k)
}

func TestOrderedMap_CopyTo(t *testing.T) {
	om := New[int, string](0)
	om.Set(1, "a")
	om.Set(2, "b")
	om.Set(3, "c")

	tests := []struct {
		name  string
		dst   []Entry[int, string]
		start int
		want  []Entry[int, string]
		fails bool
	}{
		{
			name:  "exact fit",
			dst:   make([]Entry[int, string], 3),
			start: 0,
			want:  []Entry[int, string]{{1, "a"}, {2, "b"}, {3, "c"}},
		},
		{
			name:  "offset",
			dst:   make([]Entry[int, string], 5),
			start: 2,
			want:  []Entry[int, string]{{}, {}, {1, "a"}, {2, "b"}, {3, "c"}},
		},
		{
			name:  "nil destination",
			dst:   nil,
			fails: true,
		},
		{
			name:  "negative start",
			dst:   make([]Entry[int, string], 3),
			start: -1,
			want:  make([]Entry[int, string], 3),
			fails: true,
		},
		{
			name:  "start past end",
			dst:   make([]Entry[int, string], 3),
			start: 4,
			want:  make([]Entry[int, string], 3),
			fails: true,
		},
		{
			name:  "too small",
			dst:   make([]Entry[int, string], 2),
			start: 0,
			want:  make([]Entry[int, string], 2),
			fails: true,
		},
		{
			name:  "too little room after start",
			dst:   []Entry[int, string]{{9, "z"}, {9, "z"}, {9, "z"}, {9, "z"}},
			start: 2,
			want:  []Entry[int, string]{{9, "z"}, {9, "z"}, {9, "z"}, {9, "z"}},
			fails: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := om.CopyTo(tt.dst, tt.start)
			if tt.fails {
				require.ErrorIs(t, err, ErrInvalidArgument)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, tt.dst)
			assert.Equal(t, 3, om.Len())
		})
	}
}

func TestOrderedMap_CopyToEmptyAtEnd(t *testing.T) {
	om := New[int, int](0)
	dst := make([]Entry[int, int], 2)
	assert.NoError(t, om.CopyTo(dst, 2))
}

func TestOrderedMap_String(t *testing.T) {
	om := New[string, int](0)
	assert.Equal(t, "omap[]", om.String())
	om.Set("b", 2)
	om.Set("a", 1)
	assert.Equal(t, "omap[b:2 a:1]", om.String())
	assert.Equal(t, "omap[b:2 a:1]", fmt.Sprint(om))
}

func TestOrderedMap_ArenaReuse(t *testing.T) {
	om := New[int, int](4)
	for i := 0; i < 4; i++ {
		om.Set(i, i)
	}
	arena := len(om.list.nodes)
	for round := 0; round < 10; round++ {
		om.Remove(round)
		om.Set(round+4, round+4)
	}
	assert.Equal(t, arena, len(om.list.nodes))
	assertKeys(t, om, []int{10, 11, 12, 13})
}

func TestOrderedMap_SliceValues(t *testing.T) {
	om := New[string, []int](0)
	om.Set("a", []int{1, 2})
	om.Set("b", nil)
	assert.True(t, om.Contains("a", []int{1, 2}))
	assert.False(t, om.Contains("a", []int{2, 1}))
	assert.True(t, om.RemoveEntry("b", nil))
	assert.Equal(t, 1, om.Len())
}

func TestOrderedMap_InterfaceValues(t *testing.T) {
	om := New[string, any](0)
	om.Set("slice", []string{"x"})
	om.Set("num", 1)
	assert.True(t, om.Contains("slice", []string{"x"}))
	assert.True(t, om.Contains("num", 1))
	assert.False(t, om.Contains("num", "1"))
}

func TestOrderedMap_WithValueEqual(t *testing.T) {
	within := func(a, b float64) bool {
		d := a - b
		return d < 0.01 && d > -0.01
	}
	om := New[string, float64](0, WithValueEqual[string](within))
	om.Set("pi", 3.14159)
	assert.True(t, om.Contains("pi", 3.14))
	assert.True(t, om.Values().Contains(3.145))
	assert.True(t, om.RemoveEntry("pi", 3.141))
}

func TestOrderedMap_FoldCaseKeys(t *testing.T) {
	om := New[string, int](0, WithKeyEqualer[string, int](FoldCase()))
	require.NoError(t, om.Insert("Content-Type", 1))
	require.ErrorIs(t, om.Insert("content-type", 2), ErrDuplicateKey)

	om.Set("CONTENT-TYPE", 3)
	om.Set("Accept", 4)
	assertKeys(t, om, []string{"Content-Type", "Accept"})

	v, err := om.Get("content-TYPE")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.True(t, om.Keys().Contains("accept"))
	assert.True(t, om.Contains("accept", 4))

	assert.True(t, om.Remove("ACCEPT"))
	assert.False(t, om.ContainsKey("Accept"))
	assert.Equal(t, 1, om.Len())

	om.Clear()
	assert.False(t, om.ContainsKey("content-type"))
	om.Set("x", 1)
	assertKeys(t, om, []string{"x"})
}

func TestOrderedMap_FoldCaseManyKeys(t *testing.T) {
	om := New[string, int](0, WithKeyEqualer[string, int](FoldCase()))
	for i := 0; i < 1000; i++ {
		om.Set(makeKey(i), i)
	}
	for i := 0; i < 1000; i++ {
		v, ok := om.TryGet(fmt.Sprintf("KEY-%06d", i))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	for i := 0; i < 1000; i += 2 {
		require.True(t, om.Remove(makeKey(i)))
	}
	assert.Equal(t, 500, om.Len())
	k, _, _ := om.Oldest()
	assert.Equal(t, makeKey(1), k)
}

func TestOrderedMap_CustomEqualer(t *testing.T) {
	// keys equal modulo 10
	mod := EqualerFunc(
		func(a, b int) bool { return a%10 == b%10 },
		func(k int) uint64 { return uint64(k % 10) },
	)
	om := New[int, string](0, WithKeyEqualer[int, string](mod))
	om.Set(1, "a")
	om.Set(11, "b")
	om.Set(2, "c")
	assert.Equal(t, 2, om.Len())
	v, _ := om.TryGet(21)
	assert.Equal(t, "b", v)
	assertKeys(t, om, []int{1, 2})
}
