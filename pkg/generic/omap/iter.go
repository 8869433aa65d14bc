package omap

import "iter"

// Iterator walks an OrderedMap one entry at a time. It fails fast: once
// the map has had an entry inserted or removed, or has been cleared,
// Next returns false and Err reports a *ConcurrentModificationError.
// Overwriting a value with Set is not a structural change and is seen by
// the walk if it has not yet reached that key.
//
//	it := m.Iter()
//	for it.Next() {
//		use(it.Key(), it.Value())
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type Iterator[K comparable, V any] struct {
	m       *OrderedMap[K, V]
	next    int32
	version uint64
	reverse bool
	key     K
	value   V
	err     error
}

// Iter returns an Iterator positioned before the oldest entry
func (om *OrderedMap[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{m: om, next: om.list.front(), version: om.version}
}

// IterBackward returns an Iterator positioned after the newest entry
func (om *OrderedMap[K, V]) IterBackward() *Iterator[K, V] {
	return &Iterator[K, V]{m: om, next: om.list.back(), version: om.version, reverse: true}
}

// Next advances to the following entry and reports whether there is one
func (it *Iterator[K, V]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.m.version != it.version {
		it.err = &ConcurrentModificationError{Started: it.version, Current: it.m.version}
		return false
	}
	if it.next == sentinel {
		return false
	}
	n := &it.m.list.nodes[it.next]
	it.key, it.value = n.key, n.value
	if it.reverse {
		it.next = n.prev
	} else {
		it.next = n.next
	}
	return true
}

// Key returns the key of the current entry
func (it *Iterator[K, V]) Key() K {
	return it.key
}

// Value returns the value of the current entry
func (it *Iterator[K, V]) Value() V {
	return it.value
}

// Err returns the error that stopped the walk, if any
func (it *Iterator[K, V]) Err() error {
	return it.err
}

// Range calls fn for every entry, oldest first, until fn returns false.
// It returns ErrConcurrentModification (as a *ConcurrentModificationError)
// if fn inserts, removes or clears.
func (om *OrderedMap[K, V]) Range(fn func(key K, value V) bool) error {
	it := om.Iter()
	for it.Next() {
		if !fn(it.key, it.value) {
			return nil
		}
	}
	return it.Err()
}

// All returns an iterator over the entries, oldest first. Every call
// starts a new walk. Inserting, removing or clearing during the walk
// makes it panic with a *ConcurrentModificationError.
func (om *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walk(om.Iter(), yield)
	}
}

// Backward is All in reverse, newest first
func (om *OrderedMap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walk(om.IterBackward(), yield)
	}
}

func walk[K comparable, V any](it *Iterator[K, V], yield func(K, V) bool) {
	for it.Next() {
		if !yield(it.key, it.value) {
			return
		}
	}
	if it.err != nil {
		panic(it.err)
	}
}
