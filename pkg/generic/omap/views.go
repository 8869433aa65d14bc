package omap

import (
	"fmt"
	"iter"
)

// ReadOnlyCollection is an ordered collection that can be read but not
// changed
type ReadOnlyCollection[T any] interface {
	Len() int
	Contains(item T) bool
	All() iter.Seq[T]
	CopyTo(dst []T, start int) error
}

// Collection is the full collection contract. The map views implement
// it only so they can be passed where one is expected; their mutators
// always fail with ErrUnsupportedOperation.
type Collection[T any] interface {
	ReadOnlyCollection[T]
	Add(item T) error
	Remove(item T) (bool, error)
	Clear() error
}

var (
	_ Collection[string] = KeyView[string, int]{}
	_ Collection[int]    = ValueView[string, int]{}
)

// KeyView is a live, read-only view of a map's keys in order
type KeyView[K comparable, V any] struct {
	m *OrderedMap[K, V]
}

func (kv KeyView[K, V]) Len() int {
	return kv.m.Len()
}

// Contains reports whether key is in the map, using the hash index
func (kv KeyView[K, V]) Contains(key K) bool {
	return kv.m.ContainsKey(key)
}

// All returns an iterator over the keys, oldest first. It panics like
// OrderedMap.All if the map changes structure during the walk.
func (kv KeyView[K, V]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range kv.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// CopyTo writes the keys into dst starting at start, with the same
// checks as OrderedMap.CopyTo
func (kv KeyView[K, V]) CopyTo(dst []K, start int) error {
	l := &kv.m.list
	if err := checkCopy(dst == nil, len(dst), start, l.size); err != nil {
		return err
	}
	for i := l.front(); i != sentinel; i = l.nodes[i].next {
		dst[start] = l.nodes[i].key
		start++
	}
	return nil
}

// Slice returns the keys in order in a new slice
func (kv KeyView[K, V]) Slice() []K {
	keys := make([]K, kv.Len())
	_ = kv.CopyTo(keys, 0)
	return keys
}

func (kv KeyView[K, V]) Add(K) error {
	return fmt.Errorf("keys: add: %w", ErrUnsupportedOperation)
}

func (kv KeyView[K, V]) Remove(K) (bool, error) {
	return false, fmt.Errorf("keys: remove: %w", ErrUnsupportedOperation)
}

func (kv KeyView[K, V]) Clear() error {
	return fmt.Errorf("keys: clear: %w", ErrUnsupportedOperation)
}

// ValueView is a live, read-only view of a map's values in key order.
// Values are not indexed, so Contains scans every entry.
type ValueView[K comparable, V any] struct {
	m *OrderedMap[K, V]
}

func (vv ValueView[K, V]) Len() int {
	return vv.m.Len()
}

// Contains reports whether any entry holds value. It is a linear scan
// using the map's value equality.
func (vv ValueView[K, V]) Contains(value V) bool {
	l := &vv.m.list
	for i := l.front(); i != sentinel; i = l.nodes[i].next {
		if vv.m.equal(l.nodes[i].value, value) {
			return true
		}
	}
	return false
}

// All returns an iterator over the values, in key order
func (vv ValueView[K, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range vv.m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// CopyTo writes the values into dst starting at start, with the same
// checks as OrderedMap.CopyTo
func (vv ValueView[K, V]) CopyTo(dst []V, start int) error {
	l := &vv.m.list
	if err := checkCopy(dst == nil, len(dst), start, l.size); err != nil {
		return err
	}
	for i := l.front(); i != sentinel; i = l.nodes[i].next {
		dst[start] = l.nodes[i].value
		start++
	}
	return nil
}

// Slice returns the values in key order in a new slice
func (vv ValueView[K, V]) Slice() []V {
	values := make([]V, vv.Len())
	_ = vv.CopyTo(values, 0)
	return values
}

func (vv ValueView[K, V]) Add(V) error {
	return fmt.Errorf("values: add: %w", ErrUnsupportedOperation)
}

func (vv ValueView[K, V]) Remove(V) (bool, error) {
	return false, fmt.Errorf("values: remove: %w", ErrUnsupportedOperation)
}

func (vv ValueView[K, V]) Clear() error {
	return fmt.Errorf("values: clear: %w", ErrUnsupportedOperation)
}
