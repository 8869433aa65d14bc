// Package omap provides OrderedMap, a hash map that remembers the order
// in which keys were first inserted.
//
// Lookups go through a hash index that stores, for every key, a handle
// into an arena backed doubly linked list holding the entries in order.
// Insert appends to the list, Remove unlinks through the handle, so
// both stay constant time no matter how large the map grows.
//
// An OrderedMap is not safe for concurrent use. Callers that share one
// between goroutines must guard it themselves (see the cache package).
package omap

import (
	"fmt"
	"strings"
)

// Entry is a key value pair as stored in the map
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// OrderedMap is an insertion ordered hash map. The zero value is an
// empty map ready to use with builtin key equality.
type OrderedMap[K comparable, V any] struct {
	index   map[K]int32      // key -> list handle, builtin equality
	chained *chainedIndex[K] // key -> list handle, when eq is set
	list    list[K, V]
	eq      Equaler[K]
	equal   func(a, b V) bool
	version uint64 // bumped by insert, remove and clear
}

// New returns an empty OrderedMap sized for capacity entries
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *OrderedMap[K, V] {
	om := new(OrderedMap[K, V])
	for _, opt := range opts {
		opt(om)
	}
	om.init(capacity)
	return om
}

func (om *OrderedMap[K, V]) init(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	if om.eq != nil {
		om.chained = newChainedIndex[K](uint(capacity), om.eq)
	} else {
		om.index = make(map[K]int32, capacity)
	}
	if om.equal == nil {
		om.equal = defaultValueEqual[V]()
	}
	om.list.init(capacity)
}

func (om *OrderedMap[K, V]) lazyInit() {
	if om.list.nodes == nil {
		om.init(0)
	}
}

// lookup returns the list handle for key
func (om *OrderedMap[K, V]) lookup(key K) (int32, bool) {
	if om.chained != nil {
		return om.chained.get(key)
	}
	i, ok := om.index[key]
	return i, ok
}

// add appends a new entry; key must be absent
func (om *OrderedMap[K, V]) add(key K, value V) {
	i := om.list.push(key, value)
	if om.chained != nil {
		om.chained.put(key, i)
	} else {
		om.index[key] = i
	}
	om.version++
}

// unlink removes the entry for key, held at handle i, from the index
// and the list
func (om *OrderedMap[K, V]) unlink(key K, i int32) {
	if om.chained != nil {
		om.chained.del(key)
	} else {
		delete(om.index, key)
	}
	om.list.pop(i)
	om.version++
}

// Insert adds a new entry at the end of the order. It fails with
// ErrDuplicateKey, leaving the map untouched, if key is present.
func (om *OrderedMap[K, V]) Insert(key K, value V) error {
	om.lazyInit()
	if _, ok := om.lookup(key); ok {
		return fmt.Errorf("insert %v: %w", key, ErrDuplicateKey)
	}
	om.add(key, value)
	return nil
}

// Set overwrites the value of an existing key in place, keeping its
// position, or appends a new entry if key is absent.
func (om *OrderedMap[K, V]) Set(key K, value V) {
	om.lazyInit()
	if i, ok := om.lookup(key); ok {
		om.list.nodes[i].value = value
		return
	}
	om.add(key, value)
}

// Get returns the value stored for key, or ErrKeyNotFound
func (om *OrderedMap[K, V]) Get(key K) (V, error) {
	i, ok := om.lookup(key)
	if !ok {
		return *new(V), fmt.Errorf("get %v: %w", key, ErrKeyNotFound)
	}
	return om.list.nodes[i].value, nil
}

// TryGet returns the value stored for key and whether it was found
func (om *OrderedMap[K, V]) TryGet(key K) (V, bool) {
	i, ok := om.lookup(key)
	if !ok {
		return *new(V), false
	}
	return om.list.nodes[i].value, true
}

// ContainsKey reports whether key is present
func (om *OrderedMap[K, V]) ContainsKey(key K) bool {
	_, ok := om.lookup(key)
	return ok
}

// Contains reports whether key is present and currently holds value
func (om *OrderedMap[K, V]) Contains(key K, value V) bool {
	i, ok := om.lookup(key)
	return ok && om.equal(om.list.nodes[i].value, value)
}

// Remove deletes the entry for key and reports whether there was one
func (om *OrderedMap[K, V]) Remove(key K) bool {
	i, ok := om.lookup(key)
	if !ok {
		return false
	}
	om.unlink(key, i)
	return true
}

// RemoveEntry deletes the entry for key only if it currently holds value
func (om *OrderedMap[K, V]) RemoveEntry(key K, value V) bool {
	i, ok := om.lookup(key)
	if !ok || !om.equal(om.list.nodes[i].value, value) {
		return false
	}
	om.unlink(key, i)
	return true
}

// Clear removes every entry. The index and the list keep the room they
// had grown to.
func (om *OrderedMap[K, V]) Clear() {
	if om.list.nodes == nil {
		return
	}
	if om.chained != nil {
		om.chained.reset()
	} else {
		clear(om.index)
	}
	om.list.reset()
	om.version++
}

// Len returns the number of entries in the map
func (om *OrderedMap[K, V]) Len() int {
	return om.list.size
}

// Oldest returns the first entry in the order
func (om *OrderedMap[K, V]) Oldest() (K, V, bool) {
	return om.at(om.list.front())
}

// Newest returns the last entry in the order
func (om *OrderedMap[K, V]) Newest() (K, V, bool) {
	return om.at(om.list.back())
}

func (om *OrderedMap[K, V]) at(i int32) (K, V, bool) {
	if i == sentinel {
		return *new(K), *new(V), false
	}
	n := &om.list.nodes[i]
	return n.key, n.value, true
}

// CopyTo writes every entry, in order, into dst starting at start. It
// fails with ErrInvalidArgument, writing nothing, when dst is nil,
// start lies outside [0, len(dst)] or dst has too little room left.
func (om *OrderedMap[K, V]) CopyTo(dst []Entry[K, V], start int) error {
	if err := checkCopy(dst == nil, len(dst), start, om.Len()); err != nil {
		return err
	}
	for i := om.list.front(); i != sentinel; i = om.list.nodes[i].next {
		n := &om.list.nodes[i]
		dst[start] = Entry[K, V]{Key: n.key, Value: n.value}
		start++
	}
	return nil
}

// checkCopy validates the arguments of every CopyTo
func checkCopy(isNil bool, size, start, count int) error {
	if isNil {
		return fmt.Errorf("copy: nil destination: %w", ErrInvalidArgument)
	}
	if start < 0 || start > size {
		return fmt.Errorf("copy: start index %d outside destination of length %d: %w",
			start, size, ErrInvalidArgument)
	}
	if size-start < count {
		return fmt.Errorf("copy: %d entries do not fit in %d slots from index %d: %w",
			count, size-start, start, ErrInvalidArgument)
	}
	return nil
}

// Keys returns a read-only, ordered view of the map's keys
func (om *OrderedMap[K, V]) Keys() KeyView[K, V] {
	return KeyView[K, V]{m: om}
}

// Values returns a read-only view of the map's values, in key order
func (om *OrderedMap[K, V]) Values() ValueView[K, V] {
	return ValueView[K, V]{m: om}
}

// String formats the map like fmt formats a builtin map, in order
func (om *OrderedMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("omap[")
	for i := om.list.front(); i != sentinel; i = om.list.nodes[i].next {
		if i != om.list.front() {
			sb.WriteByte(' ')
		}
		n := &om.list.nodes[i]
		fmt.Fprintf(&sb, "%v:%v", n.key, n.value)
	}
	sb.WriteByte(']')
	return sb.String()
}
