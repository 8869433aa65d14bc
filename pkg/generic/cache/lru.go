package cache

import (
	"fmt"
	"log"
	"sync"

	"github.com/scottcagno/omap/pkg/generic/omap"
)

// DefaultSize is the max size of the cache before
// the older items automatically get evicted
const DefaultSize = 256

// LRU is an LRU cache. Items are kept in an ordered map where the oldest
// entry is the least recently used one; a hit moves the item to the
// back and an eviction drops the front, both in constant time.
type LRU[K comparable, V any] struct {
	size  int                    // max num of items
	items *omap.OrderedMap[K, V] // least recently used first
	mu    sync.Mutex
}

func NewLRU[K comparable, V any](size int) *LRU[K, V] {
	l := new(LRU[K, V])
	l.init(size)
	return l
}

func (l *LRU[K, V]) init(size int) {
	if size < 1 {
		size = DefaultSize
	}
	l.size = size
	l.items = omap.New[K, V](size)
}

// evict removes and returns the least recently used item
func (l *LRU[K, V]) evict() (K, V) {
	key, value, _ := l.items.Oldest()
	l.items.Remove(key)
	return key, value
}

// promote marks key as the most recently used item
func (l *LRU[K, V]) promote(key K, value V) {
	if k, _, _ := l.items.Newest(); k == key {
		return
	}
	l.items.Remove(key)
	l.items.Set(key, value)
}

// Resize sets the max size of the LRU cache and returns the evicted items. It will panic
// if the size is less than one item. If the value is less than the number of items in the
// cache, then items will be evicted.
func (l *LRU[K, V]) Resize(size int) (ekeys []K, evals []V) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if size < 1 {
		log.Panicln("invalid size")
	}
	if l.items == nil {
		l.init(size)
	}
	for size < l.items.Len() {
		k, v := l.evict()
		ekeys, evals = append(ekeys, k), append(evals, v)
	}
	l.size = size
	return ekeys, evals
}

// Len returns the current length of the cache
func (l *LRU[K, V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.items == nil {
		return 0
	}
	return l.items.Len()
}

// SetEvicted inserts or replaces a value for a given key.
// The item is returned if this operation causes an eviction.
func (l *LRU[K, V]) SetEvicted(key K, value V) (prev V, replaced bool, ekey K, eval V, evicted bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.items == nil {
		l.init(l.size)
	}
	if prev, replaced = l.items.TryGet(key); replaced {
		l.promote(key, value)
		l.items.Set(key, value)
		return prev, replaced, ekey, eval, evicted
	}
	if l.items.Len() >= l.size {
		ekey, eval = l.evict()
		evicted = true
	}
	l.items.Set(key, value)
	return prev, replaced, ekey, eval, evicted
}

// Set inserts or replaces a value for the given key
func (l *LRU[K, V]) Set(key K, value V) (V, bool) {
	prev, replaced, _, _, _ := l.SetEvicted(key, value)
	return prev, replaced
}

// Get returns a value for the given key (if it exists) and marks it as
// the most recently used item
func (l *LRU[K, V]) Get(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.items == nil {
		return *new(V), false
	}
	v, ok := l.items.TryGet(key)
	if ok {
		l.promote(key, v)
	}
	return v, ok
}

// Peek returns a value for the given key without touching its recency
func (l *LRU[K, V]) Peek(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.items == nil {
		return *new(V), false
	}
	return l.items.TryGet(key)
}

// Del removes and value for the given key (if it exists)
func (l *LRU[K, V]) Del(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.items == nil {
		return *new(V), false
	}
	v, ok := l.items.TryGet(key)
	if ok {
		l.items.Remove(key)
	}
	return v, ok
}

// Range iterates over all keys and values in the order of most
// recently used to least recently used items.
func (l *LRU[K, V]) Range(iter func(key K, value V) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.items == nil {
		return
	}
	for k, v := range l.items.Backward() {
		if !iter(k, v) {
			return
		}
	}
}

// Reverse iterates over all keys and values in the order of least
// recently used to most recently used items.
func (l *LRU[K, V]) Reverse(iter func(key K, value V) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.items == nil {
		return
	}
	for k, v := range l.items.All() {
		if !iter(k, v) {
			return
		}
	}
}

func (l *LRU[K, V]) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	ss := fmt.Sprintf("lru:\n")
	ss += fmt.Sprintf("\tsize=%d\n", l.size)
	ss += fmt.Sprintf("\titems=%v\n", l.items)
	return ss
}
