package omap

const (
	loadFactor     = 0.85 // load factor must exceed 50%
	defaultMapSize = 16
)

// chainEntry is a key and its order handle, linked into a bucket chain
type chainEntry[K any] struct {
	hashkey uint64
	key     K
	handle  int32
	next    *chainEntry[K]
}

// bucket represents a single slot in the chained table
type bucket[K any] struct {
	head *chainEntry[K]
}

func (b *bucket[K]) search(eq Equaler[K], hashkey uint64, key K) *chainEntry[K] {
	for e := b.head; e != nil; e = e.next {
		if e.hashkey == hashkey && eq.Equal(e.key, key) {
			return e
		}
	}
	return nil
}

// link pushes an entry onto the front of the chain
func (b *bucket[K]) link(e *chainEntry[K]) {
	e.next = b.head
	b.head = e
}

func (b *bucket[K]) delete(eq Equaler[K], hashkey uint64, key K) (*chainEntry[K], bool) {
	if b.head == nil {
		return nil, false
	}
	if b.head.hashkey == hashkey && eq.Equal(b.head.key, key) {
		e := b.head
		b.head = e.next
		return e, true
	}
	for prev := b.head; prev.next != nil; prev = prev.next {
		if e := prev.next; e.hashkey == hashkey && eq.Equal(e.key, key) {
			prev.next = e.next
			return e, true
		}
	}
	return nil, false
}

// chainedIndex is the hash index used when keys are compared with a
// caller supplied Equaler instead of ==. It is a closed hashing table
// with chained buckets and a power of two bucket count.
type chainedIndex[K any] struct {
	eq      Equaler[K]
	mask    uint64
	expand  uint
	shrink  uint
	keys    uint
	size    uint
	buckets []bucket[K]
}

// alignBucketCount aligns buckets to ensure all sizes are powers of two
func alignBucketCount(size uint) uint64 {
	count := uint(defaultMapSize)
	for count < size {
		count *= 2
	}
	return uint64(count)
}

func newChainedIndex[K any](size uint, eq Equaler[K]) *chainedIndex[K] {
	c := &chainedIndex[K]{eq: eq}
	c.init(size)
	return c
}

func (c *chainedIndex[K]) init(size uint) {
	bukCnt := alignBucketCount(size)
	c.mask = bukCnt - 1
	c.expand = uint(float64(bukCnt) * loadFactor)
	c.shrink = uint(float64(bukCnt) * (1 - loadFactor))
	c.keys = 0
	c.size = size
	c.buckets = make([]bucket[K], bukCnt)
}

// resize rehashes every entry into a table sized for newSize. Entries
// keep their cached hashkey, so the Equaler is not consulted.
func (c *chainedIndex[K]) resize(newSize uint) {
	old, keys, size := c.buckets, c.keys, c.size
	c.init(newSize)
	for i := range old {
		for e := old[i].head; e != nil; {
			next := e.next
			c.buckets[e.hashkey&c.mask].link(e)
			e = next
		}
	}
	c.keys, c.size = keys, size
}

// get returns the order handle stored for key
func (c *chainedIndex[K]) get(key K) (int32, bool) {
	hashkey := c.eq.Hash(key)
	if e := c.buckets[hashkey&c.mask].search(c.eq, hashkey, key); e != nil {
		return e.handle, true
	}
	return 0, false
}

// put records the handle for a key the caller knows is absent
func (c *chainedIndex[K]) put(key K, handle int32) {
	if c.keys >= c.expand {
		c.resize(uint(len(c.buckets)) * 2)
	}
	hashkey := c.eq.Hash(key)
	c.buckets[hashkey&c.mask].link(&chainEntry[K]{
		hashkey: hashkey,
		key:     key,
		handle:  handle,
	})
	c.keys++
}

// del removes key and returns the handle it held
func (c *chainedIndex[K]) del(key K) (int32, bool) {
	hashkey := c.eq.Hash(key)
	e, ok := c.buckets[hashkey&c.mask].delete(c.eq, hashkey, key)
	if !ok {
		return 0, false
	}
	c.keys--
	if c.keys <= c.shrink && uint64(len(c.buckets)) > alignBucketCount(c.size) {
		c.resize(max(c.keys, c.size))
	}
	return e.handle, true
}

// reset drops every entry and returns to the initial bucket count
func (c *chainedIndex[K]) reset() {
	c.init(c.size)
}

func (c *chainedIndex[K]) len() int {
	return int(c.keys)
}
