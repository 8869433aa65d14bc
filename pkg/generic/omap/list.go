package omap

import "math"

// sentinel is the arena slot that closes the circular list. Its next
// field is the oldest node and its prev field is the newest node. It is
// never handed out, so zero doubles as "no node" in the free list.
const sentinel int32 = 0

// node is an entry in the order list (doubly linked by arena index)
type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next int32
}

// list keeps entries in insertion order. Nodes live in a slice arena
// and refer to each other by index, so the hash index only ever holds
// an int32 handle and the arena stays the single owner of every node.
// Freed slots are chained through next and reused by push.
type list[K comparable, V any] struct {
	nodes []node[K, V]
	free  int32
	size  int
}

// init allocates the arena with room for capacity entries plus the
// sentinel slot
func (l *list[K, V]) init(capacity int) {
	l.nodes = make([]node[K, V], 1, capacity+1)
	l.free = sentinel
	l.size = 0
}

// empty reports whether the list has no live nodes; it is safe to call
// before init
func (l *list[K, V]) empty() bool {
	return l.size == 0
}

// front returns the index of the oldest node, or sentinel
func (l *list[K, V]) front() int32 {
	if len(l.nodes) == 0 {
		return sentinel
	}
	return l.nodes[sentinel].next
}

// back returns the index of the newest node, or sentinel
func (l *list[K, V]) back() int32 {
	if len(l.nodes) == 0 {
		return sentinel
	}
	return l.nodes[sentinel].prev
}

// push appends a node to the back of the list and returns its index
func (l *list[K, V]) push(key K, value V) int32 {
	var i int32
	if l.free != sentinel {
		i = l.free
		l.free = l.nodes[i].next
	} else {
		if len(l.nodes) == math.MaxInt32 {
			panic("omap: order list is full")
		}
		i = int32(len(l.nodes))
		l.nodes = append(l.nodes, node[K, V]{})
	}
	last := l.nodes[sentinel].prev
	l.nodes[i] = node[K, V]{key: key, value: value, prev: last, next: sentinel}
	l.nodes[last].next = i
	l.nodes[sentinel].prev = i
	l.size++
	return i
}

// pop unlinks the node at i and puts its slot on the free list. The
// slot is zeroed so the arena does not pin the removed key and value.
func (l *list[K, V]) pop(i int32) {
	n := &l.nodes[i]
	l.nodes[n.prev].next = n.next
	l.nodes[n.next].prev = n.prev
	*n = node[K, V]{next: l.free}
	l.free = i
	l.size--
}

// reset drops every node but keeps the arena's backing array
func (l *list[K, V]) reset() {
	if len(l.nodes) == 0 {
		return
	}
	clear(l.nodes)
	l.nodes = l.nodes[:1]
	l.free = sentinel
	l.size = 0
}
