package omap

// Option configures an OrderedMap at construction
type Option[K comparable, V any] func(*OrderedMap[K, V])

// WithKeyEqualer makes the map compare keys with eq instead of ==. A nil
// eq keeps the builtin equality.
func WithKeyEqualer[K comparable, V any](eq Equaler[K]) Option[K, V] {
	return func(om *OrderedMap[K, V]) {
		om.eq = eq
	}
}

// WithValueEqual sets the value equality used by Contains, RemoveEntry
// and the value view. A nil fn keeps the default.
func WithValueEqual[K comparable, V any](fn func(a, b V) bool) Option[K, V] {
	return func(om *OrderedMap[K, V]) {
		if fn != nil {
			om.equal = fn
		}
	}
}
