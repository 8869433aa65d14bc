package omap

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// Equaler is a key equality strategy. Keys that are Equal must have the
// same Hash.
type Equaler[K any] interface {
	Equal(a, b K) bool
	Hash(key K) uint64
}

type funcEqualer[K any] struct {
	equal func(a, b K) bool
	hash  func(key K) uint64
}

func (f funcEqualer[K]) Equal(a, b K) bool { return f.equal(a, b) }
func (f funcEqualer[K]) Hash(key K) uint64 { return f.hash(key) }

// EqualerFunc builds an Equaler from a pair of functions
func EqualerFunc[K any](equal func(a, b K) bool, hash func(key K) uint64) Equaler[K] {
	return funcEqualer[K]{equal: equal, hash: hash}
}

type foldCase struct{}

func (foldCase) Equal(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Hash folds every rune to the smallest member of its case orbit, so
// that any two strings EqualFold reports as equal hash the same.
func (foldCase) Hash(key string) uint64 {
	buf := make([]byte, 0, len(key))
	for _, r := range key {
		buf = utf8.AppendRune(buf, foldRune(r))
	}
	return xxhash.Sum64(buf)
}

func foldRune(r rune) rune {
	if r < utf8.RuneSelf {
		if 'a' <= r && r <= 'z' {
			r -= 'a' - 'A'
		}
		return r
	}
	m := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < m {
			m = f
		}
	}
	return m
}

// FoldCase compares string keys case-insensitively, using Unicode
// simple case folding.
func FoldCase() Equaler[string] {
	return foldCase{}
}

// defaultValueEqual returns == for value types whose comparison can
// never panic, and reflect.DeepEqual for everything else.
func defaultValueEqual[V any]() func(a, b V) bool {
	if strictlyComparable(reflect.TypeOf((*V)(nil)).Elem()) {
		return func(a, b V) bool {
			return any(a) == any(b)
		}
	}
	return func(a, b V) bool {
		return reflect.DeepEqual(a, b)
	}
}

// strictlyComparable reports whether == on t is defined and cannot fail
// at run time, which excludes interfaces and anything holding one.
func strictlyComparable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return false
	case reflect.Array:
		return strictlyComparable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !strictlyComparable(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return t.Comparable()
}
