package bench

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// KeyGen produces the keys a fixture is populated with, plus one key
// that is never among them
type KeyGen[K comparable] interface {
	Keys(n int) []K
	Missing() K
}

// Ints returns the integers 0..n-1 as keys
func Ints[K constraints.Integer](n int) []K {
	return lo.Map(lo.Range(n), func(i int, _ int) K {
		return K(i)
	})
}

// IntKeys generates sequential int keys
type IntKeys struct{}

func (IntKeys) Keys(n int) []int { return Ints[int](n) }
func (IntKeys) Missing() int     { return -1 }

// UUIDKeys generates random UUID string keys
type UUIDKeys struct{}

func (UUIDKeys) Keys(n int) []string {
	return lo.Times(n, func(int) string {
		return uuid.NewString()
	})
}

// Missing returns the nil UUID, which uuid.NewString never produces
func (UUIDKeys) Missing() string { return uuid.Nil.String() }
