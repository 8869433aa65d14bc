package omap

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateKey           = errors.New("omap: key already exists")
	ErrKeyNotFound            = errors.New("omap: key not found")
	ErrInvalidArgument        = errors.New("omap: invalid argument")
	ErrUnsupportedOperation   = errors.New("omap: operation not supported on a read-only view")
	ErrConcurrentModification = errors.New("omap: map modified during iteration")
)

// ConcurrentModificationError is reported by an iterator that observed
// an insert, remove or clear after it was started. It is also the value
// All and Backward panic with.
type ConcurrentModificationError struct {
	Started uint64 // structural version when the walk began
	Current uint64 // structural version at the failing step
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s (version %d, now %d)", ErrConcurrentModification, e.Started, e.Current)
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}
