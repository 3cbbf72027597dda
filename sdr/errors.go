package sdr

import (
	"errors"
	"fmt"
)

// Shape errors returned by Validate. The core itself does not call
// Validate on its hot path; shape violations are undefined behavior
// once inside the store, and callers that want a precondition check
// at the boundary call it explicitly.
var (
	ErrNotSorted  = errors.New("sdr: indices not strictly ascending")
	ErrDuplicate  = errors.New("sdr: duplicate index")
	ErrOutOfRange = errors.New("sdr: index out of range [0,N)")
)

// Validate reports whether x is a well-formed SDR over [0, n): sorted
// strictly ascending, no duplicates, every value below n.
func Validate(x []uint32, n int) error {
	for i, b := range x {
		if b >= uint32(n) {
			return fmt.Errorf("%w: bit %d at position %d, N=%d", ErrOutOfRange, b, i, n)
		}
		if i > 0 {
			if x[i-1] == b {
				return fmt.Errorf("%w: bit %d repeated at position %d", ErrDuplicate, b, i)
			}
			if x[i-1] > b {
				return fmt.Errorf("%w: position %d (%d) follows position %d (%d)", ErrNotSorted, i, b, i-1, x[i-1])
			}
		}
	}
	return nil
}
