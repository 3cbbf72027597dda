package memory

import (
	"fmt"

	"github.com/sarchlab/sdrmem/sdr"
)

// CheckedDyadic wraps a DyadicMemory with boundary validation of its
// arguments. The unwrapped backends never validate; validation is
// optional and lives at the boundary, not on the hot path, and
// CheckedDyadic is that boundary for hosts that want it.
type CheckedDyadic struct {
	DyadicMemory
	n int
}

// Checked wraps d with shape validation against bit-space n.
func Checked(d DyadicMemory, n int) *CheckedDyadic {
	return &CheckedDyadic{DyadicMemory: d, n: n}
}

// Store validates x and y before delegating to the wrapped memory.
func (c *CheckedDyadic) Store(x, y []uint32) error {
	if err := sdr.Validate(x, c.n); err != nil {
		return fmt.Errorf("memory: invalid X: %w", err)
	}
	if err := sdr.Validate(y, c.n); err != nil {
		return fmt.Errorf("memory: invalid Y: %w", err)
	}
	c.DyadicMemory.Store(x, y)
	return nil
}

// Recall validates x before delegating to the wrapped memory.
func (c *CheckedDyadic) Recall(x []uint32) ([]uint32, error) {
	if err := sdr.Validate(x, c.n); err != nil {
		return nil, fmt.Errorf("memory: invalid X: %w", err)
	}
	return c.DyadicMemory.Recall(x), nil
}

// CheckedTriadic wraps a TriadicMemory with boundary validation,
// including the axis-count precondition on Query.
type CheckedTriadic struct {
	TriadicMemory
	n int
}

// CheckedT wraps t with shape validation against bit-space n.
func CheckedT(t TriadicMemory, n int) *CheckedTriadic {
	return &CheckedTriadic{TriadicMemory: t, n: n}
}

// Store validates x, y, z before delegating to the wrapped memory.
func (c *CheckedTriadic) Store(x, y, z []uint32) error {
	if err := sdr.Validate(x, c.n); err != nil {
		return fmt.Errorf("memory: invalid X: %w", err)
	}
	if err := sdr.Validate(y, c.n); err != nil {
		return fmt.Errorf("memory: invalid Y: %w", err)
	}
	if err := sdr.Validate(z, c.n); err != nil {
		return fmt.Errorf("memory: invalid Z: %w", err)
	}
	c.TriadicMemory.Store(x, y, z)
	return nil
}

// Query validates that exactly one of x, y, z is nil and that the
// other two are well-formed SDRs before delegating to the wrapped
// memory.
func (c *CheckedTriadic) Query(x, y, z []uint32) ([]uint32, error) {
	nils := 0
	for _, v := range [][]uint32{x, y, z} {
		if v == nil {
			nils++
		}
	}
	if nils != 1 {
		return nil, ErrAxisCount
	}
	if x != nil {
		if err := sdr.Validate(x, c.n); err != nil {
			return nil, fmt.Errorf("memory: invalid X: %w", err)
		}
	}
	if y != nil {
		if err := sdr.Validate(y, c.n); err != nil {
			return nil, fmt.Errorf("memory: invalid Y: %w", err)
		}
	}
	if z != nil {
		if err := sdr.Validate(z, c.n); err != nil {
			return nil, fmt.Errorf("memory: invalid Z: %w", err)
		}
	}
	return c.TriadicMemory.Query(x, y, z), nil
}
