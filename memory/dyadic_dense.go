package memory

import "github.com/sarchlab/sdrmem/sdr"

// DenseDyadic is the dense backend for DyadicMemory: a flat byte
// counter array of shape (N*(N-1)/2, N), addressed
// row*N + column. Counters saturate at 255 rather than wrapping,
// matching the counter-semantics resolution of the dyadic memory's
// open question for both backends.
//
// The full counter array is preallocated at construction time rather
// than grown on demand.
type DenseDyadic struct {
	n     int
	p     int
	rows  uint64
	cells []uint8
}

// NewDenseDyadic preallocates a dense dyadic memory over bit-space n
// with canonical solidity p.
func NewDenseDyadic(n, p int) *DenseDyadic {
	rows := sdr.PairSpace(n)
	return &DenseDyadic{
		n:     n,
		p:     p,
		rows:  rows,
		cells: make([]uint8, rows*uint64(n)),
	}
}

func (d *DenseDyadic) index(row uint64, col uint32) uint64 {
	return row*uint64(d.n) + uint64(col)
}

// Store associates y with x: every cell (addr, y-bit) for each
// pair-address addr of x and each bit of y is incremented, saturating
// at 255.
func (d *DenseDyadic) Store(x, y []uint32) {
	for _, addr := range sdr.PairAddresses(x) {
		for _, b := range y {
			i := d.index(addr, b)
			if d.cells[i] < 255 {
				d.cells[i]++
			}
		}
	}
}

// Recall accumulates, for every pair-address of x, the corresponding
// row of the counter matrix, then binarizes the result to the
// memory's solidity.
func (d *DenseDyadic) Recall(x []uint32) []uint32 {
	sums := make([]uint32, d.n)
	for _, addr := range sdr.PairAddresses(x) {
		base := addr * uint64(d.n)
		row := d.cells[base : base+uint64(d.n)]
		for col, v := range row {
			sums[col] += uint32(v)
		}
	}
	return binarize(sums, d.p)
}

// Size returns the number of nonzero cells in the counter matrix.
func (d *DenseDyadic) Size() int {
	count := 0
	for _, v := range d.cells {
		if v != 0 {
			count++
		}
	}
	return count
}
