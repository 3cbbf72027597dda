package memory

import "github.com/sarchlab/sdrmem/sdr"

// SparseDyadic is the sparse backend for DyadicMemory: a flat map
// keyed by pair-address, each value a ragged map from column to
// saturating count. Memory scales with the number of touched cells
// rather than N*(N-1)/2*N, at the cost of per-operation map lookups
// instead of contiguous slice indexing, the same trade the
// compressed-sparse-row idiom documents, generalized here to a ragged
// per-row map because the store grows incrementally one pair at a
// time (append-hostile CSR would need repeated rebuilds).
type SparseDyadic struct {
	n   int
	p   int
	mem map[uint64]map[uint32]uint8
}

// NewSparseDyadic creates a sparse dyadic memory over bit-space n with
// canonical solidity p. No storage is allocated until the first Store.
func NewSparseDyadic(n, p int) *SparseDyadic {
	return &SparseDyadic{
		n:   n,
		p:   p,
		mem: make(map[uint64]map[uint32]uint8),
	}
}

// Store associates y with x, using counter semantics: an existing
// cell is incremented (saturating at 255), not merely set.
func (d *SparseDyadic) Store(x, y []uint32) {
	for _, addr := range sdr.PairAddresses(x) {
		row, ok := d.mem[addr]
		if !ok {
			row = make(map[uint32]uint8, len(y))
			d.mem[addr] = row
		}
		for _, b := range y {
			if row[b] < 255 {
				row[b]++
			}
		}
	}
}

// Recall accumulates the rows addressed by x's pair-addresses and
// binarizes the result.
func (d *SparseDyadic) Recall(x []uint32) []uint32 {
	sums := make([]uint32, d.n)
	for _, addr := range sdr.PairAddresses(x) {
		row, ok := d.mem[addr]
		if !ok {
			continue
		}
		for col, v := range row {
			sums[col] += uint32(v)
		}
	}
	return binarize(sums, d.p)
}

// Size returns the total number of stored (address, column) cells.
func (d *SparseDyadic) Size() int {
	count := 0
	for _, row := range d.mem {
		count += len(row)
	}
	return count
}
