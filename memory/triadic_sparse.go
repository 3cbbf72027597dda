package memory

// SparseTriadic is the sparse backend for TriadicMemory: three
// parallel outer-to-inner map structures, one per query axis, so
// every query sums over a map keyed by the other two bits rather than
// scanning a dense cube. This triples storage relative to a single
// map but makes all three queries equally cheap, one parallel
// structure per axis rather than one dense cube.
type SparseTriadic struct {
	n  int
	p  int
	tx map[[2]uint32]map[uint32]uint8 // keyed by (y, z) -> x -> count
	ty map[[2]uint32]map[uint32]uint8 // keyed by (x, z) -> y -> count
	tz map[[2]uint32]map[uint32]uint8 // keyed by (x, y) -> z -> count
}

// NewSparseTriadic creates a sparse triadic memory over bit-space n
// with canonical solidity p.
func NewSparseTriadic(n, p int) *SparseTriadic {
	return &SparseTriadic{
		n:  n,
		p:  p,
		tx: make(map[[2]uint32]map[uint32]uint8),
		ty: make(map[[2]uint32]map[uint32]uint8),
		tz: make(map[[2]uint32]map[uint32]uint8),
	}
}

func bump(m map[[2]uint32]map[uint32]uint8, outer [2]uint32, inner uint32) {
	leaf, ok := m[outer]
	if !ok {
		leaf = make(map[uint32]uint8, 1)
		m[outer] = leaf
	}
	if leaf[inner] < 255 {
		leaf[inner]++
	}
}

// Store increments, saturating at 255, the leaf entry of all three
// parallel maps for every triple (x_i, y_j, z_k).
func (t *SparseTriadic) Store(x, y, z []uint32) {
	for _, xi := range x {
		for _, yj := range y {
			for _, zk := range z {
				bump(t.tx, [2]uint32{yj, zk}, xi)
				bump(t.ty, [2]uint32{xi, zk}, yj)
				bump(t.tz, [2]uint32{xi, yj}, zk)
			}
		}
	}
}

// Query recalls the axis left nil among x, y, z. Exactly one of the
// three must be nil; any other combination panics, per the same
// unchecked-core contract as DenseTriadic.Query.
func (t *SparseTriadic) Query(x, y, z []uint32) []uint32 {
	switch {
	case z == nil && x != nil && y != nil:
		return t.QueryZ(x, y)
	case x == nil && y != nil && z != nil:
		return t.QueryX(y, z)
	case y == nil && x != nil && z != nil:
		return t.QueryY(x, z)
	default:
		panic(ErrAxisCount)
	}
}

func sumLeaves(m map[[2]uint32]map[uint32]uint8, a, b []uint32, sums []uint32) {
	for _, av := range a {
		for _, bv := range b {
			leaf, ok := m[[2]uint32{av, bv}]
			if !ok {
				continue
			}
			for k, v := range leaf {
				sums[k] += uint32(v)
			}
		}
	}
}

// QueryX sums tx[(y_j,z_k)] over all bits of y and z.
func (t *SparseTriadic) QueryX(y, z []uint32) []uint32 {
	sums := make([]uint32, t.n)
	sumLeaves(t.tx, y, z, sums)
	return binarize(sums, t.p)
}

// QueryY sums ty[(x_i,z_k)] over all bits of x and z.
func (t *SparseTriadic) QueryY(x, z []uint32) []uint32 {
	sums := make([]uint32, t.n)
	sumLeaves(t.ty, x, z, sums)
	return binarize(sums, t.p)
}

// QueryZ sums tz[(x_i,y_j)] over all bits of x and y.
func (t *SparseTriadic) QueryZ(x, y []uint32) []uint32 {
	sums := make([]uint32, t.n)
	sumLeaves(t.tz, x, y, sums)
	return binarize(sums, t.p)
}

// Size returns the total count of stored (axis, outer, inner) leaf
// entries, summed across all three parallel maps.
func (t *SparseTriadic) Size() int {
	count := 0
	for _, m := range []map[[2]uint32]map[uint32]uint8{t.tx, t.ty, t.tz} {
		for _, leaf := range m {
			count += len(leaf)
		}
	}
	return count
}
