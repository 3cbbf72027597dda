package memory

// DenseTriadic is the dense backend for TriadicMemory: a flat byte
// cube of shape N x N x N, addressed x*N*N + y*N + z. This dominates
// memory (N^3 bytes) but QueryZ sums over contiguous slices since z
// is the innermost dimension.
type DenseTriadic struct {
	n     int
	p     int
	nn    int
	cells []uint8
}

// NewDenseTriadic preallocates a dense triadic memory over bit-space n
// with canonical solidity p.
func NewDenseTriadic(n, p int) *DenseTriadic {
	return &DenseTriadic{
		n:     n,
		p:     p,
		nn:    n * n,
		cells: make([]uint8, n*n*n),
	}
}

func (t *DenseTriadic) cell(x, y, z uint32) int {
	return int(x)*t.nn + int(y)*t.n + int(z)
}

// Store increments, saturating at 255, every cell (x_i, y_j, z_k)
// across all bits of the three input SDRs.
func (t *DenseTriadic) Store(x, y, z []uint32) {
	for _, xi := range x {
		xBase := int(xi) * t.nn
		for _, yj := range y {
			rowBase := xBase + int(yj)*t.n
			for _, zk := range z {
				i := rowBase + int(zk)
				if t.cells[i] < 255 {
					t.cells[i]++
				}
			}
		}
	}
}

// Query recalls the axis left nil among x, y, z. Exactly one of the
// three must be nil; any other combination panics with ErrAxisCount
// rather than silently computing a wrong answer. The SDR shapes are
// not validated here (use CheckedT for a wrapper that validates them
// and returns the axis error instead of panicking).
func (t *DenseTriadic) Query(x, y, z []uint32) []uint32 {
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

// QueryZ sums T[x_i, y_j, :] over all bits of x and y and binarizes
// the result.
func (t *DenseTriadic) QueryZ(x, y []uint32) []uint32 {
	sums := make([]uint32, t.n)
	for _, xi := range x {
		xBase := int(xi) * t.nn
		for _, yj := range y {
			base := xBase + int(yj)*t.n
			row := t.cells[base : base+t.n]
			for k, v := range row {
				sums[k] += uint32(v)
			}
		}
	}
	return binarize(sums, t.p)
}

// QueryX sums T[:, y_j, z_k] over all bits of y and z and binarizes
// the result.
func (t *DenseTriadic) QueryX(y, z []uint32) []uint32 {
	sums := make([]uint32, t.n)
	for i := 0; i < t.n; i++ {
		xBase := i * t.nn
		var acc uint32
		for _, yj := range y {
			rowBase := xBase + int(yj)*t.n
			for _, zk := range z {
				acc += uint32(t.cells[rowBase+int(zk)])
			}
		}
		sums[i] = acc
	}
	return binarize(sums, t.p)
}

// QueryY sums T[x_i, :, z_k] over all bits of x and z and binarizes
// the result.
func (t *DenseTriadic) QueryY(x, z []uint32) []uint32 {
	sums := make([]uint32, t.n)
	for j := 0; j < t.n; j++ {
		colOffset := j * t.n
		var acc uint32
		for _, xi := range x {
			xBase := int(xi)*t.nn + colOffset
			for _, zk := range z {
				acc += uint32(t.cells[xBase+int(zk)])
			}
		}
		sums[j] = acc
	}
	return binarize(sums, t.p)
}

// Size returns the number of nonzero cells in the counter cube.
func (t *DenseTriadic) Size() int {
	count := 0
	for _, v := range t.cells {
		if v != 0 {
			count++
		}
	}
	return count
}
