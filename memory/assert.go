package memory

var (
	_ DyadicMemory  = (*DenseDyadic)(nil)
	_ DyadicMemory  = (*SparseDyadic)(nil)
	_ TriadicMemory = (*DenseTriadic)(nil)
	_ TriadicMemory = (*SparseTriadic)(nil)
)
