package sdr

// PairAddresses returns the pair-address stream for x: the strictly
// lower-triangular linearization addr(x_i, x_j) = x_i*(x_i-1)/2 + x_j
// for i from 1 to len(x)-1 and j from 0 to i-1, in that exact order.
//
// For an SDR of solidity P this produces P*(P-1)/2 addresses in
// [0, N*(N-1)/2). Equal SDRs always yield identical address
// sequences; this is the property the dyadic store relies on to make
// recall deterministic.
func PairAddresses(x []uint32) []uint64 {
	p := len(x)
	addrs := make([]uint64, 0, p*(p-1)/2)
	for i := 1; i < p; i++ {
		xi := uint64(x[i])
		for j := 0; j < i; j++ {
			addrs = append(addrs, xi*(xi-1)/2+uint64(x[j]))
		}
	}
	return addrs
}

// PairSpace returns N*(N-1)/2, the number of distinct pair-addresses
// available for bit-space size n: the row count of the dense dyadic
// backend's counter matrix.
func PairSpace(n int) uint64 {
	nn := uint64(n)
	return nn * (nn - 1) / 2
}
