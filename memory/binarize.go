package memory

import "sort"

// Binarize exposes binarize's thresholding rule for callers that want
// to turn their own dense count vector into an SDR outside of a
// DyadicMemory or TriadicMemory instance.
func Binarize(sums []uint32, p int) []uint32 {
	return binarize(sums, p)
}

// binarize turns a dense non-negative count vector into a sparse SDR
// of target solidity p: the threshold is the p-th largest value in
// sums, and every index whose count meets that threshold is returned.
//
// A zero threshold (nothing accumulated p times) falls back to all
// nonzero indices, the "recall failed to produce a P-strength
// response" case the caller treats as unknown. A tied threshold
// widens the result past p bits; callers compare the returned length
// against p to detect ambiguity.
func binarize(sums []uint32, p int) []uint32 {
	sorted := append([]uint32(nil), sums...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	threshold := sorted[len(sorted)-p]

	out := make([]uint32, 0, p)
	if threshold == 0 {
		for i, v := range sums {
			if v != 0 {
				out = append(out, uint32(i))
			}
		}
		return out
	}
	for i, v := range sums {
		if v >= threshold {
			out = append(out, uint32(i))
		}
	}
	return out
}
