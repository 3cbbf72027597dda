package memory_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/sdrmem/memory"
)

var _ = Describe("binarize", func() {
	It("is idempotent on the indicator vector of a canonical SDR", func() {
		y := []uint32{1, 4, 7}
		n := 10
		sums := make([]uint32, n)
		for _, b := range y {
			sums[b] = 1
		}
		Expect(memory.Binarize(sums, len(y))).To(Equal(y))
	})

	It("widens the result on ties at the threshold", func() {
		sums := []uint32{3, 3, 3, 3, 1, 0, 0, 0, 0, 0}
		Expect(memory.Binarize(sums, 2)).To(Equal([]uint32{0, 1, 2, 3}))
	})

	It("falls back to all nonzero indices when the threshold is zero", func() {
		sums := []uint32{0, 0, 5, 0, 2}
		Expect(memory.Binarize(sums, 3)).To(Equal([]uint32{2, 4}))
	})
})
