package sdr_test

import (
	"math/rand"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/sdrmem/sdr"
)

var _ = Describe("SDR utilities", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(1))
	})

	Describe("Random", func() {
		It("returns exactly P sorted, distinct bits in [0,N)", func() {
			x := sdr.Random(rng, 1000, 10)
			Expect(x).To(HaveLen(10))
			Expect(sort.SliceIsSorted(x, func(i, j int) bool { return x[i] < x[j] })).To(BeTrue())

			seen := map[uint32]bool{}
			for _, b := range x {
				Expect(b).To(BeNumerically("<", 1000))
				Expect(seen[b]).To(BeFalse())
				seen[b] = true
			}
		})
	})

	Describe("Near", func() {
		It("keeps the same solidity and overlaps in P-k bits", func() {
			x := sdr.Random(rng, 1000, 10)
			y := sdr.Near(rng, x, 1000, 3)
			Expect(y).To(HaveLen(10))
			Expect(sdr.Overlap(x, y)).To(Equal(7))
		})
	})

	Describe("RandomSeries", func() {
		It("produces SDRs with zero overlap between consecutive pairs", func() {
			series := sdr.RandomSeries(rng, 5, 1000, 10)
			Expect(series).To(HaveLen(5))
			for i := 1; i < len(series); i++ {
				Expect(sdr.Overlap(series[i-1], series[i])).To(Equal(0))
			}
		})
	})

	Describe("set laws", func() {
		It("union is commutative", func() {
			a := sdr.Random(rng, 1000, 10)
			b := sdr.Random(rng, 1000, 10)
			Expect(sdr.Union(a, b)).To(Equal(sdr.Union(b, a)))
		})

		It("intersection is a subset of both operands", func() {
			a := sdr.Random(rng, 1000, 10)
			b := sdr.Near(rng, a, 1000, 4)
			inter := sdr.Intersection(a, b)
			for _, v := range inter {
				Expect(a).To(ContainElement(v))
				Expect(b).To(ContainElement(v))
			}
		})

		It("overlap never exceeds the smaller operand's size", func() {
			a := sdr.Random(rng, 1000, 10)
			b := sdr.Random(rng, 500, 7)
			Expect(sdr.Overlap(a, b)).To(BeNumerically("<=", 7))
		})

		It("distance(a,a) is 0", func() {
			a := sdr.Random(rng, 1000, 10)
			Expect(sdr.Distance(a, a)).To(Equal(0.0))
		})

		It("distance is 1 when overlap is 0", func() {
			a := sdr.Random(rng, 1000, 10)
			b := sdr.Random(rng, 1000, 10)
			for sdr.Overlap(a, b) != 0 {
				b = sdr.Random(rng, 1000, 10)
			}
			Expect(sdr.Distance(a, b)).To(Equal(1.0))
		})

		It("distance is symmetric", func() {
			a := sdr.Random(rng, 1000, 10)
			b := sdr.Near(rng, a, 1000, 4)
			Expect(sdr.Distance(a, b)).To(Equal(sdr.Distance(b, a)))
		})

		It("union and intersection outputs are strictly ascending", func() {
			a := sdr.Random(rng, 1000, 10)
			b := sdr.Near(rng, a, 1000, 6)
			u := sdr.Union(a, b)
			in := sdr.Intersection(a, b)
			Expect(sort.SliceIsSorted(u, func(i, j int) bool { return u[i] < u[j] })).To(BeTrue())
			Expect(sort.SliceIsSorted(in, func(i, j int) bool { return in[i] < in[j] })).To(BeTrue())
		})
	})

	Describe("PairAddresses", func() {
		It("is invariant across identical SDRs", func() {
			x := sdr.Random(rng, 1000, 10)
			cp := append([]uint32(nil), x...)
			Expect(sdr.PairAddresses(x)).To(Equal(sdr.PairAddresses(cp)))
		})

		It("produces P*(P-1)/2 addresses", func() {
			x := sdr.Random(rng, 1000, 10)
			Expect(sdr.PairAddresses(x)).To(HaveLen(10 * 9 / 2))
		})

		It("differs for SDRs differing in at least two bits", func() {
			x := sdr.Random(rng, 1000, 10)
			y := sdr.Near(rng, x, 1000, 2)
			Expect(sdr.PairAddresses(x)).NotTo(Equal(sdr.PairAddresses(y)))
		})

		It("stays within the dense backend's row space", func() {
			x := sdr.Random(rng, 1000, 10)
			space := sdr.PairSpace(1000)
			for _, a := range sdr.PairAddresses(x) {
				Expect(a).To(BeNumerically("<", space))
			}
		})
	})

	Describe("Validate", func() {
		It("accepts a well-formed SDR", func() {
			x := sdr.Random(rng, 1000, 10)
			Expect(sdr.Validate(x, 1000)).To(Succeed())
		})

		It("rejects an out-of-range bit", func() {
			Expect(sdr.Validate([]uint32{5, 1000}, 1000)).To(MatchError(sdr.ErrOutOfRange))
		})

		It("rejects a duplicate", func() {
			Expect(sdr.Validate([]uint32{5, 5, 9}, 1000)).To(MatchError(sdr.ErrDuplicate))
		})

		It("rejects an unsorted sequence", func() {
			Expect(sdr.Validate([]uint32{9, 5}, 1000)).To(MatchError(sdr.ErrNotSorted))
		})
	})
})
