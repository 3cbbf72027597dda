package memory_test

import (
	"errors"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/sdrmem/memory"
	"github.com/sarchlab/sdrmem/sdr"
)

var _ = Describe("CheckedDyadic", func() {
	const n, p = 50, 6

	var (
		rng     *rand.Rand
		checked *memory.CheckedDyadic
	)

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(1))
		checked = memory.Checked(memory.NewDenseDyadic(n, p), n)
	})

	It("delegates Store and Recall for well-formed SDRs", func() {
		x := sdr.Random(rng, n, p)
		y := sdr.Random(rng, n, p)

		Expect(checked.Store(x, y)).To(Succeed())

		got, err := checked.Recall(x)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(y))
	})

	It("rejects Store when X is out of range", func() {
		y := sdr.Random(rng, n, p)
		bad := []uint32{uint32(n)}

		err := checked.Store(bad, y)
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, sdr.ErrOutOfRange)).To(BeTrue())
	})

	It("rejects Store when Y has a duplicate bit", func() {
		x := sdr.Random(rng, n, p)
		bad := []uint32{1, 1, 2}

		err := checked.Store(x, bad)
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, sdr.ErrDuplicate)).To(BeTrue())
	})

	It("rejects Recall when X is not sorted", func() {
		bad := []uint32{3, 1, 2}

		_, err := checked.Recall(bad)
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, sdr.ErrNotSorted)).To(BeTrue())
	})
})

var _ = Describe("CheckedTriadic", func() {
	const n, p = 50, 6

	var (
		rng     *rand.Rand
		checked *memory.CheckedTriadic
	)

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(2))
		checked = memory.CheckedT(memory.NewDenseTriadic(n, p), n)
	})

	It("delegates Store and Query for well-formed SDRs", func() {
		x := sdr.Random(rng, n, p)
		y := sdr.Random(rng, n, p)
		z := sdr.Random(rng, n, p)

		Expect(checked.Store(x, y, z)).To(Succeed())

		got, err := checked.Query(x, y, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(z))
	})

	It("rejects Store when Z is out of range", func() {
		x := sdr.Random(rng, n, p)
		y := sdr.Random(rng, n, p)
		bad := []uint32{uint32(n)}

		err := checked.Store(x, y, bad)
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, sdr.ErrOutOfRange)).To(BeTrue())
	})

	DescribeTable("rejects Query when the nil-axis count is wrong",
		func(x, y, z []uint32) {
			_, err := checked.Query(x, y, z)
			Expect(err).To(MatchError(memory.ErrAxisCount))
		},
		Entry("no axis nil", sdr.Random(rand.New(rand.NewSource(3)), n, p), sdr.Random(rand.New(rand.NewSource(4)), n, p), sdr.Random(rand.New(rand.NewSource(5)), n, p)),
		Entry("two axes nil", sdr.Random(rand.New(rand.NewSource(6)), n, p), nil, nil),
		Entry("all three axes nil", nil, nil, nil),
	)

	It("rejects Query when the remaining axes are malformed", func() {
		good := sdr.Random(rng, n, p)
		bad := []uint32{5, 4}

		_, err := checked.Query(good, bad, nil)
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, sdr.ErrNotSorted)).To(BeTrue())
	})
})
