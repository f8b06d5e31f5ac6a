package search

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

func intp(v int) *int { return &v }

var _ = Describe("Engine", func() {
	var e *Engine

	BeforeEach(func() {
		e = New(time.Second)
	})

	Describe("before a search is armed", func() {
		It("starts idle with an empty array", func() {
			Expect(e.Status()).To(Equal(StatusIdle))
			Expect(e.Len()).To(BeZero())
			Expect(e.High()).To(Equal(-1))
			Expect(e.Tick(at(5000))).To(Equal(TransitionNone))
		})

		It("does nothing without a target", func() {
			e.Reset([]int{1, 2, 3}, nil, t0)
			Expect(e.Tick(at(1000))).To(Equal(TransitionNone))
			Expect(e.Tick(at(2000))).To(Equal(TransitionNone))
			Expect(e.Status()).To(Equal(StatusIdle))
		})

		It("does nothing with an empty array", func() {
			e.Reset(nil, intp(3), t0)
			Expect(e.Tick(at(1000))).To(Equal(TransitionNone))
			Expect(e.Status()).To(Equal(StatusIdle))
		})
	})

	Describe("Reset", func() {
		It("initialises the pointers and re-arms the pause", func() {
			e.Reset([]int{1, 3, 5, 7, 9}, intp(9), t0)
			Expect(e.Tick(at(1000))).To(Equal(TransitionPause))
			Expect(e.Tick(at(2000))).To(Equal(TransitionLower))

			e.Reset([]int{2, 4}, intp(4), at(2500))
			Expect(e.Low()).To(Equal(0))
			Expect(e.Mid()).To(Equal(0))
			Expect(e.High()).To(Equal(1))
			Expect(e.Comparisons()).To(BeZero())
			Expect(e.History()).To(BeEmpty())
			Expect(e.Status()).To(Equal(StatusSettling))

			Expect(e.Tick(at(3000))).To(Equal(TransitionNone))
			Expect(e.Tick(at(3500))).To(Equal(TransitionPause))
		})

		It("copies the array", func() {
			arr := []int{1, 2, 3}
			e.Reset(arr, intp(2), t0)
			arr[0] = 100
			Expect(e.Array()).To(Equal([]int{1, 2, 3}))
		})

		It("never sorts", func() {
			e.Reset([]int{3, 1, 2}, intp(1), t0)
			Expect(e.Array()).To(Equal([]int{3, 1, 2}))
		})
	})

	Describe("Tick", func() {
		It("finds a target at the first midpoint", func() {
			e.Reset([]int{1, 3, 5, 7, 9}, intp(5), t0)

			Expect(e.Tick(at(1000))).To(Equal(TransitionPause))
			Expect(e.Comparisons()).To(BeZero())

			Expect(e.Tick(at(2000))).To(Equal(TransitionFound))
			Expect(e.Mid()).To(Equal(2))
			Expect(e.Low()).To(Equal(0))
			Expect(e.High()).To(Equal(4))
			Expect(e.Status()).To(Equal(StatusFound))

			Expect(e.Tick(at(3000))).To(Equal(TransitionNone))
			Expect(e.Comparisons()).To(Equal(1))
		})

		It("exhausts the interval for a missing target", func() {
			e.Reset([]int{1, 3, 5, 7, 9}, intp(8), t0)
			Expect(e.Tick(at(1000))).To(Equal(TransitionPause))

			Expect(e.Tick(at(2000))).To(Equal(TransitionLower))
			Expect([]int{e.Low(), e.Mid(), e.High()}).To(Equal([]int{3, 2, 4}))

			Expect(e.Tick(at(3000))).To(Equal(TransitionLower))
			Expect([]int{e.Low(), e.Mid(), e.High()}).To(Equal([]int{4, 3, 4}))

			Expect(e.Tick(at(4000))).To(Equal(TransitionUpper))
			Expect([]int{e.Low(), e.Mid(), e.High()}).To(Equal([]int{4, 4, 3}))

			Expect(e.Status()).To(Equal(StatusExhausted))
			Expect(e.Tick(at(5000))).To(Equal(TransitionNone))

			mids := []int{}
			for _, s := range e.History() {
				mids = append(mids, s.Mid)
				Expect(s.Transition).NotTo(Equal(TransitionFound))
			}
			Expect(mids).To(Equal([]int{2, 3, 4}))
		})

		It("waits for the full interval", func() {
			e.Reset([]int{1, 2, 3}, intp(3), t0)
			Expect(e.Tick(at(999))).To(Equal(TransitionNone))
			Expect(e.Tick(at(1000))).To(Equal(TransitionPause))
			Expect(e.Tick(at(1999))).To(Equal(TransitionNone))
			Expect(e.Tick(at(2000))).To(Equal(TransitionLower))
		})

		It("takes at most one step per call however late it is", func() {
			e.Reset([]int{1, 3, 5, 7, 9, 11, 13}, intp(13), t0)
			late := t0.Add(time.Hour)

			Expect(e.Tick(late)).To(Equal(TransitionPause))
			Expect(e.Tick(late)).To(Equal(TransitionNone))
			Expect(e.Comparisons()).To(BeZero())

			Expect(e.Tick(late.Add(10 * time.Hour))).To(Equal(TransitionLower))
			Expect(e.Comparisons()).To(Equal(1))
		})

		It("panics if the pointers leave the array", func() {
			e.Reset([]int{1, 2, 3}, intp(2), t0)
			e.Tick(at(1000))
			e.high = 7
			Expect(func() { e.Tick(at(2000)) }).To(PanicWith(MatchError(ErrIndexRange)))
		})
	})

	Describe("SetTarget", func() {
		It("keeps the pointers", func() {
			e.Reset([]int{1, 3, 5, 7, 9}, intp(9), t0)
			e.Tick(at(1000))
			e.Tick(at(2000))
			Expect(e.Low()).To(Equal(3))

			e.SetTarget(7)
			v, ok := e.Target()
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(7))
			Expect(e.Low()).To(Equal(3))
			Expect(e.High()).To(Equal(4))

			Expect(e.Tick(at(3000))).To(Equal(TransitionFound))
			Expect(e.Mid()).To(Equal(3))
		})

		It("arms an idle engine", func() {
			e.Reset([]int{4, 8}, nil, t0)
			Expect(e.Status()).To(Equal(StatusIdle))
			e.SetTarget(8)
			Expect(e.Status()).To(Equal(StatusSettling))

			e.ClearTarget()
			Expect(e.Status()).To(Equal(StatusIdle))
		})
	})

	Describe("Markers", func() {
		It("hides mid until the first comparison and after exhaustion", func() {
			e.Reset([]int{1, 3, 5, 7, 9}, intp(8), t0)
			m := e.Markers()
			Expect(m.Low).To(Equal(Marker{Index: 0, Visible: true}))
			Expect(m.High).To(Equal(Marker{Index: 4, Visible: true}))
			Expect(m.Mid.Visible).To(BeFalse())

			e.Tick(at(1000))
			Expect(e.Markers().Mid.Visible).To(BeFalse())

			e.Tick(at(2000))
			Expect(e.Markers().Mid).To(Equal(Marker{Index: 2, Visible: true}))

			e.Tick(at(3000))
			e.Tick(at(4000))
			m = e.Markers()
			Expect(m.Mid.Visible).To(BeFalse())
			Expect(m.Low).To(Equal(Marker{Index: 4, Visible: true}))
			Expect(m.High).To(Equal(Marker{Index: 3, Visible: true}))
		})

		It("hides pointers that fall off either end", func() {
			e.Reset([]int{1, 3}, intp(0), t0)
			e.Tick(at(1000))
			e.Tick(at(2000))
			Expect(e.Status()).To(Equal(StatusExhausted))
			Expect(e.Markers().High.Visible).To(BeFalse())
		})
	})

	Describe("SetInterval", func() {
		It("ignores non-positive values", func() {
			e.SetInterval(0)
			Expect(e.Interval()).To(Equal(time.Second))
			e.SetInterval(250 * time.Millisecond)
			Expect(e.Interval()).To(Equal(250 * time.Millisecond))
		})
	})
})

var _ = Describe("Run", func() {
	sorted := func(n int) []int {
		arr := make([]int, n)
		for i := range arr {
			arr[i] = (i / 2) * 3
		}
		return arr
	}

	It("finds every present value within the worst case bound", func() {
		for n := 1; n <= 40; n++ {
			arr := sorted(n)
			for _, target := range arr {
				steps := Run(arr, target, time.Second, t0)
				Expect(steps).NotTo(BeEmpty())
				Expect(len(steps)).To(BeNumerically("<=", MaxComparisons(n)), "n=%d target=%d", n, target)

				last := steps[len(steps)-1]
				Expect(last.Transition).To(Equal(TransitionFound))
				Expect(arr[last.Mid]).To(Equal(target))
				Expect(last.Low).To(BeNumerically("<=", last.Mid))
				Expect(last.Mid).To(BeNumerically("<=", last.High))
			}
		}
	})

	It("exhausts for every absent value", func() {
		for n := 1; n <= 40; n++ {
			arr := sorted(n)
			for _, target := range []int{-1, arr[n-1] + 1, arr[n/2] + 1} {
				steps := Run(arr, target, time.Second, t0)
				Expect(steps).NotTo(BeEmpty())
				for _, s := range steps {
					Expect(s.Transition).NotTo(Equal(TransitionFound))
				}
				last := steps[len(steps)-1]
				Expect(last.Low).To(BeNumerically(">", last.High))
			}
		}
	})

	It("is deterministic", func() {
		arr := []int{-4, 0, 2, 2, 9, 15, 21, 30}
		Expect(Run(arr, 21, time.Second, t0)).To(Equal(Run(arr, 21, time.Second, t0)))
	})

	It("reports one second per step after the pause", func() {
		steps := Run([]int{1, 3, 5, 7, 9}, 8, time.Second, t0)
		Expect(steps).To(HaveLen(3))
		Expect(steps[0].At).To(Equal(at(2000)))
		Expect(steps[2].At).To(Equal(at(4000)))
	})
})

var _ = DescribeTable("MaxComparisons",
	func(n, want int) {
		Expect(MaxComparisons(n)).To(Equal(want))
	},
	Entry("empty", 0, 0),
	Entry("one", 1, 1),
	Entry("five", 5, 3),
	Entry("seven", 7, 3),
	Entry("eight", 8, 4),
	Entry("hundred", 100, 7),
)

var _ = DescribeTable("Transition strings",
	func(tr Transition, want string) {
		Expect(tr.String()).To(Equal(want))
	},
	Entry("none", TransitionNone, "none"),
	Entry("pause", TransitionPause, "pause"),
	Entry("lower", TransitionLower, "lower"),
	Entry("upper", TransitionUpper, "upper"),
	Entry("found", TransitionFound, "found"),
)
