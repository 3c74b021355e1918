package algorithms_test

import (
	"math/rand"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/engine"
)

func mustSeq(values ...int) *engine.Sequence {
	seq, err := engine.FromValues(values)
	Expect(err).NotTo(HaveOccurred())
	return seq
}

// runToCompletion steps until the algorithm reports done and returns the step count.
func runToCompletion(st engine.Stepper, seq *engine.Sequence) int {
	limit := seq.Len()*seq.Len()*4 + 16
	for steps := 1; steps <= limit; steps++ {
		done, err := st.Step(seq)
		Expect(err).NotTo(HaveOccurred())
		if done {
			return steps
		}
	}
	Fail("algorithm did not finish")
	return -1
}

func sortedCopy(values []int) []int {
	c := append([]int(nil), values...)
	sort.Ints(c)
	return c
}

var _ = Describe("step algorithms", func() {
	inputs := map[string][]int{
		"reversed":   {9, 8, 7, 6, 5, 4, 3, 2, 1},
		"sorted":     {1, 2, 3, 4, 5},
		"duplicates": {3, 1, 3, 2, 1, 2},
		"all equal":  {4, 4, 4, 4},
		"pair":       {2, 1},
		"negative":   {0, -4, 7, -4, 2},
	}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 5; i++ {
		values := make([]int, 2+r.Intn(60))
		for j := range values {
			values[j] = r.Intn(40)
		}
		inputs["random"+string(rune('A'+i))] = values
	}

	for _, name := range algorithms.Names() {
		name := name

		Context(string(name), func() {
			for label, values := range inputs {
				label, values := label, values

				It("sorts "+label+" input into a permutation of the original", func() {
					st, err := algorithms.New(name)
					Expect(err).NotTo(HaveOccurred())
					seq := mustSeq(values...)

					runToCompletion(st, seq)

					Expect(seq.IsSorted()).To(BeTrue())
					Expect(seq.Values()).To(Equal(sortedCopy(values)))
				})
			}

			It("refuses to step after completion without touching the sequence", func() {
				st, _ := algorithms.New(name)
				seq := mustSeq(3, 1, 2)
				runToCompletion(st, seq)
				swaps := seq.Swaps()

				done, err := st.Step(seq)

				Expect(done).To(BeTrue())
				Expect(err).To(MatchError(engine.ErrStepAfterCompletion))
				Expect(seq.Values()).To(Equal([]int{1, 2, 3}))
				Expect(seq.Swaps()).To(Equal(swaps))
			})

			It("reports its own name", func() {
				st, _ := algorithms.New(name)
				Expect(st.Name()).To(Equal(name))
				Expect(algorithms.Describe(name)).NotTo(BeEmpty())
			})
		})
	}

	Describe("bubble", func() {
		It("performs one inner pass per step", func() {
			st := algorithms.NewBubble()
			seq := mustSeq(5, 4, 3, 2, 1)

			done, err := st.Step(seq)
			Expect(err).NotTo(HaveOccurred())
			Expect(done).To(BeFalse())
			Expect(seq.Values()).To(Equal([]int{4, 3, 2, 1, 5}))
			Expect(seq.Comparisons()).To(Equal(4))

			for i := 0; i < 3; i++ {
				done, err = st.Step(seq)
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(done).To(BeTrue())
			Expect(seq.Values()).To(Equal([]int{1, 2, 3, 4, 5}))
		})
	})

	Describe("gnome", func() {
		It("follows a deterministic cursor trace", func() {
			st := algorithms.NewGnome()
			seq := mustSeq(3, 1, 2)

			type event struct {
				cursor  int
				swapped [2]int
			}
			var trace []event
			for {
				before := seq.Swaps()
				done, err := st.Step(seq)
				Expect(err).NotTo(HaveOccurred())
				ev := event{cursor: st.Cursor().Index, swapped: [2]int{-1, -1}}
				if seq.Swaps() > before {
					a, b := seq.Touched()
					ev.swapped = [2]int{a, b}
				}
				trace = append(trace, ev)
				if done {
					break
				}
			}

			Expect(trace).To(Equal([]event{
				{cursor: 1, swapped: [2]int{-1, -1}},
				{cursor: 0, swapped: [2]int{0, 1}},
				{cursor: 1, swapped: [2]int{-1, -1}},
				{cursor: 2, swapped: [2]int{-1, -1}},
				{cursor: 1, swapped: [2]int{1, 2}},
				{cursor: 2, swapped: [2]int{-1, -1}},
				{cursor: 3, swapped: [2]int{-1, -1}},
			}))
			Expect(seq.Values()).To(Equal([]int{1, 2, 3}))
		})
	})

	Describe("selection", func() {
		It("makes no swaps on equal values and stops after n-1 steps", func() {
			st := algorithms.NewSelection()
			seq := mustSeq(2, 2, 2)

			steps := runToCompletion(st, seq)

			Expect(steps).To(Equal(2))
			Expect(seq.Swaps()).To(BeZero())
		})

		It("finalizes one position per step", func() {
			st := algorithms.NewSelection()
			seq := mustSeq(4, 3, 1, 2)

			_, _ = st.Step(seq)
			Expect(seq.Values()).To(Equal([]int{1, 3, 4, 2}))
			Expect(st.Cursor().Index).To(Equal(1))
		})
	})

	Describe("insertion", func() {
		It("moves an element at most one position per step", func() {
			st := algorithms.NewInsertion()
			seq := mustSeq(3, 2, 1)

			_, _ = st.Step(seq)
			Expect(seq.Values()).To(Equal([]int{2, 3, 1}))
			Expect(seq.Comparisons()).To(Equal(1))

			done, _ := st.Step(seq)
			Expect(done).To(BeFalse())
			Expect(seq.Values()).To(Equal([]int{2, 1, 3}))
			Expect(seq.Comparisons()).To(Equal(2))
			Expect(st.Cursor().Index).To(Equal(1))

			done, _ = st.Step(seq)
			Expect(done).To(BeTrue())
			Expect(seq.Values()).To(Equal([]int{1, 2, 3}))
		})
	})

	Describe("cocktail", func() {
		It("runs a forward and a backward pass per step", func() {
			st := algorithms.NewCocktail()
			seq := mustSeq(5, 1, 4, 2, 3)

			done, _ := st.Step(seq)
			Expect(done).To(BeFalse())
			Expect(seq.Values()).To(Equal([]int{1, 2, 4, 3, 5}))
			Expect(st.Cursor().Lo).To(Equal(1))
			Expect(st.Cursor().Hi).To(Equal(3))

			done, _ = st.Step(seq)
			Expect(done).To(BeTrue())
			Expect(seq.IsSorted()).To(BeTrue())
		})
	})

	Describe("registry", func() {
		It("rejects unknown names", func() {
			_, err := algorithms.New("bogo")
			Expect(err).To(MatchError(engine.ErrInvalidArgument))
		})

		It("returns a fresh cursor on every call", func() {
			a, _ := algorithms.New(engine.Gnome)
			_, _ = a.Step(mustSeq(1, 2, 3))
			b, _ := algorithms.New(engine.Gnome)
			Expect(b.Cursor().Index).To(BeZero())
			Expect(a.Cursor().Index).To(Equal(1))
		})

		It("lists all five algorithms", func() {
			Expect(algorithms.Names()).To(HaveLen(5))
		})
	})
})
