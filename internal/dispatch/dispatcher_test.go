package dispatch_test

import (
	"context"
	"errors"
	"math/rand"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/dispatch"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/metrics"
)

func newDispatcher(algo engine.Algorithm) *dispatch.Dispatcher {
	d, err := dispatch.New(algo, engine.Bars, 800)
	Expect(err).NotTo(HaveOccurred())
	return d
}

func load(d *dispatch.Dispatcher, values ...int) {
	seq, err := engine.FromValues(values)
	Expect(err).NotTo(HaveOccurred())
	Expect(d.Load(seq)).To(Succeed())
}

func tickUntilSorted(d *dispatch.Dispatcher) int {
	for ticks := 1; ticks < 1_000_000; ticks++ {
		state, err := d.Tick()
		Expect(err).NotTo(HaveOccurred())
		if state == engine.Sorted {
			return ticks
		}
	}
	Fail("dispatcher never reported sorted")
	return -1
}

type countingObserver struct{ steps int }

func (o *countingObserver) OnStep(engine.Frame) { o.steps++ }

var _ = Describe("Dispatcher", func() {
	It("starts idle and ignores ticks until loaded", func() {
		d := newDispatcher(engine.Bubble)
		Expect(d.State()).To(Equal(engine.Idle))

		state, err := d.Tick()
		Expect(err).NotTo(HaveOccurred())
		Expect(state).To(Equal(engine.Idle))
		Expect(d.Values()).To(BeNil())
	})

	It("rejects bad construction arguments", func() {
		_, err := dispatch.New("bogo", engine.Bars, 100)
		Expect(err).To(MatchError(engine.ErrInvalidArgument))
		_, err = dispatch.New(engine.Bubble, "lines", 100)
		Expect(err).To(MatchError(engine.ErrInvalidArgument))
		_, err = dispatch.New(engine.Bubble, engine.Bars, 0)
		Expect(err).To(MatchError(engine.ErrInvalidArgument))
	})

	It("refuses empty and degenerate sequences and stays idle", func() {
		d := newDispatcher(engine.Gnome)
		Expect(d.Load(nil)).To(MatchError(engine.ErrEmptyInput))

		zeros, _ := engine.FromValues([]int{0, 0, 0})
		Expect(d.Load(zeros)).To(MatchError(engine.ErrDegenerateSequence))
		Expect(d.State()).To(Equal(engine.Idle))
	})

	It("goes straight to sorted for sorted input", func() {
		d := newDispatcher(engine.Selection)
		load(d, 2, 2, 2)
		Expect(d.State()).To(Equal(engine.Sorted))

		state, _ := d.Tick()
		Expect(state).To(Equal(engine.Sorted))
		Expect(d.Stats().Steps).To(BeZero())
	})

	It("computes display metadata once at load", func() {
		d := newDispatcher(engine.Bubble)
		load(d, 3, 8, 1, 4)
		Expect(d.Metadata().MaxValue).To(Equal(8))
		Expect(d.Metadata().UnitWidth).To(Equal(200.0))

		tickUntilSorted(d)
		Expect(d.Metadata().MaxValue).To(Equal(8))
	})

	for _, algo := range algorithms.Names() {
		algo := algo

		It("drives "+string(algo)+" to a sorted permutation and then stops stepping", func() {
			r := rand.New(rand.NewSource(int64(len(algo))))
			seq, err := engine.NewRandom(64, r)
			Expect(err).NotTo(HaveOccurred())
			original := seq.Values()

			d := newDispatcher(algo)
			Expect(d.Load(seq)).To(Succeed())
			Expect(d.State()).To(Equal(engine.Running))

			tickUntilSorted(d)

			want := append([]int(nil), original...)
			sort.Ints(want)
			Expect(d.Values()).To(Equal(want))

			stats := d.Stats()
			for i := 0; i < 3; i++ {
				state, err := d.Tick()
				Expect(err).NotTo(HaveOccurred())
				Expect(state).To(Equal(engine.Sorted))
			}
			Expect(d.Stats()).To(Equal(stats))
		})
	}

	Describe("switching algorithms mid-run", func() {
		for _, from := range algorithms.Names() {
			for _, to := range algorithms.Names() {
				from, to := from, to

				It("makes "+string(to)+" after "+string(from)+" behave like a fresh run", func() {
					seq, _ := engine.NewRandom(24, rand.New(rand.NewSource(9)))
					d := newDispatcher(from)
					Expect(d.Load(seq)).To(Succeed())
					for i := 0; i < 2 && d.State() == engine.Running; i++ {
						_, err := d.Tick()
						Expect(err).NotTo(HaveOccurred())
					}
					if d.State() != engine.Running {
						Skip("sorted before the switch")
					}
					snapshot := d.Values()

					Expect(d.SwitchAlgorithm(to)).To(Succeed())
					Expect(d.Algorithm()).To(Equal(to))
					_, err := d.Tick()
					Expect(err).NotTo(HaveOccurred())

					fresh := newDispatcher(to)
					load(fresh, snapshot...)
					_, err = fresh.Tick()
					Expect(err).NotTo(HaveOccurred())

					Expect(d.Values()).To(Equal(fresh.Values()))
					Expect(d.Cursor()).To(Equal(fresh.Cursor()))
				})
			}
		}

		It("rejects unknown algorithms and keeps the current one", func() {
			d := newDispatcher(engine.Bubble)
			Expect(d.SwitchAlgorithm("bogo")).To(MatchError(engine.ErrInvalidArgument))
			Expect(d.Algorithm()).To(Equal(engine.Bubble))
		})
	})

	It("restarts from the originally loaded values with a fresh cursor", func() {
		d := newDispatcher(engine.Insertion)
		load(d, 4, 3, 2, 1)
		tickUntilSorted(d)

		Expect(d.Restart()).To(Succeed())
		Expect(d.State()).To(Equal(engine.Running))
		Expect(d.Values()).To(Equal([]int{4, 3, 2, 1}))
		Expect(d.Stats()).To(Equal(engine.Stats{}))
		Expect(d.Cursor().Index).To(Equal(1))
	})

	It("treats draw method selection as pure configuration", func() {
		d := newDispatcher(engine.Gnome)
		load(d, 2, 1)
		d.SetDrawMethod(engine.Points)
		Expect(d.DrawMethod()).To(Equal(engine.Points))
		Expect(d.Values()).To(Equal([]int{2, 1}))
		Expect(d.Stats().Steps).To(BeZero())
	})

	It("feeds metrics and observers once per step", func() {
		d := newDispatcher(engine.Bubble)
		inv := metrics.NewInversions(100)
		obs := &countingObserver{}
		d.AddMetric(inv)
		d.AddObserver(obs)
		load(d, 5, 4, 3, 2, 1)

		ticks := tickUntilSorted(d)

		Expect(obs.steps).To(Equal(ticks))
		Expect(inv.History()).To(HaveLen(ticks))
		Expect(inv.History()[0]).To(Equal(6.0))
		Expect(d.Metrics()).To(HaveKeyWithValue("inversions", 0.0))
	})

	It("snapshots frames without aliasing the sequence", func() {
		d := newDispatcher(engine.Gnome)
		load(d, 3, 1, 2)
		f := d.Frame()
		f.Values[0] = 100

		Expect(d.Values()).To(Equal([]int{3, 1, 2}))
		Expect(f.Touched).To(Equal([2]int{-1, -1}))
		Expect(f.Algorithm).To(Equal(engine.Gnome))
	})
})

var _ = Describe("StepError", func() {
	It("wraps stepper failures with the step number", func() {
		var stepErr *engine.StepError
		err := error(&engine.StepError{Algorithm: engine.Gnome, Step: 2, Wrapped: engine.ErrStepAfterCompletion})
		Expect(errors.As(err, &stepErr)).To(BeTrue())
		Expect(stepErr.Step).To(Equal(2))
	})
})

var _ = Describe("Drive", func() {
	It("runs headless until sorted", func() {
		d := newDispatcher(engine.Cocktail)
		load(d, 9, 7, 5, 3, 1, 2, 4, 6, 8)

		res, err := dispatch.Drive(context.Background(), d, 0)

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Final).To(Equal(engine.Sorted))
		Expect(res.Quit).To(BeFalse())
		Expect(res.Stats.Steps).To(Equal(res.Ticks))
	})
})
