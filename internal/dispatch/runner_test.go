package dispatch_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortvis/internal/dispatch"
	"github.com/san-kum/sortvis/internal/engine"
)

// scriptedEvents returns the batch at index poll, then nothing.
type scriptedEvents struct {
	polls   int
	batches map[int][]engine.Event
}

func (s *scriptedEvents) Poll() []engine.Event {
	ev := s.batches[s.polls]
	s.polls++
	return ev
}

type recordingRenderer struct {
	frames []engine.Frame
	fail   error
}

func (r *recordingRenderer) Render(f engine.Frame) error {
	if r.fail != nil {
		return r.fail
	}
	f.Values[0] = -1
	r.frames = append(r.frames, f)
	return nil
}

var _ = Describe("Runner", func() {
	var d *dispatch.Dispatcher

	BeforeEach(func() {
		d = newDispatcher(engine.Bubble)
		load(d, 5, 4, 3, 2, 1)
	})

	It("halts cleanly on quit between steps", func() {
		events := &scriptedEvents{batches: map[int][]engine.Event{2: {{Kind: engine.EventQuit}}}}
		rend := &recordingRenderer{}

		res, err := dispatch.NewRunner(d, rend, events).Run(context.Background(), dispatch.RunConfig{})

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Quit).To(BeTrue())
		Expect(res.Ticks).To(Equal(2))
		Expect(res.Stats.Steps).To(Equal(2))
		Expect(d.Values()).To(Equal([]int{3, 2, 1, 4, 5}))
	})

	It("renders copies that cannot corrupt the sequence", func() {
		rend := &recordingRenderer{}
		_, err := dispatch.NewRunner(d, rend, nil).Run(context.Background(), dispatch.RunConfig{StopWhenSorted: true})

		Expect(err).NotTo(HaveOccurred())
		Expect(rend.frames).To(HaveLen(4))
		Expect(rend.frames[0].Stats.Steps).To(Equal(1))
		Expect(d.Values()).To(Equal([]int{1, 2, 3, 4, 5}))
	})

	It("keeps rendering after sorting until the tick limit", func() {
		rend := &recordingRenderer{}
		res, err := dispatch.NewRunner(d, rend, nil).Run(context.Background(), dispatch.RunConfig{MaxTicks: 10})

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Ticks).To(Equal(10))
		Expect(res.Final).To(Equal(engine.Sorted))
		Expect(res.Stats.Steps).To(Equal(4))
	})

	It("stops on context cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res, err := dispatch.NewRunner(d, nil, nil).Run(ctx, dispatch.RunConfig{})

		Expect(err).To(MatchError(context.Canceled))
		Expect(res.Ticks).To(BeZero())
		Expect(d.Values()).To(Equal([]int{5, 4, 3, 2, 1}))
	})

	It("propagates renderer failures", func() {
		boom := errors.New("boom")
		_, err := dispatch.NewRunner(d, &recordingRenderer{fail: boom}, nil).Run(context.Background(), dispatch.RunConfig{})
		Expect(err).To(MatchError(boom))
	})

	It("applies configuration events at tick boundaries", func() {
		events := &scriptedEvents{batches: map[int][]engine.Event{
			0: {{Kind: engine.EventPause}},
			2: {{Kind: engine.EventPause}, {Kind: engine.EventToggleDraw}},
			3: {{Kind: engine.EventSelectAlgorithm, Algorithm: engine.Gnome}},
			4: {{Kind: engine.EventRestart}},
		}}

		res, err := dispatch.NewRunner(d, nil, events).Run(context.Background(), dispatch.RunConfig{MaxTicks: 5})

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Paused).To(BeFalse())
		Expect(d.DrawMethod()).To(Equal(engine.Points))
		Expect(d.Algorithm()).To(Equal(engine.Gnome))
		Expect(d.Stats().Steps).To(Equal(1))
		Expect(d.Values()).To(Equal([]int{5, 4, 3, 2, 1}))
	})
})
