package dispatch

import (
	"context"

	"github.com/san-kum/sortvis/internal/engine"
)

// RunConfig bounds a Runner loop. Zero values mean unbounded.
type RunConfig struct {
	MaxTicks       int
	StopWhenSorted bool
}

// Result summarizes a finished loop.
type Result struct {
	Ticks  int
	Final  engine.State
	Stats  engine.Stats
	Quit   bool
	Paused bool
}

// Runner is the frame loop: poll events, maybe step, render. Each tick runs to
// completion before the next poll, so quit is only ever observed between steps.
type Runner struct {
	d        *Dispatcher
	renderer engine.Renderer
	events   engine.EventSource
	paused   bool
}

func NewRunner(d *Dispatcher, renderer engine.Renderer, events engine.EventSource) *Runner {
	if renderer == nil {
		renderer = NopRenderer{}
	}
	if events == nil {
		events = NoEvents{}
	}
	return &Runner{d: d, renderer: renderer, events: events}
}

func (r *Runner) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	res := &Result{}

	for {
		if r.handle(r.events.Poll()) {
			res.Quit = true
			break
		}

		select {
		case <-ctx.Done():
			r.fill(res)
			return res, ctx.Err()
		default:
		}

		if !r.paused {
			if _, err := r.d.Tick(); err != nil {
				r.fill(res)
				return res, err
			}
		}

		if err := r.renderer.Render(r.d.Frame()); err != nil {
			r.fill(res)
			return res, err
		}
		res.Ticks++

		if cfg.MaxTicks > 0 && res.Ticks >= cfg.MaxTicks {
			break
		}
		if cfg.StopWhenSorted && r.d.State() == engine.Sorted {
			break
		}
	}

	r.fill(res)
	return res, nil
}

func (r *Runner) fill(res *Result) {
	res.Final = r.d.State()
	res.Stats = r.d.Stats()
	res.Paused = r.paused
}

// handle applies configuration events and reports whether quit was requested.
func (r *Runner) handle(events []engine.Event) bool {
	for _, ev := range events {
		switch ev.Kind {
		case engine.EventQuit:
			return true
		case engine.EventPause:
			r.paused = !r.paused
		case engine.EventRestart:
			_ = r.d.Restart()
		case engine.EventToggleDraw:
			r.d.SetDrawMethod(r.d.DrawMethod().Toggle())
		case engine.EventSelectAlgorithm:
			_ = r.d.SwitchAlgorithm(ev.Algorithm)
		}
	}
	return false
}

// NopRenderer discards frames; used for headless runs.
type NopRenderer struct{}

func (NopRenderer) Render(engine.Frame) error { return nil }

// NoEvents never raises a signal.
type NoEvents struct{}

func (NoEvents) Poll() []engine.Event { return nil }

// Drive steps d until it is sorted or maxTicks is reached, without rendering.
func Drive(ctx context.Context, d *Dispatcher, maxTicks int) (*Result, error) {
	return NewRunner(d, nil, nil).Run(ctx, RunConfig{MaxTicks: maxTicks, StopWhenSorted: true})
}
