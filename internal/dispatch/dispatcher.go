package dispatch

import (
	"fmt"
	"log"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/engine"
)

// Dispatcher selects the active algorithm and steps it once per tick while the
// sequence is unsorted. It is not safe for concurrent use.
type Dispatcher struct {
	algo      engine.Algorithm
	draw      engine.DrawMethod
	drawWidth int
	stepper   engine.Stepper
	seq       *engine.Sequence
	original  []int
	meta      engine.Metadata
	state     engine.State
	steps     int
	metrics   []engine.Metric
	observers []engine.Observer
}

// New returns an idle dispatcher. drawWidth is the width metadata is computed against.
func New(algo engine.Algorithm, draw engine.DrawMethod, drawWidth int) (*Dispatcher, error) {
	st, err := algorithms.New(algo)
	if err != nil {
		return nil, err
	}
	if _, err := engine.ParseDrawMethod(string(draw)); err != nil {
		return nil, err
	}
	if drawWidth <= 0 {
		return nil, fmt.Errorf("%w: draw width must be positive, got %d", engine.ErrInvalidArgument, drawWidth)
	}
	return &Dispatcher{
		algo:      algo,
		draw:      draw,
		drawWidth: drawWidth,
		stepper:   st,
		state:     engine.Idle,
		metrics:   make([]engine.Metric, 0),
		observers: make([]engine.Observer, 0),
	}, nil
}

func (d *Dispatcher) AddMetric(m engine.Metric)     { d.metrics = append(d.metrics, m) }
func (d *Dispatcher) AddObserver(o engine.Observer) { d.observers = append(d.observers, o) }

// Load takes ownership of seq and starts a new run with a fresh cursor. The
// sequence and its metadata are validated before any state changes.
func (d *Dispatcher) Load(seq *engine.Sequence) error {
	if seq == nil || seq.Len() == 0 {
		return engine.ErrEmptyInput
	}
	meta, err := seq.ComputeMetadata(d.drawWidth)
	if err != nil {
		return err
	}
	st, err := algorithms.New(d.algo)
	if err != nil {
		return err
	}

	seq.ResetCounters()
	d.seq, d.meta, d.stepper = seq, meta, st
	d.original = seq.Values()
	d.steps = 0
	for _, m := range d.metrics {
		m.Reset()
	}

	d.state = engine.Running
	if seq.IsSorted() {
		d.state = engine.Sorted
	}
	return nil
}

// Restart reloads the values captured by the last Load.
func (d *Dispatcher) Restart() error {
	if d.state == engine.Idle {
		return nil
	}
	seq, err := engine.FromValues(d.original)
	if err != nil {
		return err
	}
	return d.Load(seq)
}

// Tick performs at most one step and returns the resulting state.
func (d *Dispatcher) Tick() (engine.State, error) {
	if d.state != engine.Running {
		return d.state, nil
	}

	done, err := d.stepper.Step(d.seq)
	d.steps++
	if err != nil {
		return d.state, &engine.StepError{Algorithm: d.algo, Step: d.steps, Wrapped: err}
	}

	if d.seq.IsSorted() {
		d.state = engine.Sorted
	} else if done {
		// A finished stepper over an unsorted sequence gets a fresh cursor
		// and the sortedness check stays authoritative.
		log.Printf("dispatch: %s finished with unsorted sequence after %d steps, restarting cursor", d.algo, d.steps)
		d.stepper, _ = algorithms.New(d.algo)
	}

	if len(d.metrics) > 0 || len(d.observers) > 0 {
		f := d.Frame()
		for _, m := range d.metrics {
			m.Observe(f)
		}
		for _, o := range d.observers {
			o.OnStep(f)
		}
	}

	return d.state, nil
}

// SwitchAlgorithm selects a new algorithm with a fresh cursor. The sequence is
// kept as it is, so the next step behaves like a fresh run starting from it.
func (d *Dispatcher) SwitchAlgorithm(algo engine.Algorithm) error {
	st, err := algorithms.New(algo)
	if err != nil {
		return err
	}
	d.algo, d.stepper = algo, st
	return nil
}

func (d *Dispatcher) SetDrawMethod(m engine.DrawMethod) { d.draw = m }

func (d *Dispatcher) State() engine.State           { return d.state }
func (d *Dispatcher) Algorithm() engine.Algorithm   { return d.algo }
func (d *Dispatcher) DrawMethod() engine.DrawMethod { return d.draw }
func (d *Dispatcher) Metadata() engine.Metadata     { return d.meta }
func (d *Dispatcher) Cursor() engine.Cursor         { return d.stepper.Cursor() }

// Values returns a copy of the current sequence, or nil when idle.
func (d *Dispatcher) Values() []int {
	if d.seq == nil {
		return nil
	}
	return d.seq.Values()
}

func (d *Dispatcher) Stats() engine.Stats {
	if d.seq == nil {
		return engine.Stats{}
	}
	return engine.Stats{
		Steps:       d.steps,
		Comparisons: d.seq.Comparisons(),
		Swaps:       d.seq.Swaps(),
	}
}

// Metrics returns the current value of every attached metric by name.
func (d *Dispatcher) Metrics() map[string]float64 {
	values := make(map[string]float64, len(d.metrics))
	for _, m := range d.metrics {
		values[m.Name()] = m.Value()
	}
	return values
}

// Frame snapshots everything a renderer needs. The values are a copy.
func (d *Dispatcher) Frame() engine.Frame {
	f := engine.Frame{
		Values:    d.Values(),
		Meta:      d.meta,
		Draw:      d.draw,
		Algorithm: d.algo,
		State:     d.state,
		Cursor:    d.stepper.Cursor(),
		Touched:   [2]int{-1, -1},
		Stats:     d.Stats(),
		Metrics:   d.Metrics(),
	}
	if d.seq != nil {
		a, b := d.seq.Touched()
		f.Touched = [2]int{a, b}
	}
	return f
}
