package engine

import "fmt"

// Algorithm names one of the closed set of step algorithms.
type Algorithm string

const (
	Selection Algorithm = "selection"
	Insertion Algorithm = "insertion"
	Bubble    Algorithm = "bubble"
	Cocktail  Algorithm = "cocktail"
	Gnome     Algorithm = "gnome"
)

// Algorithms lists every algorithm in menu order.
var Algorithms = []Algorithm{Selection, Insertion, Bubble, Cocktail, Gnome}

func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: unknown algorithm %q", ErrInvalidArgument, name)
}

// DrawMethod selects how each element is drawn.
type DrawMethod string

const (
	Bars   DrawMethod = "bars"
	Points DrawMethod = "points"
)

func ParseDrawMethod(name string) (DrawMethod, error) {
	switch DrawMethod(name) {
	case Bars, Points:
		return DrawMethod(name), nil
	}
	return "", fmt.Errorf("%w: unknown draw method %q", ErrInvalidArgument, name)
}

// Toggle returns the other draw method.
func (m DrawMethod) Toggle() DrawMethod {
	if m == Points {
		return Bars
	}
	return Points
}

// State is the dispatcher lifecycle state.
type State int

const (
	Idle State = iota
	Running
	Sorted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Running:
		return "RUNNING"
	case Sorted:
		return "SORTED"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Cursor is a read-only snapshot of an algorithm's progress, used for highlighting.
// Fields an algorithm does not track are -1.
type Cursor struct {
	Index int
	Lo    int
	Hi    int
	Pass  int
}

// NoCursor is the cursor of an algorithm that tracks nothing yet.
var NoCursor = Cursor{Index: -1, Lo: -1, Hi: -1, Pass: -1}

// Stepper is one resumable sorting algorithm. Each call to Step performs exactly
// one unit of work on seq and keeps whatever progress it needs in the receiver.
// Step returns done once the algorithm has finished; calling it again afterwards
// returns ErrStepAfterCompletion and leaves seq untouched.
type Stepper interface {
	Name() Algorithm
	Step(seq *Sequence) (done bool, err error)
	Cursor() Cursor
}

// Stats counts the work done on a sequence since it was loaded.
type Stats struct {
	Steps       int
	Comparisons int
	Swaps       int
}

// Frame is everything a renderer needs for one tick. Values is a copy.
type Frame struct {
	Values    []int
	Meta      Metadata
	Draw      DrawMethod
	Algorithm Algorithm
	State     State
	Cursor    Cursor
	Touched   [2]int
	Stats     Stats
	Metrics   map[string]float64
}

// Renderer draws a frame. It must not retain or mutate frame.Values beyond the call.
type Renderer interface {
	Render(f Frame) error
}

// EventKind identifies a signal coming from the presentation layer.
type EventKind int

const (
	EventQuit EventKind = iota
	EventPause
	EventRestart
	EventToggleDraw
	EventSelectAlgorithm
)

type Event struct {
	Kind      EventKind
	Algorithm Algorithm
}

// EventSource yields the signals raised since the previous poll.
type EventSource interface {
	Poll() []Event
}

// Metric accumulates a value over the steps of a run.
type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

// Observer is notified after every step the dispatcher performs.
type Observer interface {
	OnStep(f Frame)
}
