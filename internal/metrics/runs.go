package metrics

import "github.com/san-kum/sortvis/internal/engine"

// Runs counts maximal non-decreasing runs; a sorted sequence has exactly one.
type Runs struct {
	name    string
	current int
}

func NewRuns() *Runs {
	return &Runs{name: "runs"}
}

func (m *Runs) Name() string { return m.name }

func (m *Runs) Observe(f engine.Frame) {
	m.current = CountRuns(f.Values)
}

func (m *Runs) Value() float64 { return float64(m.current) }

func (m *Runs) Reset() { m.current = 0 }

func CountRuns(values []int) int {
	if len(values) == 0 {
		return 0
	}
	runs := 1
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			runs++
		}
	}
	return runs
}

// SwapRate is the mean number of swaps per step.
type SwapRate struct {
	name  string
	steps int
	swaps int
}

func NewSwapRate() *SwapRate {
	return &SwapRate{name: "swaps_per_step"}
}

func (m *SwapRate) Name() string { return m.name }

func (m *SwapRate) Observe(f engine.Frame) {
	m.steps, m.swaps = f.Stats.Steps, f.Stats.Swaps
}

func (m *SwapRate) Value() float64 {
	if m.steps == 0 {
		return 0
	}
	return float64(m.swaps) / float64(m.steps)
}

func (m *SwapRate) Reset() { m.steps, m.swaps = 0, 0 }

// Defaults returns the metrics attached to every interactive run.
func Defaults(historyCapacity int) []engine.Metric {
	return []engine.Metric{
		NewInversions(historyCapacity),
		NewRuns(),
		NewSwapRate(),
	}
}
