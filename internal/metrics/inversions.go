package metrics

import "github.com/san-kum/sortvis/internal/engine"

// Inversions tracks the number of out-of-order pairs after each step. It keeps
// a bounded history for plotting.
type Inversions struct {
	name     string
	capacity int
	current  int
	initial  int
	samples  int
	history  []float64
}

func NewInversions(capacity int) *Inversions {
	return &Inversions{
		name:     "inversions",
		capacity: capacity,
		history:  make([]float64, 0, capacity),
	}
}

func (m *Inversions) Name() string { return m.name }

func (m *Inversions) Observe(f engine.Frame) {
	m.current = Count(f.Values)
	if m.samples == 0 {
		m.initial = m.current
	}
	m.samples++
	m.history = append(m.history, float64(m.current))
	if m.capacity > 0 && len(m.history) > m.capacity {
		m.history = m.history[1:]
	}
}

func (m *Inversions) Value() float64 { return float64(m.current) }

// Progress is the fraction of the first observed inversions already removed.
func (m *Inversions) Progress() float64 {
	if m.initial == 0 {
		return 1
	}
	return 1 - float64(m.current)/float64(m.initial)
}

// History returns the recorded samples, oldest first.
func (m *Inversions) History() []float64 { return m.history }

func (m *Inversions) Reset() {
	m.current, m.initial, m.samples = 0, 0, 0
	m.history = m.history[:0]
}

// Count returns the number of pairs i < j with values[i] > values[j].
func Count(values []int) int {
	if len(values) < 2 {
		return 0
	}
	work := make([]int, len(values))
	copy(work, values)
	buf := make([]int, len(values))
	return mergeCount(work, buf)
}

func mergeCount(a, buf []int) int {
	n := len(a)
	if n < 2 {
		return 0
	}
	mid := n / 2
	count := mergeCount(a[:mid], buf[:mid]) + mergeCount(a[mid:], buf[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < n {
		if a[j] < a[i] {
			buf[k] = a[j]
			count += mid - i
			j++
		} else {
			buf[k] = a[i]
			i++
		}
		k++
	}
	k += copy(buf[k:], a[i:mid])
	copy(buf[k:], a[j:])
	copy(a, buf[:n])
	return count
}
