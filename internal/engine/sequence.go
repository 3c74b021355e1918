package engine

import (
	"fmt"
	"math/rand"
)

// Sequence is the array being sorted. Its length is fixed at construction.
// Less and Swap are the only ways algorithms read order and move values, so
// the sequence can count the work done on it.
type Sequence struct {
	values      []int
	comparisons int
	swaps       int
	touched     [2]int
}

// NewRandom returns a uniformly shuffled permutation of 1..n.
func NewRandom(n int, rng *rand.Rand) (*Sequence, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", ErrInvalidArgument, n)
	}
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}
	rng.Shuffle(n, func(i, j int) { values[i], values[j] = values[j], values[i] })
	return newSequence(values), nil
}

// FromValues copies values into a new sequence.
func FromValues(values []int) (*Sequence, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	c := make([]int, len(values))
	copy(c, values)
	return newSequence(c), nil
}

func newSequence(values []int) *Sequence {
	return &Sequence{values: values, touched: [2]int{-1, -1}}
}

func (s *Sequence) Len() int { return len(s.values) }

func (s *Sequence) At(i int) int { return s.values[i] }

// Less reports whether the value at i is strictly smaller than the value at j.
func (s *Sequence) Less(i, j int) bool {
	s.comparisons++
	return s.values[i] < s.values[j]
}

func (s *Sequence) Swap(i, j int) {
	s.values[i], s.values[j] = s.values[j], s.values[i]
	s.swaps++
	s.touched = [2]int{i, j}
}

// IsSorted reports whether every adjacent pair is non-decreasing. It does not
// count as comparisons.
func (s *Sequence) IsSorted() bool {
	for i := 1; i < len(s.values); i++ {
		if s.values[i] < s.values[i-1] {
			return false
		}
	}
	return true
}

// Values returns a copy of the current contents.
func (s *Sequence) Values() []int {
	c := make([]int, len(s.values))
	copy(c, s.values)
	return c
}

func (s *Sequence) Clone() *Sequence {
	c := newSequence(s.Values())
	c.comparisons, c.swaps, c.touched = s.comparisons, s.swaps, s.touched
	return c
}

func (s *Sequence) Comparisons() int { return s.comparisons }
func (s *Sequence) Swaps() int       { return s.swaps }

// Touched returns the indices of the most recent swap, or -1, -1.
func (s *Sequence) Touched() (int, int) { return s.touched[0], s.touched[1] }

func (s *Sequence) ResetCounters() {
	s.comparisons, s.swaps = 0, 0
	s.touched = [2]int{-1, -1}
}

// Metadata is derived from a finalized sequence and used only for drawing.
// Every algorithm here only reorders values, so it stays valid for the whole
// run. An algorithm that rewrote values would need it recomputed per frame.
type Metadata struct {
	MaxValue  int
	UnitWidth float64
	Count     int
}

// ComputeMetadata derives the maximum value and the per-element width for a
// drawing area drawWidth units wide.
func (s *Sequence) ComputeMetadata(drawWidth int) (Metadata, error) {
	if len(s.values) == 0 {
		return Metadata{}, ErrEmptyInput
	}
	if drawWidth <= 0 {
		return Metadata{}, fmt.Errorf("%w: draw width must be positive, got %d", ErrInvalidArgument, drawWidth)
	}
	maxValue := s.values[0]
	for _, v := range s.values[1:] {
		if v > maxValue {
			maxValue = v
		}
	}
	if maxValue <= 0 {
		return Metadata{}, fmt.Errorf("%w: max is %d", ErrDegenerateSequence, maxValue)
	}
	return Metadata{
		MaxValue:  maxValue,
		UnitWidth: float64(drawWidth) / float64(len(s.values)),
		Count:     len(s.values),
	}, nil
}

// BarHeight scales value to a drawing area drawHeight units tall, clamped to [0, drawHeight].
func (m Metadata) BarHeight(value, drawHeight int) int {
	if m.MaxValue <= 0 || value <= 0 {
		return 0
	}
	h := int(int64(value) * int64(drawHeight) / int64(m.MaxValue))
	if h > drawHeight {
		return drawHeight
	}
	return h
}
