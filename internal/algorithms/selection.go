package algorithms

import "github.com/san-kum/sortvis/internal/engine"

// Selection finalizes one output position per step: it scans the unsorted
// suffix for its minimum and swaps it into place.
type Selection struct {
	i int
}

func NewSelection() *Selection {
	return &Selection{}
}

func (s *Selection) Name() engine.Algorithm { return engine.Selection }

func (s *Selection) Step(seq *engine.Sequence) (bool, error) {
	n := seq.Len()
	if s.i >= n-1 {
		return true, engine.ErrStepAfterCompletion
	}

	minIdx := s.i
	for j := s.i + 1; j < n; j++ {
		if seq.Less(j, minIdx) {
			minIdx = j
		}
	}
	if minIdx != s.i {
		seq.Swap(s.i, minIdx)
	}
	s.i++

	return s.i >= n-1, nil
}

func (s *Selection) Cursor() engine.Cursor {
	c := engine.NoCursor
	c.Index, c.Lo = s.i, s.i
	return c
}
