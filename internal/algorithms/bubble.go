package algorithms

import "github.com/san-kum/sortvis/internal/engine"

// Bubble runs one full inner pass per step. size is fixed by the first step.
type Bubble struct {
	i, size int
	started bool
}

func NewBubble() *Bubble {
	return &Bubble{}
}

func (s *Bubble) Name() engine.Algorithm { return engine.Bubble }

func (s *Bubble) Step(seq *engine.Sequence) (bool, error) {
	if !s.started {
		s.size, s.started = seq.Len(), true
	}
	if s.i >= s.size-1 {
		return true, engine.ErrStepAfterCompletion
	}

	for j := 0; j < s.size-s.i-1; j++ {
		if seq.Less(j+1, j) {
			seq.Swap(j, j+1)
		}
	}
	s.i++

	return s.i >= s.size-1, nil
}

func (s *Bubble) Cursor() engine.Cursor {
	c := engine.NoCursor
	c.Pass = s.i
	if s.started {
		c.Hi = s.size - s.i - 1
	}
	return c
}
