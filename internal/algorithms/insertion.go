package algorithms

import "github.com/san-kum/sortvis/internal/engine"

// Insertion performs a single leftward compare-and-swap per step, so moving one
// element far left spans several steps. i is the element being inserted next,
// j its current position while it is moving.
type Insertion struct {
	i, j   int
	moving bool
}

func NewInsertion() *Insertion {
	return &Insertion{i: 1}
}

func (s *Insertion) Name() engine.Algorithm { return engine.Insertion }

func (s *Insertion) Step(seq *engine.Sequence) (bool, error) {
	n := seq.Len()
	if s.i >= n {
		return true, engine.ErrStepAfterCompletion
	}

	if !s.moving {
		s.j, s.moving = s.i, true
	}

	if seq.Less(s.j, s.j-1) {
		seq.Swap(s.j, s.j-1)
		s.j--
		if s.j > 0 {
			return false, nil
		}
	}

	s.moving = false
	s.i++
	return s.i >= n, nil
}

func (s *Insertion) Cursor() engine.Cursor {
	c := engine.NoCursor
	c.Index, c.Hi = s.i, s.i
	if s.moving {
		c.Index = s.j
	}
	return c
}
