package algorithms

import "github.com/san-kum/sortvis/internal/engine"

// Cocktail runs a forward pass and then a backward pass per step, both over
// the window [i, size-1-i]. After step k the k smallest and k largest values
// are final.
type Cocktail struct {
	i, size int
	started bool
}

func NewCocktail() *Cocktail {
	return &Cocktail{}
}

func (s *Cocktail) Name() engine.Algorithm { return engine.Cocktail }

func (s *Cocktail) Step(seq *engine.Sequence) (bool, error) {
	if !s.started {
		s.size, s.started = seq.Len(), true
	}
	lo, hi := s.i, s.size-1-s.i
	if lo >= hi {
		return true, engine.ErrStepAfterCompletion
	}

	for j := lo; j < hi; j++ {
		if seq.Less(j+1, j) {
			seq.Swap(j, j+1)
		}
	}
	for j := hi - 1; j > lo; j-- {
		if seq.Less(j, j-1) {
			seq.Swap(j-1, j)
		}
	}
	s.i++

	return s.i >= s.size-1-s.i, nil
}

func (s *Cocktail) Cursor() engine.Cursor {
	c := engine.NoCursor
	c.Pass, c.Lo = s.i, s.i
	if s.started {
		c.Hi = s.size - 1 - s.i
	}
	return c
}
