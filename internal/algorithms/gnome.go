package algorithms

import "github.com/san-kum/sortvis/internal/engine"

// Gnome compares the element under the cursor with its left neighbour: in
// order, the cursor advances; out of order, the pair is swapped and the cursor
// retreats.
type Gnome struct {
	i int
}

func NewGnome() *Gnome {
	return &Gnome{}
}

func (s *Gnome) Name() engine.Algorithm { return engine.Gnome }

func (s *Gnome) Step(seq *engine.Sequence) (bool, error) {
	n := seq.Len()
	if s.i >= n {
		return true, engine.ErrStepAfterCompletion
	}

	if s.i == 0 || !seq.Less(s.i, s.i-1) {
		s.i++
	} else {
		seq.Swap(s.i-1, s.i)
		s.i--
	}

	return s.i >= n, nil
}

func (s *Gnome) Cursor() engine.Cursor {
	c := engine.NoCursor
	c.Index = s.i
	return c
}
