package algorithms

import (
	"fmt"

	"github.com/san-kum/sortvis/internal/engine"
)

var descriptions = map[engine.Algorithm]string{
	engine.Selection: "min of unsorted suffix per step",
	engine.Insertion: "one leftward swap per step",
	engine.Bubble:    "one full pass per step",
	engine.Cocktail:  "forward and backward pass per step",
	engine.Gnome:     "walk forward, swap back",
}

// New returns a stepper for name with a freshly initialized cursor.
func New(name engine.Algorithm) (engine.Stepper, error) {
	switch name {
	case engine.Selection:
		return NewSelection(), nil
	case engine.Insertion:
		return NewInsertion(), nil
	case engine.Bubble:
		return NewBubble(), nil
	case engine.Cocktail:
		return NewCocktail(), nil
	case engine.Gnome:
		return NewGnome(), nil
	}
	return nil, fmt.Errorf("%w: unknown algorithm %q", engine.ErrInvalidArgument, name)
}

func Names() []engine.Algorithm {
	names := make([]engine.Algorithm, len(engine.Algorithms))
	copy(names, engine.Algorithms)
	return names
}

func Describe(name engine.Algorithm) string {
	return descriptions[name]
}
