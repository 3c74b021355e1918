package engine

import (
	"errors"
	"fmt"
)

// Domain errors for engine setup and stepping.
var (
	// ErrInvalidArgument indicates a bad count or size.
	ErrInvalidArgument = errors.New("engine: invalid argument")

	// ErrEmptyInput indicates a zero-length sequence after load or generation.
	ErrEmptyInput = errors.New("engine: empty input sequence")

	// ErrDegenerateSequence indicates data whose maximum is not positive and would render flat.
	ErrDegenerateSequence = errors.New("engine: degenerate sequence (maximum value <= 0)")

	// ErrStepAfterCompletion indicates a step invoked on an algorithm that already finished.
	ErrStepAfterCompletion = errors.New("engine: step invoked after completion")

	// ErrResourceInit indicates a window, surface or audio device could not be created.
	ErrResourceInit = errors.New("engine: resource initialization failed")
)

// StepError wraps an error with the step that produced it.
type StepError struct {
	Algorithm Algorithm
	Step      int
	Wrapped   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step %d: %v", e.Algorithm, e.Step, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
