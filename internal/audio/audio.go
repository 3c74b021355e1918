// Package audio turns sorting steps into short tones: each swap plays a note
// whose pitch follows the swapped value.
package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/mjibson/go-dsp/window"
	"github.com/san-kum/sortvis/internal/engine"
)

const (
	SampleRate = 44100
	BufferSize = 512

	MinFreq = 120.0
	MaxFreq = 1200.0

	noteSeconds = 0.06
	volume      = 0.2
)

// Frequency maps value in [0, max] linearly onto [MinFreq, MaxFreq].
func Frequency(value, max int) float64 {
	if max <= 0 {
		return MinFreq
	}
	r := float64(value) / float64(max)
	r = math.Min(math.Max(r, 0), 1)
	return MinFreq + r*(MaxFreq-MinFreq)
}

// Sonifier is an engine.Observer that plays a note for every swap.
type Sonifier struct {
	stream *portaudio.Stream

	mu        sync.Mutex
	freq      float64
	pending   bool
	lastSwaps int

	// owned by the audio callback
	envelope    []float64
	pos         int
	phase       float64
	current     float64
	filterState [2]float64
	active      bool
}

func NewSonifier() *Sonifier {
	return &Sonifier{
		envelope: window.Hann(int(SampleRate * noteSeconds)),
		pos:      -1,
	}
}

// Start opens the default output device.
func (s *Sonifier) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("%w: portaudio: %v", engine.ErrResourceInit, err)
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, s.Process)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("%w: open stream: %v", engine.ErrResourceInit, err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("%w: start stream: %v", engine.ErrResourceInit, err)
	}
	s.stream = stream
	s.active = true
	return nil
}

func (s *Sonifier) Stop() {
	if s.stream == nil {
		return
	}
	s.stream.Stop()
	s.stream.Close()
	s.stream = nil
	portaudio.Terminate()
	s.active = false
}

// OnStep queues a note when the step swapped something.
func (s *Sonifier) OnStep(f engine.Frame) {
	freq, ok := swapPitch(f, s.lastSwaps)
	s.lastSwaps = f.Stats.Swaps
	if !ok {
		return
	}
	s.mu.Lock()
	s.freq = freq
	s.pending = true
	s.mu.Unlock()
}

// swapPitch returns the pitch of the last swapped value if f swapped since
// the previous frame, which had lastSwaps swaps.
func swapPitch(f engine.Frame, lastSwaps int) (float64, bool) {
	i := f.Touched[1]
	if f.Stats.Swaps <= lastSwaps || i < 0 || i >= len(f.Values) {
		return 0, false
	}
	return Frequency(f.Values[i], f.Meta.MaxValue), true
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// one-pole low pass
func lpf(sample, cutoff, dt, state float64) float64 {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	return state + alpha*(sample-state)
}

// Process fills one non-interleaved stereo buffer. It is the stream callback.
func (s *Sonifier) Process(out [][]float32) {
	s.mu.Lock()
	if s.pending {
		s.current = s.freq
		s.pos = 0
		s.pending = false
	}
	s.mu.Unlock()

	dt := 1.0 / float64(SampleRate)
	cutoff := 4 * MaxFreq
	for i := range out[0] {
		sample := 0.0
		if s.pos >= 0 && s.pos < len(s.envelope) {
			sample = triangle(s.phase) * s.envelope[s.pos] * volume
			s.phase += s.current * dt
			s.pos++
		} else {
			s.pos = -1
		}
		s.filterState[0] = lpf(sample, cutoff, dt, s.filterState[0])
		s.filterState[1] = lpf(sample, cutoff, dt, s.filterState[1])
		out[0][i] = float32(s.filterState[0])
		out[1][i] = float32(s.filterState[1])
	}
}

// Active reports whether the output stream is running.
func (s *Sonifier) Active() bool { return s.active }
