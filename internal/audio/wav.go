package audio

import (
	"io"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/mjibson/go-dsp/window"
	"github.com/san-kum/sortvis/internal/engine"
)

// Recorder is an engine.Observer that notes one pitch per step: the last
// swapped value, or a rest (0) when the step swapped nothing.
type Recorder struct {
	notes     []float64
	lastSwaps int
}

func NewRecorder() *Recorder {
	return &Recorder{notes: make([]float64, 0)}
}

func (r *Recorder) OnStep(f engine.Frame) {
	freq, _ := swapPitch(f, r.lastSwaps)
	r.lastSwaps = f.Stats.Swaps
	r.notes = append(r.notes, freq)
}

// Notes returns one frequency per observed step.
func (r *Recorder) Notes() []float64 { return r.notes }

// noteStreamer plays notes back to back, each shaped by the same envelope.
type noteStreamer struct {
	notes    []float64
	envelope []float64
	rate     beep.SampleRate
	idx      int
	pos      int
	phase    float64
}

func newNoteStreamer(notes []float64, noteLen int, rate beep.SampleRate) *noteStreamer {
	return &noteStreamer{notes: notes, envelope: window.Hann(noteLen), rate: rate}
}

func (s *noteStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.idx >= len(s.notes) {
			return i, i > 0
		}
		val := 0.0
		if freq := s.notes[s.idx]; freq > 0 {
			val = math.Sin(2*math.Pi*s.phase) * s.envelope[s.pos] * volume
			s.phase += freq / float64(s.rate)
			s.phase -= math.Floor(s.phase)
		}
		samples[i][0] = val
		samples[i][1] = val

		s.pos++
		if s.pos >= len(s.envelope) {
			s.pos = 0
			s.phase = 0
			s.idx++
		}
	}
	return len(samples), true
}

func (s *noteStreamer) Err() error { return nil }

// WriteWAV encodes notes as 16-bit stereo PCM, noteDur per note.
func WriteWAV(w io.WriteSeeker, notes []float64, noteDur time.Duration) error {
	if len(notes) == 0 {
		return engine.ErrEmptyInput
	}
	format := beep.Format{SampleRate: beep.SampleRate(SampleRate), NumChannels: 2, Precision: 2}
	noteLen := format.SampleRate.N(noteDur)
	if noteLen < 2 {
		noteLen = 2
	}
	return wav.Encode(w, newNoteStreamer(notes, noteLen, format.SampleRate), format)
}
