package audio

import (
	"math"
	"testing"

	"github.com/san-kum/sortvis/internal/engine"
)

func TestFrequency(t *testing.T) {
	tests := []struct {
		value, max int
		want       float64
	}{
		{0, 10, MinFreq},
		{10, 10, MaxFreq},
		{5, 10, (MinFreq + MaxFreq) / 2},
		{20, 10, MaxFreq},
		{-1, 10, MinFreq},
		{3, 0, MinFreq},
	}
	for _, tt := range tests {
		if got := Frequency(tt.value, tt.max); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Frequency(%d, %d) = %v, want %v", tt.value, tt.max, got, tt.want)
		}
	}
}

func buffer(n int) [][]float32 {
	return [][]float32{make([]float32, n), make([]float32, n)}
}

func peak(buf [][]float32) float64 {
	p := 0.0
	for _, ch := range buf {
		for _, v := range ch {
			p = math.Max(p, math.Abs(float64(v)))
		}
	}
	return p
}

func TestProcessSilentWithoutSwaps(t *testing.T) {
	s := NewSonifier()
	s.OnStep(engine.Frame{Values: []int{1, 2}, Touched: [2]int{-1, -1}})
	out := buffer(BufferSize)
	s.Process(out)
	if peak(out) != 0 {
		t.Errorf("expected silence, peak %v", peak(out))
	}
}

func TestProcessPlaysNoteAfterSwap(t *testing.T) {
	s := NewSonifier()
	s.OnStep(engine.Frame{
		Values:  []int{2, 1},
		Meta:    engine.Metadata{MaxValue: 2},
		Touched: [2]int{0, 1},
		Stats:   engine.Stats{Steps: 1, Swaps: 1},
	})
	out := buffer(BufferSize)
	s.Process(out)
	if p := peak(out); p == 0 || p > volume {
		t.Errorf("peak = %v, want in (0, %v]", p, volume)
	}
	if s.current != Frequency(1, 2) {
		t.Errorf("current = %v", s.current)
	}

	// the note ends after its envelope
	for i := 0; i < len(s.envelope)/BufferSize+2; i++ {
		s.Process(out)
	}
	if s.pos != -1 {
		t.Errorf("note still playing at sample %d", s.pos)
	}
}

func TestEnvelopeShape(t *testing.T) {
	s := NewSonifier()
	n := len(s.envelope)
	if n != int(SampleRate*noteSeconds) {
		t.Fatalf("envelope length %d", n)
	}
	if s.envelope[0] > 1e-9 || s.envelope[n/2] < 0.99 {
		t.Errorf("envelope is not a Hann window: start %v mid %v", s.envelope[0], s.envelope[n/2])
	}
}

func TestOnStepIgnoresStepsWithoutSwap(t *testing.T) {
	s := NewSonifier()
	f := engine.Frame{
		Values:  []int{1, 2},
		Meta:    engine.Metadata{MaxValue: 2},
		Touched: [2]int{0, 1},
		Stats:   engine.Stats{Steps: 1, Swaps: 1},
	}
	s.OnStep(f)
	s.Process(buffer(8))
	if s.pending {
		t.Fatal("note should have been consumed")
	}
	// same swap count: touched is stale
	f.Stats.Steps = 2
	s.OnStep(f)
	if s.pending {
		t.Error("a step without a swap must not queue a note")
	}
}
