package engine

import (
	"errors"
	"math/rand"
	"sort"
	"testing"
)

func TestNewRandomPermutation(t *testing.T) {
	seq, err := NewRandom(50, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("new random failed: %v", err)
	}
	if seq.Len() != 50 {
		t.Fatalf("expected 50 values, got %d", seq.Len())
	}

	values := seq.Values()
	sort.Ints(values)
	for i, v := range values {
		if v != i+1 {
			t.Fatalf("expected permutation of 1..50, found %d at %d", v, i)
		}
	}
}

func TestNewRandomInvalidCount(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := NewRandom(n, rand.New(rand.NewSource(1)))
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("n=%d: expected ErrInvalidArgument, got %v", n, err)
		}
	}
}

func TestFromValues(t *testing.T) {
	src := []int{3, 1, 2}
	seq, err := FromValues(src)
	if err != nil {
		t.Fatalf("from values failed: %v", err)
	}
	src[0] = 99
	if seq.At(0) != 3 {
		t.Error("sequence should not alias the input slice")
	}

	if _, err := FromValues(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   bool
	}{
		{"single", []int{4}, true},
		{"ascending", []int{1, 2, 3}, true},
		{"equal", []int{2, 2, 2}, true},
		{"descending", []int{3, 2, 1}, false},
		{"last pair", []int{1, 2, 4, 3}, false},
		{"negative", []int{-5, -1, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, _ := FromValues(tt.values)
			for i := 0; i < 3; i++ {
				if got := seq.IsSorted(); got != tt.want {
					t.Fatalf("call %d: expected %v, got %v", i, tt.want, got)
				}
			}
			if seq.Comparisons() != 0 {
				t.Error("sortedness check should not count comparisons")
			}
		})
	}
}

func TestSwapCounters(t *testing.T) {
	seq, _ := FromValues([]int{2, 1})
	if a, b := seq.Touched(); a != -1 || b != -1 {
		t.Errorf("expected no touched indices, got %d,%d", a, b)
	}
	if !seq.Less(1, 0) {
		t.Error("expected 1 < 2")
	}
	seq.Swap(0, 1)

	if seq.Comparisons() != 1 || seq.Swaps() != 1 {
		t.Errorf("expected 1 comparison and 1 swap, got %d and %d", seq.Comparisons(), seq.Swaps())
	}
	if a, b := seq.Touched(); a != 0 || b != 1 {
		t.Errorf("expected touched 0,1, got %d,%d", a, b)
	}

	seq.ResetCounters()
	if seq.Comparisons() != 0 || seq.Swaps() != 0 {
		t.Error("counters not reset")
	}
}

func TestComputeMetadata(t *testing.T) {
	seq, _ := FromValues([]int{4, 8, 2, 6})
	meta, err := seq.ComputeMetadata(1024)
	if err != nil {
		t.Fatalf("metadata failed: %v", err)
	}
	if meta.MaxValue != 8 {
		t.Errorf("expected max 8, got %d", meta.MaxValue)
	}
	if meta.UnitWidth != 256 {
		t.Errorf("expected unit width 256, got %f", meta.UnitWidth)
	}
	if h := meta.BarHeight(4, 768); h != 384 {
		t.Errorf("expected bar height 384, got %d", h)
	}
	if h := meta.BarHeight(-2, 768); h != 0 {
		t.Errorf("negative values should have zero height, got %d", h)
	}
}

func TestComputeMetadataErrors(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		width  int
		want   error
	}{
		{"all zero", []int{0, 0, 0}, 100, ErrDegenerateSequence},
		{"all negative", []int{-3, -1}, 100, ErrDegenerateSequence},
		{"zero width", []int{1, 2}, 0, ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, _ := FromValues(tt.values)
			if _, err := seq.ComputeMetadata(tt.width); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	empty := &Sequence{}
	if _, err := empty.ComputeMetadata(100); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestParse(t *testing.T) {
	if a, err := ParseAlgorithm("gnome"); err != nil || a != Gnome {
		t.Errorf("expected gnome, got %q (%v)", a, err)
	}
	if _, err := ParseAlgorithm("bogo"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if m, err := ParseDrawMethod("points"); err != nil || m != Points {
		t.Errorf("expected points, got %q (%v)", m, err)
	}
	if Bars.Toggle() != Points || Points.Toggle() != Bars {
		t.Error("toggle should alternate")
	}
}

func TestStepError(t *testing.T) {
	err := &StepError{Algorithm: Bubble, Step: 3, Wrapped: ErrStepAfterCompletion}
	if !errors.Is(err, ErrStepAfterCompletion) {
		t.Error("step error should unwrap")
	}
	if err.Error() != "bubble step 3: engine: step invoked after completion" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
