// Package source supplies sequences to the engine: random permutations,
// generated patterns and line-delimited number files.
package source

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/sortvis/internal/engine"
)

// Patterns lists the names accepted by Generate.
var Patterns = []string{"random", "reversed", "sorted", "nearly", "few"}

// Random returns a uniformly shuffled permutation of 1..n.
func Random(n int, seed int64) (*engine.Sequence, error) {
	return engine.NewRandom(n, rand.New(rand.NewSource(seed)))
}

// Generate builds n values following the named pattern.
func Generate(pattern string, n int, seed int64) (*engine.Sequence, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", engine.ErrInvalidArgument, n)
	}
	r := rand.New(rand.NewSource(seed))

	values := make([]int, n)
	switch pattern {
	case "", "random":
		return engine.NewRandom(n, r)
	case "sorted":
		for i := range values {
			values[i] = i + 1
		}
	case "reversed":
		for i := range values {
			values[i] = n - i
		}
	case "nearly":
		for i := range values {
			values[i] = i + 1
		}
		for k := 0; k < n/10+1; k++ {
			i, j := r.Intn(n), r.Intn(n)
			values[i], values[j] = values[j], values[i]
		}
	case "few":
		distinct := n/8 + 2
		for i := range values {
			values[i] = (r.Intn(distinct) + 1) * n / distinct
		}
	default:
		return nil, fmt.Errorf("%w: unknown pattern %q (available: %v)", engine.ErrInvalidArgument, pattern, Patterns)
	}
	return engine.FromValues(values)
}

// LoadFile reads one integer per line from path.
func LoadFile(path string) (*engine.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open numbers file: %w", err)
	}
	defer f.Close()

	seq, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}

// Load parses one integer per line. Surrounding whitespace is ignored and so
// are blank lines; any other malformed line fails the whole load.
func Load(r io.Reader) (*engine.Sequence, error) {
	values := make([]int, 0)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %q is not an integer", line, engine.ErrInvalidArgument, text)
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, engine.ErrEmptyInput
	}
	return engine.FromValues(values)
}

// WriteFile stores values one per line so LoadFile can read them back.
func WriteFile(path string, values []int) error {
	if len(values) == 0 {
		return engine.ErrEmptyInput
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range values {
		if _, err := w.WriteString(strconv.Itoa(v) + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
