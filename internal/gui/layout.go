package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/sortvis/internal/engine"
)

type Highlight int

const (
	Plain Highlight = iota
	Cursor
	Touched
)

const pointSize = 3

// Rect is one element's on-screen shape in window pixels.
type Rect struct {
	X, Y, W, H int32
	Highlight  Highlight
}

func (r Rect) color(s engine.State) rl.Color {
	switch {
	case s == engine.Sorted:
		return ColSorted
	case r.Highlight == Cursor:
		return ColCursor
	case r.Highlight == Touched:
		return ColTouched
	}
	return ColBar
}

// Layout maps every element of f to a rectangle in a width x height window.
// Element i occupies the column starting at i*width/n; bars grow from the
// bottom edge to value*height/max, points sit at the same height.
func Layout(f engine.Frame, width, height int) []Rect {
	n := len(f.Values)
	if n == 0 || width <= 0 || height <= 0 {
		return nil
	}
	rects := make([]Rect, 0, n)
	for i, v := range f.Values {
		x0 := i * width / n
		x1 := (i + 1) * width / n
		colW := x1 - x0
		if colW < 1 {
			colW = 1
		}
		h := f.Meta.BarHeight(v, height)
		r := Rect{X: int32(x0), W: int32(colW), Highlight: highlight(i, f)}
		if f.Draw == engine.Points {
			size := pointSize
			if colW < size {
				size = colW
			}
			y := height - h
			if y > height-size {
				y = height - size
			}
			r.Y, r.W, r.H = int32(y), int32(size), int32(size)
		} else {
			r.Y, r.H = int32(height-h), int32(h)
		}
		rects = append(rects, r)
	}
	return rects
}

func highlight(i int, f engine.Frame) Highlight {
	switch {
	case i == f.Cursor.Index:
		return Cursor
	case i == f.Touched[0] || i == f.Touched[1]:
		return Touched
	}
	return Plain
}
