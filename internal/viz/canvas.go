package viz

import (
	"strings"

	"github.com/san-kum/sortvis/internal/engine"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a grid of Braille cells; each cell holds 2x4 sub-pixels.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// PixelSize is the canvas size in sub-pixels.
func (c *Canvas) PixelSize() (int, int) { return c.Width * 2, c.Height * 4 }

// Set sets a sub-pixel; out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// Column returns the sub-pixel span [x0, x1] of element i out of n.
func (c *Canvas) Column(i, n int) (int, int) {
	cw, _ := c.PixelSize()
	x0 := i * cw / n
	x1 := (i+1)*cw/n - 1
	if x1-x0 >= 2 {
		x1--
	}
	if x1 < x0 {
		x1 = x0
	}
	return x0, x1
}

// DrawFrame draws every element of f as a bar or a point.
func (c *Canvas) DrawFrame(f engine.Frame) {
	c.Clear()
	n := len(f.Values)
	if n == 0 {
		return
	}
	_, ch := c.PixelSize()
	for i, v := range f.Values {
		x0, x1 := c.Column(i, n)
		h := f.Meta.BarHeight(v, ch)
		for x := x0; x <= x1; x++ {
			if f.Draw == engine.Points {
				y := ch - 1 - h
				if y < 0 {
					y = 0
				}
				c.Set(x, y)
				continue
			}
			for y := ch - h; y < ch; y++ {
				c.Set(x, y)
			}
		}
	}
}

// Marker returns a row of text with a mark under each highlighted element.
func (c *Canvas) Marker(n int, cursor int, touched [2]int) string {
	row := []rune(strings.Repeat(" ", c.Width))
	mark := func(i int, r rune) {
		if i < 0 || i >= n {
			return
		}
		x0, _ := c.Column(i, n)
		if col := x0 / 2; col < c.Width {
			row[col] = r
		}
	}
	mark(touched[0], '•')
	mark(touched[1], '•')
	mark(cursor, '▲')
	return string(row)
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
