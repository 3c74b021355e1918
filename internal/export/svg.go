// Package export writes frames and step series as standalone SVG documents.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/sortvis/internal/engine"
)

const (
	background   = "#0a0a0a"
	barColor     = "#b4b4b4"
	cursorColor  = "#ffffff"
	touchedColor = "#e6783c"
	sortedColor  = "#78c878"
	pointSize    = 3
)

// FrameToSVG draws f in a width x height image: bars grow from the bottom
// edge, points sit at the bar top. Highlighted elements get their own color.
func FrameToSVG(f engine.Frame, width, height int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	n := len(f.Values)
	for i, v := range f.Values {
		x0 := i * width / n
		colW := (i+1)*width/n - x0
		if colW < 1 {
			colW = 1
		}
		h := f.Meta.BarHeight(v, height)
		fill := elementColor(i, f)
		if f.Draw == engine.Points {
			y := height - h
			if y > height-pointSize {
				y = height - pointSize
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, x0, y, min(colW, pointSize), pointSize, fill))
			continue
		}
		if h == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, x0, height-h, colW, h, fill))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func elementColor(i int, f engine.Frame) string {
	switch {
	case f.State == engine.Sorted:
		return sortedColor
	case i == f.Cursor.Index:
		return cursorColor
	case i == f.Touched[0] || i == f.Touched[1]:
		return touchedColor
	}
	return barColor
}

// SeriesToSVG plots values against their index as a polyline.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	last := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, background, strokeColor))

	for i, v := range values {
		x := float64(i) / last * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// WriteFile stores an SVG document at path.
func WriteFile(path, svg string) error {
	if svg == "" {
		return fmt.Errorf("%w: nothing to export", engine.ErrEmptyInput)
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
