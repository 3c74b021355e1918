// Package term is a full-screen terminal front end built on tcell. Unlike the
// bubbletea view it is a plain engine.Renderer and engine.EventSource, so the
// dispatch.Runner drives it like the raylib window.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/san-kum/sortvis/internal/engine"
)

// eighths are the partial block glyphs for a bar top, index = eighths filled.
var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

var (
	styleBar     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleCursor  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleTouched = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleSorted  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Screen renders frames as block-character bars and turns key presses into
// engine events.
type Screen struct {
	screen    tcell.Screen
	events    chan tcell.Event
	frameTime time.Duration
	lastFrame time.Time
	paused    bool
}

// Open initializes the controlling terminal.
func Open(fps int) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: terminal: %v", engine.ErrResourceInit, err)
	}
	return New(s, fps)
}

// New wraps an uninitialized tcell screen. fps <= 0 disables frame pacing.
func New(s tcell.Screen, fps int) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("%w: terminal: %v", engine.ErrResourceInit, err)
	}
	s.HideCursor()
	sc := &Screen{
		screen: s,
		events: make(chan tcell.Event, 100),
	}
	if fps > 0 {
		sc.frameTime = time.Second / time.Duration(fps)
	}
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(sc.events)
				return
			}
			sc.events <- ev
		}
	}()
	return sc, nil
}

// Poll drains pending terminal events without blocking.
func (s *Screen) Poll() []engine.Event {
	var out []engine.Event
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return append(out, engine.Event{Kind: engine.EventQuit})
			}
			if e, ok := s.translate(ev); ok {
				out = append(out, e)
				if e.Kind == engine.EventQuit {
					return out
				}
			}
		default:
			return out
		}
	}
}

func (s *Screen) translate(ev tcell.Event) (engine.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return engine.Event{Kind: engine.EventQuit}, true
		case tcell.KeyRune:
			switch r := ev.Rune(); r {
			case 'q':
				return engine.Event{Kind: engine.EventQuit}, true
			case ' ':
				s.paused = !s.paused
				return engine.Event{Kind: engine.EventPause}, true
			case 'r':
				return engine.Event{Kind: engine.EventRestart}, true
			case 'd':
				return engine.Event{Kind: engine.EventToggleDraw}, true
			case '1', '2', '3', '4', '5':
				return engine.Event{Kind: engine.EventSelectAlgorithm, Algorithm: engine.Algorithms[r-'1']}, true
			}
		}
	}
	return engine.Event{}, false
}

// Render draws f over the whole screen, keeping the last row for status.
func (s *Screen) Render(f engine.Frame) error {
	s.screen.Clear()
	w, h := s.screen.Size()
	rows := h - 1
	if n := len(f.Values); n > 0 && w > 0 && rows > 0 {
		for i, v := range f.Values {
			style := elementStyle(i, f)
			x0, x1 := i*w/n, (i+1)*w/n
			if x1 <= x0 {
				x1 = x0 + 1
			}
			level := f.Meta.BarHeight(v, rows*8)
			for x := x0; x < x1 && x < w; x++ {
				s.drawColumn(x, rows, level, f.Draw, style)
			}
		}
	}
	s.drawStatus(f, w, h)
	s.screen.Show()
	s.pace()
	return nil
}

// drawColumn fills a column bottom-up to level eighths of a cell.
func (s *Screen) drawColumn(x, rows, level int, draw engine.DrawMethod, style tcell.Style) {
	full, part := level/8, level%8
	if draw == engine.Points {
		y := rows - (level+7)/8
		if y > rows-1 {
			y = rows - 1
		}
		if y < 0 {
			y = 0
		}
		s.screen.SetContent(x, y, '•', nil, style)
		return
	}
	for k := 0; k < full; k++ {
		s.screen.SetContent(x, rows-1-k, eighths[8], nil, style)
	}
	if part > 0 && full < rows {
		s.screen.SetContent(x, rows-1-full, eighths[part], nil, style)
	}
}

func (s *Screen) drawStatus(f engine.Frame, w, h int) {
	state := f.State.String()
	if s.paused && f.State == engine.Running {
		state = "PAUSED"
	}
	line := fmt.Sprintf(" %s :: %s  steps %d  cmp %d  swaps %d  [space] pause [r] restart [1-5] algorithm [d] draw [q] quit",
		f.Algorithm, state, f.Stats.Steps, f.Stats.Comparisons, f.Stats.Swaps)
	for x, r := range []rune(line) {
		if x >= w {
			break
		}
		s.screen.SetContent(x, h-1, r, nil, styleStatus)
	}
}

func elementStyle(i int, f engine.Frame) tcell.Style {
	switch {
	case f.State == engine.Sorted:
		return styleSorted
	case i == f.Cursor.Index:
		return styleCursor
	case i == f.Touched[0] || i == f.Touched[1]:
		return styleTouched
	}
	return styleBar
}

// pace sleeps out the rest of the frame so one step is taken per frame period.
func (s *Screen) pace() {
	if s.frameTime == 0 {
		return
	}
	if wait := s.frameTime - time.Since(s.lastFrame); wait > 0 {
		time.Sleep(wait)
	}
	s.lastFrame = time.Now()
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}
