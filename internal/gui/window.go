// Package gui draws the sorting run in a raylib window and reads its keyboard
// as an event source.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/sortvis/internal/engine"
)

// Monochrome palette with two highlight colors.
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColBar     = rl.NewColor(180, 180, 180, 255)
	ColCursor  = rl.NewColor(255, 255, 255, 255)
	ColTouched = rl.NewColor(230, 120, 60, 255)
	ColSorted  = rl.NewColor(120, 200, 120, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

type Options struct {
	Width, Height int
	Title         string
	FPS           int
	HUD           bool
}

// Window is an engine.Renderer and engine.EventSource backed by raylib.
type Window struct {
	opts   Options
	paused bool
	closed bool
}

var algorithmKeys = []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive}

// Open creates the window. It fails with engine.ErrResourceInit when raylib
// cannot create a window, e.g. without a display.
func Open(opts Options) (*Window, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: window size %dx%d", engine.ErrInvalidArgument, opts.Width, opts.Height)
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("%w: raylib window", engine.ErrResourceInit)
	}
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(0)
	return &Window{opts: opts}, nil
}

// Poll reports the keys pressed since the previous frame.
func (w *Window) Poll() []engine.Event {
	var events []engine.Event
	if rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return append(events, engine.Event{Kind: engine.EventQuit})
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		w.paused = !w.paused
		events = append(events, engine.Event{Kind: engine.EventPause})
	}
	if rl.IsKeyPressed(rl.KeyR) {
		events = append(events, engine.Event{Kind: engine.EventRestart})
	}
	if rl.IsKeyPressed(rl.KeyD) {
		events = append(events, engine.Event{Kind: engine.EventToggleDraw})
	}
	for i, key := range algorithmKeys {
		if rl.IsKeyPressed(key) {
			events = append(events, engine.Event{Kind: engine.EventSelectAlgorithm, Algorithm: engine.Algorithms[i]})
		}
	}
	return events
}

// Render presents one frame. Rendering never changes the engine state.
func (w *Window) Render(f engine.Frame) error {
	if w.closed {
		return fmt.Errorf("%w: window closed", engine.ErrResourceInit)
	}
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
	for _, r := range Layout(f, w.opts.Width, w.opts.Height) {
		rl.DrawRectangle(r.X, r.Y, r.W, r.H, r.color(f.State))
	}
	if w.opts.HUD {
		w.drawHUD(f)
	}
	rl.EndDrawing()
	return nil
}

func (w *Window) drawHUD(f engine.Frame) {
	status := f.State.String()
	if w.paused && f.State == engine.Running {
		status = "PAUSED"
	}
	rl.DrawText(fmt.Sprintf("%s :: %s", f.Algorithm, status), 20, 20, 20, ColText)
	rl.DrawText(fmt.Sprintf("steps %d  cmp %d  swaps %d", f.Stats.Steps, f.Stats.Comparisons, f.Stats.Swaps), 20, 46, 16, ColText)
	rl.DrawText("[SPACE] PAUSE  [R] RESTART  [1-5] ALGORITHM  [D] DRAW  [Q] QUIT", 20, int32(w.opts.Height)-30, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), int32(w.opts.Width)-80, 20, 14, ColTextDim)
}

func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	rl.CloseWindow()
}
