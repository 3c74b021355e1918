// Package viz renders a sort run in the terminal.
//
// The package implements the terminal front end using the Bubble Tea framework:
//
//   - [Model]: the tea.Model that steps the dispatcher once per tick
//   - [Canvas]: Braille-based pixel canvas the bars and points are drawn on
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart from the loaded values
//	N     - Load a new sequence
//	1-5   - Switch algorithm (fresh cursor, current values)
//	D     - Toggle bars/points
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	S     - Save an SVG snapshot
//	Q     - Quit
//	?     - Show help overlay
//
// # Recording
//
// Recordings are written as GIF animations to the configured path when
// recording is toggled off.
package viz
