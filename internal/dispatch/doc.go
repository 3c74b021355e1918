// Package dispatch drives a step algorithm over a sequence, one step per frame.
//
// [Dispatcher] is the Idle → Running → Sorted state machine. It owns the
// sequence, the active stepper (and with it the cursor) and the run metrics.
// [Runner] is the frame loop used by the window and headless front ends:
// poll events, step once, render.
package dispatch
