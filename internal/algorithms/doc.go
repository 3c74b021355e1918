// Package algorithms implements the step algorithms driven by the dispatcher.
//
// Each algorithm keeps its cursor in its own struct and advances a
// [engine.Sequence] by one unit per Step call:
//
//   - [Selection]: one output position finalized per step
//   - [Insertion]: one leftward compare-and-swap per step
//   - [Bubble]: one full inner pass per step
//   - [Cocktail]: one forward and one backward pass per step
//   - [Gnome]: one compare, then advance or swap-and-retreat
//
// A fresh cursor is obtained by constructing a new value with [New].
package algorithms
