// Package engine provides the core primitives of the incremental sort step engine.
//
// The package defines the types every other part of sortvis is built on:
//
//   - [Sequence]: the mutable, fixed-length array being sorted
//   - [Metadata]: display values derived once from a finalized sequence
//   - [Stepper]: one resumable sorting algorithm, advanced one unit per call
//   - [Renderer] and [EventSource]: the presentation boundary
//
// # Example
//
//	seq, _ := engine.NewRandom(100, rand.New(rand.NewSource(1)))
//	st, _ := algorithms.New(engine.Bubble)
//	for !seq.IsSorted() {
//		st.Step(seq)
//	}
//
// # Thread Safety
//
// Sequences and steppers are NOT thread-safe. They are owned by a single
// tick loop and must only be touched from it.
package engine
