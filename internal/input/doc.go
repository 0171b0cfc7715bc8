// Package input coordinates the per-tick input pipeline.
//
// Once per poll cycle the Handler derives press/release edges from the
// current matrix sample, short-circuits single-key immediate commands
// (mode toggle, space, backspace), feeds the remaining edges to the chord
// session, and evaluates the session's timers. A finalized chord is decoded
// and its text typed through the emitter.
//
// The Handler owns all mutable input state (previous sample, numeric mode,
// the open session) and is driven by a single goroutine; nothing here needs
// synchronization.
package input
