// Package hw is the hardware boundary: sources of raw switch samples.
//
// A Matrix produces one full sample of the 24 switches per poll cycle.
// Electrical debouncing happens below this boundary; the core applies no
// debouncing of its own. Two implementations ship with the engine: a Replay
// matrix driven by a script, and a terminal simulator built on tcell.
package hw

import (
	"errors"

	"github.com/dshills/chordkey/internal/input/scan"
)

// ErrClosed is returned by Scan when the matrix has no further samples:
// the simulator window was quit or a replay script ran out.
var ErrClosed = errors.New("matrix closed")

// Matrix reads the physical switch states, one sample per poll cycle.
// Polarity is "true = pressed".
type Matrix interface {
	// Scan returns the current sample.
	Scan() (scan.State, error)

	// Close releases the underlying input source.
	Close() error
}
