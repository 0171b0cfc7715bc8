// Package scan represents raw switch states and derives press/release edges
// between consecutive poll cycles.
package scan

import (
	"math/bits"
	"strings"

	"github.com/dshills/chordkey/internal/input/key"
)

// State is one full sample of the switch matrix: bit i is set when switch i
// is pressed. A State carries no history; edge detection compares the sample
// from the previous poll cycle against the current one.
type State uint32

// Set records the state of one switch.
func (s *State) Set(id key.KeyID, down bool) {
	if !id.Valid() {
		return
	}
	if down {
		*s |= 1 << id
	} else {
		*s &^= 1 << id
	}
}

// Pressed reports whether a switch is down in this sample.
func (s State) Pressed(id key.KeyID) bool {
	return id.Valid() && s&(1<<id) != 0
}

// Count returns the number of switches down in this sample.
func (s State) Count() int {
	return bits.OnesCount32(uint32(s))
}

// IsEmpty reports whether no switch is down.
func (s State) IsEmpty() bool {
	return s == 0
}

// Keys returns the switches down in this sample, in physical order.
func (s State) Keys() []key.KeyID {
	if s == 0 {
		return nil
	}
	ids := make([]key.KeyID, 0, s.Count())
	for id := key.KeyID(0); id < key.NumKeys; id++ {
		if s.Pressed(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Mask clears the given switches from the sample.
func (s State) Mask(ids ...key.KeyID) State {
	for _, id := range ids {
		s.Set(id, false)
	}
	return s
}

// String returns the held switches as "M+E+S", or "-" when empty.
func (s State) String() string {
	if s == 0 {
		return "-"
	}
	parts := make([]string, 0, s.Count())
	for _, id := range s.Keys() {
		parts = append(parts, id.String())
	}
	return strings.Join(parts, "+")
}

// Edges holds the switches that changed between two consecutive samples.
type Edges struct {
	// Pressed contains switches that went from up to down, in physical order.
	Pressed []key.KeyID

	// Released contains switches that went from down to up, in physical order.
	Released []key.KeyID
}

// Changed reports whether any switch changed state.
func (e Edges) Changed() bool {
	return len(e.Pressed) > 0 || len(e.Released) > 0
}

// Diff derives the press and release edges between the previous and current
// samples. It has no side effects; the caller stores cur as the new previous
// sample for the next cycle.
func Diff(prev, cur State) Edges {
	var e Edges
	down := cur &^ prev
	up := prev &^ cur
	if down != 0 {
		e.Pressed = down.Keys()
	}
	if up != 0 {
		e.Released = up.Keys()
	}
	return e
}
