// Package chord accumulates simultaneously-held switches into chords.
//
// A Session is a two-state machine (idle / accumulating). The first letter
// press after idle opens a session; further presses join it and releases only
// refresh its activity clock. Once a finger has contributed to the chord,
// lifting it does not retract that contribution. A session finalizes when all
// switches are up and the stability window has elapsed, or unconditionally
// when the formation timeout expires.
package chord

import (
	"time"

	"github.com/dshills/chordkey/internal/input/key"
	"github.com/dshills/chordkey/internal/input/scan"
)

// Default timing constants.
const (
	// DefaultStabilityWindow is the idle duration after the last edge,
	// with all switches up, before a chord is considered finished.
	DefaultStabilityWindow = 600 * time.Millisecond

	// DefaultFormationTimeout is the ceiling on how long a chord may stay
	// open. It bounds worst-case latency and guards against a stuck switch
	// holding a session open forever.
	DefaultFormationTimeout = 2 * time.Second
)

// Timing configures the two session timers.
type Timing struct {
	// StabilityWindow is the all-up idle duration that finishes a chord.
	StabilityWindow time.Duration

	// FormationTimeout is the maximum lifetime of an open session.
	FormationTimeout time.Duration
}

// DefaultTiming returns the standard timer configuration.
func DefaultTiming() Timing {
	return Timing{
		StabilityWindow:  DefaultStabilityWindow,
		FormationTimeout: DefaultFormationTimeout,
	}
}

// Chord is one finalized unit of input: the letter switches that were held
// together, whether Shift was latched during formation, and whether numeric
// mode was active when the chord finished.
type Chord struct {
	// Keys holds the contributing letter switches in physical order.
	Keys []key.KeyID

	// Shift is true if the Shift switch was pressed during formation.
	Shift bool

	// Numeric is true if the chord decodes under the numeric overlay.
	Numeric bool
}

// Session accumulates one chord at a time. It is owned by the polling loop
// and is not safe for concurrent use.
type Session struct {
	timing Timing

	active       scan.State
	inProgress   bool
	shiftLatched bool
	start        time.Time
	lastActivity time.Time
}

// NewSession creates an idle session with the given timing.
func NewSession(timing Timing) *Session {
	return &Session{timing: timing}
}

// SetTiming replaces the session timers. It applies from the next
// evaluation; an open session keeps its recorded timestamps.
func (s *Session) SetTiming(timing Timing) {
	s.timing = timing
}

// Timing returns the current timer configuration.
func (s *Session) Timing() Timing {
	return s.timing
}

// InProgress reports whether a chord is currently accumulating.
func (s *Session) InProgress() bool {
	return s.inProgress
}

// Observe feeds one poll cycle's edges into the session. Pressed letter
// switches open or extend the session; a pressed Shift latches
// capitalization without joining the chord; releases refresh the activity
// clock but never remove a switch from the chord. The caller must filter
// out the immediate-command switches before calling.
func (s *Session) Observe(now time.Time, e scan.Edges) {
	for _, id := range e.Pressed {
		if !s.inProgress {
			s.inProgress = true
			s.active = 0
			s.shiftLatched = false
			s.start = now
		}
		s.lastActivity = now
		if id == key.KeyShift {
			s.shiftLatched = true
			continue
		}
		s.active.Set(id, true)
	}

	if s.inProgress && len(e.Released) > 0 {
		s.lastActivity = now
	}
}

// Finalize evaluates the two timers against the current cycle. held is the
// current sample with the immediate-command switches masked out; numeric is
// the mode the chord should decode under. It returns the finished chord and
// true when either timer fires with a non-empty chord. An empty session
// (for example Shift pressed and released alone) resets silently.
//
// Finalize is evaluated every poll cycle while accumulating, independent of
// whether the cycle had edges.
func (s *Session) Finalize(now time.Time, held scan.State, numeric bool) (Chord, bool) {
	if !s.inProgress {
		return Chord{}, false
	}

	stable := held.IsEmpty() && now.Sub(s.lastActivity) >= s.timing.StabilityWindow
	expired := now.Sub(s.start) >= s.timing.FormationTimeout
	if !stable && !expired {
		return Chord{}, false
	}

	c := Chord{
		Keys:    s.active.Keys(),
		Shift:   s.shiftLatched,
		Numeric: numeric,
	}
	s.Reset()
	if len(c.Keys) == 0 {
		return Chord{}, false
	}
	return c, true
}

// Reset discards any in-progress chord and returns the session to idle.
// Used directly when an immediate command interrupts formation.
func (s *Session) Reset() {
	s.active = 0
	s.inProgress = false
	s.shiftLatched = false
}
