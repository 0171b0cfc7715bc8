package input

import (
	"testing"
	"time"

	"github.com/dshills/chordkey/internal/decode"
	"github.com/dshills/chordkey/internal/dict"
	"github.com/dshills/chordkey/internal/emit"
	"github.com/dshills/chordkey/internal/event"
	"github.com/dshills/chordkey/internal/input/chord"
	"github.com/dshills/chordkey/internal/input/key"
	"github.com/dshills/chordkey/internal/input/scan"
)

const tick = 10 * time.Millisecond

// harness drives a Handler with a synthetic clock at a fixed tick rate.
type harness struct {
	t   *testing.T
	h   *Handler
	rec *emit.Recorder
	bus *event.Bus
	now time.Time
	cur scan.State

	decoded []event.ChordDecoded
	modes   []bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	layout := key.DefaultLayout()
	ha := &harness{
		t:   t,
		rec: emit.NewRecorder(),
		bus: event.NewBus(),
		now: time.Unix(1000, 0),
	}
	ha.bus.Subscribe(event.TopicChordDecoded, func(e event.Event) {
		ha.decoded = append(ha.decoded, e.Payload.(event.ChordDecoded))
	})
	ha.bus.Subscribe(event.TopicNumericMode, func(e event.Event) {
		ha.modes = append(ha.modes, e.Payload.(event.NumericMode).Enabled)
	})
	ha.h = NewHandler(layout, decode.New(layout, dict.Defaults()), ha.rec, ha.bus, chord.DefaultTiming(), nil)
	return ha
}

// step advances one poll cycle with the current switch state.
func (ha *harness) step() {
	ha.t.Helper()
	ha.now = ha.now.Add(tick)
	if err := ha.h.Tick(ha.now, ha.cur); err != nil {
		ha.t.Fatalf("Tick: %v", err)
	}
}

// press sets switches down and runs one cycle.
func (ha *harness) press(ids ...key.KeyID) {
	for _, id := range ids {
		ha.cur.Set(id, true)
	}
	ha.step()
}

// release sets switches up and runs one cycle.
func (ha *harness) release(ids ...key.KeyID) {
	for _, id := range ids {
		ha.cur.Set(id, false)
	}
	ha.step()
}

// run idles for the given duration, one poll cycle at a time.
func (ha *harness) run(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		ha.step()
	}
}

func TestChordDictionaryHit(t *testing.T) {
	ha := newHarness(t)

	ha.press(key.KeyM, key.KeyE, key.KeyS)
	ha.run(100 * time.Millisecond)
	ha.release(key.KeyM, key.KeyE, key.KeyS)
	ha.run(700 * time.Millisecond)

	if got := ha.rec.Text(); got != "mes" {
		t.Errorf("output = %q, want \"mes\"", got)
	}
	if len(ha.decoded) != 1 || !ha.decoded[0].Hit || ha.decoded[0].Canonical != "EMS" {
		t.Errorf("decoded events = %+v", ha.decoded)
	}
}

func TestChordShiftCapitalizes(t *testing.T) {
	ha := newHarness(t)

	ha.press(key.KeyE, key.KeyShift, key.KeyL)
	ha.release(key.KeyE, key.KeyShift, key.KeyL)
	ha.run(700 * time.Millisecond)

	if got := ha.rec.Text(); got != "El" {
		t.Errorf("output = %q, want \"El\"", got)
	}

	// Shift was consumed; the next chord is not capitalized.
	ha.press(key.KeyE, key.KeyL)
	ha.release(key.KeyE, key.KeyL)
	ha.run(700 * time.Millisecond)

	if got := ha.rec.Text(); got != "Elel" {
		t.Errorf("output = %q, want \"Elel\"", got)
	}
}

func TestChordFallback(t *testing.T) {
	ha := newHarness(t)

	ha.press(key.KeyG, key.KeyI, key.KeyR, key.KeyS)
	ha.release(key.KeyG, key.KeyI, key.KeyR, key.KeyS)
	ha.run(700 * time.Millisecond)

	if got := ha.rec.Text(); got != "girs" {
		t.Errorf("output = %q, want fallback \"girs\"", got)
	}
	if len(ha.decoded) != 1 || ha.decoded[0].Hit {
		t.Errorf("decoded events = %+v, want one miss", ha.decoded)
	}
}

func TestImmediateSpaceAndBackspace(t *testing.T) {
	ha := newHarness(t)

	ha.press(key.KeySpace)
	ha.release(key.KeySpace)
	if got := ha.rec.Text(); got != " " {
		t.Fatalf("output after space = %q, want \" \"", got)
	}

	ha.press(key.KeyBackspace)
	ha.release(key.KeyBackspace)
	if got := ha.rec.Text(); got != "" {
		t.Errorf("output after backspace = %q, want empty", got)
	}
}

func TestModeToggleDiscardsOpenChord(t *testing.T) {
	ha := newHarness(t)

	// Open a session, let go, then hit the mode key inside the stability
	// window. The command wins and the pending chord never decodes.
	ha.press(key.KeyM)
	ha.release(key.KeyM)
	ha.run(100 * time.Millisecond)
	ha.press(key.KeyMode)
	ha.release(key.KeyMode)
	ha.run(time.Second)

	if got := ha.rec.Text(); got != "" {
		t.Errorf("output = %q, want empty; pending chord must be discarded", got)
	}
	if !ha.h.NumericMode() {
		t.Error("numeric mode did not toggle")
	}
	if len(ha.modes) != 1 || !ha.modes[0] {
		t.Errorf("mode events = %v, want [true]", ha.modes)
	}
}

func TestCommandKeyInsideChordDoesNotFire(t *testing.T) {
	ha := newHarness(t)

	// Space pressed together with a letter: the single-held guard fails,
	// the command does not run, and space never joins the chord.
	ha.press(key.KeyM, key.KeySpace)
	ha.release(key.KeyM, key.KeySpace)
	ha.run(700 * time.Millisecond)

	if got := ha.rec.Text(); got != "m" {
		t.Errorf("output = %q, want \"m\" with no space emitted", got)
	}
}

func TestNumericChord(t *testing.T) {
	ha := newHarness(t)

	ha.press(key.KeyMode)
	ha.release(key.KeyMode)

	// Press order D, T, M; output follows physical order M, T, D.
	ha.press(key.KeyD)
	ha.press(key.KeyT)
	ha.press(key.KeyM)
	ha.release(key.KeyD, key.KeyT, key.KeyM)
	ha.run(700 * time.Millisecond)

	if got := ha.rec.Text(); got != "134" {
		t.Errorf("output = %q, want \"134\"", got)
	}
}

func TestNumericModeIsolation(t *testing.T) {
	ha := newHarness(t)

	// A chord decoded before the toggle stays stenographic.
	ha.press(key.KeyM, key.KeyE, key.KeyS)
	ha.release(key.KeyM, key.KeyE, key.KeyS)
	ha.run(700 * time.Millisecond)

	ha.press(key.KeyMode)
	ha.release(key.KeyMode)

	ha.press(key.KeyM, key.KeyE, key.KeyS)
	ha.release(key.KeyM, key.KeyE, key.KeyS)
	ha.run(700 * time.Millisecond)

	// M=1, E=5, S=8 under the overlay.
	if got := ha.rec.Text(); got != "mes158" {
		t.Errorf("output = %q, want \"mes158\"", got)
	}
}

func TestStabilityWindowTiming(t *testing.T) {
	ha := newHarness(t)

	ha.press(key.KeyE, key.KeyL)
	ha.release(key.KeyE, key.KeyL)

	// One poll cycle short of the stability window: nothing yet.
	ha.run(590 * time.Millisecond)
	if got := ha.rec.Text(); got != "" {
		t.Fatalf("output = %q before stability window elapsed", got)
	}

	// Within one poll interval of the window: finalized.
	ha.run(2 * tick)
	if got := ha.rec.Text(); got != "el" {
		t.Errorf("output = %q, want \"el\" at stability window", got)
	}
}

func TestFormationTimeoutWhileHeld(t *testing.T) {
	ha := newHarness(t)

	ha.press(key.KeyE, key.KeyL)

	// Keys stay held; only the formation ceiling can finalize.
	ha.run(1980 * time.Millisecond)
	if got := ha.rec.Text(); got != "" {
		t.Fatalf("output = %q before formation timeout", got)
	}

	ha.run(3 * tick)
	if got := ha.rec.Text(); got != "el" {
		t.Errorf("output = %q, want \"el\" at formation timeout", got)
	}
}

func TestShiftAloneEmitsNothing(t *testing.T) {
	ha := newHarness(t)

	ha.press(key.KeyShift)
	ha.release(key.KeyShift)
	ha.run(time.Second)

	if got := ha.rec.Text(); got != "" {
		t.Errorf("output = %q, want empty for shift alone", got)
	}
	if len(ha.decoded) != 0 {
		t.Errorf("decoded events = %+v, want none", ha.decoded)
	}
}

func TestNumericChordWithoutDigitsEmitsNothing(t *testing.T) {
	ha := newHarness(t)

	ha.press(key.KeyMode)
	ha.release(key.KeyMode)

	ha.press(key.KeyG)
	ha.release(key.KeyG)
	ha.run(700 * time.Millisecond)

	if got := ha.rec.Text(); got != "" {
		t.Errorf("output = %q, want empty", got)
	}
	// The decode is still reported, with empty text.
	if len(ha.decoded) != 1 || ha.decoded[0].Text != "" {
		t.Errorf("decoded events = %+v", ha.decoded)
	}
}
