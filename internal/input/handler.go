package input

import (
	"log/slog"
	"time"

	"github.com/dshills/chordkey/internal/decode"
	"github.com/dshills/chordkey/internal/emit"
	"github.com/dshills/chordkey/internal/event"
	"github.com/dshills/chordkey/internal/input/chord"
	"github.com/dshills/chordkey/internal/input/key"
	"github.com/dshills/chordkey/internal/input/scan"
)

// Handler runs the input pipeline for one matrix.
type Handler struct {
	layout  *key.Layout
	session *chord.Session
	decoder *decode.Decoder
	emitter emit.Emitter
	bus     *event.Bus
	logger  *slog.Logger

	prev    scan.State
	numeric bool
}

// NewHandler creates a handler. The bus may be nil when nothing observes
// the pipeline; logger may be nil to use the default logger.
func NewHandler(layout *key.Layout, dec *decode.Decoder, em emit.Emitter, bus *event.Bus, timing chord.Timing, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		layout:  layout,
		session: chord.NewSession(timing),
		decoder: dec,
		emitter: em,
		bus:     bus,
		logger:  logger,
	}
}

// NumericMode reports whether the digit overlay is active.
func (h *Handler) NumericMode() bool {
	return h.numeric
}

// SetTiming replaces the chord timers, applying from the next tick.
func (h *Handler) SetTiming(t chord.Timing) {
	h.session.SetTiming(t)
}

// Tick processes one poll cycle. cur is the matrix sample for this cycle;
// now is the sample time. The only errors are emitter failures, which the
// caller's supervisor handles; the state machine itself cannot fail.
func (h *Handler) Tick(now time.Time, cur scan.State) error {
	edges := scan.Diff(h.prev, cur)
	h.prev = cur

	// A lone newly-pressed command key acts immediately and discards any
	// chord in progress. The held-count guard keeps a command key that is
	// part of a larger chord from firing.
	if len(edges.Pressed) == 1 && cur.Count() == 1 && h.layout.IsImmediate(edges.Pressed[0]) {
		return h.runImmediate(edges.Pressed[0])
	}

	h.session.Observe(now, h.filterEdges(edges))

	held := h.maskImmediate(cur)
	c, ok := h.session.Finalize(now, held, h.numeric)
	if !ok {
		return nil
	}

	h.publish(event.TopicChordFinalized, event.ChordFinalized{
		Keys:    c.Keys,
		Shift:   c.Shift,
		Numeric: c.Numeric,
	})

	res := h.decoder.Decode(c)
	h.logger.Debug("chord decoded",
		"canonical", res.Canonical,
		"text", res.Text,
		"hit", res.Hit,
		"numeric", c.Numeric,
	)
	if res.Text != "" {
		if err := emit.Type(h.emitter, res.Text); err != nil {
			return err
		}
	}

	h.publish(event.TopicChordDecoded, event.ChordDecoded{
		Canonical: res.Canonical,
		Text:      res.Text,
		Hit:       res.Hit,
		Numeric:   c.Numeric,
	})
	return nil
}

// runImmediate executes a single-key command.
func (h *Handler) runImmediate(id key.KeyID) error {
	h.session.Reset()

	var err error
	switch h.layout.Role(id) {
	case key.RoleModeToggle:
		h.numeric = !h.numeric
		h.logger.Debug("numeric mode toggled", "enabled", h.numeric)
		h.publish(event.TopicNumericMode, event.NumericMode{Enabled: h.numeric})
	case key.RoleSpace:
		err = emit.Tap(h.emitter, emit.Space)
	case key.RoleBackspace:
		err = emit.Tap(h.emitter, emit.Backspace)
	}
	h.publish(event.TopicImmediateCommand, event.ImmediateCommand{Key: id})
	return err
}

// filterEdges strips the immediate-command switches from both edge sets so
// they can never join a chord.
func (h *Handler) filterEdges(e scan.Edges) scan.Edges {
	out := scan.Edges{}
	for _, id := range e.Pressed {
		if !h.layout.IsImmediate(id) {
			out.Pressed = append(out.Pressed, id)
		}
	}
	for _, id := range e.Released {
		if !h.layout.IsImmediate(id) {
			out.Released = append(out.Released, id)
		}
	}
	return out
}

// maskImmediate clears the immediate-command switches from a sample, leaving
// the switches whose held state keeps a session open.
func (h *Handler) maskImmediate(s scan.State) scan.State {
	for id := key.KeyID(0); id < key.NumKeys; id++ {
		if h.layout.IsImmediate(id) {
			s.Set(id, false)
		}
	}
	return s
}

func (h *Handler) publish(t event.Topic, payload any) {
	if h.bus != nil {
		h.bus.Publish(t, payload)
	}
}
