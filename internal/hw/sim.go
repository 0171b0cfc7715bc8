package hw

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/chordkey/internal/emit"
	"github.com/dshills/chordkey/internal/event"
	"github.com/dshills/chordkey/internal/input/key"
	"github.com/dshills/chordkey/internal/input/scan"
)

// DefaultHoldWindow is how long a simulated switch stays pressed after a
// terminal key event. Terminals report no key-up, so chording is simulated
// by typing the chord's letters within the window.
const DefaultHoldWindow = 250 * time.Millisecond

// Sim is a terminal-based Matrix for running the engine without hardware.
// Typing a letter presses its switch for the hold window; an upper-case
// letter also presses the Shift switch. Tab is the mode toggle, space and
// backspace map to their switches, and Escape or Ctrl+C quits.
//
// Sim doubles as the demo Emitter: decoded text is rendered on screen.
type Sim struct {
	screen tcell.Screen
	hold   time.Duration

	mu        sync.Mutex
	downUntil [key.NumKeys]time.Time
	text      []rune
	status    string
	shift     bool
	closed    bool
}

// NewSim initializes the terminal simulator. hold <= 0 uses
// DefaultHoldWindow.
func NewSim(hold time.Duration) (*Sim, error) {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating simulator screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing simulator screen: %w", err)
	}

	s := &Sim{screen: screen, hold: hold, status: "ready"}
	go s.eventLoop()
	s.draw()
	return s, nil
}

// Scan implements Matrix: a switch reads pressed while inside its hold
// window. Returns ErrClosed after the user quits.
func (s *Sim) Scan() (scan.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}

	now := time.Now()
	var st scan.State
	for id := key.KeyID(0); id < key.NumKeys; id++ {
		if s.downUntil[id].After(now) {
			st.Set(id, true)
		}
	}
	return st, nil
}

// Close shuts the terminal down.
func (s *Sim) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.screen.Fini()
	return nil
}

// Press implements emit.Emitter by rendering into the output line.
func (s *Sim) Press(a emit.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}

	switch a.Kind {
	case emit.KindShift:
		s.shift = true
	case emit.KindSpace:
		s.text = append(s.text, ' ')
	case emit.KindBackspace:
		if len(s.text) > 0 {
			s.text = s.text[:len(s.text)-1]
		}
	case emit.KindRune:
		ch := a.Rune
		if s.shift && ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		s.text = append(s.text, ch)
	}
	s.drawLocked()
	return nil
}

// Release implements emit.Emitter.
func (s *Sim) Release(a emit.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.Kind == emit.KindShift {
		s.shift = false
	}
	return nil
}

// Notify is an event.Handler updating the status line. Subscribe it to all
// topics to see the pipeline working.
func (s *Sim) Notify(e event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	switch p := e.Payload.(type) {
	case event.ChordDecoded:
		if p.Numeric {
			s.status = fmt.Sprintf("numeric -> %q", p.Text)
		} else if p.Hit {
			s.status = fmt.Sprintf("%s -> %q", p.Canonical, p.Text)
		} else {
			s.status = fmt.Sprintf("%s -> %q (fallback)", p.Canonical, p.Text)
		}
	case event.NumericMode:
		if p.Enabled {
			s.status = "numeric mode on"
		} else {
			s.status = "numeric mode off"
		}
	}
	s.drawLocked()
}

// eventLoop translates terminal key events into switch presses.
func (s *Sim) eventLoop() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.mu.Lock()
			s.screen.Sync()
			s.mu.Unlock()
		case *tcell.EventKey:
			if !s.handleKey(ev) {
				_ = s.Close()
				return
			}
		}
	}
}

// handleKey presses the switches for one terminal key event.
// Returns false to quit.
func (s *Sim) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		s.pressSwitch(key.KeyMode)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		s.pressSwitch(key.KeyBackspace)
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == ' ':
			s.pressSwitch(key.KeySpace)
		case r >= 'A' && r <= 'Z':
			if id := key.FromName(string(r + 'a' - 'A')); id != key.KeyNone {
				s.pressSwitch(id, key.KeyShift)
			}
		default:
			if id := key.FromName(string(r)); id != key.KeyNone {
				s.pressSwitch(id)
			}
		}
	}
	return true
}

func (s *Sim) pressSwitch(ids ...key.KeyID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	until := time.Now().Add(s.hold)
	for _, id := range ids {
		s.downUntil[id] = until
	}
	s.drawLocked()
}

func (s *Sim) draw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawLocked()
}

// drawLocked repaints the screen. Caller holds mu.
func (s *Sim) drawLocked() {
	if s.closed {
		return
	}

	now := time.Now()
	var held scan.State
	for id := key.KeyID(0); id < key.NumKeys; id++ {
		if s.downUntil[id].After(now) {
			held.Set(id, true)
		}
	}

	s.screen.Clear()
	style := tcell.StyleDefault
	bold := style.Bold(true)

	s.putLine(0, bold, "chordkey simulator")
	s.putLine(1, style, "type letters together to chord; Tab = mode, Esc = quit")
	s.putLine(3, style, "held: "+held.String())
	s.putLine(4, style, "last: "+s.status)
	s.putLine(6, bold, "> "+string(s.text))
	s.screen.Show()
}

func (s *Sim) putLine(y int, style tcell.Style, text string) {
	for x, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
	}
}
