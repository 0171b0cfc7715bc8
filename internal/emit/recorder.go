package emit

import "strings"

// Recorder is an Emitter that captures actions for inspection. It applies
// backspace actions to its text buffer so tests can assert on the final
// visible output as well as the raw action stream.
type Recorder struct {
	actions []string
	text    []rune
	shift   bool
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Press records an action press.
func (r *Recorder) Press(a Action) error {
	r.actions = append(r.actions, "+"+a.String())
	switch a.Kind {
	case KindShift:
		r.shift = true
	case KindSpace:
		r.text = append(r.text, ' ')
	case KindBackspace:
		if len(r.text) > 0 {
			r.text = r.text[:len(r.text)-1]
		}
	case KindRune:
		ch := a.Rune
		if r.shift {
			ch = toUpper(ch)
		}
		r.text = append(r.text, ch)
	}
	return nil
}

// Release records an action release.
func (r *Recorder) Release(a Action) error {
	r.actions = append(r.actions, "-"+a.String())
	if a.Kind == KindShift {
		r.shift = false
	}
	return nil
}

// Text returns the visible output after applying backspaces.
func (r *Recorder) Text() string {
	return string(r.text)
}

// Actions returns the raw press/release stream, e.g. "+m -m +<space> -<space>".
func (r *Recorder) Actions() string {
	return strings.Join(r.actions, " ")
}

// Reset clears the recorder.
func (r *Recorder) Reset() {
	r.actions = nil
	r.text = nil
	r.shift = false
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
