package emit

import "io"

// Writer is an Emitter that streams visible output to an io.Writer,
// one character per rune action. Backspace is written as "\b" and left to
// the destination to interpret. Used by replay mode to put decoded text on
// stdout.
type Writer struct {
	w     io.Writer
	shift bool
}

// NewWriter creates a writer emitter.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Press implements Emitter.
func (e *Writer) Press(a Action) error {
	switch a.Kind {
	case KindShift:
		e.shift = true
		return nil
	case KindSpace:
		return e.write(' ')
	case KindBackspace:
		return e.write('\b')
	case KindRune:
		ch := a.Rune
		if e.shift {
			ch = toUpper(ch)
		}
		return e.write(ch)
	}
	return nil
}

// Release implements Emitter.
func (e *Writer) Release(a Action) error {
	if a.Kind == KindShift {
		e.shift = false
	}
	return nil
}

func (e *Writer) write(r rune) error {
	_, err := io.WriteString(e.w, string(r))
	return err
}
