// Package emit defines the keystroke output boundary.
//
// The decode core hands whole strings to a typer, which turns them into
// press/release pairs of key actions. Upper-case letters are composed by
// wrapping the lower-case key in a Shift press and release, the way a USB
// HID keyboard types them. Implementations of Emitter connect the actions
// to real output (a USB gadget, a display, a test recorder).
package emit

import (
	"fmt"
	"unicode"
)

// Kind classifies a key action.
type Kind uint8

const (
	// KindRune is a character key: a lower-case letter or a digit.
	KindRune Kind = iota

	// KindSpace is the dedicated space action.
	KindSpace

	// KindBackspace is the dedicated backspace action.
	KindBackspace

	// KindShift is the shift modifier, used to compose capitals.
	KindShift
)

// Action is one key at the output boundary.
type Action struct {
	// Kind classifies the action.
	Kind Kind

	// Rune is the character for KindRune actions.
	Rune rune
}

// Convenience actions for the non-rune kinds.
var (
	Space     = Action{Kind: KindSpace}
	Backspace = Action{Kind: KindBackspace}
	Shift     = Action{Kind: KindShift}
)

// Rune returns the action for a character key.
func Rune(r rune) Action {
	return Action{Kind: KindRune, Rune: r}
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a.Kind {
	case KindRune:
		return string(a.Rune)
	case KindSpace:
		return "<space>"
	case KindBackspace:
		return "<backspace>"
	case KindShift:
		return "<shift>"
	default:
		return fmt.Sprintf("action(%d)", uint8(a.Kind))
	}
}

// Emitter turns key actions into output.
type Emitter interface {
	// Press begins an action.
	Press(a Action) error

	// Release ends an action.
	Release(a Action) error
}

// Tap presses and releases one action.
func Tap(e Emitter, a Action) error {
	if err := e.Press(a); err != nil {
		return err
	}
	return e.Release(a)
}

// Type emits a string character by character, preserving order. Upper-case
// letters are composed as Shift plus the lower-case key; spaces use the
// dedicated space action. Characters the boundary does not support are
// skipped rather than failing the whole string.
func Type(e Emitter, text string) error {
	for _, r := range text {
		switch {
		case r == ' ':
			if err := Tap(e, Space); err != nil {
				return err
			}
		case unicode.IsUpper(r):
			if err := e.Press(Shift); err != nil {
				return err
			}
			if err := Tap(e, Rune(unicode.ToLower(r))); err != nil {
				return err
			}
			if err := e.Release(Shift); err != nil {
				return err
			}
		case unicode.IsLower(r) || unicode.IsDigit(r):
			if err := Tap(e, Rune(r)); err != nil {
				return err
			}
		}
	}
	return nil
}
