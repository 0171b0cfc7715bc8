// Package decode turns finalized chords into output text.
//
// Decoding is a total function: every chord produces a defined result. In
// numeric mode the chord's switches map through the layout's digit overlay in
// physical order. Otherwise the chord's letters form a canonical dictionary
// key; a miss falls back to the canonical letters themselves, so no chord is
// ever silently dropped.
package decode

import (
	"strings"
	"unicode"

	"github.com/dshills/chordkey/internal/dict"
	"github.com/dshills/chordkey/internal/input/chord"
	"github.com/dshills/chordkey/internal/input/key"
)

// Result is the outcome of decoding one chord.
type Result struct {
	// Text is the output to emit. Empty means nothing to emit (for
	// example a numeric-mode chord with no digit switches).
	Text string

	// Canonical is the dictionary key consulted, empty in numeric mode.
	Canonical string

	// Hit is true when the dictionary supplied the word.
	Hit bool
}

// Decoder maps chords to text using a layout and a dictionary. Both are
// read-only after construction, so a Decoder is safe to share.
type Decoder struct {
	layout *key.Layout
	dict   *dict.Dictionary
}

// New creates a decoder.
func New(layout *key.Layout, d *dict.Dictionary) *Decoder {
	return &Decoder{layout: layout, dict: d}
}

// Decode translates one chord. It never fails; see Result.
func (d *Decoder) Decode(c chord.Chord) Result {
	if c.Numeric {
		return d.decodeNumeric(c)
	}
	return d.decodeSteno(c)
}

// decodeNumeric maps each switch through the digit overlay. Switches without
// a digit are skipped, and shift is ignored. Keys arrive in physical order,
// which fixes the digit order regardless of press order.
func (d *Decoder) decodeNumeric(c chord.Chord) Result {
	var sb strings.Builder
	for _, id := range c.Keys {
		if digit, ok := d.layout.Digit(id); ok {
			sb.WriteRune(digit)
		}
	}
	return Result{Text: sb.String()}
}

// decodeSteno forms the canonical key from the chord's letters and consults
// the dictionary. On a hit, shift capitalizes the word's first letter; on a
// miss, the fallback is the canonical letters themselves, whole-string
// upper-cased when shift is latched.
func (d *Decoder) decodeSteno(c chord.Chord) Result {
	var letters strings.Builder
	for _, id := range c.Keys {
		if r, ok := d.layout.Letter(id); ok {
			letters.WriteRune(r)
		}
	}
	canon := dict.Canonical(letters.String())
	if canon == "" {
		return Result{}
	}

	if word, ok := d.dict.Lookup(canon); ok {
		if c.Shift {
			word = capitalize(word)
		}
		return Result{Text: word, Canonical: canon, Hit: true}
	}

	text := strings.ToLower(canon)
	if c.Shift {
		text = canon
	}
	return Result{Text: text, Canonical: canon}
}

// capitalize upper-cases only the first rune.
func capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
