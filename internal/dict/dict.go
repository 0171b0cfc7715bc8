// Package dict holds the static chord dictionary: canonical letter
// combinations mapped to output words.
//
// The canonical key of a chord is its unique letters, upper-cased and sorted
// alphabetically, concatenated ("mes" is filed under "EMS"). Source tables
// may define the same canonical key more than once; the last definition wins
// and the loader counts the collisions so startup can report them once.
// After loading, a Dictionary is read-only and safe to share.
package dict

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Dictionary maps canonical chord keys to output words.
type Dictionary struct {
	entries    map[string]string
	duplicates int
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{entries: make(map[string]string)}
}

// Canonical reduces a letter combination to its canonical chord key:
// unique letters, upper-cased, sorted, concatenated. Non-letter runes
// are dropped.
func Canonical(letters string) string {
	seen := make(map[rune]bool, len(letters))
	runes := make([]rune, 0, len(letters))
	for _, r := range letters {
		if !unicode.IsLetter(r) {
			continue
		}
		r = unicode.ToUpper(r)
		if seen[r] {
			continue
		}
		seen[r] = true
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}

// Define adds one entry, canonicalizing the letter combination first.
// A later definition for the same canonical key overwrites the earlier one.
// It returns the canonical key and whether an existing entry was replaced.
// Empty combinations and empty words are rejected.
func (d *Dictionary) Define(letters, word string) (string, error) {
	canon := Canonical(letters)
	if canon == "" {
		return "", fmt.Errorf("chord %q has no letters", letters)
	}
	word = strings.TrimSpace(word)
	if word == "" {
		return "", fmt.Errorf("chord %q maps to an empty word", letters)
	}
	if _, exists := d.entries[canon]; exists {
		d.duplicates++
	}
	d.entries[canon] = word
	return canon, nil
}

// Lookup returns the word for an already-canonical chord key.
func (d *Dictionary) Lookup(canon string) (string, bool) {
	w, ok := d.entries[canon]
	return w, ok
}

// Size returns the number of distinct canonical keys.
func (d *Dictionary) Size() int {
	return len(d.entries)
}

// Duplicates returns how many definitions overwrote an earlier entry
// while loading.
func (d *Dictionary) Duplicates() int {
	return d.duplicates
}
