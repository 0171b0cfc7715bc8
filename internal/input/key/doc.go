// Package key defines the physical switch identifiers and the layout that
// gives each switch its meaning.
//
// A chorded keyboard has 24 switches. The layout assigns each switch a role:
//
//   - Letter: contributes a letter to the chord being formed
//   - Shift: latches one-shot capitalization for the current chord
//   - ModeToggle, Space, Backspace: immediate single-key commands
//
// A subset of the letter switches additionally carries a digit, used only
// while numeric mode is active. Digits follow the physical scan order of the
// switches, not the alphabetical order of their letters.
package key
