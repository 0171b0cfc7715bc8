package key

import (
	"fmt"
	"strings"
)

// KeyID identifies one physical switch on the 24-switch matrix.
// The numeric value is the switch's position in physical scan order.
type KeyID uint8

// NumKeys is the number of physical switches.
const NumKeys = 24

// Switch identifiers in physical scan order. The first ten letter switches
// form the numeric row: in numeric mode they produce digits 1-9 then 0.
const (
	KeyM KeyID = iota
	KeyA
	KeyT
	KeyD
	KeyE
	KeyI
	KeyO
	KeyS
	KeyR
	KeyN
	KeyB
	KeyC
	KeyF
	KeyG
	KeyL
	KeyP
	KeyQ
	KeyU
	KeyV
	KeyH
	KeyShift
	KeyMode
	KeySpace
	KeyBackspace
)

// KeyNone is returned by lookups that find no switch.
const KeyNone KeyID = NumKeys

// Valid returns true if the identifier names a real switch.
func (k KeyID) Valid() bool {
	return k < NumKeys
}

// String returns a human-readable name for the switch.
func (k KeyID) String() string {
	switch {
	case k == KeyShift:
		return "Shift"
	case k == KeyMode:
		return "Mode"
	case k == KeySpace:
		return "Space"
	case k == KeyBackspace:
		return "Backspace"
	case k < KeyShift:
		return string(letterTable[k])
	default:
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
}

// Role classifies what a switch does.
type Role uint8

const (
	// RoleLetter contributes a letter to the chord.
	RoleLetter Role = iota

	// RoleShift latches one-shot capitalization.
	RoleShift

	// RoleModeToggle flips numeric mode.
	RoleModeToggle

	// RoleSpace emits a space immediately.
	RoleSpace

	// RoleBackspace emits a backspace immediately.
	RoleBackspace
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleLetter:
		return "letter"
	case RoleShift:
		return "shift"
	case RoleModeToggle:
		return "mode-toggle"
	case RoleSpace:
		return "space"
	case RoleBackspace:
		return "backspace"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// letterTable maps letter switches to their letters, indexed by KeyID.
var letterTable = [KeyShift]rune{
	'M', 'A', 'T', 'D', 'E', 'I', 'O', 'S', 'R', 'N',
	'B', 'C', 'F', 'G', 'L', 'P', 'Q', 'U', 'V', 'H',
}

// numericRowLen is the number of switches carrying a digit overlay.
const numericRowLen = 10

// keyNameMap maps switch names (lowercase) to identifiers.
var keyNameMap = func() map[string]KeyID {
	m := map[string]KeyID{
		"shift":     KeyShift,
		"mode":      KeyMode,
		"space":     KeySpace,
		"backspace": KeyBackspace,
		"bs":        KeyBackspace,
	}
	for id, r := range letterTable {
		m[strings.ToLower(string(r))] = KeyID(id)
	}
	return m
}()

// FromName returns the switch for a given name (case-insensitive).
// Letter switches are named by their letter. Returns KeyNone if the
// name is not recognized.
func FromName(name string) KeyID {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyNone
}
