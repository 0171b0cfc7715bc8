package key

// Layout is the static association between switches and their meaning.
// It is built once at startup and never mutated afterwards, so it is safe
// to share without synchronization.
type Layout struct {
	roles   [NumKeys]Role
	letters [NumKeys]rune // 0 for non-letter switches
	digits  [NumKeys]rune // 0 for switches outside the numeric row
}

// DefaultLayout returns the standard 24-switch layout: twenty letter
// switches, Shift, and the three immediate-command switches. The first ten
// letter switches in physical order carry the digit overlay 1-9 then 0.
func DefaultLayout() *Layout {
	l := &Layout{}
	for id := KeyID(0); id < KeyShift; id++ {
		l.roles[id] = RoleLetter
		l.letters[id] = letterTable[id]
	}
	l.roles[KeyShift] = RoleShift
	l.roles[KeyMode] = RoleModeToggle
	l.roles[KeySpace] = RoleSpace
	l.roles[KeyBackspace] = RoleBackspace

	digits := []rune("1234567890")
	for i := 0; i < numericRowLen; i++ {
		l.digits[i] = digits[i]
	}
	return l
}

// Role returns the role of a switch.
func (l *Layout) Role(id KeyID) Role {
	if !id.Valid() {
		return RoleLetter
	}
	return l.roles[id]
}

// Letter returns the letter for a letter switch.
// The second return is false for non-letter switches.
func (l *Layout) Letter(id KeyID) (rune, bool) {
	if !id.Valid() || l.letters[id] == 0 {
		return 0, false
	}
	return l.letters[id], true
}

// Digit returns the numeric-mode digit for a switch.
// The second return is false for switches outside the numeric row.
// The Shift switch never carries a digit.
func (l *Layout) Digit(id KeyID) (rune, bool) {
	if !id.Valid() || l.digits[id] == 0 {
		return 0, false
	}
	return l.digits[id], true
}

// IsImmediate returns true for the three switches that act on their own
// without chord accumulation: mode toggle, space, and backspace.
func (l *Layout) IsImmediate(id KeyID) bool {
	switch l.Role(id) {
	case RoleModeToggle, RoleSpace, RoleBackspace:
		return true
	default:
		return false
	}
}

// Letters returns the switches with RoleLetter in physical order.
func (l *Layout) Letters() []KeyID {
	ids := make([]KeyID, 0, NumKeys)
	for id := KeyID(0); id < NumKeys; id++ {
		if l.roles[id] == RoleLetter {
			ids = append(ids, id)
		}
	}
	return ids
}
