package key

import "testing"

func TestKeyIDString(t *testing.T) {
	tests := []struct {
		id   KeyID
		want string
	}{
		{KeyM, "M"},
		{KeyH, "H"},
		{KeyShift, "Shift"},
		{KeyMode, "Mode"},
		{KeySpace, "Space"},
		{KeyBackspace, "Backspace"},
		{KeyNone, "Key(24)"},
	}

	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("KeyID(%d).String() = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want KeyID
	}{
		{"m", KeyM},
		{"M", KeyM},
		{" s ", KeyS},
		{"shift", KeyShift},
		{"mode", KeyMode},
		{"space", KeySpace},
		{"backspace", KeyBackspace},
		{"bs", KeyBackspace},
		{"z", KeyNone}, // not in the letter inventory
		{"", KeyNone},
	}

	for _, tt := range tests {
		if got := FromName(tt.name); got != tt.want {
			t.Errorf("FromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDefaultLayoutRoles(t *testing.T) {
	l := DefaultLayout()

	letters := 0
	for id := KeyID(0); id < NumKeys; id++ {
		if l.Role(id) == RoleLetter {
			letters++
		}
	}
	if letters != 20 {
		t.Errorf("letter switch count = %d, want 20", letters)
	}

	if got := l.Role(KeyShift); got != RoleShift {
		t.Errorf("Role(KeyShift) = %v, want RoleShift", got)
	}
	for _, id := range []KeyID{KeyMode, KeySpace, KeyBackspace} {
		if !l.IsImmediate(id) {
			t.Errorf("IsImmediate(%v) = false, want true", id)
		}
	}
	if l.IsImmediate(KeyShift) {
		t.Error("IsImmediate(KeyShift) = true, want false; shift participates in chords")
	}
	if l.IsImmediate(KeyM) {
		t.Error("IsImmediate(KeyM) = true, want false")
	}
}

func TestDefaultLayoutDigits(t *testing.T) {
	l := DefaultLayout()

	// Numeric row follows physical order: M=1 A=2 T=3 D=4 E=5 I=6 O=7 S=8 R=9 N=0.
	tests := []struct {
		id    KeyID
		digit rune
	}{
		{KeyM, '1'},
		{KeyA, '2'},
		{KeyT, '3'},
		{KeyD, '4'},
		{KeyE, '5'},
		{KeyI, '6'},
		{KeyO, '7'},
		{KeyS, '8'},
		{KeyR, '9'},
		{KeyN, '0'},
	}
	for _, tt := range tests {
		got, ok := l.Digit(tt.id)
		if !ok || got != tt.digit {
			t.Errorf("Digit(%v) = %q, %v, want %q, true", tt.id, got, ok, tt.digit)
		}
	}

	if _, ok := l.Digit(KeyShift); ok {
		t.Error("Digit(KeyShift) returned a digit; shift is excluded from the numeric overlay")
	}
	if _, ok := l.Digit(KeyB); ok {
		t.Error("Digit(KeyB) returned a digit; B is outside the numeric row")
	}
}

func TestLayoutLetter(t *testing.T) {
	l := DefaultLayout()

	r, ok := l.Letter(KeyG)
	if !ok || r != 'G' {
		t.Errorf("Letter(KeyG) = %q, %v, want 'G', true", r, ok)
	}
	if _, ok := l.Letter(KeySpace); ok {
		t.Error("Letter(KeySpace) returned a letter")
	}
}
