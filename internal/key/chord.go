package key

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Chord represents one key press: a key plus the modifiers held with
// it. It is an immutable value type with structural equality, so it
// can serve directly as a map key.
type Chord struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune chords.
	Rune rune

	// Mods contains the active modifier keys.
	Mods Modifier
}

// NewChord creates a chord, normalizing the representation: an
// uppercase letter folds to its lowercase form plus ModShift, so
// "X" and Shift+x construct the same value.
func NewChord(k Key, r rune, mods Modifier) Chord {
	if k == KeyRune && unicode.IsUpper(r) {
		r = unicode.ToLower(r)
		mods = mods.With(ModShift)
	}
	return Chord{Key: k, Rune: r, Mods: mods}
}

// NewRuneChord creates a chord for a character key.
func NewRuneChord(r rune, mods Modifier) Chord {
	return NewChord(KeyRune, r, mods)
}

// NewSpecialChord creates a chord for a non-character key.
func NewSpecialChord(k Key, mods Modifier) Chord {
	return NewChord(k, 0, mods)
}

// FromEvent extracts the chord from a host key press event, applying
// the platform convention. Backtab collapses to Shift+Tab so that a
// physical Shift+Tab press compares equal to a parsed "<Shift-Tab>"
// binding.
func FromEvent(ev Event, conv Convention) Chord {
	k := ev.Key
	mods := conv.apply(ev.Modifiers)
	if k == KeyBacktab {
		k = KeyTab
		mods = mods.With(ModShift)
	}
	return NewChord(k, ev.Rune, mods)
}

// IsModifierOnly returns true if the chord consists solely of a
// modifier key held down. Such a chord is a transient state, not a
// displayable key press.
func (c Chord) IsModifierOnly() bool {
	return c.Key.IsModifier()
}

// String returns the canonical display form.
//
//   - ""            for a lone modifier key
//   - "a"           for a single unmodified printable key
//   - "X"           for Shift plus a letter with no other modifier
//   - "<Ctrl+a>"    for modified keys, modifiers in the fixed order
//     Ctrl, Alt, Meta, Shift
//   - "<Escape>"    for named special keys
//
// It never fails: unmapped keys fall back to their numeric name.
func (c Chord) String() string {
	if c.IsModifierOnly() {
		return ""
	}

	// Shift's only effect on a letter is the uppercase glyph, so it
	// is not spelled out unless combined with other modifiers.
	if c.Key == KeyRune && c.Mods == ModShift && unicode.IsLetter(c.Rune) {
		return string(unicode.ToUpper(c.Rune))
	}

	var parts []string
	if c.Mods.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if c.Mods.HasAlt() {
		parts = append(parts, "Alt")
	}
	if c.Mods.HasMeta() {
		parts = append(parts, "Meta")
	}
	if c.Mods.HasShift() {
		parts = append(parts, "Shift")
	}
	parts = append(parts, c.keyName())

	inner := strings.Join(parts, "+")
	if utf8.RuneCountInString(inner) == 1 {
		return inner
	}
	return "<" + inner + ">"
}

// keyName returns the display name of the key component alone.
func (c Chord) keyName() string {
	if c.Key != KeyRune {
		return c.Key.String()
	}
	if c.Rune == ' ' {
		return "Space"
	}
	return string(c.Rune)
}

// Equals returns true if two chords represent the same key press.
func (c Chord) Equals(other Chord) bool {
	return c == other
}

// Compare orders chords by key, then rune, then modifiers. It
// returns -1, 0, or 1.
func (c Chord) Compare(other Chord) int {
	switch {
	case c.Key < other.Key:
		return -1
	case c.Key > other.Key:
		return 1
	case c.Rune < other.Rune:
		return -1
	case c.Rune > other.Rune:
		return 1
	case c.Mods < other.Mods:
		return -1
	case c.Mods > other.Mods:
		return 1
	}
	return 0
}
