package key

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key across platforms.
// For character keys, use KeyRune and set the Rune field in Chord.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Other special keys
	KeySpace
	KeyPause
	KeyPrintScreen
	KeyScrollLock
	KeyNumLock
	KeyCapsLock

	// Modifier keys reported as keys in their own right.
	// A chord whose key is one of these has no displayable form.
	KeyShiftMod
	KeyCtrlMod
	KeyAltMod
	KeyMetaMod
	KeySuperMod
	KeyHyperMod

	// KeyRune is used for character keys (letters, numbers, punctuation).
	// The actual character is stored in Chord.Rune.
	KeyRune
)

// String returns the canonical display name for the key.
// It is total over the key space: unknown values fall back to a
// numeric name rather than failing.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBacktab:
		// Shift+Tab arrives as a distinct key on most platforms, but
		// the conventional display name is still "Tab".
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PgUp"
	case KeyPageDown:
		return "PgDown"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyF1:
		return "F1"
	case KeyF2:
		return "F2"
	case KeyF3:
		return "F3"
	case KeyF4:
		return "F4"
	case KeyF5:
		return "F5"
	case KeyF6:
		return "F6"
	case KeyF7:
		return "F7"
	case KeyF8:
		return "F8"
	case KeyF9:
		return "F9"
	case KeyF10:
		return "F10"
	case KeyF11:
		return "F11"
	case KeyF12:
		return "F12"
	case KeySpace:
		return "Space"
	case KeyPause:
		return "Pause"
	case KeyPrintScreen:
		return "Print"
	case KeyScrollLock:
		return "ScrollLock"
	case KeyNumLock:
		return "NumLock"
	case KeyCapsLock:
		return "CapsLock"
	case KeyShiftMod:
		return "Shift"
	case KeyCtrlMod:
		return "Control"
	case KeyAltMod:
		return "Alt"
	case KeyMetaMod:
		return "Meta"
	case KeySuperMod:
		return "Super"
	case KeyHyperMod:
		return "Hyper"
	case KeyRune:
		return "Rune"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// IsModifier returns true if this key is itself a modifier key.
func (k Key) IsModifier() bool {
	return k >= KeyShiftMod && k <= KeyHyperMod
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// IsNavigationKey returns true if this is a navigation key.
func (k Key) IsNavigationKey() bool {
	return k.IsArrowKey() || k == KeyHome || k == KeyEnd || k == KeyPageUp || k == KeyPageDown
}

// keyNameMap maps key names (lowercase) to Key values.
// Modifier keys are deliberately absent: a lone modifier is not a
// bindable chord, so it must not be spellable either.
var keyNameMap = map[string]Key{
	"escape":      KeyEscape,
	"esc":         KeyEscape,
	"enter":       KeyEnter,
	"return":      KeyEnter,
	"cr":          KeyEnter,
	"tab":         KeyTab,
	"backspace":   KeyBackspace,
	"bs":          KeyBackspace,
	"delete":      KeyDelete,
	"del":         KeyDelete,
	"insert":      KeyInsert,
	"ins":         KeyInsert,
	"home":        KeyHome,
	"end":         KeyEnd,
	"pageup":      KeyPageUp,
	"pgup":        KeyPageUp,
	"pagedown":    KeyPageDown,
	"pgdown":      KeyPageDown,
	"pgdn":        KeyPageDown,
	"up":          KeyUp,
	"down":        KeyDown,
	"left":        KeyLeft,
	"right":       KeyRight,
	"f1":          KeyF1,
	"f2":          KeyF2,
	"f3":          KeyF3,
	"f4":          KeyF4,
	"f5":          KeyF5,
	"f6":          KeyF6,
	"f7":          KeyF7,
	"f8":          KeyF8,
	"f9":          KeyF9,
	"f10":         KeyF10,
	"f11":         KeyF11,
	"f12":         KeyF12,
	"pause":       KeyPause,
	"print":       KeyPrintScreen,
	"printscreen": KeyPrintScreen,
	"scrolllock":  KeyScrollLock,
	"numlock":     KeyNumLock,
	"capslock":    KeyCapsLock,
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyNone
}
