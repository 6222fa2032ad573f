package key

import (
	"fmt"
	"time"
	"unicode"
)

// Event represents a single key press as delivered by the host
// toolkit. The core never constructs events from live input; adapters
// (see internal/terminal) translate their native event type into one.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a key event with the current timestamp.
func NewEvent(key Key, r rune, mods Modifier) Event {
	return Event{
		Key:       key,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a non-character key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
