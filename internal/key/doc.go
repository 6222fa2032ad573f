// Package key provides canonical key chord and key sequence types.
//
// This package defines the fundamental types for normalizing keyboard
// input:
//
//   - Key: Identifies a keyboard key (special keys, function keys,
//     modifier keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Meta, Shift)
//   - Chord: One key plus its active modifiers, with a canonical
//     string form
//   - Sequence: An ordered, immutable list of chords forming a
//     bindable unit
//
// # Chord Specifications
//
// Chord specifications can be written in multiple formats:
//
//   - Bare printable characters: "a", "A", "1", "@"
//   - Bracketed chords: "<Escape>", "<Ctrl-x>", "<Ctrl+Alt+y>"
//   - Concatenated sequences: "xyz", "gg", "<Ctrl-x><Meta-y>"
//
// Within a bracketed chord both "-" and "+" are accepted as
// separators and normalize identically. Modifier names are
// case-insensitive and aliased ("control" and "ctrl" both mean Ctrl,
// "mod1" means Alt, "windows" and "mod4" mean Meta).
//
// # Platform Conventions
//
// On macOS the physical Ctrl key is conventionally shown as "Meta" in
// chord strings. The swap is never queried ambiently; it is applied
// through an explicit Convention value passed to FromEvent, so tests
// can simulate any platform.
package key
