// Package terminal adapts tcell key events to the platform-neutral
// key types.
//
// tcell reports keys with terminal-era quirks: control characters as
// dedicated key codes, Shift+Tab as Backtab, two different backspace
// codes. Translate flattens all of that into a key.Event so the rest
// of the system never sees a tcell type.
package terminal
