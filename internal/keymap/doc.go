// Package keymap provides binding tables keyed by key sequences.
//
// A Binding pairs a key sequence specification with an opaque action
// name; the package attaches no meaning to actions, it only resolves
// typed chords against bound sequences. The Registry answers the one
// question an input loop needs after each key press: does the typed
// sequence match a binding exactly, could it still become one, or
// should the pending keys be discarded.
//
// Keymaps can be built in code or loaded from YAML or JSON files.
package keymap
