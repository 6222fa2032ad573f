package keymap

import (
	"github.com/dshills/keychord/internal/key"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key sequence that triggers this binding.
	// Formats: "j", "gg", "<Ctrl-s>", "<Ctrl-x><Ctrl-s>"
	Keys string

	// Action names what the binding does. The keymap attaches no
	// meaning to it; it is owned by the caller.
	Action string

	// Description provides documentation for the binding.
	Description string

	// Priority determines precedence when multiple bindings match.
	// Higher priority wins. Default is 0.
	Priority int
}

// NewBinding creates a binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithPriority sets the priority for this binding.
func (b Binding) WithPriority(priority int) Binding {
	b.Priority = priority
	return b
}

// ParsedBinding is a binding with its key sequence pre-parsed.
type ParsedBinding struct {
	Binding
	Sequence key.Sequence
}

// Match reports how a typed sequence relates to this binding.
func (pb *ParsedBinding) Match(typed key.Sequence) key.MatchType {
	return typed.Matches(pb.Sequence)
}
