package keymap

import (
	"fmt"

	"github.com/dshills/keychord/internal/key"
)

// Keymap holds a named set of key bindings.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Bindings are the key-to-action mappings.
	Bindings []Binding

	// Source indicates where this keymap was defined.
	// Examples: "default", "user", "file:keys.yaml"
	Source string
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys, action string) *Keymap {
	k.Bindings = append(k.Bindings, Binding{
		Keys:   keys,
		Action: action,
	})
	return k
}

// AddBinding adds a fully configured binding to this keymap.
func (k *Keymap) AddBinding(binding Binding) *Keymap {
	k.Bindings = append(k.Bindings, binding)
	return k
}

// Validate checks that all bindings in the keymap are well formed.
func (k *Keymap) Validate() error {
	for i, b := range k.Bindings {
		if b.Keys == "" {
			return fmt.Errorf("binding %d: empty keys", i)
		}
		if b.Action == "" {
			return fmt.Errorf("binding %d (%s): empty action", i, b.Keys)
		}
		if _, err := key.ParseSequence(b.Keys); err != nil {
			return fmt.Errorf("binding %d: %w", i, err)
		}
	}
	return nil
}

// ParsedKeymap is a keymap with pre-parsed key sequences.
type ParsedKeymap struct {
	*Keymap
	ParsedBindings []ParsedBinding
}

// Parse parses all bindings in the keymap.
func (k *Keymap) Parse() (*ParsedKeymap, error) {
	parsed := &ParsedKeymap{
		Keymap:         k,
		ParsedBindings: make([]ParsedBinding, 0, len(k.Bindings)),
	}

	for _, b := range k.Bindings {
		seq, err := key.ParseSequence(b.Keys)
		if err != nil {
			return nil, err
		}
		if seq.IsEmpty() {
			return nil, fmt.Errorf("binding %q: empty sequence", b.Keys)
		}
		parsed.ParsedBindings = append(parsed.ParsedBindings, ParsedBinding{
			Binding:  b,
			Sequence: seq,
		})
	}

	return parsed, nil
}

// Clone creates a deep copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	clone := &Keymap{
		Name:     k.Name,
		Source:   k.Source,
		Bindings: make([]Binding, len(k.Bindings)),
	}
	copy(clone.Bindings, k.Bindings)
	return clone
}
