package keymap

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/keychord/internal/key"
)

// Registry manages keymaps and resolves typed sequences against them.
// It is safe for concurrent use; lookups take a read lock only.
type Registry struct {
	mu sync.RWMutex

	// keymaps holds all registered keymaps by name.
	keymaps map[string]*ParsedKeymap

	// tree indexes every binding by its chord path.
	tree *chordTree
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		keymaps: make(map[string]*ParsedKeymap),
		tree:    newChordTree(),
	}
}

// Register adds a keymap to the registry. A keymap with the same
// name replaces the previous one.
func (r *Registry) Register(km *Keymap) error {
	if km == nil {
		return fmt.Errorf("cannot register nil keymap")
	}

	parsed, err := km.Parse()
	if err != nil {
		return fmt.Errorf("keymap %q: %w", km.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.unregisterLocked(km.Name)
	r.keymaps[km.Name] = parsed

	for i := range parsed.ParsedBindings {
		pb := &parsed.ParsedBindings[i]
		r.tree.insert(pb.Sequence, pb, km)
	}

	return nil
}

// Unregister removes a keymap from the registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.unregisterLocked(name)
}

func (r *Registry) unregisterLocked(name string) {
	km, ok := r.keymaps[name]
	if !ok {
		return
	}
	for i := range km.ParsedBindings {
		r.tree.remove(km.ParsedBindings[i].Sequence, km.Keymap)
	}
	delete(r.keymaps, name)
}

// Get returns a keymap by name, or nil.
func (r *Registry) Get(name string) *ParsedKeymap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.keymaps[name]
}

// Resolve reports how the typed sequence relates to the registered
// bindings. ExactMatch returns the highest-priority binding bound to
// exactly that sequence; PartialMatch means more keys could still
// complete a binding; NoMatch means the typed keys lead nowhere.
func (r *Registry) Resolve(typed key.Sequence) (key.MatchType, *Binding) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	node := r.tree.walk(typed)
	if node == nil {
		return key.NoMatch, nil
	}
	if len(node.entries) > 0 {
		best := node.best()
		return key.ExactMatch, &best.binding.Binding
	}
	if len(node.children) > 0 {
		return key.PartialMatch, nil
	}
	return key.NoMatch, nil
}

// HasPrefix returns true if the typed sequence could still become a
// bound sequence with more keys.
func (r *Registry) HasPrefix(typed key.Sequence) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	node := r.tree.walk(typed)
	return node != nil && len(node.children) > 0
}

// Bindings returns every registered binding sorted by key sequence,
// giving callers a deterministic iteration order.
func (r *Registry) Bindings() []ParsedBinding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []ParsedBinding
	for _, km := range r.keymaps {
		out = append(out, km.ParsedBindings...)
	}
	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].Sequence.Compare(out[j].Sequence); cmp != 0 {
			return cmp < 0
		}
		return out[i].Priority > out[j].Priority
	})
	return out
}

// chordTree indexes bindings by their chord path. Chords are value
// types, so they key the child maps directly.
type chordTree struct {
	root *chordNode
}

type chordNode struct {
	children map[key.Chord]*chordNode
	entries  []treeEntry
}

type treeEntry struct {
	binding *ParsedBinding
	keymap  *Keymap
}

func newChordTree() *chordTree {
	return &chordTree{root: newChordNode()}
}

func newChordNode() *chordNode {
	return &chordNode{children: make(map[key.Chord]*chordNode)}
}

// walk follows the sequence and returns the node it ends on, or nil.
func (t *chordTree) walk(seq key.Sequence) *chordNode {
	node := t.root
	for i := 0; i < seq.Len(); i++ {
		child, ok := node.children[seq.At(i)]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

func (t *chordTree) insert(seq key.Sequence, pb *ParsedBinding, km *Keymap) {
	node := t.root
	for i := 0; i < seq.Len(); i++ {
		c := seq.At(i)
		child, ok := node.children[c]
		if !ok {
			child = newChordNode()
			node.children[c] = child
		}
		node = child
	}
	node.entries = append(node.entries, treeEntry{binding: pb, keymap: km})
}

func (t *chordTree) remove(seq key.Sequence, km *Keymap) {
	path := make([]*chordNode, 0, seq.Len()+1)
	path = append(path, t.root)

	node := t.root
	for i := 0; i < seq.Len(); i++ {
		child, ok := node.children[seq.At(i)]
		if !ok {
			return
		}
		path = append(path, child)
		node = child
	}

	filtered := node.entries[:0]
	for _, e := range node.entries {
		if e.keymap != km {
			filtered = append(filtered, e)
		}
	}
	node.entries = filtered

	// Prune empty nodes from leaf to root.
	for i := len(path) - 1; i > 0; i-- {
		current := path[i]
		if len(current.entries) > 0 || len(current.children) > 0 {
			break
		}
		delete(path[i-1].children, seq.At(i-1))
	}
}

// best returns the highest-priority entry at this node.
func (n *chordNode) best() treeEntry {
	best := n.entries[0]
	for _, e := range n.entries[1:] {
		if e.binding.Priority > best.binding.Priority {
			best = e
		}
	}
	return best
}
