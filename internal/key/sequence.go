package key

import (
	"encoding/binary"
	"hash/fnv"
	"strings"
)

// MatchType describes how a typed sequence relates to a bound one.
type MatchType int

const (
	// NoMatch means the typed keys cannot become the binding.
	NoMatch MatchType = iota

	// PartialMatch means the typed keys are a proper prefix of the
	// binding; more keys could complete it.
	PartialMatch

	// ExactMatch means the typed keys equal the binding.
	ExactMatch
)

// String returns a human-readable name for the match type.
func (m MatchType) String() string {
	switch m {
	case NoMatch:
		return "no match"
	case PartialMatch:
		return "partial match"
	case ExactMatch:
		return "exact match"
	default:
		return "unknown match"
	}
}

// Sequence is an ordered, immutable list of chords. The zero value
// is the empty sequence. All methods treat the receiver as a value;
// operations that change content return a new Sequence.
type Sequence struct {
	chords []Chord
}

// NewSequence creates a sequence from the given chords.
func NewSequence(chords ...Chord) Sequence {
	if len(chords) == 0 {
		return Sequence{}
	}
	owned := make([]Chord, len(chords))
	copy(owned, chords)
	return Sequence{chords: owned}
}

// Len returns the number of chords in the sequence.
func (s Sequence) Len() int {
	return len(s.chords)
}

// IsEmpty returns true if the sequence has no chords.
func (s Sequence) IsEmpty() bool {
	return len(s.chords) == 0
}

// At returns the chord at the given index.
func (s Sequence) At(i int) Chord {
	return s.chords[i]
}

// Chords returns a copy of the chords in order.
func (s Sequence) Chords() []Chord {
	out := make([]Chord, len(s.chords))
	copy(out, s.chords)
	return out
}

// String returns the canonical display form: each chord's string
// concatenated in order, e.g. "gg" or "<Ctrl+x><Meta+y>". The result
// re-parses to an equal sequence for any sequence obtained from
// ParseSequence or FromEvent.
func (s Sequence) String() string {
	var sb strings.Builder
	for _, c := range s.chords {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Equals returns true if both sequences contain the same chords in
// the same order.
func (s Sequence) Equals(other Sequence) bool {
	if len(s.chords) != len(other.chords) {
		return false
	}
	for i, c := range s.chords {
		if c != other.chords[i] {
			return false
		}
	}
	return true
}

// Compare orders sequences lexicographically by chord, shorter
// prefixes first. It returns -1, 0, or 1, giving external binding
// tables a deterministic iteration order.
func (s Sequence) Compare(other Sequence) int {
	n := len(s.chords)
	if len(other.chords) < n {
		n = len(other.chords)
	}
	for i := 0; i < n; i++ {
		if cmp := s.chords[i].Compare(other.chords[i]); cmp != 0 {
			return cmp
		}
	}
	switch {
	case len(s.chords) < len(other.chords):
		return -1
	case len(s.chords) > len(other.chords):
		return 1
	}
	return 0
}

// Hash returns a stable FNV-1a hash of the sequence contents. Equal
// sequences hash equally.
func (s Sequence) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, c := range s.chords {
		binary.LittleEndian.PutUint16(buf[0:2], uint16(c.Key))
		binary.LittleEndian.PutUint32(buf[2:6], uint32(c.Rune))
		buf[6] = byte(c.Mods)
		buf[7] = 0
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Append returns a new sequence with the chords of other appended.
func (s Sequence) Append(other Sequence) Sequence {
	if other.IsEmpty() {
		return NewSequence(s.chords...)
	}
	joined := make([]Chord, 0, len(s.chords)+len(other.chords))
	joined = append(joined, s.chords...)
	joined = append(joined, other.chords...)
	return Sequence{chords: joined}
}

// AppendChord returns a new sequence with one chord appended.
func (s Sequence) AppendChord(c Chord) Sequence {
	joined := make([]Chord, 0, len(s.chords)+1)
	joined = append(joined, s.chords...)
	joined = append(joined, c)
	return Sequence{chords: joined}
}

// HasPrefix returns true if the sequence starts with prefix. Every
// sequence has the empty prefix.
func (s Sequence) HasPrefix(prefix Sequence) bool {
	if len(prefix.chords) > len(s.chords) {
		return false
	}
	for i, c := range prefix.chords {
		if c != s.chords[i] {
			return false
		}
	}
	return true
}

// Matches reports how this sequence, read as the keys typed so far,
// relates to a bound sequence: ExactMatch when equal, PartialMatch
// when typing more keys could still complete the binding, NoMatch
// otherwise.
func (s Sequence) Matches(binding Sequence) MatchType {
	if s.Equals(binding) {
		return ExactMatch
	}
	if binding.HasPrefix(s) {
		return PartialMatch
	}
	return NoMatch
}
