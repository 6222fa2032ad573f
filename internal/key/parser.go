package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse failure reasons, wrapped by ParseError.
var (
	ErrEmptyChord      = errors.New("empty chord")
	ErrUnknownModifier = errors.New("unknown modifier")
	ErrUnknownKey      = errors.New("unknown key name")
	ErrUnrepresentable = errors.New("character outside the representable key space")
)

// maxBMP is the highest codepoint with a key mapping. Astral-plane
// characters cannot be produced by a single key press.
const maxBMP = 0xFFFF

// ParseError is the single error kind signaled by the parsers. It
// carries the full offending input and wraps one of the sentinel
// reasons above, so callers can match with errors.Is.
type ParseError struct {
	// Input is the original text that failed to parse.
	Input string

	// Err is the underlying reason.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying reason.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseError(input string, reason error) error {
	return &ParseError{Input: input, Err: reason}
}

// ParseChord parses a single chord specification: either one bare
// printable character ("a", "X", "@") or a bracketed chord
// ("<Escape>", "<Ctrl-x>", "<ctrl+alt+y>"). Both "-" and "+" are
// accepted as separators inside brackets and normalize identically.
func ParseChord(spec string) (Chord, error) {
	runes := []rune(spec)
	if len(runes) == 1 {
		return chordFromRune(runes[0], spec)
	}
	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 2 {
		return parseBracketed(spec[1:len(spec)-1], spec)
	}
	return Chord{}, parseError(spec, ErrUnknownKey)
}

// MustParseChord parses a chord specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParseChord(spec string) Chord {
	c, err := ParseChord(spec)
	if err != nil {
		panic("invalid chord specification: " + err.Error())
	}
	return c
}

// chordFromRune converts one bare character into a chord. An
// uppercase letter carries an implicit Shift.
func chordFromRune(r rune, input string) (Chord, error) {
	if r > maxBMP {
		return Chord{}, parseError(input, ErrUnrepresentable)
	}
	if !unicode.IsPrint(r) {
		return Chord{}, parseError(input, ErrUnrepresentable)
	}
	return NewRuneChord(r, ModNone), nil
}

// parseBracketed parses the inside of a <...> chord. The last
// separator-delimited segment is the key; every preceding segment
// must be a known modifier alias.
func parseBracketed(inner, input string) (Chord, error) {
	modNames, keyName := splitChordSpec(inner)
	if keyName == "" {
		return Chord{}, parseError(input, ErrEmptyChord)
	}

	var mods Modifier
	for _, name := range modNames {
		mod := ModifierFromName(name)
		if mod == ModNone {
			return Chord{}, parseError(input, fmt.Errorf("%w %q", ErrUnknownModifier, name))
		}
		mods = mods.With(mod)
	}

	return resolveKeyName(keyName, mods, input)
}

// splitChordSpec splits a bracketed chord body into modifier names
// and the trailing key name. A trailing separator means the key is
// that separator character itself ("<Ctrl-->" is Ctrl plus "-").
func splitChordSpec(inner string) (mods []string, keyName string) {
	isSep := func(r rune) bool { return r == '-' || r == '+' }

	if n := len(inner); n >= 2 && isSep(rune(inner[n-1])) {
		keyName = inner[n-1:]
		rest := inner[:n-1]
		if len(rest) > 0 && isSep(rune(rest[len(rest)-1])) {
			rest = rest[:len(rest)-1]
		}
		if rest == "" {
			return nil, keyName
		}
		return strings.FieldsFunc(rest, isSep), keyName
	}

	parts := strings.FieldsFunc(inner, isSep)
	if len(parts) == 0 {
		return nil, ""
	}
	return parts[:len(parts)-1], parts[len(parts)-1]
}

// resolveKeyName turns the trailing segment of a bracketed chord into
// a chord with the given modifiers.
func resolveKeyName(name string, mods Modifier, input string) (Chord, error) {
	// Spellable aliases for characters that are awkward or impossible
	// to write literally inside a bracketed chord.
	switch strings.ToLower(name) {
	case "space":
		return NewRuneChord(' ', mods), nil
	case "lt":
		return NewRuneChord('<', mods), nil
	case "gt":
		return NewRuneChord('>', mods), nil
	case "bar":
		return NewRuneChord('|', mods), nil
	case "bslash":
		return NewRuneChord('\\', mods), nil
	}

	if k := KeyFromName(name); k != KeyNone {
		return NewSpecialChord(k, mods), nil
	}

	runes := []rune(name)
	if len(runes) != 1 {
		return Chord{}, parseError(input, fmt.Errorf("%w %q", ErrUnknownKey, name))
	}

	r := runes[0]
	if r > maxBMP || !unicode.IsPrint(r) {
		return Chord{}, parseError(input, ErrUnrepresentable)
	}
	// Ctrl chords are case-insensitive: the terminal cannot tell
	// Ctrl-x from Ctrl-X apart.
	if mods.HasCtrl() {
		r = unicode.ToLower(r)
	}
	return NewRuneChord(r, mods), nil
}

// ParseSequence parses a chord sequence string: a concatenation of
// bare characters and bracketed chords in left-to-right order.
// "xyz" is three chords; "<Ctrl-x><Meta-y>" is two. The empty string
// parses to the empty sequence. An unmatched "<" is a literal
// character.
func ParseSequence(text string) (Sequence, error) {
	runes := []rune(text)
	var chords []Chord

	for i := 0; i < len(runes); {
		if runes[i] == '<' {
			if off := indexRune(runes[i:], '>'); off > 0 {
				c, err := parseBracketed(string(runes[i+1:i+off]), text)
				if err != nil {
					return Sequence{}, err
				}
				chords = append(chords, c)
				i += off + 1
				continue
			}
		}

		c, err := chordFromRune(runes[i], text)
		if err != nil {
			return Sequence{}, err
		}
		chords = append(chords, c)
		i++
	}

	return NewSequence(chords...), nil
}

// MustParseSequence parses a sequence string and panics on error.
// Use only for known-valid sequences in initialization code.
func MustParseSequence(text string) Sequence {
	seq, err := ParseSequence(text)
	if err != nil {
		panic("invalid key sequence: " + err.Error())
	}
	return seq
}

func indexRune(rs []rune, want rune) int {
	for i, r := range rs {
		if r == want {
			return i
		}
	}
	return -1
}
