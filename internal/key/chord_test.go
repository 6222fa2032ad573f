package key

import "testing"

func TestChordStringModifierOnly(t *testing.T) {
	// A chord that is just a modifier key held down has no
	// displayable form.
	tests := []Event{
		NewSpecialEvent(KeyCtrlMod, ModCtrl),
		NewSpecialEvent(KeyMetaMod, ModMeta),
		NewSpecialEvent(KeyHyperMod, ModMeta),
		NewSpecialEvent(KeyShiftMod, ModShift),
	}

	for _, ev := range tests {
		c := FromEvent(ev, Convention{})
		if got := c.String(); got != "" {
			t.Errorf("FromEvent(%#v).String() = %q, want empty", ev, got)
		}
	}
}

func TestChordString(t *testing.T) {
	tests := []struct {
		chord Chord
		want  string
	}{
		{NewRuneChord('a', ModNone), "a"},
		{NewRuneChord('1', ModNone), "1"},
		{NewRuneChord('°', ModNone), "°"},
		// Shift on a letter renders as the uppercase glyph, with no
		// explicit Shift marker.
		{NewRuneChord('x', ModShift), "X"},
		{NewRuneChord('X', ModNone), "X"},
		{NewRuneChord('a', ModCtrl), "<Ctrl+a>"},
		{NewRuneChord('y', ModCtrl | ModAlt), "<Ctrl+Alt+y>"},
		{NewRuneChord('a', ModShift | ModMeta | ModAlt | ModCtrl), "<Ctrl+Alt+Meta+Shift+a>"},
		{NewRuneChord(' ', ModNone), "<Space>"},
		{NewRuneChord(' ', ModCtrl), "<Ctrl+Space>"},
		{NewSpecialChord(KeyEscape, ModNone), "<Escape>"},
		{NewSpecialChord(KeyEnter, ModCtrl), "<Ctrl+Enter>"},
		{NewSpecialChord(KeyTab, ModShift), "<Shift+Tab>"},
		// Shift on a non-letter stays explicit.
		{NewRuneChord('1', ModShift), "<Shift+1>"},
	}

	for _, tt := range tests {
		if got := tt.chord.String(); got != tt.want {
			t.Errorf("Chord%+v.String() = %q, want %q", tt.chord, got, tt.want)
		}
	}
}

func TestNewChordFoldsUppercase(t *testing.T) {
	upper := NewRuneChord('X', ModNone)
	lower := NewRuneChord('x', ModShift)

	if upper != lower {
		t.Errorf("NewRuneChord('X') = %+v, want %+v", upper, lower)
	}
	if upper.Rune != 'x' || !upper.Mods.HasShift() {
		t.Errorf("uppercase should normalize to lowercase+Shift, got %+v", upper)
	}
}

func TestFromEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		conv Convention
		want string
	}{
		{"plain key", NewRuneEvent('a', ModNone), Convention{}, "a"},
		{"ctrl key", NewRuneEvent('a', ModCtrl), Convention{}, "<Ctrl+a>"},
		{"ctrl key mac", NewRuneEvent('a', ModCtrl), Convention{SwapCtrlMeta: true}, "<Meta+a>"},
		{"meta key mac", NewRuneEvent('a', ModMeta), Convention{SwapCtrlMeta: true}, "<Ctrl+a>"},
		{"all modifiers", NewRuneEvent('a', ModCtrl | ModAlt | ModMeta | ModShift), Convention{}, "<Ctrl+Alt+Meta+Shift+a>"},
		{"all modifiers mac", NewRuneEvent('a', ModCtrl | ModAlt | ModMeta | ModShift), Convention{SwapCtrlMeta: true}, "<Ctrl+Alt+Meta+Shift+a>"},
		{"shifted letter", NewRuneEvent('X', ModShift), Convention{}, "X"},
		{"escape", NewSpecialEvent(KeyEscape, ModNone), Convention{}, "<Escape>"},
		{"backtab collapses", NewSpecialEvent(KeyBacktab, ModNone), Convention{}, "<Shift+Tab>"},
	}

	for _, tt := range tests {
		c := FromEvent(tt.ev, tt.conv)
		if got := c.String(); got != tt.want {
			t.Errorf("%s: FromEvent().String() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFromEventMatchesParsedBinding(t *testing.T) {
	// The swap must hold in comparisons, not just display: a physical
	// Ctrl-x on a swapped platform equals a parsed <Meta-x> binding.
	pressed := FromEvent(NewRuneEvent('x', ModCtrl), Convention{SwapCtrlMeta: true})
	bound := MustParseChord("<Meta-x>")

	if !pressed.Equals(bound) {
		t.Errorf("swapped Ctrl-x = %+v, want %+v", pressed, bound)
	}
}

func TestChordEquals(t *testing.T) {
	a := NewRuneChord('a', ModCtrl)
	b := NewRuneChord('a', ModCtrl)
	c := NewRuneChord('a', ModMeta)
	d := NewRuneChord('b', ModCtrl)

	if !a.Equals(b) {
		t.Error("identical chords should be equal")
	}
	if a.Equals(c) || a.Equals(d) {
		t.Error("different chords should not be equal")
	}
}

func TestChordCompare(t *testing.T) {
	tests := []struct {
		a, b Chord
		want int
	}{
		{NewRuneChord('a', ModNone), NewRuneChord('a', ModNone), 0},
		{NewSpecialChord(KeyEscape, ModNone), NewRuneChord('a', ModNone), -1},
		{NewRuneChord('a', ModNone), NewRuneChord('b', ModNone), -1},
		{NewRuneChord('b', ModNone), NewRuneChord('a', ModNone), 1},
		{NewRuneChord('a', ModNone), NewRuneChord('a', ModCtrl), -1},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("Compare(%+v, %+v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDetectConvention(t *testing.T) {
	// Can't assert the value without knowing the host, but the call
	// must be consistent.
	if DetectConvention() != DetectConvention() {
		t.Error("DetectConvention should be stable")
	}
}
