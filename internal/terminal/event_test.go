package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/internal/key"
)

func TestTranslateRune(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		wantRune rune
		wantMods key.Modifier
	}{
		{"plain letter", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), 'a', key.ModNone},
		{"symbol", tcell.NewEventKey(tcell.KeyRune, '@', tcell.ModNone), '@', key.ModNone},
		{"alt letter", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModAlt), 'f', key.ModAlt},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlA, rune(tcell.KeyCtrlA), tcell.ModCtrl), 'a', key.ModCtrl},
		{"ctrl z", tcell.NewEventKey(tcell.KeyCtrlZ, rune(tcell.KeyCtrlZ), tcell.ModCtrl), 'z', key.ModCtrl},
		{"ctrl space", tcell.NewEventKey(tcell.KeyCtrlSpace, 0, tcell.ModCtrl), ' ', key.ModCtrl},
	}

	for _, tt := range tests {
		ev := Translate(tt.ev)
		if ev.Key != key.KeyRune {
			t.Errorf("%s: key = %v, want KeyRune", tt.name, ev.Key)
		}
		if ev.Rune != tt.wantRune {
			t.Errorf("%s: rune = %q, want %q", tt.name, ev.Rune, tt.wantRune)
		}
		if ev.Modifiers != tt.wantMods {
			t.Errorf("%s: modifiers = %v, want %v", tt.name, ev.Modifiers, tt.wantMods)
		}
	}
}

func TestTranslateSpecial(t *testing.T) {
	tests := []struct {
		name    string
		ev      *tcell.EventKey
		wantKey key.Key
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone), key.KeyEscape},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.KeyEnter},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), key.KeyTab},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), key.KeyBacktab},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), key.KeyBackspace},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), key.KeyBackspace},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), key.KeyUp},
		{"pgdn", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), key.KeyPageDown},
		{"f1", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), key.KeyF1},
		{"f12", tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), key.KeyF12},
	}

	for _, tt := range tests {
		ev := Translate(tt.ev)
		if ev.Key != tt.wantKey {
			t.Errorf("%s: key = %v, want %v", tt.name, ev.Key, tt.wantKey)
		}
	}
}

func TestTranslateMods(t *testing.T) {
	ev := Translate(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift|tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta))
	want := key.ModShift | key.ModCtrl | key.ModAlt | key.ModMeta
	if ev.Modifiers != want {
		t.Errorf("modifiers = %v, want %v", ev.Modifiers, want)
	}
}

func TestChord(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		conv key.Convention
		want string
	}{
		{"plain", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), key.Convention{}, "a"},
		{"ctrl", tcell.NewEventKey(tcell.KeyCtrlX, rune(tcell.KeyCtrlX), tcell.ModCtrl), key.Convention{}, "<Ctrl+x>"},
		{"ctrl mac", tcell.NewEventKey(tcell.KeyCtrlX, rune(tcell.KeyCtrlX), tcell.ModCtrl), key.Convention{SwapCtrlMeta: true}, "<Meta+x>"},
		{"shift tab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), key.Convention{}, "<Shift+Tab>"},
		{"escape", tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone), key.Convention{}, "<Escape>"},
		{"uppercase", tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModNone), key.Convention{}, "X"},
	}

	for _, tt := range tests {
		c := Chord(tt.ev, tt.conv)
		if got := c.String(); got != tt.want {
			t.Errorf("%s: Chord().String() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestChordMatchesParsedBinding(t *testing.T) {
	// A decoded terminal event must compare equal to the same chord
	// written as a binding string.
	c := Chord(tcell.NewEventKey(tcell.KeyCtrlX, rune(tcell.KeyCtrlX), tcell.ModCtrl), key.Convention{})
	bound := key.MustParseChord("<Ctrl-x>")

	if !c.Equals(bound) {
		t.Errorf("decoded chord %+v != parsed binding %+v", c, bound)
	}
}
