package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/internal/key"
)

// specialKeys maps tcell named keys onto platform-neutral identifiers.
var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBacktab:    key.KeyBacktab,
	tcell.KeyEsc:        key.KeyEscape,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
	tcell.KeyPause:      key.KeyPause,
	tcell.KeyPrint:      key.KeyPrintScreen,
}

// Translate converts a tcell key event into a key.Event.
func Translate(ev *tcell.EventKey) key.Event {
	mods := translateMods(ev.Modifiers())
	k := ev.Key()

	if k == tcell.KeyRune {
		return key.NewRuneEvent(ev.Rune(), mods)
	}
	if mapped, ok := specialKeys[k]; ok {
		return key.NewSpecialEvent(mapped, mods)
	}

	// Control characters arrive as dedicated key codes. Collapse them
	// back to the plain character plus ModCtrl. Tab, Enter, Escape and
	// Backspace share this range but were already handled above.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewRuneEvent(rune('a'+k-tcell.KeyCtrlA), mods.With(key.ModCtrl))
	}
	if k == tcell.KeyCtrlSpace {
		return key.NewRuneEvent(' ', mods.With(key.ModCtrl))
	}

	return key.NewSpecialEvent(key.KeyNone, mods)
}

// Chord converts a tcell key event directly into a chord under the
// given platform convention.
func Chord(ev *tcell.EventKey, conv key.Convention) key.Chord {
	return key.FromEvent(Translate(ev), conv)
}

func translateMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
