package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/sudokatie/hollow/internal/input/key"
)

// translateKey converts a tcell key event into the editor's key event.
// Unrecognized keys come back as KeyNone and are ignored upstream.
func translateKey(ev *tcell.EventKey) key.Event {
	mods := translateMods(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods)
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	}

	// tcell reports Ctrl plus a letter as a dedicated key code. The
	// codes that collide with Enter, Tab, and Backspace are caught by
	// the switch above.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods.With(key.ModCtrl))
	}

	return key.Event{Key: key.KeyNone, Modifiers: mods}
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
	return mods
}
