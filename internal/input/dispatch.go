package input

import (
	"github.com/sudokatie/hollow/internal/editor"
	"github.com/sudokatie/hollow/internal/input/key"
)

// DefaultPageRows is the line delta for PageUp and PageDown when no
// viewport height has been configured.
const DefaultPageRows = 20

// Dispatcher maps key events to actions. It holds only static
// configuration; per-session transient state lives in State.
type Dispatcher struct {
	// PageRows is the line delta for page movement.
	PageRows int
}

// NewDispatcher creates a dispatcher with default page sizing.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{PageRows: DefaultPageRows}
}

// Handle converts one key event into one action given the active mode.
// Universal bindings fire in Write and Navigate, never in Search, and
// always cancel a pending two-key sequence.
func (d *Dispatcher) Handle(ev key.Event, mode Mode, st *State) Action {
	if mode != ModeSearch {
		if a, ok := universal(ev); ok {
			st.Clear()
			return a
		}
	}

	switch mode {
	case ModeWrite:
		return d.handleWrite(ev, st)
	case ModeNavigate:
		return d.handleNavigate(ev, st)
	case ModeSearch:
		return handleSearch(ev, st)
	default:
		return none()
	}
}

func universal(ev key.Event) (Action, bool) {
	switch {
	case ev.IsCtrl('s'):
		return simple(ActionSave), true
	case ev.IsCtrl('q'):
		return simple(ActionQuit), true
	case ev.IsCtrl('g'):
		return simple(ActionToggleStatus), true
	case ev.IsCtrl('z'):
		return simple(ActionUndo), true
	case ev.IsCtrl('y'):
		return simple(ActionRedo), true
	case ev.IsCtrl(';'):
		return simple(ActionToggleSpellCheck), true
	}
	return Action{}, false
}

// plainRune reports whether the event is a character with no modifiers, or
// with Shift only. Shift is part of the character itself.
func plainRune(ev key.Event) bool {
	return ev.Key == key.KeyRune &&
		(ev.Modifiers.IsEmpty() || ev.Modifiers == key.ModShift)
}

func (d *Dispatcher) handleWrite(ev key.Event, st *State) Action {
	st.Clear()

	switch ev.Key {
	case key.KeyEscape:
		return simple(ActionEnterNavigate)
	case key.KeyRune:
		if plainRune(ev) {
			return insertChar(ev.Rune)
		}
	case key.KeyEnter:
		return simple(ActionInsertNewline)
	case key.KeyBackspace:
		return simple(ActionDeleteBackward)
	case key.KeyDelete:
		return simple(ActionDeleteForward)
	case key.KeyLeft:
		if ev.Modifiers.HasCtrl() {
			return move(editor.Left, editor.UnitWord)
		}
		return move(editor.Left, editor.UnitChar)
	case key.KeyRight:
		if ev.Modifiers.HasCtrl() {
			return move(editor.Right, editor.UnitWord)
		}
		return move(editor.Right, editor.UnitChar)
	case key.KeyUp:
		return move(editor.Up, editor.UnitChar)
	case key.KeyDown:
		return move(editor.Down, editor.UnitChar)
	case key.KeyHome:
		if ev.Modifiers.HasCtrl() {
			return move(editor.Up, editor.UnitDocument)
		}
		return move(editor.Left, editor.UnitLine)
	case key.KeyEnd:
		if ev.Modifiers.HasCtrl() {
			return move(editor.Down, editor.UnitDocument)
		}
		return move(editor.Right, editor.UnitLine)
	case key.KeyPageUp:
		return movePage(editor.Up, d.PageRows)
	case key.KeyPageDown:
		return movePage(editor.Down, d.PageRows)
	}
	return none()
}

func (d *Dispatcher) handleNavigate(ev key.Event, st *State) Action {
	// Pending sequences resolve first. A non-matching second key clears
	// the flag and falls through to normal single-key handling below, but
	// never to the write-mode resume: breaking a sequence with an unbound
	// key must not start inserting text.
	brokePending := false
	if st.PendingG {
		st.PendingG = false
		if ev.Key == key.KeyRune && ev.Rune == 'g' {
			return move(editor.Up, editor.UnitDocument)
		}
		brokePending = true
	}
	if st.PendingD {
		st.PendingD = false
		if ev.Key == key.KeyRune && ev.Rune == 'd' {
			return simple(ActionDeleteLine)
		}
		brokePending = true
	}
	if st.PendingY {
		st.PendingY = false
		if ev.Key == key.KeyRune && ev.Rune == 'y' {
			return simple(ActionCopyLine)
		}
		brokePending = true
	}

	switch ev.Key {
	case key.KeyEscape:
		return simple(ActionHideOverlay)
	case key.KeyLeft:
		return move(editor.Left, editor.UnitChar)
	case key.KeyRight:
		return move(editor.Right, editor.UnitChar)
	case key.KeyUp:
		return move(editor.Up, editor.UnitChar)
	case key.KeyDown:
		return move(editor.Down, editor.UnitChar)
	case key.KeyHome:
		return move(editor.Left, editor.UnitLine)
	case key.KeyEnd:
		return move(editor.Right, editor.UnitLine)
	case key.KeyPageUp:
		return movePage(editor.Up, d.PageRows)
	case key.KeyPageDown:
		return movePage(editor.Down, d.PageRows)
	}

	if ev.Key != key.KeyRune {
		return none()
	}

	if ev.Modifiers.HasCtrl() {
		if ev.Rune == 'r' {
			return simple(ActionRedo)
		}
		return none()
	}

	switch ev.Rune {
	case 'i':
		return simple(ActionEnterWrite)
	case 'h':
		return move(editor.Left, editor.UnitChar)
	case 'j':
		return move(editor.Down, editor.UnitChar)
	case 'k':
		return move(editor.Up, editor.UnitChar)
	case 'l':
		return move(editor.Right, editor.UnitChar)
	case 'w':
		return move(editor.Right, editor.UnitWord)
	case 'b':
		return move(editor.Left, editor.UnitWord)
	case '{':
		return move(editor.Up, editor.UnitParagraph)
	case '}':
		return move(editor.Down, editor.UnitParagraph)
	case '0':
		return move(editor.Left, editor.UnitLine)
	case '$':
		return move(editor.Right, editor.UnitLine)
	case 'g':
		st.PendingG = true
		return none()
	case 'G':
		return move(editor.Down, editor.UnitDocument)
	case 'd':
		st.PendingD = true
		return none()
	case 'y':
		st.PendingY = true
		return none()
	case 'p':
		return simple(ActionPaste)
	case 'u':
		return simple(ActionUndo)
	case '/':
		return simple(ActionStartSearch)
	case 'n':
		return simple(ActionSearchNext)
	case 'N':
		return simple(ActionSearchPrev)
	case '?':
		return simple(ActionShowHelp)
	}

	// Any other printable character resumes writing immediately, carrying
	// the character with it.
	if !brokePending && plainRune(ev) {
		return Action{Kind: ActionEnterWriteWithChar, Rune: ev.Rune}
	}
	return none()
}

func handleSearch(ev key.Event, st *State) Action {
	st.Clear()

	switch ev.Key {
	case key.KeyEscape:
		return simple(ActionCancelSearch)
	case key.KeyEnter:
		return simple(ActionSubmitSearch)
	case key.KeyBackspace:
		return simple(ActionSearchBackspace)
	case key.KeyRune:
		if plainRune(ev) {
			return Action{Kind: ActionSearchInput, Rune: ev.Rune}
		}
	}
	return none()
}
