package input

import "github.com/sudokatie/hollow/internal/editor"

// ActionKind discriminates the Action union.
type ActionKind int

const (
	// ActionNone is the explicit no-op.
	ActionNone ActionKind = iota

	// Session control
	ActionQuit
	ActionSave

	// Text input
	ActionInsertChar
	ActionInsertNewline
	ActionDeleteBackward
	ActionDeleteForward

	// Movement
	ActionMove
	ActionMovePage

	// Line operations
	ActionDeleteLine
	ActionCopyLine
	ActionPaste

	// Undo/redo
	ActionUndo
	ActionRedo

	// Mode changes
	ActionEnterNavigate
	ActionEnterWrite
	ActionEnterWriteWithChar

	// UI
	ActionToggleStatus
	ActionToggleSpellCheck
	ActionShowHelp
	ActionHideOverlay

	// Search
	ActionStartSearch
	ActionSubmitSearch
	ActionCancelSearch
	ActionSearchNext
	ActionSearchPrev
	ActionSearchInput
	ActionSearchBackspace
)

// Action is one intent produced from one key event. Rune is set for
// ActionInsertChar, ActionEnterWriteWithChar, and ActionSearchInput; Dir and
// Unit for ActionMove; Dir and Rows for ActionMovePage.
type Action struct {
	Kind ActionKind
	Rune rune
	Dir  editor.Direction
	Unit editor.Unit
	Rows int
}

// IsNone reports whether the action does nothing.
func (a Action) IsNone() bool {
	return a.Kind == ActionNone
}

func none() Action {
	return Action{Kind: ActionNone}
}

func simple(k ActionKind) Action {
	return Action{Kind: k}
}

func insertChar(r rune) Action {
	return Action{Kind: ActionInsertChar, Rune: r}
}

func move(d editor.Direction, u editor.Unit) Action {
	return Action{Kind: ActionMove, Dir: d, Unit: u}
}

func movePage(d editor.Direction, rows int) Action {
	return Action{Kind: ActionMovePage, Dir: d, Rows: rows}
}
