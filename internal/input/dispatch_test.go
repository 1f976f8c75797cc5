package input

import (
	"testing"

	"github.com/sudokatie/hollow/internal/editor"
	"github.com/sudokatie/hollow/internal/input/key"
)

func ch(r rune) key.Event {
	return key.NewRuneEvent(r, key.ModNone)
}

func ctrl(r rune) key.Event {
	return key.NewRuneEvent(r, key.ModCtrl)
}

func special(k key.Key) key.Event {
	return key.NewSpecialEvent(k, key.ModNone)
}

func TestUniversalBindings(t *testing.T) {
	d := NewDispatcher()
	tests := []struct {
		ev   key.Event
		want ActionKind
	}{
		{ctrl('s'), ActionSave},
		{ctrl('q'), ActionQuit},
		{ctrl('g'), ActionToggleStatus},
		{ctrl('z'), ActionUndo},
		{ctrl('y'), ActionRedo},
		{ctrl(';'), ActionToggleSpellCheck},
	}
	for _, tt := range tests {
		for _, mode := range []Mode{ModeWrite, ModeNavigate} {
			var st State
			got := d.Handle(tt.ev, mode, &st)
			if got.Kind != tt.want {
				t.Errorf("Handle(%s, %s) = %v, want %v", tt.ev, mode, got.Kind, tt.want)
			}
		}
	}
}

func TestUniversalBindingsInactiveInSearch(t *testing.T) {
	d := NewDispatcher()
	var st State

	got := d.Handle(ctrl('s'), ModeSearch, &st)

	if got.Kind == ActionSave {
		t.Error("Ctrl+S must not save while typing a search query")
	}
}

func TestUniversalBindingClearsPending(t *testing.T) {
	d := NewDispatcher()
	var st State
	d.Handle(ch('d'), ModeNavigate, &st)
	if !st.PendingD {
		t.Fatal("expected pending d")
	}

	d.Handle(ctrl('s'), ModeNavigate, &st)

	if st.HasPending() {
		t.Error("universal binding must clear pending sequences")
	}
}

func TestWriteModeInsertsRunes(t *testing.T) {
	d := NewDispatcher()
	var st State

	got := d.Handle(ch('a'), ModeWrite, &st)
	if got.Kind != ActionInsertChar || got.Rune != 'a' {
		t.Errorf("got %+v", got)
	}

	got = d.Handle(key.NewRuneEvent('A', key.ModShift), ModeWrite, &st)
	if got.Kind != ActionInsertChar || got.Rune != 'A' {
		t.Errorf("shifted rune should insert, got %+v", got)
	}
}

func TestWriteModeEditingKeys(t *testing.T) {
	d := NewDispatcher()
	var st State
	tests := []struct {
		ev   key.Event
		want ActionKind
	}{
		{special(key.KeyEnter), ActionInsertNewline},
		{special(key.KeyBackspace), ActionDeleteBackward},
		{special(key.KeyDelete), ActionDeleteForward},
		{special(key.KeyEscape), ActionEnterNavigate},
	}
	for _, tt := range tests {
		if got := d.Handle(tt.ev, ModeWrite, &st); got.Kind != tt.want {
			t.Errorf("Handle(%s) = %v, want %v", tt.ev, got.Kind, tt.want)
		}
	}
}

func TestWriteModeArrowMovement(t *testing.T) {
	d := NewDispatcher()
	var st State

	got := d.Handle(special(key.KeyLeft), ModeWrite, &st)
	if got.Kind != ActionMove || got.Dir != editor.Left || got.Unit != editor.UnitChar {
		t.Errorf("got %+v", got)
	}

	got = d.Handle(key.NewSpecialEvent(key.KeyLeft, key.ModCtrl), ModeWrite, &st)
	if got.Kind != ActionMove || got.Dir != editor.Left || got.Unit != editor.UnitWord {
		t.Errorf("Ctrl+Left should move by word, got %+v", got)
	}

	got = d.Handle(key.NewSpecialEvent(key.KeyHome, key.ModCtrl), ModeWrite, &st)
	if got.Kind != ActionMove || got.Dir != editor.Up || got.Unit != editor.UnitDocument {
		t.Errorf("Ctrl+Home should move to document start, got %+v", got)
	}

	got = d.Handle(special(key.KeyPageDown), ModeWrite, &st)
	if got.Kind != ActionMovePage || got.Rows != DefaultPageRows {
		t.Errorf("got %+v", got)
	}
}

func TestNavigateVimMovement(t *testing.T) {
	d := NewDispatcher()
	var st State
	tests := []struct {
		r    rune
		dir  editor.Direction
		unit editor.Unit
	}{
		{'h', editor.Left, editor.UnitChar},
		{'j', editor.Down, editor.UnitChar},
		{'k', editor.Up, editor.UnitChar},
		{'l', editor.Right, editor.UnitChar},
		{'w', editor.Right, editor.UnitWord},
		{'b', editor.Left, editor.UnitWord},
		{'{', editor.Up, editor.UnitParagraph},
		{'}', editor.Down, editor.UnitParagraph},
		{'0', editor.Left, editor.UnitLine},
		{'$', editor.Right, editor.UnitLine},
		{'G', editor.Down, editor.UnitDocument},
	}
	for _, tt := range tests {
		got := d.Handle(ch(tt.r), ModeNavigate, &st)
		if got.Kind != ActionMove || got.Dir != tt.dir || got.Unit != tt.unit {
			t.Errorf("Handle(%q) = %+v", tt.r, got)
		}
	}
}

func TestNavigateSingleKeyCommands(t *testing.T) {
	d := NewDispatcher()
	var st State
	tests := []struct {
		ev   key.Event
		want ActionKind
	}{
		{ch('i'), ActionEnterWrite},
		{ch('p'), ActionPaste},
		{ch('u'), ActionUndo},
		{ctrl('r'), ActionRedo},
		{ch('/'), ActionStartSearch},
		{ch('n'), ActionSearchNext},
		{ch('N'), ActionSearchPrev},
		{ch('?'), ActionShowHelp},
		{special(key.KeyEscape), ActionHideOverlay},
	}
	for _, tt := range tests {
		if got := d.Handle(tt.ev, ModeNavigate, &st); got.Kind != tt.want {
			t.Errorf("Handle(%s) = %v, want %v", tt.ev, got.Kind, tt.want)
		}
	}
}

func TestTwoKeySequences(t *testing.T) {
	d := NewDispatcher()
	tests := []struct {
		r    rune
		want ActionKind
	}{
		{'d', ActionDeleteLine},
		{'y', ActionCopyLine},
	}
	for _, tt := range tests {
		var st State
		if got := d.Handle(ch(tt.r), ModeNavigate, &st); !got.IsNone() {
			t.Errorf("first %q should be a no-op, got %+v", tt.r, got)
		}
		if !st.HasPending() {
			t.Fatalf("first %q should set a pending flag", tt.r)
		}
		got := d.Handle(ch(tt.r), ModeNavigate, &st)
		if got.Kind != tt.want {
			t.Errorf("second %q = %v, want %v", tt.r, got.Kind, tt.want)
		}
		if st.HasPending() {
			t.Errorf("completed sequence should clear pending")
		}
	}
}

func TestGGMovesToDocumentStart(t *testing.T) {
	d := NewDispatcher()
	var st State

	d.Handle(ch('g'), ModeNavigate, &st)
	got := d.Handle(ch('g'), ModeNavigate, &st)

	if got.Kind != ActionMove || got.Dir != editor.Up || got.Unit != editor.UnitDocument {
		t.Errorf("gg = %+v", got)
	}
}

func TestBrokenSequenceFallsThrough(t *testing.T) {
	// d then j: pending clears and j resolves as its normal movement.
	d := NewDispatcher()
	var st State
	d.Handle(ch('d'), ModeNavigate, &st)

	got := d.Handle(ch('j'), ModeNavigate, &st)

	if got.Kind != ActionMove || got.Dir != editor.Down {
		t.Errorf("j after broken dd = %+v", got)
	}
	if st.HasPending() {
		t.Error("broken sequence must clear pending")
	}
}

func TestBrokenSequenceWithUnboundKey(t *testing.T) {
	// d then x: two no-op intents, the document stays untouched, and no
	// accidental switch into write mode.
	d := NewDispatcher()
	var st State

	first := d.Handle(ch('d'), ModeNavigate, &st)
	second := d.Handle(ch('x'), ModeNavigate, &st)

	if !first.IsNone() {
		t.Errorf("first key = %+v", first)
	}
	if !second.IsNone() {
		t.Errorf("second key = %+v", second)
	}
	if st.HasPending() {
		t.Error("pending must be cleared after the second key")
	}
}

func TestNavigatePrintableResumesWriting(t *testing.T) {
	d := NewDispatcher()
	var st State

	got := d.Handle(ch('x'), ModeNavigate, &st)

	if got.Kind != ActionEnterWriteWithChar || got.Rune != 'x' {
		t.Errorf("got %+v", got)
	}
}

func TestSearchModeKeys(t *testing.T) {
	d := NewDispatcher()
	var st State

	got := d.Handle(ch('a'), ModeSearch, &st)
	if got.Kind != ActionSearchInput || got.Rune != 'a' {
		t.Errorf("got %+v", got)
	}
	if got := d.Handle(special(key.KeyBackspace), ModeSearch, &st); got.Kind != ActionSearchBackspace {
		t.Errorf("got %+v", got)
	}
	if got := d.Handle(special(key.KeyEnter), ModeSearch, &st); got.Kind != ActionSubmitSearch {
		t.Errorf("got %+v", got)
	}
	if got := d.Handle(special(key.KeyEscape), ModeSearch, &st); got.Kind != ActionCancelSearch {
		t.Errorf("got %+v", got)
	}
}

func TestModeString(t *testing.T) {
	if ModeWrite.String() != "WRITE" || ModeNavigate.String() != "NAVIGATE" || ModeSearch.String() != "SEARCH" {
		t.Error("unexpected mode names")
	}
}
