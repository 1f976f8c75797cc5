package editor

import "testing"

func TestStickyColumnRoundTrip(t *testing.T) {
	// Line 0 is shorter than the starting column; moving up clamps, moving
	// back down returns to the remembered column.
	e := New()
	e.Load("a\nbc")
	e.Move(Down, UnitChar)
	e.Move(Right, UnitChar)
	e.Move(Right, UnitChar)
	wantCursor(t, e, 1, 2)

	e.Move(Up, UnitChar)
	wantCursor(t, e, 0, 1)

	e.Move(Down, UnitChar)
	wantCursor(t, e, 1, 2)
}

func TestHorizontalMoveClearsSticky(t *testing.T) {
	e := New()
	e.Load("a\nbc")
	e.Move(Down, UnitChar)
	e.Move(Right, UnitChar)
	e.Move(Right, UnitChar)
	e.Move(Up, UnitChar)
	wantCursor(t, e, 0, 1)

	e.Move(Left, UnitChar)
	e.Move(Down, UnitChar)

	// The old target of 2 is forgotten; the new target is column 0.
	wantCursor(t, e, 1, 0)
}

func TestEditClearsSticky(t *testing.T) {
	e := New()
	e.Load("ab\ncd\nef")
	e.Move(Right, UnitChar)
	e.Move(Right, UnitChar)
	e.Move(Down, UnitChar)
	wantCursor(t, e, 1, 2)

	e.DeleteBackward()
	e.Move(Down, UnitChar)

	wantCursor(t, e, 2, 1)
}

func TestMoveLeftWrapsToPreviousLine(t *testing.T) {
	e := New()
	e.Load("ab\ncd")
	e.Move(Down, UnitChar)

	e.Move(Left, UnitChar)

	wantCursor(t, e, 0, 2)
}

func TestMoveRightWrapsToNextLine(t *testing.T) {
	e := New()
	e.Load("ab\ncd")
	e.Move(Right, UnitChar)
	e.Move(Right, UnitChar)

	e.Move(Right, UnitChar)

	wantCursor(t, e, 1, 0)
}

func TestMoveByRuneNotByte(t *testing.T) {
	e := New()
	e.Load("aéb")

	e.Move(Right, UnitChar)
	wantCursor(t, e, 0, 1)
	e.Move(Right, UnitChar)
	wantCursor(t, e, 0, 3)
	e.Move(Left, UnitChar)
	wantCursor(t, e, 0, 1)
}

func TestMoveAtDocumentBoundsIsNoop(t *testing.T) {
	e := New()
	e.Load("ab")

	e.Move(Left, UnitChar)
	wantCursor(t, e, 0, 0)
	e.Move(Up, UnitChar)
	wantCursor(t, e, 0, 0)

	e.Move(Down, UnitDocument)
	e.Move(Right, UnitChar)
	wantCursor(t, e, 0, 2)
	e.Move(Down, UnitChar)
	wantCursor(t, e, 0, 2)
}

func TestVerticalMoveSnapsToRuneBoundary(t *testing.T) {
	// Column 2 on "aéb" falls inside é; landing snaps back to its start.
	e := New()
	e.Load("xyz\naéb")
	e.Move(Right, UnitChar)
	e.Move(Right, UnitChar)

	e.Move(Down, UnitChar)

	wantCursor(t, e, 1, 1)
}

func TestWordForward(t *testing.T) {
	e := New()
	e.Load("foo bar baz")

	e.Move(Right, UnitWord)
	wantCursor(t, e, 0, 4)
	e.Move(Right, UnitWord)
	wantCursor(t, e, 0, 8)
	e.Move(Right, UnitWord)
	wantCursor(t, e, 0, 11)
}

func TestWordForwardConsumesOneNewline(t *testing.T) {
	// Crossing a line boundary stops at column 0 of the next line even
	// though that line starts with more whitespace.
	e := New()
	e.Load("foo\n  bar")

	e.Move(Right, UnitWord)

	wantCursor(t, e, 1, 0)
}

func TestWordBackwardSkipsWhitespaceAcrossLines(t *testing.T) {
	// Backward movement has no single-newline stop: from the start of
	// "bar" it crosses the line boundary and all whitespace in one step.
	e := New()
	e.Load("foo\n  bar")
	e.Move(Down, UnitChar)
	e.Move(Right, UnitChar)
	e.Move(Right, UnitChar)
	wantCursor(t, e, 1, 2)

	e.Move(Left, UnitWord)

	wantCursor(t, e, 0, 0)
}

func TestWordBackwardAtOriginIsNoop(t *testing.T) {
	e := New()
	e.Load("foo")

	e.Move(Left, UnitWord)

	wantCursor(t, e, 0, 0)
}

func TestLineStartEnd(t *testing.T) {
	e := New()
	e.Load("hello")
	e.Move(Right, UnitChar)

	e.Move(Right, UnitLine)
	wantCursor(t, e, 0, 5)
	e.Move(Left, UnitLine)
	wantCursor(t, e, 0, 0)
}

func TestParagraphDown(t *testing.T) {
	e := New()
	e.Load("Line one.\n\nLine two.")

	e.Move(Down, UnitParagraph)

	wantCursor(t, e, 2, 0)
}

func TestParagraphDownStopsAtLastLine(t *testing.T) {
	e := New()
	e.Load("Line one.\n\nLine two.")
	e.Move(Down, UnitParagraph)

	e.Move(Down, UnitParagraph)

	wantCursor(t, e, 2, 0)
}

func TestParagraphUp(t *testing.T) {
	e := New()
	e.Load("Line one.\n\nLine two.")
	e.Move(Down, UnitParagraph)
	wantCursor(t, e, 2, 0)

	e.Move(Up, UnitParagraph)

	wantCursor(t, e, 0, 0)
}

func TestParagraphUpFromMidParagraph(t *testing.T) {
	e := New()
	e.Load("one\ntwo\n\nthree\nfour")
	e.Move(Down, UnitDocument)
	wantCursor(t, e, 4, 4)

	e.Move(Up, UnitParagraph)
	wantCursor(t, e, 3, 0)

	e.Move(Up, UnitParagraph)
	wantCursor(t, e, 0, 0)
}

func TestDocumentStartEnd(t *testing.T) {
	e := New()
	e.Load("one\ntwo\nthree")
	e.Move(Down, UnitChar)

	e.Move(Down, UnitDocument)
	wantCursor(t, e, 2, 5)

	e.Move(Up, UnitDocument)
	wantCursor(t, e, 0, 0)
}

func TestPageMoveKeepsSticky(t *testing.T) {
	e := New()
	e.Load("aaaa\nb\ncc\ndddd\ne")
	e.Move(Right, UnitLine)
	wantCursor(t, e, 0, 4)

	e.MovePage(Down, 3)
	wantCursor(t, e, 3, 4)

	e.MovePage(Up, 3)
	wantCursor(t, e, 0, 4)
}

func TestPageMoveClampsToDocument(t *testing.T) {
	e := New()
	e.Load("aaaa\nb\ncc")
	e.Move(Right, UnitLine)

	e.MovePage(Down, 100)
	wantCursor(t, e, 2, 2)

	e.MovePage(Up, 100)
	wantCursor(t, e, 0, 4)
}
