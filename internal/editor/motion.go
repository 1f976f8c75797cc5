package editor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sudokatie/hollow/internal/engine/cursor"
)

// Direction selects which way a movement goes.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Unit selects how far a movement goes.
type Unit int

const (
	UnitChar Unit = iota
	UnitWord
	UnitLine
	UnitParagraph
	UnitDocument
)

// Move performs one cursor movement. Unsupported direction and unit pairs
// (for example Up with UnitWord) are no-ops.
func (e *Editor) Move(d Direction, u Unit) {
	switch u {
	case UnitChar:
		switch d {
		case Up:
			e.moveUp()
		case Down:
			e.moveDown()
		case Left:
			e.moveLeft()
		case Right:
			e.moveRight()
		}
	case UnitWord:
		switch d {
		case Left:
			e.moveWordBackward()
		case Right:
			e.moveWordForward()
		}
	case UnitLine:
		switch d {
		case Left:
			e.moveLineStart()
		case Right:
			e.moveLineEnd()
		}
	case UnitParagraph:
		switch d {
		case Up:
			e.moveParagraphUp()
		case Down:
			e.moveParagraphDown()
		}
	case UnitDocument:
		switch d {
		case Up:
			e.moveDocumentStart()
		case Down:
			e.moveDocumentEnd()
		}
	}
}

// MovePage moves the cursor by rows lines at once with the same sticky
// column behavior as a single vertical move. Directions other than Up and
// Down are no-ops.
func (e *Editor) MovePage(d Direction, rows int) {
	if rows < 1 {
		rows = 1
	}
	switch d {
	case Up:
		target := e.verticalTarget()
		e.cur.Line -= rows
		if e.cur.Line < 0 {
			e.cur.Line = 0
		}
		e.landAt(target)
	case Down:
		target := e.verticalTarget()
		e.cur.Line += rows
		if last := e.rope.LineCount() - 1; e.cur.Line > last {
			e.cur.Line = last
		}
		e.landAt(target)
	}
}

// verticalTarget returns the column a vertical move aims for: the sticky
// column if one is active, otherwise the current column.
func (e *Editor) verticalTarget() cursor.ByteColumn {
	if e.stickySet {
		return e.sticky
	}
	return e.cur.Column
}

// landAt clamps the target column onto the current line and records it as
// the sticky column for the next vertical move.
func (e *Editor) landAt(target cursor.ByteColumn) {
	e.cur.Column = e.snapColumn(e.cur.Line, target)
	e.sticky = target
	e.stickySet = true
}

// snapColumn clamps col to the line's length and, if that lands inside a
// multibyte rune, backs up to the rune's first byte.
func (e *Editor) snapColumn(line int, col cursor.ByteColumn) cursor.ByteColumn {
	text := e.rope.LineText(line)
	if col >= cursor.ByteColumn(len(text)) {
		return cursor.ByteColumn(len(text))
	}
	for col > 0 && !utf8.RuneStart(text[col]) {
		col--
	}
	return col
}

func (e *Editor) moveUp() {
	if e.cur.Line == 0 {
		return
	}
	target := e.verticalTarget()
	e.cur.Line--
	e.landAt(target)
}

func (e *Editor) moveDown() {
	if e.cur.Line+1 >= e.rope.LineCount() {
		return
	}
	target := e.verticalTarget()
	e.cur.Line++
	e.landAt(target)
}

func (e *Editor) moveLeft() {
	if e.cur.Column > 0 {
		line := e.rope.LineText(e.cur.Line)
		_, size := utf8.DecodeLastRuneInString(line[:e.cur.Column])
		e.cur.Column -= cursor.ByteColumn(size)
	} else if e.cur.Line > 0 {
		e.cur.Line--
		e.cur.Column = e.lineLen(e.cur.Line)
	}
	e.clearSticky()
}

func (e *Editor) moveRight() {
	if e.cur.Column < e.lineLen(e.cur.Line) {
		line := e.rope.LineText(e.cur.Line)
		_, size := utf8.DecodeRuneInString(line[e.cur.Column:])
		e.cur.Column += cursor.ByteColumn(size)
	} else if e.cur.Line+1 < e.rope.LineCount() {
		e.cur.Line++
		e.cur.Column = 0
	}
	e.clearSticky()
}

// moveWordForward lands after the end of the current word's trailing
// whitespace. Crossing a line boundary consumes exactly one newline, so the
// cursor stops at the start of the next line even when that line begins
// with more whitespace.
func (e *Editor) moveWordForward() {
	pos := e.CursorChar()
	total := e.rope.CharLen()

	for pos < total {
		c, _ := e.rope.CharAt(pos)
		if unicode.IsSpace(c) {
			break
		}
		pos++
	}
	for pos < total {
		c, _ := e.rope.CharAt(pos)
		if c == '\n' {
			pos++
			break
		}
		if !unicode.IsSpace(c) {
			break
		}
		pos++
	}

	e.setCursorChar(pos)
	e.clearSticky()
}

// moveWordBackward lands on the first character of the previous word. It
// has no newline special case; whitespace runs spanning lines are skipped
// in full.
func (e *Editor) moveWordBackward() {
	pos := e.CursorChar()
	if pos == 0 {
		return
	}
	pos--

	for pos > 0 {
		c, _ := e.rope.CharAt(pos)
		if !unicode.IsSpace(c) {
			break
		}
		pos--
	}
	for pos > 0 {
		c, _ := e.rope.CharAt(pos - 1)
		if unicode.IsSpace(c) {
			break
		}
		pos--
	}

	e.setCursorChar(pos)
	e.clearSticky()
}

func (e *Editor) moveLineStart() {
	e.cur.Column = 0
	e.clearSticky()
}

func (e *Editor) moveLineEnd() {
	e.cur.Column = e.lineLen(e.cur.Line)
	e.clearSticky()
}

// moveParagraphUp lands at column 0 of the first line of the current
// paragraph, or of the previous paragraph when already at its first line.
func (e *Editor) moveParagraphUp() {
	if e.cur.Line > 0 && !e.isBlankLine(e.cur.Line) {
		e.cur.Line--
	}
	for e.cur.Line > 0 && e.isBlankLine(e.cur.Line) {
		e.cur.Line--
	}
	for e.cur.Line > 0 && !e.isBlankLine(e.cur.Line-1) {
		e.cur.Line--
	}
	e.cur.Column = 0
	e.clearSticky()
}

// moveParagraphDown lands at column 0 of the first line of the next
// paragraph, or on the last line when no paragraph follows.
func (e *Editor) moveParagraphDown() {
	maxLine := e.rope.LineCount() - 1
	for e.cur.Line < maxLine && !e.isBlankLine(e.cur.Line) {
		e.cur.Line++
	}
	for e.cur.Line < maxLine && e.isBlankLine(e.cur.Line) {
		e.cur.Line++
	}
	e.cur.Column = 0
	e.clearSticky()
}

func (e *Editor) moveDocumentStart() {
	e.cur = cursor.Position{}
	e.clearSticky()
}

func (e *Editor) moveDocumentEnd() {
	e.cur.Line = e.rope.LineCount() - 1
	e.cur.Column = e.lineLen(e.cur.Line)
	e.clearSticky()
}

// isBlankLine reports whether a line is empty or all whitespace.
func (e *Editor) isBlankLine(line int) bool {
	return strings.TrimSpace(e.rope.LineText(line)) == ""
}
