package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/sudokatie/hollow/internal/engine/cursor"
	"github.com/sudokatie/hollow/internal/engine/history"
	"github.com/sudokatie/hollow/internal/engine/rope"
)

// InsertChar inserts a single rune at the cursor and advances the cursor
// past it. A newline rune is routed through InsertNewline so the cursor
// lands on the new line.
func (e *Editor) InsertChar(c rune) {
	if c == '\n' {
		e.InsertNewline()
		return
	}
	before := e.cur
	pos := e.CursorChar()
	text := string(c)

	e.rope.Insert(pos, text)
	e.cur.Column += cursor.ByteColumn(len(text))
	e.modified = true
	e.clearSticky()

	e.hist.Record(history.Delete{Pos: pos, Text: text}, before, e.cur)
}

// InsertNewline splits the current line at the cursor and moves the cursor
// to the start of the new line.
func (e *Editor) InsertNewline() {
	before := e.cur
	pos := e.CursorChar()

	e.rope.Insert(pos, "\n")
	e.cur = cursor.Position{Line: e.cur.Line + 1, Column: 0}
	e.modified = true
	e.clearSticky()

	e.hist.Record(history.Delete{Pos: pos, Text: "\n"}, before, e.cur)
}

// DeleteBackward removes the character before the cursor. At the start of a
// line it removes the preceding newline, joining the line with the one
// above. At the start of the document it is a no-op.
func (e *Editor) DeleteBackward() {
	if e.cur.Line == 0 && e.cur.Column == 0 {
		return
	}
	before := e.cur

	if e.cur.Column == 0 {
		e.cur.Line--
		e.cur.Column = e.lineLen(e.cur.Line)
	} else {
		line := e.rope.LineText(e.cur.Line)
		_, size := utf8.DecodeLastRuneInString(line[:e.cur.Column])
		e.cur.Column -= cursor.ByteColumn(size)
	}

	pos := e.CursorChar()
	deleted, ok := e.rope.CharAt(pos)
	if !ok {
		e.cur = before
		return
	}
	e.rope.Delete(pos, pos+1)
	e.modified = true
	e.clearSticky()

	e.hist.Record(history.Insert{Pos: pos, Text: string(deleted)}, before, e.cur)
}

// DeleteForward removes the character at the cursor without moving it. At
// the very end of the document it is a no-op.
func (e *Editor) DeleteForward() {
	pos := e.CursorChar()
	deleted, ok := e.rope.CharAt(pos)
	if !ok {
		return
	}
	before := e.cur

	e.rope.Delete(pos, pos+1)
	e.modified = true
	e.clearSticky()

	e.hist.Record(history.Insert{Pos: pos, Text: string(deleted)}, before, e.cur)
}

// DeleteLine removes the entire current line including its trailing newline
// and records it as one undo unit. On an empty document it is a no-op.
func (e *Editor) DeleteLine() {
	start := e.rope.LineStartChar(e.cur.Line)
	var end rope.CharOffset
	if e.cur.Line+1 < e.rope.LineCount() {
		end = e.rope.LineStartChar(e.cur.Line + 1)
	} else {
		end = e.rope.CharLen()
	}
	if start >= end {
		return
	}
	before := e.cur

	deleted := e.rope.Slice(start, end)
	e.rope.Delete(start, end)
	e.modified = true
	e.clearSticky()

	e.cur.Column = 0
	if last := e.rope.LineCount() - 1; e.cur.Line > last {
		e.cur.Line = last
	}

	e.hist.Record(history.Insert{Pos: start, Text: deleted}, before, e.cur)
}

// CopyLine places the current line's text in the clipboard, including its
// trailing newline when the line has one. The document and cursor are
// untouched.
func (e *Editor) CopyLine() {
	text := e.rope.LineText(e.cur.Line)
	if e.cur.Line+1 < e.rope.LineCount() {
		text += "\n"
	}
	e.clipboard = text
	e.hasClipboard = true
}

// Paste inserts the clipboard contents at the cursor, leaving the cursor
// after the inserted text. An empty clipboard is a no-op.
func (e *Editor) Paste() {
	if !e.hasClipboard || e.clipboard == "" {
		return
	}
	before := e.cur
	pos := e.CursorChar()
	text := e.clipboard

	e.rope.Insert(pos, text)
	e.modified = true
	e.clearSticky()

	if n := strings.Count(text, "\n"); n > 0 {
		last := text[strings.LastIndexByte(text, '\n')+1:]
		e.cur.Line += n
		e.cur.Column = cursor.ByteColumn(len(last))
	} else {
		e.cur.Column += cursor.ByteColumn(len(text))
	}

	e.hist.Record(history.Delete{Pos: pos, Text: text}, before, e.cur)
}

// Undo reverts the most recent undo unit and restores the cursor to where
// it was before that unit's first edit. Without history it is a no-op.
func (e *Editor) Undo() {
	p, ok := e.hist.Undo(e.rope)
	if !ok {
		return
	}
	e.cur = p
	e.clamp()
	e.modified = true
	e.clearSticky()
}

// Redo replays the most recently undone unit and restores the cursor to
// where it was after that unit's last edit.
func (e *Editor) Redo() {
	p, ok := e.hist.Redo(e.rope)
	if !ok {
		return
	}
	e.cur = p
	e.clamp()
	e.modified = true
	e.clearSticky()
}
