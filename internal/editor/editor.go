package editor

import (
	"strings"
	"time"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/sudokatie/hollow/internal/engine/cursor"
	"github.com/sudokatie/hollow/internal/engine/history"
	"github.com/sudokatie/hollow/internal/engine/rope"
)

// Editor holds one document together with its cursor, clipboard, and undo
// history. It is not safe for concurrent use; a single session owns it.
type Editor struct {
	rope *rope.Rope
	cur  cursor.Position
	hist *history.History

	// sticky remembers the horizontal target during consecutive vertical
	// moves. stickySet distinguishes "no target" from column 0.
	sticky    cursor.ByteColumn
	stickySet bool

	clipboard    string
	hasClipboard bool

	modified bool
}

// New creates an empty editor with the default undo grouping window.
func New() *Editor {
	return NewWithGroupWindow(history.DefaultGroupWindow)
}

// NewWithGroupWindow creates an empty editor whose undo grouping window is
// d instead of the default.
func NewWithGroupWindow(d time.Duration) *Editor {
	return &Editor{
		rope: rope.New(),
		hist: history.New(d),
	}
}

// Load replaces the document wholesale with freshly loaded content. The
// cursor returns to the origin, undo history is cleared, and the document is
// considered unmodified. Line endings are normalized to \n.
func (e *Editor) Load(content string) {
	e.replaceContent(content)
	e.modified = false
}

// Restore replaces the document wholesale, as Load does, but marks the
// document modified: restored content has not been saved yet.
func (e *Editor) Restore(content string) {
	e.replaceContent(content)
	e.modified = true
}

func (e *Editor) replaceContent(content string) {
	e.rope = rope.FromString(normalize(content))
	e.cur = cursor.Position{}
	e.stickySet = false
	e.hist.Clear()
}

// normalize converts CRLF and bare CR line endings to LF.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Content returns the full document text.
func (e *Editor) Content() string {
	return e.rope.String()
}

// Line returns the text of a logical line without its newline, and false if
// the index is out of range.
func (e *Editor) Line(idx int) (string, bool) {
	if idx < 0 || idx >= e.rope.LineCount() {
		return "", false
	}
	return e.rope.LineText(idx), true
}

// LineCount returns the number of logical lines.
func (e *Editor) LineCount() int {
	return e.rope.LineCount()
}

// CursorPosition returns the cursor's logical line and byte column.
func (e *Editor) CursorPosition() cursor.Position {
	return e.cur
}

// CursorChar returns the cursor position as a document-wide character
// offset, for the session's search integration.
func (e *Editor) CursorChar() rope.CharOffset {
	return e.rope.PointToChar(e.cur.Line, int(e.cur.Column))
}

// IsModified reports whether the document has unsaved changes.
func (e *Editor) IsModified() bool {
	return e.modified
}

// MarkSaved clears the modified flag and forces the next edit to start a new
// undo group. The persistence collaborator calls this after a successful
// save.
func (e *Editor) MarkSaved() {
	e.modified = false
	e.hist.MarkBoundary()
}

// MarkUndoBoundary forces the next edit to start a new undo group without
// touching the modified flag.
func (e *Editor) MarkUndoBoundary() {
	e.hist.MarkBoundary()
}

// CanUndo reports whether an undo entry is available.
func (e *Editor) CanUndo() bool { return e.hist.CanUndo() }

// CanRedo reports whether a redo entry is available.
func (e *Editor) CanRedo() bool { return e.hist.CanRedo() }

// WordCount counts the words in the document using Unicode word
// segmentation. Segments with no letters or digits (whitespace and bare
// punctuation) do not count.
func (e *Editor) WordCount() int {
	text := e.rope.String()
	count := 0
	state := -1
	var word string
	for len(text) > 0 {
		word, text, state = uniseg.FirstWordInString(text, state)
		if strings.ContainsFunc(word, isWordRune) {
			count++
		}
	}
	return count
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// lineLen returns the byte length of a line, excluding the newline.
func (e *Editor) lineLen(line int) cursor.ByteColumn {
	return cursor.ByteColumn(e.rope.LineByteLen(line))
}

// clamp forces the cursor back inside the document after a mutation that may
// have shrunk it.
func (e *Editor) clamp() {
	if e.cur.Line < 0 {
		e.cur.Line = 0
	}
	if last := e.rope.LineCount() - 1; e.cur.Line > last {
		e.cur.Line = last
	}
	if e.cur.Column < 0 {
		e.cur.Column = 0
	}
	if max := e.lineLen(e.cur.Line); e.cur.Column > max {
		e.cur.Column = max
	}
}

// setCursorChar positions the cursor at a document-wide character offset.
func (e *Editor) setCursorChar(pos rope.CharOffset) {
	line, col := e.rope.CharToPoint(pos)
	e.cur = cursor.Position{Line: line, Column: cursor.ByteColumn(col)}
}

func (e *Editor) clearSticky() {
	e.stickySet = false
}
