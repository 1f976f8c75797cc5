package tui

import (
	"fmt"

	"github.com/sudokatie/hollow/internal/input"
	"github.com/sudokatie/hollow/internal/renderer/layout"
	"github.com/sudokatie/hollow/internal/session"
)

// Frame is one fully-resolved paint of the screen. Rows cover the
// writing area only; Bottom is the reserved last line.
type Frame struct {
	// Rows are the visible visual lines, already wrapped.
	Rows []string

	// CursorRow and CursorCol are screen coordinates. CursorRow is -1
	// when the cursor is hidden behind an overlay.
	CursorRow int
	CursorCol int

	// Bottom is the content of the reserved bottom line: the search
	// prompt, the status line, or empty.
	Bottom string

	// Overlay holds centered overlay lines, nil when none is active.
	Overlay []string
}

// View builds frames from session state. It owns the scroll position so
// the cursor stays visible across repaints.
type View struct {
	// TextWidth caps the wrap width. The effective width is the smaller
	// of this and the screen width.
	TextWidth int

	top int
}

// NewView creates a view wrapping at the given width.
func NewView(textWidth int) *View {
	return &View{TextWidth: textWidth}
}

// Frame renders the session into a frame for a screen of the given size.
func (v *View) Frame(s *session.Session, width, height int) Frame {
	textHeight := height - 1
	if textHeight < 1 {
		textHeight = 1
	}
	textWidth := v.TextWidth
	if textWidth > width {
		textWidth = width
	}

	content := s.Editor().Content()
	visual := layout.BuildVisualLines(content, textWidth)

	pos := s.Editor().CursorPosition()
	row, col := layout.LogicalToVisual(content, pos.Line, int(pos.Column), textWidth)
	v.scrollTo(row, textHeight, len(visual))

	rows := make([]string, 0, textHeight)
	for i := v.top; i < len(visual) && i < v.top+textHeight; i++ {
		rows = append(rows, visual[i].Text)
	}

	f := Frame{
		Rows:      rows,
		CursorRow: row - v.top,
		CursorCol: col,
		Bottom:    v.bottomLine(s),
	}

	switch s.Overlay() {
	case session.OverlayHelp:
		f.Overlay = helpLines()
	case session.OverlayQuitConfirm:
		f.Overlay = []string{"Unsaved changes. Save before quitting? (y/n/c)"}
	}
	if f.Overlay != nil {
		f.CursorRow = -1
	}
	return f
}

// scrollTo moves the viewport the minimum amount needed to keep the
// cursor row visible.
func (v *View) scrollTo(row, textHeight, total int) {
	if row < v.top {
		v.top = row
	}
	if row >= v.top+textHeight {
		v.top = row - textHeight + 1
	}
	if max := total - textHeight; v.top > max {
		v.top = max
	}
	if v.top < 0 {
		v.top = 0
	}
}

func (v *View) bottomLine(s *session.Session) string {
	if s.Mode() == input.ModeSearch {
		return "/" + s.SearchInput()
	}
	if !s.ShowStatus() && !s.SavedRecently() {
		return ""
	}

	line := fmt.Sprintf("Words: %d | %s | %s", s.WordsWritten(), s.ElapsedString(), s.Mode())
	if s.Editor().IsModified() {
		line += " [+]"
	}
	if s.SavedRecently() {
		line += " | Saved"
	}
	return line
}

func helpLines() []string {
	return []string{
		"hollow",
		"",
		"Esc          stop writing, start navigating",
		"i or typing  resume writing",
		"h j k l      move around",
		"w b          move by word",
		"{ }          move by paragraph",
		"gg G         start and end of document",
		"0 $          start and end of line",
		"dd yy p      delete, copy, paste line",
		"u Ctrl+R     undo, redo",
		"/ n N        search, next, previous",
		"Ctrl+S       save",
		"Ctrl+G       status line",
		"Ctrl+Q       quit",
		"",
		"Esc to close",
	}
}
