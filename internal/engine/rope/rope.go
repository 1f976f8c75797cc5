package rope

import (
	"strings"
	"unicode/utf8"
)

// CharOffset is a document-wide character (rune) offset. It is a distinct
// type so it cannot be confused with byte columns or byte offsets.
type CharOffset int

// Rope stores document text as a slice of lines without their trailing
// newlines. An empty document is a single empty line, so a cursor position
// always exists.
type Rope struct {
	lines []string
}

// New creates an empty rope.
func New() *Rope {
	return &Rope{lines: []string{""}}
}

// FromString creates a rope from text. The text must already use \n line
// endings.
func FromString(s string) *Rope {
	return &Rope{lines: strings.Split(s, "\n")}
}

// String returns the full text.
func (r *Rope) String() string {
	return strings.Join(r.lines, "\n")
}

// LineCount returns the number of logical lines. Always at least 1.
func (r *Rope) LineCount() int {
	return len(r.lines)
}

// LineText returns the text of a line without its trailing newline.
// Out-of-range lines return "".
func (r *Rope) LineText(line int) string {
	if line < 0 || line >= len(r.lines) {
		return ""
	}
	return r.lines[line]
}

// LineByteLen returns the byte length of a line, excluding the newline.
func (r *Rope) LineByteLen(line int) int {
	return len(r.LineText(line))
}

// LineCharLen returns the character length of a line, excluding the newline.
func (r *Rope) LineCharLen(line int) int {
	return utf8.RuneCountInString(r.LineText(line))
}

// CharLen returns the total number of characters, counting each newline as
// one character.
func (r *Rope) CharLen() CharOffset {
	n := len(r.lines) - 1 // newlines
	for _, l := range r.lines {
		n += utf8.RuneCountInString(l)
	}
	return CharOffset(n)
}

// ByteLen returns the total byte length.
func (r *Rope) ByteLen() int {
	n := len(r.lines) - 1
	for _, l := range r.lines {
		n += len(l)
	}
	return n
}

// IsEmpty returns true if the rope holds no text.
func (r *Rope) IsEmpty() bool {
	return len(r.lines) == 1 && r.lines[0] == ""
}

// LineStartChar returns the character offset of the start of a line.
// Lines past the end map to the end of the document.
func (r *Rope) LineStartChar(line int) CharOffset {
	if line <= 0 {
		return 0
	}
	if line >= len(r.lines) {
		return r.CharLen()
	}
	var n int
	for i := 0; i < line; i++ {
		n += utf8.RuneCountInString(r.lines[i]) + 1
	}
	return CharOffset(n)
}

// LineStartByte returns the byte offset of the start of a line.
func (r *Rope) LineStartByte(line int) int {
	if line <= 0 {
		return 0
	}
	if line >= len(r.lines) {
		return r.ByteLen()
	}
	var n int
	for i := 0; i < line; i++ {
		n += len(r.lines[i]) + 1
	}
	return n
}

// CharToLine returns the line containing the given character offset.
// Offsets past the end map to the last line.
func (r *Rope) CharToLine(pos CharOffset) int {
	line, _ := r.locate(pos)
	return line
}

// CharToByte converts a document-wide character offset to a byte offset.
func (r *Rope) CharToByte(pos CharOffset) int {
	line, byteCol := r.locate(pos)
	return r.LineStartByte(line) + byteCol
}

// ByteToChar converts a document-wide byte offset to a character offset.
// The offset must lie on a character boundary; offsets past the end clamp.
func (r *Rope) ByteToChar(byteOff int) CharOffset {
	if byteOff <= 0 {
		return 0
	}
	var chars, bytes int
	for i, l := range r.lines {
		if byteOff <= bytes+len(l) {
			prefix := l[:byteOff-bytes]
			return CharOffset(chars + utf8.RuneCountInString(prefix))
		}
		bytes += len(l)
		chars += utf8.RuneCountInString(l)
		if i < len(r.lines)-1 {
			bytes++ // newline
			chars++
		}
	}
	return r.CharLen()
}

// PointToChar converts a line and byte column to a character offset.
// The column is clamped to the line's byte length.
func (r *Rope) PointToChar(line, byteCol int) CharOffset {
	if line < 0 {
		return 0
	}
	if line >= len(r.lines) {
		return r.CharLen()
	}
	text := r.lines[line]
	if byteCol > len(text) {
		byteCol = len(text)
	}
	return r.LineStartChar(line) + CharOffset(utf8.RuneCountInString(text[:byteCol]))
}

// CharToPoint converts a character offset to a line and byte column.
func (r *Rope) CharToPoint(pos CharOffset) (line, byteCol int) {
	return r.locate(pos)
}

// CharAt returns the character at the given offset. Newlines between lines
// are addressable. Returns false past the end of the document.
func (r *Rope) CharAt(pos CharOffset) (rune, bool) {
	if pos < 0 || pos >= r.CharLen() {
		return 0, false
	}
	line, byteCol := r.locate(pos)
	text := r.lines[line]
	if byteCol >= len(text) {
		return '\n', true
	}
	c, _ := utf8.DecodeRuneInString(text[byteCol:])
	return c, true
}

// Slice returns the text in the character range [start, end).
func (r *Rope) Slice(start, end CharOffset) string {
	if start < 0 {
		start = 0
	}
	if max := r.CharLen(); end > max {
		end = max
	}
	if start >= end {
		return ""
	}
	startLine, startCol := r.locate(start)
	endLine, endCol := r.locate(end)
	if startLine == endLine {
		return r.lines[startLine][startCol:endCol]
	}
	var sb strings.Builder
	sb.WriteString(r.lines[startLine][startCol:])
	for i := startLine + 1; i < endLine; i++ {
		sb.WriteByte('\n')
		sb.WriteString(r.lines[i])
	}
	sb.WriteByte('\n')
	sb.WriteString(r.lines[endLine][:endCol])
	return sb.String()
}

// Insert inserts text at the given character offset. Offsets outside the
// document clamp to its bounds.
func (r *Rope) Insert(pos CharOffset, text string) {
	if text == "" {
		return
	}
	line, byteCol := r.locate(pos)
	head := r.lines[line][:byteCol]
	tail := r.lines[line][byteCol:]

	segs := strings.Split(text, "\n")
	if len(segs) == 1 {
		r.lines[line] = head + text + tail
		return
	}

	replacement := make([]string, len(segs))
	replacement[0] = head + segs[0]
	copy(replacement[1:], segs[1:])
	replacement[len(segs)-1] = segs[len(segs)-1] + tail

	updated := make([]string, 0, len(r.lines)+len(segs)-1)
	updated = append(updated, r.lines[:line]...)
	updated = append(updated, replacement...)
	updated = append(updated, r.lines[line+1:]...)
	r.lines = updated
}

// Delete removes the text in the character range [start, end). Out-of-range
// bounds clamp; an empty or inverted range is a no-op.
func (r *Rope) Delete(start, end CharOffset) {
	if start < 0 {
		start = 0
	}
	if max := r.CharLen(); end > max {
		end = max
	}
	if start >= end {
		return
	}
	startLine, startCol := r.locate(start)
	endLine, endCol := r.locate(end)

	joined := r.lines[startLine][:startCol] + r.lines[endLine][endCol:]

	updated := make([]string, 0, len(r.lines)-(endLine-startLine))
	updated = append(updated, r.lines[:startLine]...)
	updated = append(updated, joined)
	updated = append(updated, r.lines[endLine+1:]...)
	r.lines = updated
}

// locate maps a character offset to (line, byte column), clamping to the
// document bounds.
func (r *Rope) locate(pos CharOffset) (line, byteCol int) {
	if pos < 0 {
		return 0, 0
	}
	remaining := int(pos)
	for i, l := range r.lines {
		chars := utf8.RuneCountInString(l)
		if remaining <= chars {
			return i, charIndexToByte(l, remaining)
		}
		remaining -= chars
		if i < len(r.lines)-1 {
			remaining-- // newline
		}
	}
	last := len(r.lines) - 1
	return last, len(r.lines[last])
}

// charIndexToByte returns the byte index of the nth character in s.
func charIndexToByte(s string, n int) int {
	if n <= 0 {
		return 0
	}
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}
