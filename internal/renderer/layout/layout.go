package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ContinuationIndent prefixes every wrapped continuation row.
const ContinuationIndent = "  "

const (
	indentWidth = 2

	// minUsableWidth disables wrapping when the content width left after
	// the indent drops below it, to avoid degenerate one-word rows.
	minUsableWidth = 10
)

// VisualLine is one visual row of the wrapped document.
type VisualLine struct {
	// Text is the row content, including the indent marker on
	// continuation rows.
	Text string

	// Line is the logical line this row belongs to.
	Line int

	// Continuation is true for every row of a line after its first.
	Continuation bool
}

// WrapLine splits one logical line into visual rows at the given display
// width. Continuation rows carry the indent prefix. A line that fits, or a
// width too narrow to wrap sensibly, yields the line verbatim as a single
// row.
func WrapLine(line string, width int) []string {
	segs := wrapSegments(line, width)
	rows := make([]string, len(segs))
	for i, seg := range segs {
		if i > 0 {
			seg = ContinuationIndent + seg
		}
		rows[i] = seg
	}
	return rows
}

// BuildVisualLines wraps every logical line of content in order. An empty
// document still produces one empty row so a cursor position always exists.
func BuildVisualLines(content string, width int) []VisualLine {
	var out []VisualLine
	for i, line := range strings.Split(content, "\n") {
		for j, row := range WrapLine(line, width) {
			out = append(out, VisualLine{
				Text:         row,
				Line:         i,
				Continuation: j > 0,
			})
		}
	}
	return out
}

// LogicalToVisual maps a logical (line, byte column) position to its visual
// (row, column) under the same wrapping decisions as BuildVisualLines. The
// visual column counts display cells and includes the indent on
// continuation rows.
func LogicalToVisual(content string, line, col, width int) (int, int) {
	lines := strings.Split(content, "\n")
	if line < 0 {
		line = 0
	}
	if line >= len(lines) {
		line = len(lines) - 1
	}

	row := 0
	for i := 0; i < line; i++ {
		row += len(wrapSegments(lines[i], width))
	}

	segs := wrapSegments(lines[line], width)
	if col < 0 {
		col = 0
	}
	off := 0
	for i, seg := range segs {
		segEnd := off + len(seg)
		last := i == len(segs)-1
		// A position exactly on a row boundary belongs to the start of
		// the following row.
		if col < segEnd || (col == segEnd && last) {
			vcol := runewidth.StringWidth(seg[:col-off])
			if i > 0 {
				vcol += indentWidth
			}
			return row + i, vcol
		}
		off = segEnd
	}

	lastSeg := segs[len(segs)-1]
	vcol := runewidth.StringWidth(lastSeg)
	if len(segs) > 1 {
		vcol += indentWidth
	}
	return row + len(segs) - 1, vcol
}

// wrapSegments splits a line into row segments without indent markers.
// Concatenating the segments always reproduces the line byte for byte:
// each word keeps its trailing whitespace, which may hang past the right
// edge rather than leak onto the next row.
func wrapSegments(line string, width int) []string {
	if width-indentWidth < minUsableWidth {
		return []string{line}
	}
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}

	var segs []string
	cur := ""
	avail := width
	for _, tok := range tokenize(line) {
		core := strings.TrimRight(tok, " \t")
		if cur != "" && runewidth.StringWidth(cur)+runewidth.StringWidth(core) > avail {
			segs = append(segs, cur)
			cur = ""
			avail = width - indentWidth
		}
		cur += tok
	}
	return append(segs, cur)
}

// tokenize splits a line into whitespace-inclusive word tokens: each token
// is a non-whitespace run plus its trailing spaces and tabs. Leading
// whitespace forms a token of its own.
func tokenize(line string) []string {
	var toks []string
	i := 0
	for i < len(line) {
		start := i
		for i < len(line) && !isBreakable(line[i]) {
			i++
		}
		for i < len(line) && isBreakable(line[i]) {
			i++
		}
		toks = append(toks, line[start:i])
	}
	return toks
}

func isBreakable(b byte) bool {
	return b == ' ' || b == '\t'
}
