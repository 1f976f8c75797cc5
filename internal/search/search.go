package search

import (
	"unicode"

	"github.com/sudokatie/hollow/internal/engine/rope"
)

// Match is one occurrence of the query, as a half-open character span.
type Match struct {
	Start rope.CharOffset
	End   rope.CharOffset
}

// Engine holds the current query and its lowered form. Matching is done
// rune by rune so offsets stay valid for any UTF-8 content.
type Engine struct {
	query      string
	queryLower []rune
}

// New creates an engine with no active query.
func New() *Engine {
	return &Engine{}
}

// SetQuery replaces the query.
func (s *Engine) SetQuery(q string) {
	s.query = q
	s.queryLower = lowerRunes(q)
}

// Query returns the literal query as entered.
func (s *Engine) Query() string {
	return s.query
}

// Clear removes the query.
func (s *Engine) Clear() {
	s.query = ""
	s.queryLower = nil
}

// IsActive reports whether a non-empty query is set.
func (s *Engine) IsActive() bool {
	return s.query != ""
}

// FindNext returns the first match starting at or after from, wrapping to
// the first match starting before from when the tail holds none. A match
// counts for the wrapped pass by its start alone, so an offset inside the
// document's only match still finds it. False means no match anywhere.
func (s *Engine) FindNext(content string, from rope.CharOffset) (Match, bool) {
	if len(s.queryLower) == 0 {
		return Match{}, false
	}
	text := lowerRunes(content)
	start := clamp(int(from), len(text))

	if pos := runeIndex(text, s.queryLower, start); pos >= 0 {
		return s.match(pos), true
	}
	if pos := runeIndex(text, s.queryLower, 0); pos >= 0 && pos < start {
		return s.match(pos), true
	}
	return Match{}, false
}

// FindPrev mirrors FindNext: the last match starting before from, then
// wrapping to the last match starting at or after it.
func (s *Engine) FindPrev(content string, from rope.CharOffset) (Match, bool) {
	if len(s.queryLower) == 0 {
		return Match{}, false
	}
	text := lowerRunes(content)
	start := clamp(int(from), len(text))

	if pos := runeLastIndexBefore(text, s.queryLower, start); pos >= 0 {
		return s.match(pos), true
	}
	if pos := runeLastIndex(text, s.queryLower); pos >= start {
		return s.match(pos), true
	}
	return Match{}, false
}

// AllMatches returns every non-overlapping match in document order.
func (s *Engine) AllMatches(content string) []Match {
	if len(s.queryLower) == 0 {
		return nil
	}
	text := lowerRunes(content)

	var out []Match
	pos := 0
	for {
		found := runeIndex(text, s.queryLower, pos)
		if found < 0 {
			return out
		}
		out = append(out, s.match(found))
		pos = found + len(s.queryLower)
	}
}

func (s *Engine) match(start int) Match {
	return Match{
		Start: rope.CharOffset(start),
		End:   rope.CharOffset(start + len(s.queryLower)),
	}
}

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

func lowerRunes(s string) []rune {
	out := []rune(s)
	for i, r := range out {
		out[i] = unicode.ToLower(r)
	}
	return out
}

// runeIndex returns the first index >= start where needle occurs fully
// within haystack, or -1.
func runeIndex(haystack, needle []rune, start int) int {
	for i := start; i+len(needle) <= len(haystack); i++ {
		if runesEqual(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

// runeLastIndex returns the last index where needle occurs fully within
// haystack, or -1.
func runeLastIndex(haystack, needle []rune) int {
	return runeLastIndexBefore(haystack, needle, len(haystack))
}

// runeLastIndexBefore returns the last index < limit where needle occurs
// fully within haystack, or -1.
func runeLastIndexBefore(haystack, needle []rune, limit int) int {
	i := len(haystack) - len(needle)
	if i >= limit {
		i = limit - 1
	}
	for ; i >= 0; i-- {
		if runesEqual(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
