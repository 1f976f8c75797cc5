package search

import (
	"testing"

	"github.com/sudokatie/hollow/internal/engine/rope"
)

func TestNewEngineIsInactive(t *testing.T) {
	s := New()
	if s.IsActive() {
		t.Error("empty engine should be inactive")
	}
	if s.Query() != "" {
		t.Errorf("Query() = %q", s.Query())
	}
}

func TestSetAndClearQuery(t *testing.T) {
	s := New()
	s.SetQuery("hello")
	if !s.IsActive() || s.Query() != "hello" {
		t.Errorf("after SetQuery: active=%v query=%q", s.IsActive(), s.Query())
	}

	s.Clear()
	if s.IsActive() {
		t.Error("cleared engine should be inactive")
	}
}

func TestFindNextExact(t *testing.T) {
	s := New()
	s.SetQuery("world")

	m, ok := s.FindNext("hello world", 0)

	if !ok || m != (Match{Start: 6, End: 11}) {
		t.Errorf("got %+v, %v", m, ok)
	}
}

func TestFindNextCaseInsensitive(t *testing.T) {
	s := New()
	s.SetQuery("HELLO")

	m, ok := s.FindNext("hello world", 0)

	if !ok || m != (Match{Start: 0, End: 5}) {
		t.Errorf("got %+v, %v", m, ok)
	}
}

func TestFindNextNoMatch(t *testing.T) {
	s := New()
	s.SetQuery("xyz")

	if _, ok := s.FindNext("hello world", 0); ok {
		t.Error("expected no match")
	}
}

func TestFindNextFromOffsetThenWrap(t *testing.T) {
	s := New()
	s.SetQuery("hello")
	content := "hello world hello"

	m, ok := s.FindNext(content, 6)
	if !ok || m != (Match{Start: 12, End: 17}) {
		t.Errorf("from 6: got %+v, %v", m, ok)
	}

	m, ok = s.FindNext(content, 13)
	if !ok || m != (Match{Start: 0, End: 5}) {
		t.Errorf("from 13 should wrap: got %+v, %v", m, ok)
	}
}

func TestFindNextConvergesOnSingleMatch(t *testing.T) {
	s := New()
	s.SetQuery("needle")
	content := "hay hay needle hay hay"

	want := Match{Start: 8, End: 14}
	for from := rope.CharOffset(0); from <= rope.CharOffset(len(content)); from++ {
		m, ok := s.FindNext(content, from)
		if !ok || m != want {
			t.Fatalf("from %d: got %+v, %v, want %+v", from, m, ok, want)
		}
	}
}

func TestFindPrev(t *testing.T) {
	s := New()
	s.SetQuery("hello")

	m, ok := s.FindPrev("hello world hello", 17)

	if !ok || m != (Match{Start: 12, End: 17}) {
		t.Errorf("got %+v, %v", m, ok)
	}
}

func TestFindPrevWrap(t *testing.T) {
	s := New()
	s.SetQuery("world")

	m, ok := s.FindPrev("hello world", 0)

	if !ok || m != (Match{Start: 6, End: 11}) {
		t.Errorf("got %+v, %v", m, ok)
	}
}

func TestAllMatches(t *testing.T) {
	s := New()
	s.SetQuery("o")

	got := s.AllMatches("hello world")

	want := []Match{{Start: 4, End: 5}, {Start: 7, End: 8}}
	if len(got) != len(want) {
		t.Fatalf("got %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAllMatchesNonOverlapping(t *testing.T) {
	s := New()
	s.SetQuery("aa")

	got := s.AllMatches("aaaa")

	if len(got) != 2 || got[0] != (Match{Start: 0, End: 2}) || got[1] != (Match{Start: 2, End: 4}) {
		t.Errorf("got %+v", got)
	}
}

func TestEmptyQueryFindsNothing(t *testing.T) {
	s := New()

	if _, ok := s.FindNext("hello", 0); ok {
		t.Error("FindNext with empty query")
	}
	if _, ok := s.FindPrev("hello", 5); ok {
		t.Error("FindPrev with empty query")
	}
	if s.AllMatches("hello") != nil {
		t.Error("AllMatches with empty query")
	}
}

func TestMultibyteOffsetsAreCharBased(t *testing.T) {
	// The é before the match is one character, so the span starts at 5
	// even though it starts at byte 6.
	s := New()
	s.SetQuery("CAFÉ")

	m, ok := s.FindNext("le café café", 6)

	if !ok || m != (Match{Start: 8, End: 12}) {
		t.Errorf("got %+v, %v", m, ok)
	}
}

func TestFromOffsetPastEndClamps(t *testing.T) {
	s := New()
	s.SetQuery("hello")

	m, ok := s.FindNext("hello", 99)

	if !ok || m != (Match{Start: 0, End: 5}) {
		t.Errorf("got %+v, %v", m, ok)
	}
}
