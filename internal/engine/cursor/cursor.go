// Package cursor defines the cursor position types shared by the editor and
// its undo history.
package cursor

import "fmt"

// ByteColumn is a byte offset within a single logical line. It is distinct
// from rope.CharOffset: columns index bytes in one line, char offsets index
// characters across the whole document. The two must never be mixed without
// an explicit conversion through the rope.
type ByteColumn int

// Position is a cursor location: a zero-based logical line and a byte column
// within that line. The column always lies on a UTF-8 boundary.
type Position struct {
	Line   int
	Column ByteColumn
}

// String returns a human-readable representation, mainly for tests and logs.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Line, p.Column)
}
