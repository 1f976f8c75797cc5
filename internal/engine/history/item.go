package history

import (
	"unicode/utf8"

	"github.com/sudokatie/hollow/internal/engine/rope"
)

// Item is a single reversible edit record. Applying an item transforms the
// rope and returns the item's inverse, so a round trip of Apply calls is
// always the identity on the document.
type Item interface {
	// Apply performs the item's transform on the rope and returns the
	// inverse item.
	Apply(r *rope.Rope) Item
}

// Insert re-inserts Text at Pos when applied. It is the record pushed for a
// deletion: applying it undoes the delete.
type Insert struct {
	Pos  rope.CharOffset
	Text string
}

// Apply inserts the text and returns the matching Delete.
func (it Insert) Apply(r *rope.Rope) Item {
	r.Insert(it.Pos, it.Text)
	return Delete{Pos: it.Pos, Text: it.Text}
}

// Delete removes len(Text) characters at Pos when applied. It is the record
// pushed for an insertion: applying it undoes the insert.
type Delete struct {
	Pos  rope.CharOffset
	Text string
}

// Apply removes the text and returns the matching Insert.
func (it Delete) Apply(r *rope.Rope) Item {
	end := it.Pos + rope.CharOffset(utf8.RuneCountInString(it.Text))
	r.Delete(it.Pos, end)
	return Insert{Pos: it.Pos, Text: it.Text}
}

// Group is an ordered list of items recorded as one logical undo unit.
// Children are stored in the order their edits originally happened.
type Group []Item

// Apply applies the children in reverse chronological order and returns a
// Group of their inverses in the order they were applied. Reapplying that
// group walks it in reverse again, which replays the original edits
// forward exactly as they first happened.
func (g Group) Apply(r *rope.Rope) Item {
	inv := make(Group, 0, len(g))
	for i := len(g) - 1; i >= 0; i-- {
		inv = append(inv, g[i].Apply(r))
	}
	return inv
}
