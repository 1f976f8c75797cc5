package history

import (
	"time"

	"github.com/sudokatie/hollow/internal/engine/cursor"
	"github.com/sudokatie/hollow/internal/engine/rope"
)

// DefaultGroupWindow is the interval within which consecutive edits merge
// into one undo unit.
const DefaultGroupWindow = 2 * time.Second

// entry wraps an item with the cursor positions around the original edit.
// Undo restores before; redo restores after.
type entry struct {
	item   Item
	before cursor.Position
	after  cursor.Position
}

// History manages the undo and redo stacks for one document.
type History struct {
	undoStack []*entry
	redoStack []*entry

	window   time.Duration
	lastEdit time.Time // zero means the next edit starts a new group
}

// New creates a history with the given grouping window. A window of 0 or
// less disables grouping entirely.
func New(window time.Duration) *History {
	return &History{window: window}
}

// Record pushes the undo item for an edit that was just applied, together
// with the cursor position before and after the edit. If the previous edit
// happened within the grouping window, the item merges into the entry on top
// of the undo stack instead of starting a new one. Any recorded edit clears
// the redo stack.
func (h *History) Record(it Item, before, after cursor.Position) {
	now := time.Now()
	grouped := h.window > 0 && !h.lastEdit.IsZero() &&
		now.Sub(h.lastEdit) < h.window && len(h.undoStack) > 0

	if grouped {
		top := h.undoStack[len(h.undoStack)-1]
		if g, ok := top.item.(Group); ok {
			top.item = append(g, it)
		} else {
			top.item = Group{top.item, it}
		}
		top.after = after
	} else {
		h.undoStack = append(h.undoStack, &entry{item: it, before: before, after: after})
	}

	h.lastEdit = now
	h.redoStack = nil
}

// Undo pops one entry, applies its transform to the rope, and moves the
// inverse to the redo stack. It returns the cursor position to restore and
// false if there was nothing to undo.
func (h *History) Undo(r *rope.Rope) (cursor.Position, bool) {
	if len(h.undoStack) == 0 {
		return cursor.Position{}, false
	}
	e := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	inv := e.item.Apply(r)
	h.redoStack = append(h.redoStack, &entry{item: inv, before: e.after, after: e.before})
	return e.before, true
}

// Redo mirrors Undo in the other direction.
func (h *History) Redo(r *rope.Rope) (cursor.Position, bool) {
	if len(h.redoStack) == 0 {
		return cursor.Position{}, false
	}
	e := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	inv := e.item.Apply(r)
	h.undoStack = append(h.undoStack, &entry{item: inv, before: e.after, after: e.before})
	return e.before, true
}

// MarkBoundary forces the next recorded edit to start a new undo group.
// Called on save and on wholesale content replacement.
func (h *History) MarkBoundary() {
	h.lastEdit = time.Time{}
}

// Clear drops all undo and redo state.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.lastEdit = time.Time{}
}

// CanUndo returns true if an undo entry is available.
func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

// CanRedo returns true if a redo entry is available.
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// UndoCount returns the number of undo entries.
func (h *History) UndoCount() int { return len(h.undoStack) }

// RedoCount returns the number of redo entries.
func (h *History) RedoCount() int { return len(h.redoStack) }
