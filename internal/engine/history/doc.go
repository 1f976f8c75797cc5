// Package history implements the editor's undo and redo stacks.
//
// Each stack entry holds an Item: the transform that, when applied to the
// rope, reverses an edit. Applying an item yields its own inverse, which is
// what lands on the opposite stack, so undo and redo are symmetric by
// construction. Consecutive edits within the grouping window merge into a
// single Group entry that undoes as one unit.
package history
