// Package editor implements the text editing core: a rope-backed document,
// a cursor addressed by logical line and byte column, undo/redo with
// time-windowed grouping, a single-slot line clipboard, and the full set of
// movement operations.
//
// Every operation either completes fully or is a documented no-op at a
// document boundary; none returns an error and none can leave the cursor on
// an invalid UTF-8 boundary.
package editor
