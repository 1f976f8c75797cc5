// Package tui is the terminal frontend. It owns the tcell screen, turns
// terminal key events into the editor's key events, and paints frames
// built from the session state. Frame construction is pure so it can be
// tested without a terminal.
package tui
