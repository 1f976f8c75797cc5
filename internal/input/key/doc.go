// Package key defines terminal key events independent of any terminal
// backend. The dispatcher consumes these events; the tui layer translates
// backend events into them.
package key
