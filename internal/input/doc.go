// Package input turns key events into abstract actions according to the
// active editing mode. It is a pure state machine: the only state it touches
// is the pending flag set for two-key Navigate sequences, and the only
// output is one Action per key event.
package input
