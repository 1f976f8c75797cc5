package input

// Mode is the editing mode. Exactly one is active at a time.
type Mode int

const (
	// ModeWrite accepts text input directly.
	ModeWrite Mode = iota

	// ModeNavigate accepts single-key vim-style commands.
	ModeNavigate

	// ModeSearch collects a query string.
	ModeSearch
)

// String returns the mode name as shown in the status line.
func (m Mode) String() string {
	switch m {
	case ModeWrite:
		return "WRITE"
	case ModeNavigate:
		return "NAVIGATE"
	case ModeSearch:
		return "SEARCH"
	default:
		return "UNKNOWN"
	}
}

// State holds the pending flags for two-key Navigate sequences. A pending
// flag is set by the first key of gg, dd, or yy and cleared by the next key
// regardless of whether it completes the sequence.
type State struct {
	PendingG bool
	PendingD bool
	PendingY bool
}

// Clear resets all pending flags.
func (s *State) Clear() {
	s.PendingG = false
	s.PendingD = false
	s.PendingY = false
}

// HasPending reports whether any two-key sequence is in flight.
func (s *State) HasPending() bool {
	return s.PendingG || s.PendingD || s.PendingY
}
