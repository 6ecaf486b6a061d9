package domain

// Mode is the overlay interaction mode.
type Mode string

// Available modes.
const (
	// ModeSearch shows the query input and the result list.
	ModeSearch Mode = "search"

	// ModeAskAI shows the external assistant panel.
	ModeAskAI Mode = "ask-ai"
)

// IsValid returns true if the mode is recognised.
func (m Mode) IsValid() bool {
	return m == ModeSearch || m == ModeAskAI
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeAskAI {
		return ModeSearch
	}
	return ModeAskAI
}

// Label returns the toggle label for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeSearch:
		return "Search"
	case ModeAskAI:
		return "Ask AI"
	default:
		return "Unknown"
	}
}

// String returns the string representation.
func (m Mode) String() string {
	return string(m)
}

// SearchSession is the overlay state for one open lifetime.
// Nothing in it survives a close.
type SearchSession struct {
	IsOpen bool
	Mode   Mode
	Query  string
}

// NewSearchSession returns a closed session in search mode.
func NewSearchSession() SearchSession {
	return SearchSession{Mode: ModeSearch}
}
