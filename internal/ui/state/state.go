package state

import (
	"tpick/internal/ui/logic"
)

// Outcome is where the session ended up
type Outcome int

const (
	OutcomeEditing Outcome = iota
	OutcomeAccepted
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "editing"
	}
}

// SearchBuffer holds the search text typed so far
type SearchBuffer struct {
	runes []rune
}

// Append adds r to the end of the search text
func (b *SearchBuffer) Append(r rune) {
	b.runes = append(b.runes, r)
}

// RemoveLast drops the last character; it reports false when the buffer was empty
func (b *SearchBuffer) RemoveLast() bool {
	if len(b.runes) == 0 {
		return false
	}
	b.runes = b.runes[:len(b.runes)-1]
	return true
}

// Len returns the number of characters in the search text
func (b *SearchBuffer) Len() int {
	return len(b.runes)
}

func (b *SearchBuffer) String() string {
	return string(b.runes)
}

// AppState contains all the session state.
// It is owned by the UI model and only mutated from its Update loop.
type AppState struct {
	// Candidate data, fixed for the session
	Candidates []string

	// Search state
	Search SearchBuffer
	Offset int // matches scrolled off the top

	// Terminal dimensions
	Width  int
	Height int

	// Last resolved frame
	Frame logic.Frame

	Outcome   Outcome
	Selection string // set when Outcome is OutcomeAccepted
}

// NewAppState creates a new session state over the given candidates
func NewAppState(candidates []string) *AppState {
	return &AppState{
		Candidates: candidates,
		Outcome:    OutcomeEditing,
	}
}

// Done reports whether the session reached a terminal state
func (s *AppState) Done() bool {
	return s.Outcome != OutcomeEditing
}

// Accept ends the session with the current selection. Without a selection
// the session is cancelled instead.
func (s *AppState) Accept() {
	selection, ok := s.Frame.Selection()
	if !ok {
		s.Cancel()
		return
	}
	s.Selection = selection
	s.Outcome = OutcomeAccepted
}

// Cancel ends the session without a selection
func (s *AppState) Cancel() {
	s.Selection = ""
	s.Outcome = OutcomeCancelled
}
