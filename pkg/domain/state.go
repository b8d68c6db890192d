package domain

import "slices"

// State represents the current snapshot of a browsing session.
type State struct {
	// SessionID correlates log lines and hook events of one run.
	SessionID string

	// Level is the screen the user is currently on.
	Level Level

	// Status indicates if the engine waits for a menu answer, a comment, or is done.
	Status ExecutionStatus

	// Session holds the selections and fetched data.
	Session *Session

	// History tracks the levels visited, oldest first.
	History []Level
}

// NewState creates a clean state positioned at the given level.
func NewState(sessionID string, level Level) *State {
	return &State{
		SessionID: sessionID,
		Level:     level,
		Status:    StatusActive,
		Session:   &Session{},
		History:   []Level{level},
	}
}

// Snapshot returns a deep copy of the state that can be safely mutated.
func (s *State) Snapshot() *State {
	if s == nil {
		return nil
	}
	next := *s
	next.Session = s.Session.Clone()
	next.History = slices.Clone(s.History)
	return &next
}

// Terminated reports whether the user asked to exit.
func (s *State) Terminated() bool {
	return s != nil && s.Status == StatusTerminated
}
