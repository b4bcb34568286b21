package repo

import "encoding/json"

// Session carries state that outlives a single command within one
// interactive run. It is owned by main and threaded into the command
// constructors; nothing in the dispatch path reaches for globals.
type Session struct {
	lastOutput json.RawMessage
}

func NewSession() *Session {
	return &Session{}
}

// SetOutput records the payload of a successful command. Each success
// overwrites the previous one.
func (s *Session) SetOutput(payload json.RawMessage) {
	s.lastOutput = payload
}

// Output returns the payload of the most recent successful command, or nil
// when no command has succeeded yet.
func (s *Session) Output() json.RawMessage {
	return s.lastOutput
}
