// Package net is the concrete websocket edge of the server: session
// lifecycle, the HTTP surface (/ws, /health, POST /matches), and the
// quick-match intake that stands in for an external matchmaker.
package net

import (
	"sync"

	"riftlane/server/internal/telemetry"
)

// SessionTable maps bound player ids to their live sessions. It is the
// room.Sink implementation: rooms address players, the table finds the
// connection. Constructed before the room manager to break the
// construction cycle between gateway and manager.
type SessionTable struct {
	metrics telemetry.Metrics

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionTable builds an empty table.
func NewSessionTable(metrics telemetry.Metrics) *SessionTable {
	if metrics == nil {
		metrics = telemetry.Nop()
	}
	return &SessionTable{
		metrics:  metrics,
		sessions: make(map[string]*Session),
	}
}

// Send queues a frame on the player's session, dropping it when the
// player has no live connection. Never blocks.
func (t *SessionTable) Send(playerID string, frame []byte) bool {
	t.mu.Lock()
	s := t.sessions[playerID]
	t.mu.Unlock()
	if s == nil {
		return false
	}
	return s.Send(frame)
}

// bind registers the session for the player, displacing any previous
// session (last connection wins on a duplicate login).
func (t *SessionTable) bind(playerID string, s *Session) *Session {
	t.mu.Lock()
	prev := t.sessions[playerID]
	t.sessions[playerID] = s
	t.mu.Unlock()
	if prev == s {
		return nil
	}
	return prev
}

// unbind removes the session if it is still the player's current one.
func (t *SessionTable) unbind(playerID string, s *Session) {
	t.mu.Lock()
	if t.sessions[playerID] == s {
		delete(t.sessions, playerID)
	}
	t.mu.Unlock()
}

// Count returns the number of bound sessions.
func (t *SessionTable) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}
