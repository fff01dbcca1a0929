package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"dressapi/models"
)

// SessionStore holds per-session chat history in memory. Turns are
// append-only and die with the process, only ChatLog rows survive.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]models.ChatTurn
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: map[string][]models.ChatTurn{}}
}

// Start registers a new empty session and returns its id.
func (s *SessionStore) Start() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = []models.ChatTurn{}
	s.mu.Unlock()
	return id
}

// Exists reports whether the session id is known.
func (s *SessionStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[id]
	return ok
}

// Append adds one turn to the session, stamping it when unset.
func (s *SessionStore) Append(id string, turn models.ChatTurn) {
	if turn.Timestamp.IsZero() {
		turn.Timestamp = time.Now().UTC()
	}
	s.mu.Lock()
	s.sessions[id] = append(s.sessions[id], turn)
	s.mu.Unlock()
}

// History returns a copy of the session turns in append order, so callers
// can never mutate prior turns.
func (s *SessionStore) History(id string) []models.ChatTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	turns := s.sessions[id]
	history := make([]models.ChatTurn, len(turns))
	copy(history, turns)
	return history
}
