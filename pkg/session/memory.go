package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// memoryStore keeps sessions in a process-local map. Used when Redis is not
// configured; state does not survive a restart.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	flashes  map[string]Flash
}

func NewMemoryStore() Store {
	return &memoryStore{
		sessions: make(map[string]*Session),
		flashes:  make(map[string]Flash),
	}
}

func (s *memoryStore) Create(_ context.Context, adminID int64, adminUsername string) (*Session, error) {
	sess := &Session{
		ID:            uuid.New().String(),
		AdminID:       adminID,
		AdminUsername: adminUsername,
		LoggedIn:      true,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess, nil
}

func (s *memoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNoSession
	}

	copied := *sess
	return &copied, nil
}

func (s *memoryStore) Destroy(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	delete(s.flashes, id)
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) SetFlash(_ context.Context, id, kind, text string) error {
	s.mu.Lock()
	s.flashes[id] = Flash{Kind: kind, Text: text}
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) TakeFlash(_ context.Context, id string) (*Flash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flash, ok := s.flashes[id]
	if !ok {
		return nil, nil
	}
	delete(s.flashes, id)
	return &flash, nil
}
