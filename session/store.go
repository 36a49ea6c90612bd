package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"meow-notes/models"
)

// Store keeps sessions in memory. Sessions expire after ttl without use.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*models.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a session for username, stored lower-cased.
func (s *Store) Create(username string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	session := &models.Session{
		ID:         uuid.New().String(),
		Username:   strings.ToLower(username),
		ExpiresAt:  now.Add(s.ttl),
		CreatedAt:  now,
		LastUsedAt: now,
	}

	s.sessions[session.ID] = session
	copied := *session
	return &copied, nil
}

// Get returns a copy of the session, or nil when it is missing or expired.
func (s *Store) Get(sessionID string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[sessionID]
	if !exists {
		return nil, nil
	}

	if s.now().After(session.ExpiresAt) {
		return nil, nil
	}

	copied := *session
	return &copied, nil
}

// Update stores session and pushes its expiry out by another ttl. A session
// that was deleted in the meantime stays deleted.
func (s *Store) Update(session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID]; !exists {
		return nil
	}

	now := s.now()
	session.LastUsedAt = now
	session.ExpiresAt = now.Add(s.ttl)
	copied := *session
	s.sessions[session.ID] = &copied
	return nil
}

func (s *Store) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

func (s *Store) CleanupExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
}

// StartCleanupRoutine drops expired sessions every interval until ctx is done.
func (s *Store) StartCleanupRoutine(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.CleanupExpired()
			}
		}
	}()
}

// Len reports how many sessions are held, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
