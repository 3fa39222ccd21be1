package nav

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many sessions")
)

type Session struct {
	ID        string
	Nav       *Navigator
	CreatedAt time.Time
	LastSeen  time.Time
}

type MemStore struct {
	mu  sync.RWMutex
	m   map[string]*Session
	max int

	now func() time.Time
}

// NewMemStore keeps at most max sessions; max <= 0 means unbounded.
func NewMemStore(max int) *MemStore {
	return &MemStore{
		m:   make(map[string]*Session),
		max: max,
		now: time.Now,
	}
}

func (s *MemStore) Create() (Session, error) {
	now := s.now().UTC()
	sess := &Session{
		ID:        "s_" + uuid.NewString(),
		Nav:       NewNavigator(),
		CreatedAt: now,
		LastSeen:  now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.max > 0 && len(s.m) >= s.max {
		return Session{}, ErrTooManySessions
	}
	s.m[sess.ID] = sess
	return sess.snapshot(), nil
}

// Get counts as activity and refreshes LastSeen.
func (s *MemStore) Get(id string) (Session, error) {
	return s.Update(id, func(*Navigator) error { return nil })
}

// Update runs fn against the live navigator under the store lock. The
// returned snapshot reflects fn's changes even when fn fails part-way.
func (s *MemStore) Update(id string, fn func(*Navigator) error) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.m[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	sess.LastSeen = s.now().UTC()
	err := fn(sess.Nav)
	return sess.snapshot(), err
}

func (s *MemStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.m[id]
	delete(s.m, id)
	return ok
}

func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// Sweep evicts sessions idle for longer than ttl.
func (s *MemStore) Sweep(ttl time.Duration) int {
	cutoff := s.now().UTC().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.m {
		if sess.LastSeen.Before(cutoff) {
			delete(s.m, id)
			n++
		}
	}
	return n
}

func (s *Session) snapshot() Session {
	out := *s
	out.Nav = s.Nav.clone()
	return out
}
