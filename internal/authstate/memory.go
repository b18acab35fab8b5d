package authstate

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	login    PendingLogin
	deadline time.Time
	timer    *time.Timer
}

// MemoryStore is a mutex-guarded in-process store. Each entry schedules
// its own removal timer; Take additionally checks the deadline so an
// entry is never served past its TTL even before the timer fires.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*memoryEntry)}
}

// Put stores the pending login under the state token with the given TTL.
func (s *MemoryStore) Put(_ context.Context, state string, login PendingLogin, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.entries[state]; ok {
		old.timer.Stop()
	}

	s.entries[state] = &memoryEntry{
		login:    login,
		deadline: time.Now().Add(ttl),
		timer: time.AfterFunc(ttl, func() {
			s.expire(state)
		}),
	}
	return nil
}

// Take removes and returns the entry under one lock section, so a
// duplicated callback for the same state cannot consume it twice.
func (s *MemoryStore) Take(_ context.Context, state string) (*PendingLogin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[state]
	if !ok {
		return nil, nil
	}

	entry.timer.Stop()
	delete(s.entries, state)

	if time.Now().After(entry.deadline) {
		return nil, nil
	}

	login := entry.login
	return &login, nil
}

func (s *MemoryStore) expire(state string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, state)
}
