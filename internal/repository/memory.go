package repository

import (
	"context"
	"sync"
	"time"

	"github.com/gamefinder/gamefinder/internal/domain"
)

// MemoryUserRepository is an in-process user directory. One mutex covers
// the check-then-write in Upsert, so concurrent logins by the same
// external account cannot create duplicate users.
type MemoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*domain.User
	byExt  map[string]int64
}

// NewMemoryUserRepository creates an empty in-memory user directory.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		nextID: 1,
		byID:   make(map[int64]*domain.User),
		byExt:  make(map[string]int64),
	}
}

func extKey(provider domain.AuthProvider, providerID string) string {
	return string(provider) + "\x00" + providerID
}

// FindByID retrieves a user by their internal id.
func (r *MemoryUserRepository) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// FindByProviderID retrieves a user by their OAuth provider and subject id.
func (r *MemoryUserRepository) FindByProviderID(_ context.Context, provider domain.AuthProvider, providerID string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byExt[extKey(provider, providerID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *r.byID[id]
	return &copied, nil
}

// Upsert creates a new user or overwrites the mutable fields of an
// existing one. The internal id never changes across upserts.
func (r *MemoryUserRepository) Upsert(_ context.Context, user domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	key := extKey(user.Provider, user.ProviderID)

	if id, ok := r.byExt[key]; ok {
		existing := r.byID[id]
		existing.Email = user.Email
		existing.DisplayName = user.DisplayName
		existing.PictureURL = user.PictureURL
		existing.UpdatedAt = now
		copied := *existing
		return &copied, nil
	}

	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := user
	r.byID[stored.ID] = &stored
	r.byExt[key] = stored.ID

	copied := stored
	return &copied, nil
}
