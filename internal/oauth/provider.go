package oauth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
)

var (
	// ErrExchangeFailed signals a failed authorization-code exchange with the
	// provider's token endpoint. Exchanges are single-attempt, never retried.
	ErrExchangeFailed = errors.New("token exchange failed")

	// ErrIdentityFetchFailed signals a failed or unusable identity lookup.
	// An identity without an email claim is unusable for this system.
	ErrIdentityFetchFailed = errors.New("identity fetch failed")
)

// UserProfile holds the identity claims this system requires from a provider.
type UserProfile struct {
	SubjectID string
	Email     string
	Name      string
	Picture   string
}

// Provider defines the capability calls against an external identity
// provider: authorization-URL construction, code exchange and identity
// fetch. Implementations resolve their endpoints lazily and cache them.
type Provider interface {
	Name() string
	AuthCodeURL(ctx context.Context, state, verifier string) (string, error)
	Exchange(ctx context.Context, code, verifier string) (*oauth2.Token, error)
	FetchIdentity(ctx context.Context, token *oauth2.Token) (*UserProfile, error)
}

// Registry holds the configured identity providers by name.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a provider to the registry.
func (r *Registry) Register(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.Name()] = p
}

// Get retrieves a provider by name.
func (r *Registry) Get(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown oauth provider: %s", name)
	}
	return p, nil
}
