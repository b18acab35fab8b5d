package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/gamefinder/gamefinder/internal/authstate"
	"github.com/gamefinder/gamefinder/internal/domain"
	"github.com/gamefinder/gamefinder/internal/oauth"
)

// stateTTL bounds how long an initiated login may wait for its callback.
const stateTTL = 10 * time.Minute

var (
	// ErrMissingParams covers a callback without code or state.
	ErrMissingParams = fmt.Errorf("%w: missing code or state parameter", domain.ErrInvalidInput)

	// ErrLoginExpired covers a state that was never issued, has expired, or
	// was already consumed. A replayed callback fails identically to an
	// unknown one.
	ErrLoginExpired = fmt.Errorf("%w: unknown or expired login state", domain.ErrInvalidInput)
)

// UserStore defines the user data access interface consumed by AuthService.
type UserStore interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByProviderID(ctx context.Context, provider domain.AuthProvider, providerID string) (*domain.User, error)
	Upsert(ctx context.Context, user domain.User) (*domain.User, error)
}

// ProviderRegistry resolves identity providers by name.
type ProviderRegistry interface {
	Get(name string) (oauth.Provider, error)
}

// AuthService orchestrates the OAuth login flow: redirect construction,
// PKCE, the short-lived state store, the callback exchange, and session
// token issuance.
type AuthService struct {
	users     UserStore
	providers ProviderRegistry
	states    authstate.Store
	tokens    *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, providers ProviderRegistry, states authstate.Store, tokens *TokenService) *AuthService {
	return &AuthService{
		users:     users,
		providers: providers,
		states:    states,
		tokens:    tokens,
	}
}

// BeginLogin initiates a login: it generates the state token and PKCE
// verifier, stores them with a 10-minute expiry, and returns the provider
// authorization URL to redirect the user to.
func (s *AuthService) BeginLogin(ctx context.Context, providerName, redirectPath string) (string, error) {
	p, err := s.providers.Get(providerName)
	if err != nil {
		return "", err
	}

	state, err := randomToken()
	if err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	verifier := oauth2.GenerateVerifier()

	pending := authstate.PendingLogin{
		Verifier:     verifier,
		RedirectPath: sanitizeRedirect(redirectPath),
		CreatedAt:    time.Now(),
	}
	if err := s.states.Put(ctx, state, pending, stateTTL); err != nil {
		return "", fmt.Errorf("store pending login: %w", err)
	}

	return p.AuthCodeURL(ctx, state, verifier)
}

// LoginResult is the outcome of a completed login.
type LoginResult struct {
	User         *domain.User
	Token        string
	RedirectPath string
}

// CompleteLogin handles the provider callback: it consumes the pending
// state exactly once, exchanges the code using the stored verifier,
// fetches the external identity, upserts the user and issues a session
// token.
func (s *AuthService) CompleteLogin(ctx context.Context, providerName, code, state string) (*LoginResult, error) {
	if code == "" || state == "" {
		return nil, ErrMissingParams
	}

	p, err := s.providers.Get(providerName)
	if err != nil {
		return nil, err
	}

	pending, err := s.states.Take(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("consume login state: %w", err)
	}
	if pending == nil {
		return nil, ErrLoginExpired
	}

	token, err := p.Exchange(ctx, code, pending.Verifier)
	if err != nil {
		return nil, err
	}

	profile, err := p.FetchIdentity(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Upsert(ctx, domain.User{
		Provider:    domain.AuthProvider(providerName),
		ProviderID:  profile.SubjectID,
		Email:       profile.Email,
		DisplayName: profile.Name,
		PictureURL:  strPtr(profile.Picture),
	})
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	session, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:         user,
		Token:        session,
		RedirectPath: pending.RedirectPath,
	}, nil
}

// GetUser retrieves a user by internal id.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// sanitizeRedirect keeps only same-origin paths. Anything else falls back
// to the frontend root; the callback never redirects to a caller-supplied
// absolute URL.
func sanitizeRedirect(path string) string {
	if path == "" || !strings.HasPrefix(path, "/") {
		return "/"
	}
	if strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return "/"
	}
	return path
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
