package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

const googleIssuer = "https://accounts.google.com"

// OIDCConfig configures an OpenID-Connect provider client.
type OIDCConfig struct {
	Name         string
	Issuer       string
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string
}

// OIDCProvider implements Provider against any OIDC-compliant issuer.
// Endpoint metadata is discovered lazily on first use and cached for the
// process lifetime; provider metadata is assumed stable within a process.
// A failed discovery is not cached, so a later login retries it.
type OIDCProvider struct {
	cfg        OIDCConfig
	httpClient *http.Client

	mu       sync.Mutex
	oauthCfg *oauth2.Config
	userinfo string
}

// NewOIDCProvider creates a provider client for the given issuer.
func NewOIDCProvider(cfg OIDCConfig) *OIDCProvider {
	if len(cfg.Scopes) == 0 {
		cfg.Scopes = []string{"openid", "email", "profile"}
	}
	return &OIDCProvider{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewGoogleProvider creates the Google provider client.
func NewGoogleProvider(clientID, clientSecret, redirectURI string) *OIDCProvider {
	return NewOIDCProvider(OIDCConfig{
		Name:         "google",
		Issuer:       googleIssuer,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURI:  redirectURI,
	})
}

// Name returns the provider identifier.
func (p *OIDCProvider) Name() string {
	return p.cfg.Name
}

// discover resolves the provider's endpoints, fetching the discovery
// document at most once per process.
func (p *OIDCProvider) discover(ctx context.Context) (*oauth2.Config, string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.oauthCfg != nil {
		return p.oauthCfg, p.userinfo, nil
	}

	doc, err := fetchMetadata(ctx, p.httpClient, p.cfg.Issuer)
	if err != nil {
		return nil, "", fmt.Errorf("discover %s: %w", p.cfg.Name, err)
	}

	p.oauthCfg = &oauth2.Config{
		ClientID:     p.cfg.ClientID,
		ClientSecret: p.cfg.ClientSecret,
		RedirectURL:  p.cfg.RedirectURI,
		Scopes:       p.cfg.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  doc.AuthorizationEndpoint,
			TokenURL: doc.TokenEndpoint,
		},
	}
	p.userinfo = doc.UserinfoEndpoint

	return p.oauthCfg, p.userinfo, nil
}

// AuthCodeURL builds the provider authorization URL carrying the state and
// the S256 challenge derived from the PKCE verifier.
func (p *OIDCProvider) AuthCodeURL(ctx context.Context, state, verifier string) (string, error) {
	cfg, _, err := p.discover(ctx)
	if err != nil {
		return "", err
	}
	return cfg.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier)), nil
}

// Exchange trades the authorization code for a token set. Single attempt.
func (p *OIDCProvider) Exchange(ctx context.Context, code, verifier string) (*oauth2.Token, error) {
	cfg, _, err := p.discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExchangeFailed, err)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	token, err := cfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExchangeFailed, err)
	}
	return token, nil
}

// FetchIdentity loads the identity claims from the userinfo endpoint.
// The email claim is a hard requirement.
func (p *OIDCProvider) FetchIdentity(ctx context.Context, token *oauth2.Token) (*UserProfile, error) {
	_, userinfo, err := p.discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentityFetchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfo, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentityFetchFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentityFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: userinfo returned status %d", ErrIdentityFetchFailed, resp.StatusCode)
	}

	var claims struct {
		Sub     string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, fmt.Errorf("%w: decode userinfo: %v", ErrIdentityFetchFailed, err)
	}

	if claims.Email == "" {
		return nil, fmt.Errorf("%w: email claim is missing", ErrIdentityFetchFailed)
	}

	return &UserProfile{
		SubjectID: claims.Sub,
		Email:     claims.Email,
		Name:      claims.Name,
		Picture:   claims.Picture,
	}, nil
}
