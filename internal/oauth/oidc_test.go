package oauth

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"golang.org/x/oauth2"
)

// fakeIssuer is an in-process OIDC provider covering discovery, token
// exchange and userinfo.
type fakeIssuer struct {
	server *httptest.Server

	discoveryHits atomic.Int32
	failDiscovery atomic.Bool
	failExchange  atomic.Bool

	userinfoClaims map[string]string
	lastVerifier   string
	lastAuthHeader string
}

func newFakeIssuer(t *testing.T) *fakeIssuer {
	t.Helper()

	f := &fakeIssuer{
		userinfoClaims: map[string]string{
			"sub":     "sub-42",
			"email":   "player@example.com",
			"name":    "Player One",
			"picture": "https://example.com/p.png",
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		f.discoveryHits.Add(1)
		if f.failDiscovery.Load() {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"issuer":                 f.server.URL,
			"authorization_endpoint": f.server.URL + "/authorize",
			"token_endpoint":         f.server.URL + "/token",
			"userinfo_endpoint":      f.server.URL + "/userinfo",
		})
	})
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		f.lastVerifier = r.PostFormValue("code_verifier")
		if f.failExchange.Load() || r.PostFormValue("code") != "VALIDCODE" {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"upstream-access","token_type":"Bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		f.lastAuthHeader = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(f.userinfoClaims)
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeIssuer) provider() *OIDCProvider {
	return NewOIDCProvider(OIDCConfig{
		Name:         "google",
		Issuer:       f.server.URL,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "http://localhost:8080/auth/google/callback",
	})
}

func TestAuthCodeURLCarriesPKCEChallenge(t *testing.T) {
	issuer := newFakeIssuer(t)
	p := issuer.provider()

	verifier := oauth2.GenerateVerifier()
	authURL, err := p.AuthCodeURL(context.Background(), "state-1", verifier)
	if err != nil {
		t.Fatalf("auth code url: %v", err)
	}

	parsed, err := url.Parse(authURL)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	q := parsed.Query()

	if q.Get("client_id") != "client-id" {
		t.Errorf("unexpected client_id %q", q.Get("client_id"))
	}
	if q.Get("state") != "state-1" {
		t.Errorf("unexpected state %q", q.Get("state"))
	}
	if q.Get("code_challenge_method") != "S256" {
		t.Errorf("unexpected challenge method %q", q.Get("code_challenge_method"))
	}

	sum := sha256.Sum256([]byte(verifier))
	want := base64.RawURLEncoding.EncodeToString(sum[:])
	if q.Get("code_challenge") != want {
		t.Errorf("challenge %q does not match verifier", q.Get("code_challenge"))
	}
}

func TestDiscoveryFetchedOnce(t *testing.T) {
	issuer := newFakeIssuer(t)
	p := issuer.provider()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := p.AuthCodeURL(ctx, "s", "verifier-material-long-enough-for-pkce"); err != nil {
			t.Fatalf("auth code url: %v", err)
		}
	}

	if hits := issuer.discoveryHits.Load(); hits != 1 {
		t.Errorf("expected one discovery fetch, got %d", hits)
	}
}

func TestDiscoveryFailureRetriedLater(t *testing.T) {
	issuer := newFakeIssuer(t)
	issuer.failDiscovery.Store(true)
	p := issuer.provider()
	ctx := context.Background()

	if _, err := p.AuthCodeURL(ctx, "s", "v"); err == nil {
		t.Fatal("expected error while discovery is down")
	}

	issuer.failDiscovery.Store(false)
	if _, err := p.AuthCodeURL(ctx, "s", "v"); err != nil {
		t.Fatalf("expected discovery retry to succeed, got %v", err)
	}
}

func TestExchangeSendsVerifier(t *testing.T) {
	issuer := newFakeIssuer(t)
	p := issuer.provider()

	verifier := oauth2.GenerateVerifier()
	token, err := p.Exchange(context.Background(), "VALIDCODE", verifier)
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	if token.AccessToken != "upstream-access" {
		t.Errorf("unexpected access token %q", token.AccessToken)
	}
	if issuer.lastVerifier != verifier {
		t.Errorf("token request carried verifier %q, want %q", issuer.lastVerifier, verifier)
	}
}

func TestExchangeRejectedCode(t *testing.T) {
	issuer := newFakeIssuer(t)
	p := issuer.provider()

	_, err := p.Exchange(context.Background(), "BADCODE", oauth2.GenerateVerifier())
	if !errors.Is(err, ErrExchangeFailed) {
		t.Errorf("expected ErrExchangeFailed, got %v", err)
	}
}

func TestFetchIdentity(t *testing.T) {
	issuer := newFakeIssuer(t)
	p := issuer.provider()

	profile, err := p.FetchIdentity(context.Background(), &oauth2.Token{AccessToken: "upstream-access"})
	if err != nil {
		t.Fatalf("fetch identity: %v", err)
	}

	if profile.SubjectID != "sub-42" {
		t.Errorf("unexpected subject %q", profile.SubjectID)
	}
	if profile.Email != "player@example.com" {
		t.Errorf("unexpected email %q", profile.Email)
	}
	if issuer.lastAuthHeader != "Bearer upstream-access" {
		t.Errorf("unexpected authorization header %q", issuer.lastAuthHeader)
	}
}

func TestFetchIdentityMissingEmail(t *testing.T) {
	issuer := newFakeIssuer(t)
	delete(issuer.userinfoClaims, "email")
	p := issuer.provider()

	_, err := p.FetchIdentity(context.Background(), &oauth2.Token{AccessToken: "upstream-access"})
	if !errors.Is(err, ErrIdentityFetchFailed) {
		t.Errorf("expected ErrIdentityFetchFailed, got %v", err)
	}
}

func TestRegistryLookup(t *testing.T) {
	issuer := newFakeIssuer(t)
	registry := NewRegistry()
	registry.Register(issuer.provider())

	if _, err := registry.Get("google"); err != nil {
		t.Errorf("expected registered provider, got %v", err)
	}
	if _, err := registry.Get("github"); err == nil {
		t.Error("expected error for unregistered provider")
	}
}
