// Package authstate stores the ephemeral per-login state created when an
// OAuth flow is initiated and consumed exactly once by its callback.
package authstate

import (
	"context"
	"time"
)

// PendingLogin is the data held between the redirect to the provider and
// the callback: the PKCE verifier and the post-login redirect path.
type PendingLogin struct {
	Verifier     string    `json:"verifier"`
	RedirectPath string    `json:"redirect_path"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store is a keyed store with expiring entries and consume-once reads.
//
// Take must be atomic per key: of two concurrent Takes for the same state
// token, at most one may observe the entry. Entries must not be returned
// after their TTL even if never probed.
type Store interface {
	Put(ctx context.Context, state string, login PendingLogin, ttl time.Duration) error

	// Take removes and returns the entry, or (nil, nil) when the state is
	// unknown, expired, or already consumed.
	Take(ctx context.Context, state string) (*PendingLogin, error)
}
