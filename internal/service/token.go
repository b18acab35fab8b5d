package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gamefinder/gamefinder/internal/domain"
)

// TokenService issues and verifies signed session tokens. It is stateless:
// a token is immutable once issued and verified read-only.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret string, lifetime time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), lifetime: lifetime}
}

// Lifetime returns the configured token validity window.
func (s *TokenService) Lifetime() time.Duration {
	return s.lifetime
}

// TokenClaims is the verified payload of a session token.
type TokenClaims struct {
	UserID    int64
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Issue signs a token bound to the user's internal id.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.lifetime).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks the token signature and expiry and returns its payload.
// Every failure mode returns domain.ErrInvalidToken; callers must not
// distinguish between them.
func (s *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok || int64(sub) == 0 {
		return nil, domain.ErrInvalidToken
	}

	out := &TokenClaims{UserID: int64(sub)}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if iat, ok := claims["iat"].(float64); ok {
		out.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return out, nil
}
