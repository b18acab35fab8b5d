package handler

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "access_token"

// CookieConfig defines how session cookies are issued.
type CookieConfig struct {
	Domain   string
	Secure   bool
	SameSite http.SameSite
	MaxAge   time.Duration
}

func (cc CookieConfig) sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   cc.Domain,
		MaxAge:   int(cc.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cc.Secure,
		SameSite: cc.SameSite,
	}
}

func (cc CookieConfig) clearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   cc.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cc.Secure,
		SameSite: cc.SameSite,
	}
}
