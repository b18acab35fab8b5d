package handler

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gamefinder/gamefinder/internal/domain"
	"github.com/gamefinder/gamefinder/internal/service"
)

const contextKeyUser = "auth_user"

// RequestLogger logs each HTTP request with structured fields.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			slog.Info("http request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)

			return err
		}
	}
}

// Session resolves the caller's identity from the session cookie. It never
// blocks a request: an absent cookie leaves the request unauthenticated, a
// bad or expired token clears the cookie and leaves it unauthenticated, a
// token whose user no longer exists is ignored. Authorization decisions
// belong to RequireAuth on protected routes.
func Session(auth *service.AuthService, tokens *service.TokenService, cookies CookieConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				c.SetCookie(cookies.clearSessionCookie())
				return next(c)
			}

			user, err := auth.GetUser(c.Request().Context(), claims.UserID)
			if err != nil {
				return next(c)
			}

			c.Set(contextKeyUser, user)
			return next(c)
		}
	}
}

// RequireAuth rejects unauthenticated requests before the route handler runs.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := CurrentUser(c); !ok {
			return domain.ErrUnauthorized
		}
		return next(c)
	}
}

// CurrentUser extracts the authenticated user from echo context.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(contextKeyUser).(*domain.User)
	return user, ok
}
