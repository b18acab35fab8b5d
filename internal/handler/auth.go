package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamefinder/gamefinder/internal/domain"
	"github.com/gamefinder/gamefinder/internal/service"
)

// AuthHandler handles the login flow endpoints.
type AuthHandler struct {
	auth        *service.AuthService
	cookies     CookieConfig
	frontendURL string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, cookies CookieConfig, frontendURL string) *AuthHandler {
	return &AuthHandler{
		auth:        auth,
		cookies:     cookies,
		frontendURL: frontendURL,
	}
}

// Login starts the OAuth flow and redirects the user to the provider.
// The optional ?redirect= path is captured now and honored after the
// callback; the callback request itself never chooses the destination.
func (h *AuthHandler) Login(c echo.Context) error {
	authURL, err := h.auth.BeginLogin(
		c.Request().Context(),
		c.Param("provider"),
		c.QueryParam("redirect"),
	)
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, authURL)
}

// Callback completes the OAuth flow, sets the session cookie and
// redirects to the path stored when the login was initiated.
func (h *AuthHandler) Callback(c echo.Context) error {
	result, err := h.auth.CompleteLogin(
		c.Request().Context(),
		c.Param("provider"),
		c.QueryParam("code"),
		c.QueryParam("state"),
	)
	if err != nil {
		return err
	}

	c.SetCookie(h.cookies.sessionCookie(result.Token))
	return c.Redirect(http.StatusFound, h.frontendURL+result.RedirectPath)
}

// Logout clears the session cookie and redirects to the frontend. There
// is no server-side token invalidation.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.cookies.clearSessionCookie())
	return c.Redirect(http.StatusFound, h.frontendURL)
}

// Me returns the public projection of the authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return domain.ErrUnauthorized
	}
	return JSON(c, http.StatusOK, user.Public())
}
