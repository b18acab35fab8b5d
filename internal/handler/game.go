package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gamefinder/gamefinder/internal/domain"
	"github.com/gamefinder/gamefinder/internal/service"
)

// GameHandler handles game endpoints.
type GameHandler struct {
	games *service.GameService
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(games *service.GameService) *GameHandler {
	return &GameHandler{games: games}
}

// CreateGameRequest is the payload for scheduling a game.
type CreateGameRequest struct {
	SportID       int64     `json:"sport_id" validate:"required,gt=0"`
	SportFormatID int64     `json:"sport_format_id" validate:"required,gt=0"`
	VenueID       int64     `json:"venue_id" validate:"required,gt=0"`
	GameDatetime  time.Time `json:"game_datetime" validate:"required"`
	Title         *string   `json:"title,omitempty" validate:"omitempty,max=255"`
	Details       *string   `json:"details,omitempty"`
	MaxPlayers    *int      `json:"max_players,omitempty" validate:"omitempty,gt=1"`
	IsPublic      *bool     `json:"is_public,omitempty"`
}

// Create schedules a game hosted by the authenticated user.
func (h *GameHandler) Create(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return domain.ErrUnauthorized
	}

	var req CreateGameRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidInput
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	game, err := h.games.CreateGame(c.Request().Context(), domain.Game{
		SportID:       req.SportID,
		SportFormatID: req.SportFormatID,
		VenueID:       req.VenueID,
		GameDatetime:  req.GameDatetime,
		Title:         req.Title,
		Details:       req.Details,
		MaxPlayers:    req.MaxPlayers,
		IsPublic:      isPublic,
	}, user.ID)
	if err != nil {
		return err
	}

	return JSON(c, http.StatusCreated, game)
}

// Get returns a game by id.
func (h *GameHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return domain.ErrInvalidInput
	}

	game, err := h.games.GetGame(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return JSON(c, http.StatusOK, game)
}

// List returns upcoming public games.
func (h *GameHandler) List(c echo.Context) error {
	games, err := h.games.ListUpcomingGames(c.Request().Context())
	if err != nil {
		return err
	}
	return JSON(c, http.StatusOK, games)
}

// Join files a join request for the authenticated user.
func (h *GameHandler) Join(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return domain.ErrUnauthorized
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return domain.ErrInvalidInput
	}

	if err := h.games.JoinGame(c.Request().Context(), id, user.ID); err != nil {
		return err
	}
	return JSON(c, http.StatusAccepted, map[string]string{"status": "requested"})
}
