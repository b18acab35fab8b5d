package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamefinder/gamefinder/internal/domain"
)

// SportStore defines the sport lookups the handler needs.
type SportStore interface {
	List(ctx context.Context) ([]domain.Sport, error)
	ListFormats(ctx context.Context, sportID int64) ([]domain.SportFormat, error)
}

// SportHandler handles sport catalogue endpoints.
type SportHandler struct {
	sports SportStore
}

// NewSportHandler creates a new SportHandler.
func NewSportHandler(sports SportStore) *SportHandler {
	return &SportHandler{sports: sports}
}

type sportWithFormats struct {
	domain.Sport
	Formats []domain.SportFormat `json:"formats"`
}

// List returns all sports with their formats.
func (h *SportHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	sports, err := h.sports.List(ctx)
	if err != nil {
		return err
	}

	out := make([]sportWithFormats, 0, len(sports))
	for _, s := range sports {
		formats, err := h.sports.ListFormats(ctx, s.ID)
		if err != nil {
			return err
		}
		out = append(out, sportWithFormats{Sport: s, Formats: formats})
	}

	return JSON(c, http.StatusOK, out)
}
