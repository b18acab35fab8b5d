package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gamefinder/gamefinder/internal/domain"
	"github.com/gamefinder/gamefinder/internal/service"
)

// VenueHandler handles venue endpoints.
type VenueHandler struct {
	venues *service.VenueService
}

// NewVenueHandler creates a new VenueHandler.
func NewVenueHandler(venues *service.VenueService) *VenueHandler {
	return &VenueHandler{venues: venues}
}

// CreateVenueRequest is the payload for creating a venue.
type CreateVenueRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Address   *string `json:"address,omitempty"`
	CityID    int64   `json:"city_id" validate:"required,gt=0"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// Create records a venue submitted by the authenticated user.
func (h *VenueHandler) Create(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return domain.ErrUnauthorized
	}

	var req CreateVenueRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidInput
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	venue, err := h.venues.CreateVenue(c.Request().Context(), domain.Venue{
		Name:      req.Name,
		Address:   req.Address,
		CityID:    req.CityID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}, user.ID)
	if err != nil {
		return err
	}

	return JSON(c, http.StatusCreated, venue)
}

// Get returns a venue by id.
func (h *VenueHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return domain.ErrInvalidInput
	}

	venue, err := h.venues.GetVenue(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return JSON(c, http.StatusOK, venue)
}

// List returns venues, optionally filtered by ?city_id=.
func (h *VenueHandler) List(c echo.Context) error {
	var cityID int64
	if raw := c.QueryParam("city_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.ErrInvalidInput
		}
		cityID = parsed
	}

	venues, err := h.venues.ListVenues(c.Request().Context(), cityID)
	if err != nil {
		return err
	}
	return JSON(c, http.StatusOK, venues)
}
