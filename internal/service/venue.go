package service

import (
	"context"

	"github.com/gamefinder/gamefinder/internal/domain"
)

// VenueStore defines the venue data access interface consumed by VenueService.
type VenueStore interface {
	FindByID(ctx context.Context, id int64) (*domain.Venue, error)
	List(ctx context.Context, cityID int64) ([]domain.Venue, error)
	Create(ctx context.Context, venue domain.Venue) (*domain.Venue, error)
}

// VenueService handles venue management.
type VenueService struct {
	venues VenueStore
}

// NewVenueService creates a new VenueService.
func NewVenueService(venues VenueStore) *VenueService {
	return &VenueService{venues: venues}
}

// CreateVenue records a venue submitted by a user.
func (s *VenueService) CreateVenue(ctx context.Context, venue domain.Venue, creatorID int64) (*domain.Venue, error) {
	venue.CreatedByUserID = &creatorID
	return s.venues.Create(ctx, venue)
}

// GetVenue retrieves a venue by id.
func (s *VenueService) GetVenue(ctx context.Context, id int64) (*domain.Venue, error) {
	return s.venues.FindByID(ctx, id)
}

// ListVenues returns venues, optionally filtered by city.
func (s *VenueService) ListVenues(ctx context.Context, cityID int64) ([]domain.Venue, error) {
	return s.venues.List(ctx, cityID)
}
