package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gamefinder/gamefinder/internal/domain"
)

// VenueRepository handles venue data access operations.
type VenueRepository struct {
	db *sqlx.DB
}

// NewVenueRepository creates a new VenueRepository.
func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// FindByID retrieves a venue by id.
func (r *VenueRepository) FindByID(ctx context.Context, id int64) (*domain.Venue, error) {
	var venue domain.Venue
	err := r.db.GetContext(ctx, &venue,
		`SELECT id, name, address, city_id, latitude, longitude, created_by_user_id, created_at, updated_at
		 FROM venues WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find venue by id %d: %w", id, err)
	}
	return &venue, nil
}

// List returns venues, optionally filtered by city.
func (r *VenueRepository) List(ctx context.Context, cityID int64) ([]domain.Venue, error) {
	venues := []domain.Venue{}

	query := `SELECT id, name, address, city_id, latitude, longitude, created_by_user_id, created_at, updated_at
	          FROM venues`
	var err error
	if cityID > 0 {
		err = r.db.SelectContext(ctx, &venues, query+` WHERE city_id = $1 ORDER BY name`, cityID)
	} else {
		err = r.db.SelectContext(ctx, &venues, query+` ORDER BY name`)
	}
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return venues, nil
}

// Create inserts a venue and returns it with its generated id.
func (r *VenueRepository) Create(ctx context.Context, venue domain.Venue) (*domain.Venue, error) {
	var result domain.Venue
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO venues (name, address, city_id, latitude, longitude, created_by_user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, name, address, city_id, latitude, longitude, created_by_user_id, created_at, updated_at`,
		venue.Name, venue.Address, venue.CityID, venue.Latitude, venue.Longitude, venue.CreatedByUserID,
	).StructScan(&result)
	if err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}
	return &result, nil
}
