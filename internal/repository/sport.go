package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gamefinder/gamefinder/internal/domain"
)

// SportRepository handles sport data access operations.
type SportRepository struct {
	db *sqlx.DB
}

// NewSportRepository creates a new SportRepository.
func NewSportRepository(db *sqlx.DB) *SportRepository {
	return &SportRepository{db: db}
}

// List returns all sports ordered by name.
func (r *SportRepository) List(ctx context.Context) ([]domain.Sport, error) {
	sports := []domain.Sport{}
	err := r.db.SelectContext(ctx, &sports,
		`SELECT id, name, icon_url, created_at, updated_at FROM sports ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}
	return sports, nil
}

// ListFormats returns the formats defined for a sport.
func (r *SportRepository) ListFormats(ctx context.Context, sportID int64) ([]domain.SportFormat, error) {
	formats := []domain.SportFormat{}
	err := r.db.SelectContext(ctx, &formats,
		`SELECT id, sport_id, name, default_player_count
		 FROM sport_formats WHERE sport_id = $1 ORDER BY name`, sportID)
	if err != nil {
		return nil, fmt.Errorf("list formats for sport %d: %w", sportID, err)
	}
	return formats, nil
}
