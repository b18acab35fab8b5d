package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gamefinder/gamefinder/internal/domain"
)

// GameRepository handles game and participant data access operations.
type GameRepository struct {
	db *sqlx.DB
}

// NewGameRepository creates a new GameRepository.
func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

// FindByID retrieves a game by id.
func (r *GameRepository) FindByID(ctx context.Context, id int64) (*domain.Game, error) {
	var game domain.Game
	err := r.db.GetContext(ctx, &game,
		`SELECT id, host_id, sport_id, sport_format_id, venue_id, game_datetime, title, details,
		        status, max_players, is_public, created_at, updated_at
		 FROM games WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find game by id %d: %w", id, err)
	}
	return &game, nil
}

// ListUpcoming returns public planned games ordered by start time.
func (r *GameRepository) ListUpcoming(ctx context.Context) ([]domain.Game, error) {
	games := []domain.Game{}
	err := r.db.SelectContext(ctx, &games,
		`SELECT id, host_id, sport_id, sport_format_id, venue_id, game_datetime, title, details,
		        status, max_players, is_public, created_at, updated_at
		 FROM games
		 WHERE is_public AND status = $1 AND game_datetime > NOW()
		 ORDER BY game_datetime`, domain.GameStatusPlanned)
	if err != nil {
		return nil, fmt.Errorf("list upcoming games: %w", err)
	}
	return games, nil
}

// Create inserts a game and returns it with its generated id.
func (r *GameRepository) Create(ctx context.Context, game domain.Game) (*domain.Game, error) {
	var result domain.Game
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO games (host_id, sport_id, sport_format_id, venue_id, game_datetime, title, details, status, max_players, is_public)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, host_id, sport_id, sport_format_id, venue_id, game_datetime, title, details,
		           status, max_players, is_public, created_at, updated_at`,
		game.HostID, game.SportID, game.SportFormatID, game.VenueID, game.GameDatetime,
		game.Title, game.Details, game.Status, game.MaxPlayers, game.IsPublic,
	).StructScan(&result)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	return &result, nil
}

// AddParticipant records a join request. The composite primary key makes a
// duplicate request a conflict.
func (r *GameRepository) AddParticipant(ctx context.Context, p domain.GameParticipant) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO game_participants (game_id, user_id, status)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (game_id, user_id) DO NOTHING`,
		p.GameID, p.UserID, p.Status)
	if err != nil {
		return fmt.Errorf("add participant: %w", err)
	}
	return nil
}

// CountApprovedParticipants counts players holding a spot in the game.
func (r *GameRepository) CountApprovedParticipants(ctx context.Context, gameID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM game_participants
		 WHERE game_id = $1 AND status IN ($2, $3)`,
		gameID, domain.ParticipantStatusApproved, domain.ParticipantStatusPending)
	if err != nil {
		return 0, fmt.Errorf("count participants for game %d: %w", gameID, err)
	}
	return count, nil
}

// FindParticipant retrieves a user's participation record for a game.
func (r *GameRepository) FindParticipant(ctx context.Context, gameID, userID int64) (*domain.GameParticipant, error) {
	var p domain.GameParticipant
	err := r.db.GetContext(ctx, &p,
		`SELECT game_id, user_id, status, requested_at
		 FROM game_participants WHERE game_id = $1 AND user_id = $2`, gameID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find participant %d/%d: %w", gameID, userID, err)
	}
	return &p, nil
}
