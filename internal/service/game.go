package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gamefinder/gamefinder/internal/domain"
)

// GameStore defines the game data access interface consumed by GameService.
type GameStore interface {
	FindByID(ctx context.Context, id int64) (*domain.Game, error)
	ListUpcoming(ctx context.Context) ([]domain.Game, error)
	Create(ctx context.Context, game domain.Game) (*domain.Game, error)
	AddParticipant(ctx context.Context, p domain.GameParticipant) error
	CountApprovedParticipants(ctx context.Context, gameID int64) (int, error)
	FindParticipant(ctx context.Context, gameID, userID int64) (*domain.GameParticipant, error)
}

// GameService handles game scheduling and participation.
type GameService struct {
	games GameStore
}

// NewGameService creates a new GameService.
func NewGameService(games GameStore) *GameService {
	return &GameService{games: games}
}

// CreateGame schedules a game hosted by the given user. The host holds an
// approved spot from the start.
func (s *GameService) CreateGame(ctx context.Context, game domain.Game, hostID int64) (*domain.Game, error) {
	if game.GameDatetime.Before(time.Now()) {
		return nil, fmt.Errorf("%w: game_datetime must be in the future", domain.ErrInvalidInput)
	}

	game.HostID = hostID
	game.Status = domain.GameStatusPlanned

	created, err := s.games.Create(ctx, game)
	if err != nil {
		return nil, err
	}

	err = s.games.AddParticipant(ctx, domain.GameParticipant{
		GameID: created.ID,
		UserID: hostID,
		Status: domain.ParticipantStatusApproved,
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetGame retrieves a game by id.
func (s *GameService) GetGame(ctx context.Context, id int64) (*domain.Game, error) {
	return s.games.FindByID(ctx, id)
}

// ListUpcomingGames returns public planned games that have not started.
func (s *GameService) ListUpcomingGames(ctx context.Context) ([]domain.Game, error) {
	return s.games.ListUpcoming(ctx)
}

// JoinGame files a pending join request for the user.
func (s *GameService) JoinGame(ctx context.Context, gameID, userID int64) error {
	game, err := s.games.FindByID(ctx, gameID)
	if err != nil {
		return err
	}

	if game.Status != domain.GameStatusPlanned {
		return fmt.Errorf("%w: game is not open for joining", domain.ErrConflict)
	}

	if _, err := s.games.FindParticipant(ctx, gameID, userID); err == nil {
		return fmt.Errorf("%w: join already requested", domain.ErrConflict)
	}

	if game.MaxPlayers != nil {
		count, err := s.games.CountApprovedParticipants(ctx, gameID)
		if err != nil {
			return err
		}
		if count >= *game.MaxPlayers {
			return fmt.Errorf("%w: game is full", domain.ErrConflict)
		}
	}

	return s.games.AddParticipant(ctx, domain.GameParticipant{
		GameID: gameID,
		UserID: userID,
		Status: domain.ParticipantStatusPending,
	})
}
