package domain

import "time"

// GameStatus represents the lifecycle state of a game.
type GameStatus string

const (
	GameStatusPlanned   GameStatus = "PLANNED"
	GameStatusCompleted GameStatus = "COMPLETED"
	GameStatusCancelled GameStatus = "CANCELLED"
)

// ParticipantStatus represents a player's standing in a game.
type ParticipantStatus string

const (
	ParticipantStatusPending  ParticipantStatus = "PENDING"
	ParticipantStatusApproved ParticipantStatus = "APPROVED"
	ParticipantStatusRejected ParticipantStatus = "REJECTED"
	ParticipantStatusAttended ParticipantStatus = "ATTENDED"
)

// Game represents a scheduled pickup game at a venue.
type Game struct {
	ID            int64      `json:"id" db:"id"`
	HostID        int64      `json:"host_id" db:"host_id"`
	SportID       int64      `json:"sport_id" db:"sport_id"`
	SportFormatID int64      `json:"sport_format_id" db:"sport_format_id"`
	VenueID       int64      `json:"venue_id" db:"venue_id"`
	GameDatetime  time.Time  `json:"game_datetime" db:"game_datetime"`
	Title         *string    `json:"title,omitempty" db:"title"`
	Details       *string    `json:"details,omitempty" db:"details"`
	Status        GameStatus `json:"status" db:"status"`
	MaxPlayers    *int       `json:"max_players,omitempty" db:"max_players"`
	IsPublic      bool       `json:"is_public" db:"is_public"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// GameParticipant links a user to a game they asked to join.
type GameParticipant struct {
	GameID      int64             `json:"game_id" db:"game_id"`
	UserID      int64             `json:"user_id" db:"user_id"`
	Status      ParticipantStatus `json:"status" db:"status"`
	RequestedAt time.Time         `json:"requested_at" db:"requested_at"`
}
