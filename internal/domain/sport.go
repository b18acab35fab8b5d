package domain

import "time"

// Sport represents a playable sport.
type Sport struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	IconURL   *string   `json:"icon_url,omitempty" db:"icon_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SportFormat represents a way a sport is played (e.g. 5-a-side).
type SportFormat struct {
	ID                 int64  `json:"id" db:"id"`
	SportID            int64  `json:"sport_id" db:"sport_id"`
	Name               string `json:"name" db:"name"`
	DefaultPlayerCount *int   `json:"default_player_count,omitempty" db:"default_player_count"`
}
