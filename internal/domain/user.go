package domain

import "time"

// AuthProvider represents an OAuth identity provider.
type AuthProvider string

const (
	AuthProviderGoogle AuthProvider = "google"
)

// User represents a registered player.
type User struct {
	ID          int64        `json:"id" db:"id"`
	Provider    AuthProvider `json:"provider" db:"provider"`
	ProviderID  string       `json:"provider_id" db:"provider_id"`
	Email       string       `json:"email" db:"email"`
	DisplayName string       `json:"display_name" db:"display_name"`
	PictureURL  *string      `json:"picture_url,omitempty" db:"picture_url"`
	Bio         *string      `json:"bio,omitempty" db:"bio"`
	CityID      *int64       `json:"city_id,omitempty" db:"city_id"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// PublicProfile is the projection of a user exposed over the API.
type PublicProfile struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
}

// Public returns the API projection of the user.
func (u *User) Public() PublicProfile {
	p := PublicProfile{
		ID:    u.ID,
		Name:  u.DisplayName,
		Email: u.Email,
	}
	if u.PictureURL != nil {
		p.Picture = *u.PictureURL
	}
	return p
}
