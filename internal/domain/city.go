package domain

// City represents a city players and venues belong to.
type City struct {
	ID            int64   `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	StateProvince *string `json:"state_province,omitempty" db:"state_province"`
	CountryCode   string  `json:"country_iso_code" db:"country_iso_code"`
	Latitude      float64 `json:"latitude" db:"latitude"`
	Longitude     float64 `json:"longitude" db:"longitude"`
}
