package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business statuses stored in the catalogue.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Business represents a local business row as stored in the catalogue.
// Optional columns are modelled as pointers so an absent value and a stored
// zero remain distinguishable.
type Business struct {
	ID            uuid.UUID `json:"id"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	Category      *string   `json:"category,omitempty"`
	Location      *string   `json:"location,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	TotalRating   *float64  `json:"total_rating,omitempty"`
	Reviews       *int      `json:"reviews,omitempty"`
	Badge         *string   `json:"badge,omitempty"`
	Verified      bool      `json:"verified"`
	ImageURL      *string   `json:"image_url,omitempty"`
	ImageAlt      *string   `json:"image_alt,omitempty"`
	Href          *string   `json:"href,omitempty"`
	ServiceScore  *float64  `json:"service_score,omitempty"`
	PriceScore    *float64  `json:"price_score,omitempty"`
	AmbienceScore *float64  `json:"ambience_score,omitempty"`
	DistanceKm    *float64  `json:"distance_km,omitempty"`
	PriceRange    *string   `json:"price_range,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Website       *string   `json:"website,omitempty"`
	Address       *string   `json:"address,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
