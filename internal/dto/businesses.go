package dto

import "github.com/google/uuid"

// BusinessFilter contains query parameters for the business listing endpoint.
type BusinessFilter struct {
	Category        string
	Badge           string
	VerifiedOnly    bool
	Limit           int
	IncludeInactive bool
}

// PercentileGroup bundles the three percentile scores shown together on a
// business card. The group is only emitted when all three are stored.
type PercentileGroup struct {
	Service  float64 `json:"service"`
	Price    float64 `json:"price"`
	Ambience float64 `json:"ambience"`
}

// BusinessView is the frontend-facing shape of a business record.
type BusinessView struct {
	ID          uuid.UUID        `json:"id"`
	Slug        string           `json:"slug"`
	Name        string           `json:"name"`
	Category    *string          `json:"category,omitempty"`
	Location    *string          `json:"location,omitempty"`
	Rating      *float64         `json:"rating,omitempty"`
	TotalRating *float64         `json:"totalRating,omitempty"`
	Reviews     *int             `json:"reviews,omitempty"`
	Badge       *string          `json:"badge,omitempty"`
	Verified    bool             `json:"verified"`
	Image       *string          `json:"image,omitempty"`
	ImageAlt    *string          `json:"imageAlt,omitempty"`
	Href        string           `json:"href"`
	Percentiles *PercentileGroup `json:"percentiles,omitempty"`
	Distance    *string          `json:"distance,omitempty"`
	PriceRange  *string          `json:"priceRange,omitempty"`
	Description *string          `json:"description,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	Website     *string          `json:"website,omitempty"`
	Address     *string          `json:"address,omitempty"`
}

// TrustScores carries the placeholder trust metrics on the detail view. The
// backing schema columns do not exist yet, so the values are fixed stand-ins.
type TrustScores struct {
	Trust        int `json:"trust"`
	Punctuality  int `json:"punctuality"`
	Friendliness int `json:"friendliness"`
}

// Special is a promotional entry on the business detail page.
type Special struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BusinessDetailView extends BusinessView with detail-page extras.
type BusinessDetailView struct {
	BusinessView
	Scores   TrustScores `json:"scores"`
	Specials []Special   `json:"specials"`
}
