package entity

import "github.com/google/uuid"

// Interest is a browsable interest category shown during onboarding. Rows are
// keyed by a stable slug so the seed upsert stays idempotent.
type Interest struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Icon *string `json:"icon,omitempty"`
}

// DealBreaker is a reference entry users can flag against a business,
// optionally scoped to a business category.
type DealBreaker struct {
	ID       uuid.UUID `json:"id"`
	Label    string    `json:"label"`
	Icon     *string   `json:"icon,omitempty"`
	Category *string   `json:"category,omitempty"`
}
