package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localspot/discovery-api/internal/dto"
	"github.com/localspot/discovery-api/internal/entity"
)

// ErrorResponse is the shared error payload: every failure surfaces as a JSON
// body with a single error string and an HTTP status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BusinessListResponse wraps the collection listing.
type BusinessListResponse struct {
	Businesses []dto.BusinessView `json:"businesses"`
	Count      int                `json:"count"`
}

// BusinessResponse wraps a single business detail view.
type BusinessResponse struct {
	Data dto.BusinessDetailView `json:"data"`
}

// InterestsResponse wraps the interests reference list.
type InterestsResponse struct {
	Interests []entity.Interest `json:"interests"`
	Count     int               `json:"count"`
}

// DealBreakersResponse wraps the deal-breakers reference list.
type DealBreakersResponse struct {
	DealBreakers []entity.DealBreaker `json:"dealBreakers"`
	Count        int                  `json:"count"`
}

// Error sends an error response using the shared payload format.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, ErrorResponse{Error: message})
}
