package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/localspot/discovery-api/internal/dto"
	"github.com/localspot/discovery-api/internal/service"
)

// BusinessesHandler exposes the business discovery endpoints.
type BusinessesHandler struct {
	service *service.BusinessesService
}

// NewBusinessesHandler creates a new handler instance.
func NewBusinessesHandler(service *service.BusinessesService) *BusinessesHandler {
	return &BusinessesHandler{service: service}
}

// List handles GET /businesses requests.
func (h *BusinessesHandler) List(c echo.Context) error {
	filter := dto.BusinessFilter{
		Category: strings.TrimSpace(c.QueryParam("category")),
		Badge:    strings.TrimSpace(c.QueryParam("badge")),
		// only the literal "true" narrows to verified rows; "false" and
		// everything else leave the listing unfiltered
		VerifiedOnly: c.QueryParam("verified") == "true",
		Limit:        parseIntDefault(c.QueryParam("limit"), 0),
	}

	businesses, err := h.service.ListBusinesses(c.Request().Context(), filter)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to fetch businesses")
	}

	return c.JSON(http.StatusOK, BusinessListResponse{Businesses: businesses, Count: len(businesses)})
}

// Get handles GET /businesses/:id requests, where :id may be a primary key or
// a slug.
func (h *BusinessesHandler) Get(c echo.Context) error {
	key := strings.TrimSpace(c.Param("id"))
	if key == "" {
		return Error(c, http.StatusBadRequest, "business id is required")
	}

	business, err := h.service.GetBusiness(c.Request().Context(), key)
	if err != nil {
		// zero rows and a failed lookup are indistinguishable to the caller
		return Error(c, http.StatusNotFound, "business not found")
	}

	return c.JSON(http.StatusOK, BusinessResponse{Data: *business})
}

func parseIntDefault(input string, fallback int) int {
	if input == "" {
		return fallback
	}
	if value, err := strconv.Atoi(input); err == nil {
		return value
	}
	return fallback
}
