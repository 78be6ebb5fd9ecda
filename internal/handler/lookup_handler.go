package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localspot/discovery-api/internal/service"
)

// LookupHandler exposes the reference-list endpoints behind the filter UI.
type LookupHandler struct {
	service *service.LookupService
}

// NewLookupHandler creates a new handler instance.
func NewLookupHandler(service *service.LookupService) *LookupHandler {
	return &LookupHandler{service: service}
}

// Interests handles GET /interests requests. The service degrades to the
// static seed set on storage trouble, so this path always answers 200.
func (h *LookupHandler) Interests(c echo.Context) error {
	interests := h.service.ListInterests(c.Request().Context())
	return c.JSON(http.StatusOK, InterestsResponse{Interests: interests, Count: len(interests)})
}

// DealBreakers handles GET /deal-breakers requests. Storage errors map to a
// client-class status to separate bad queries from infrastructure failures.
func (h *LookupHandler) DealBreakers(c echo.Context) error {
	entries, err := h.service.ListDealBreakers(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusBadRequest, "failed to fetch deal breakers")
	}
	return c.JSON(http.StatusOK, DealBreakersResponse{DealBreakers: entries, Count: len(entries)})
}
