package handler

import (
	"net/http"

	"github.com/roamplan/roamplan/internal/api/models"
	"github.com/roamplan/roamplan/internal/api/response"
	"github.com/roamplan/roamplan/internal/routetime"
)

// AdminHandler handles route-cache administration endpoints.
type AdminHandler struct {
	routes *routetime.Service
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(routes *routetime.Service) *AdminHandler {
	return &AdminHandler{routes: routes}
}

// CacheStats handles GET /v1/admin/route-cache - report cache contents.
func (h *AdminHandler) CacheStats(w http.ResponseWriter, r *http.Request) {
	stats := h.routes.CacheStats()
	response.JSON(w, r, http.StatusOK, models.RouteCacheStats{
		TotalEntries:    stats.TotalEntries,
		ServiceEntries:  stats.ServiceEntries,
		EstimateEntries: stats.EstimateEntries,
		Provider:        stats.Provider,
	})
}

// InvalidateCache handles POST /v1/admin/route-cache/invalidate - drop
// every cached route time.
func (h *AdminHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	h.routes.InvalidateCache()
	response.NoContent(w, r)
}
