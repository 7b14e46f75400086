// Package handler provides HTTP handlers for the RoamPlan API.
package handler

import (
	"net/http"
	"time"

	"github.com/roamplan/roamplan/internal/api/models"
	"github.com/roamplan/roamplan/internal/api/response"
	"github.com/roamplan/roamplan/internal/provider/resilience"
	"github.com/roamplan/roamplan/internal/routetime"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	registry  *resilience.Registry
	routes    *routetime.Service
}

// NewOpsHandler creates a new OpsHandler. The registry and route
// service are optional; absent ones simply drop out of the status
// report.
func NewOpsHandler(version, buildTime string, registry *resilience.Registry, routes *routetime.Service) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		registry:  registry,
		routes:    routes,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check.
// The service stays ready even with every provider circuit open: route
// lookups degrade to the distance-tier estimator instead of failing.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	}
	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /v1/ops/status - provider and subsystem status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	now := models.Timestamp(time.Now())
	status := models.SystemStatus{
		Status:     models.HealthStatusOK,
		Time:       now,
		Subsystems: []models.SubsystemStatus{},
		Providers:  []models.ProviderStatus{},
	}

	if h.registry != nil {
		for _, health := range h.registry.GetAllHealth() {
			status.Providers = append(status.Providers, providerStatus(health))
		}
		for _, p := range status.Providers {
			if p.Status != models.HealthStatusOK {
				status.Status = models.HealthStatusDegraded
				break
			}
		}
	}

	if h.routes != nil {
		stats := h.routes.CacheStats()
		status.RouteCache = &models.RouteCacheStats{
			TotalEntries:    stats.TotalEntries,
			ServiceEntries:  stats.ServiceEntries,
			EstimateEntries: stats.EstimateEntries,
			Provider:        stats.Provider,
		}
		status.Subsystems = append(status.Subsystems, models.SubsystemStatus{
			Name:   "route-cache",
			Status: models.HealthStatusOK,
		})
	}

	response.JSON(w, r, http.StatusOK, status)
}

// providerStatus maps registry health onto the API model.
func providerStatus(health *resilience.ProviderHealth) models.ProviderStatus {
	p := models.ProviderStatus{
		Provider: health.Name,
		Status:   models.HealthStatusOK,
	}
	switch {
	case health.IsUnhealthy():
		p.Status = models.HealthStatusFail
	case health.IsDegraded():
		p.Status = models.HealthStatusDegraded
	}
	if health.LastSuccessAt != nil {
		ts := models.Timestamp(*health.LastSuccessAt)
		p.LastSuccessAt = &ts
	}
	if health.LastFailureAt != nil {
		ts := models.Timestamp(*health.LastFailureAt)
		p.LastFailureAt = &ts
	}
	if health.LastError != "" {
		msg := health.LastError
		p.Message = &msg
	}
	return p
}
