// Package api provides the HTTP API for RoamPlan.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/roamplan/roamplan/internal/api/handler"
	"github.com/roamplan/roamplan/internal/api/middleware"
	"github.com/roamplan/roamplan/internal/auth"
	"github.com/roamplan/roamplan/internal/guard"
	"github.com/roamplan/roamplan/internal/planner"
	"github.com/roamplan/roamplan/internal/provider/resilience"
	"github.com/roamplan/roamplan/internal/routetime"
	"github.com/roamplan/roamplan/internal/trip"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version        string
	BuildTime      string
	Logger         zerolog.Logger
	ServiceName    string
	Metrics        *middleware.Metrics
	AuthService    *auth.Service
	TripService    *trip.Service
	PlannerService *planner.Service
	Guard          *guard.Guard
	RouteService   *routetime.Service
	Providers      *resilience.Registry
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "roamplan-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.Providers, cfg.RouteService)
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	planHandler := handler.NewPlanHandler(cfg.PlannerService)
	budgetHandler := handler.NewBudgetHandler()
	itineraryHandler := handler.NewItineraryHandler(cfg.Guard, cfg.PlannerService)
	tripHandler := handler.NewTripHandler(cfg.TripService)
	adminHandler := handler.NewAdminHandler(cfg.RouteService)

	// Create auth middleware
	authMiddleware := middleware.Auth(cfg.AuthService)

	// Create rate limit middleware for different endpoint categories
	authRateLimit := middleware.RateLimitByIP(middleware.AuthRateLimit)           // 10 req/min
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Auth endpoints (public) - strict rate limiting
		r.Route("/auth", func(r chi.Router) {
			r.Use(authRateLimit) // 10 requests per minute per IP
			r.Post("/token", authHandler.Token)
		})

		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			// Status endpoint requires authentication
			r.With(authMiddleware).Get("/status", opsHandler.SystemStatus)
		})

		// Planning endpoints - expensive compute, strict rate limiting
		r.Route("/plan", func(r chi.Router) {
			r.Use(expensiveRateLimit)
			r.Post("/duration", planHandler.PlanDuration)
		})

		// Budget endpoints - pure computation, standard rate limiting
		r.Route("/budget", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Post("/allocation", budgetHandler.Allocation)
			r.Post("/reconciliation", budgetHandler.Reconciliation)
		})

		// Itinerary endpoints - may trigger route lookups, strict rate limiting
		r.Route("/itinerary", func(r chi.Router) {
			r.Use(expensiveRateLimit)
			r.Post("/sanitize", itineraryHandler.Sanitize)
		})

		// Trip endpoints (authenticated) - client-based rate limiting
		r.Route("/trips", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(middleware.RateLimitByUser(middleware.StandardRateLimit)) // 100 req/min per client
			r.Get("/", tripHandler.ListTrips)
			r.Post("/", tripHandler.CreateTrip)
			r.Route("/{tripId}", func(r chi.Router) {
				r.Get("/", tripHandler.GetTrip)
				r.Patch("/", tripHandler.UpdateTrip)
				r.Delete("/", tripHandler.DeleteTrip)
			})
		})

		// Admin endpoints (authenticated) - for internal operations
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(standardRateLimit)

			// Route-time cache management
			r.Route("/route-cache", func(r chi.Router) {
				r.Get("/", adminHandler.CacheStats)
				r.Post("/invalidate", adminHandler.InvalidateCache)
			})
		})
	})

	return r
}
