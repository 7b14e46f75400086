// Package main provides the entrypoint for the RoamPlan API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/roamplan/roamplan/internal/api"
	"github.com/roamplan/roamplan/internal/api/middleware"
	"github.com/roamplan/roamplan/internal/auth"
	"github.com/roamplan/roamplan/internal/budget"
	"github.com/roamplan/roamplan/internal/database"
	"github.com/roamplan/roamplan/internal/guard"
	"github.com/roamplan/roamplan/internal/planner"
	"github.com/roamplan/roamplan/internal/provider/resilience"
	"github.com/roamplan/roamplan/internal/routetime"
	"github.com/roamplan/roamplan/internal/routetime/openrouteservice"
	"github.com/roamplan/roamplan/internal/telemetry"
	"github.com/roamplan/roamplan/internal/trip"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "roamplan-api"

	// Load .env for local development; absence is not an error
	_ = godotenv.Load()

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting RoamPlan API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Initialize trip storage. Without DB_HOST trips live in memory,
	// which is good enough for local development.
	var tripRepo trip.Repository
	if os.Getenv("DB_HOST") != "" {
		dbConfig := database.ConfigFromEnv()
		pool, err := database.Connect(ctx, dbConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		log.Info().
			Str("host", dbConfig.Host).
			Int("port", dbConfig.Port).
			Str("database", dbConfig.Database).
			Msg("database connected")
		tripRepo = trip.NewPostgresRepository(pool)
	} else {
		log.Warn().Msg("DB_HOST not set - trips are stored in memory")
		tripRepo = trip.NewInMemoryRepository()
	}
	tripService := trip.NewService(tripRepo)
	log.Info().Msg("trip service initialized")

	// Initialize JWT service (get signing key from environment)
	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		jwtSigningKey = "local-dev-signing-key-change-in-production"
		log.Warn().Msg("using default JWT signing key - not secure for production")
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SigningKey: jwtSigningKey,
		Issuer:     os.Getenv("JWT_ISSUER"),
		Audience:   os.Getenv("JWT_AUDIENCE"),
	})

	authService := auth.NewService(auth.ServiceConfig{
		JWTService: jwtService,
		Clients:    clientsFromEnv(log),
	})
	log.Info().Msg("auth service initialized")

	// Initialize the route-time service. Without an ORS API key every
	// lookup falls through to the distance-tier estimator.
	registry := resilience.NewRegistry()
	var provider routetime.Provider
	if orsKey := os.Getenv("ORS_API_KEY"); orsKey != "" {
		provider = openrouteservice.NewClient(openrouteservice.ClientConfig{
			APIKey:   orsKey,
			Registry: registry,
			Logger:   log,
		})
		log.Info().Msg("openrouteservice provider initialized")
	} else {
		log.Warn().Msg("ORS_API_KEY not set - route times come from estimates only")
	}

	routeService := routetime.NewService(routetime.ServiceConfig{
		Provider: provider,
		Logger:   log,
	})

	plannerService := planner.NewService(planner.ServiceConfig{
		Routes: routeService,
		Logger: log,
	})
	log.Info().Msg("planner service initialized")

	itineraryGuard := guard.New(guard.DefaultConfig(), budget.NewCostBook(), log)
	log.Info().Msg("feasibility guard initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:        Version,
		BuildTime:      BuildTime,
		Logger:         log,
		ServiceName:    serviceName,
		Metrics:        metrics,
		AuthService:    authService,
		TripService:    tripService,
		PlannerService: plannerService,
		Guard:          itineraryGuard,
		RouteService:   routeService,
		Providers:      registry,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}

// clientsFromEnv parses API_CLIENTS, a comma-separated list of id:secret
// pairs.
func clientsFromEnv(log zerolog.Logger) map[string]string {
	clients := make(map[string]string)
	raw := os.Getenv("API_CLIENTS")
	if raw == "" {
		log.Warn().Msg("API_CLIENTS not set - auth endpoints will reject everything")
		return clients
	}
	for _, entry := range strings.Split(raw, ",") {
		id, secret, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok || id == "" || secret == "" {
			log.Warn().Str("entry", entry).Msg("skipping malformed API_CLIENTS entry")
			continue
		}
		clients[id] = secret
	}
	log.Info().Int("clients", len(clients)).Msg("api clients loaded")
	return clients
}
