package routetime

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ServiceConfig holds configuration for the route-time service.
type ServiceConfig struct {
	// Provider is the routing data provider. Optional: when nil, every
	// lookup resolves via the fallback estimator.
	Provider Provider

	// Estimator is the fallback estimator. Defaults to NewEstimator().
	Estimator *Estimator

	// Logger for service operations.
	Logger zerolog.Logger

	// LookupTimeout bounds each provider call (default: 10 seconds).
	// The estimator takes over when the provider exceeds it.
	LookupTimeout time.Duration
}

// Service resolves intercity route times with memoization.
//
// Identical (from, to) pairs, case/whitespace-normalized, are answered from
// the cache without re-querying. Entries never expire: routes between two
// cities are geographically static. Lookup never fails; provider errors
// degrade to the distance-tier estimate with Source recording the fallback.
type Service struct {
	provider      Provider
	estimator     *Estimator
	logger        zerolog.Logger
	lookupTimeout time.Duration

	mu    sync.RWMutex
	cache map[string]*RouteTime
}

// NewService creates a new route-time service.
func NewService(cfg ServiceConfig) *Service {
	estimator := cfg.Estimator
	if estimator == nil {
		estimator = NewEstimator()
	}

	lookupTimeout := cfg.LookupTimeout
	if lookupTimeout == 0 {
		lookupTimeout = 10 * time.Second
	}

	return &Service{
		provider:      cfg.Provider,
		estimator:     estimator,
		logger:        cfg.Logger,
		lookupTimeout: lookupTimeout,
		cache:         make(map[string]*RouteTime),
	}
}

// Lookup returns the route time for an ordered city pair.
// It consults the cache first, then the provider, then the estimator.
func (s *Service) Lookup(ctx context.Context, from, to string) *RouteTime {
	key := cacheKey(from, to)

	s.mu.RLock()
	if cached, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return cached
	}
	s.mu.RUnlock()

	rt := s.resolve(ctx, from, to)

	// Last-writer-wins on concurrent population: results for the same key
	// are stable, so a collision is harmless.
	s.mu.Lock()
	s.cache[key] = rt
	s.mu.Unlock()

	return rt
}

// resolve fetches from the provider, falling back to the estimator.
func (s *Service) resolve(ctx context.Context, from, to string) *RouteTime {
	if s.provider == nil {
		return s.estimator.Estimate(from, to)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	rt, err := s.provider.RouteTime(lookupCtx, from, to)
	if err != nil || rt == nil || rt.Hours < 0 {
		tier := s.estimator.Classify(from, to)
		s.logger.Warn().Err(err).
			Str("from", from).
			Str("to", to).
			Str("provider", s.provider.Name()).
			Str("fallback_tier", string(tier)).
			Msg("route lookup failed, using distance-tier estimate")
		return s.estimator.Estimate(from, to)
	}

	rt.Source = SourceService
	s.logger.Debug().
		Str("from", from).
		Str("to", to).
		Float64("hours", rt.Hours).
		Float64("distance_km", rt.DistanceKm).
		Msg("route time fetched from provider")

	return rt
}

// Warm populates the cache for a city pair without exposing the result.
// Used by the pre-warm worker so interactive planning hits the cache.
func (s *Service) Warm(ctx context.Context, from, to string) {
	_ = s.Lookup(ctx, from, to)
}

// Prime inserts a route time directly into the cache.
// Intended for tests and for seeding from persisted lookups.
func (s *Service) Prime(rt *RouteTime) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[cacheKey(rt.From, rt.To)] = rt
}

// InvalidateCache clears all cached route times.
func (s *Service) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*RouteTime)
}

// CacheStats returns cache statistics.
func (s *Service) CacheStats() CacheStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fromService := 0
	for _, rt := range s.cache {
		if rt.Source == SourceService {
			fromService++
		}
	}

	stats := CacheStats{
		TotalEntries:    len(s.cache),
		ServiceEntries:  fromService,
		EstimateEntries: len(s.cache) - fromService,
	}
	if s.provider != nil {
		stats.Provider = s.provider.Name()
	}
	return stats
}

// CacheStats contains route-time cache statistics.
type CacheStats struct {
	TotalEntries    int
	ServiceEntries  int
	EstimateEntries int
	Provider        string
}

// cacheKey builds the normalized cache key for an ordered city pair.
func cacheKey(from, to string) string {
	return NormalizeCity(from) + "|" + NormalizeCity(to)
}
