// Package routetime provides intercity travel-time lookup with caching and a
// deterministic fallback estimate when the routing provider is unavailable.
package routetime

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Sentinel errors for route-time lookups.
var (
	// ErrProviderUnavailable indicates the routing provider is down or the circuit breaker is open.
	ErrProviderUnavailable = errors.New("routing provider unavailable")
	// ErrNoRouteFound indicates no drivable route exists between the given cities.
	ErrNoRouteFound = errors.New("no route found between the given cities")
	// ErrRateLimitExceeded indicates the API quota has been exceeded.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	// ErrCityNotFound indicates the provider could not resolve a city name.
	ErrCityNotFound = errors.New("city not found")
)

// Source identifies where a route-time result came from.
type Source string

const (
	// SourceService marks results obtained from the routing provider.
	SourceService Source = "service"
	// SourceEstimate marks results from the distance-tier fallback.
	SourceEstimate Source = "estimate"
)

// RouteTime is the travel time and distance for one ordered city pair.
type RouteTime struct {
	From       string
	To         string
	Hours      float64
	DistanceKm float64
	Source     Source
	FetchedAt  time.Time
}

// Provider defines the interface for route-time providers.
type Provider interface {
	// RouteTime retrieves driving time and distance between two cities.
	RouteTime(ctx context.Context, from, to string) (*RouteTime, error)
	// Name returns the provider identifier for logging and metrics.
	Name() string
}

// Error provides detailed error information from a route-time provider.
type Error struct {
	Provider string // Provider that generated the error
	Code     string // Error code from the provider
	Message  string // Human-readable error message
	Err      error  // Underlying error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsRetryable returns true if the error is transient and the request can be retried.
func (e *Error) IsRetryable() bool {
	return errors.Is(e.Err, ErrProviderUnavailable) || errors.Is(e.Err, ErrRateLimitExceeded)
}

// NormalizeCity canonicalizes a city name for cache keys and comparisons.
// Lowercases, trims, and collapses internal whitespace.
func NormalizeCity(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// SameCity reports whether two city names refer to the same place after normalization.
func SameCity(a, b string) bool {
	return NormalizeCity(a) == NormalizeCity(b)
}
