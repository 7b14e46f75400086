// Package openrouteservice provides a route-time provider backed by the
// OpenRouteService geocoding and directions APIs.
package openrouteservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/roamplan/roamplan/internal/provider/resilience"
	"github.com/roamplan/roamplan/internal/routetime"
)

const (
	// ProviderName identifies this route-time provider.
	ProviderName = "openrouteservice"

	// DefaultBaseURL is the OpenRouteService API base URL.
	DefaultBaseURL = "https://api.openrouteservice.org"

	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 10 * time.Second

	// drivingProfile is the ORS routing profile for intercity car travel.
	drivingProfile = "driving-car"
)

// HTTPDoer is an interface for executing HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the OpenRouteService client.
type ClientConfig struct {
	// APIKey is the ORS API key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to ORS API).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient HTTPDoer

	// Timeout is the request timeout (optional, defaults to 10s).
	Timeout time.Duration

	// Registry is the provider registry for health tracking (optional).
	Registry *resilience.Registry

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client resolves city-pair driving times via ORS: each city name is
// geocoded, then a directions request yields duration and distance.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPDoer
	logger     zerolog.Logger
}

// NewClient creates a new OpenRouteService client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		clientCfg := resilience.DefaultClientConfig(ProviderName)
		clientCfg.Timeout = timeout
		if cfg.Registry != nil {
			clientCfg.Registry = cfg.Registry
		}
		httpClient = resilience.NewClient(clientCfg)
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// RouteTime retrieves driving time and distance between two cities.
func (c *Client) RouteTime(ctx context.Context, from, to string) (*routetime.RouteTime, error) {
	origin, err := c.geocode(ctx, from)
	if err != nil {
		return nil, err
	}
	dest, err := c.geocode(ctx, to)
	if err != nil {
		return nil, err
	}

	seconds, meters, err := c.directions(ctx, origin, dest)
	if err != nil {
		return nil, err
	}

	result := &routetime.RouteTime{
		From:       from,
		To:         to,
		Hours:      seconds / 3600,
		DistanceKm: meters / 1000,
		Source:     routetime.SourceService,
		FetchedAt:  time.Now(),
	}

	c.logger.Debug().
		Str("from", from).
		Str("to", to).
		Float64("hours", result.Hours).
		Float64("distance_km", result.DistanceKm).
		Msg("received route time from ORS")

	return result, nil
}

// geocode resolves a city name to a coordinate via /geocode/search.
func (c *Client) geocode(ctx context.Context, city string) (lonLat [2]float64, err error) {
	endpoint := fmt.Sprintf("%s/geocode/search?%s", c.baseURL, url.Values{
		"api_key": []string{c.apiKey},
		"text":    []string{routetime.NormalizeCity(city)},
		"size":    []string{"1"},
	}.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return lonLat, fmt.Errorf("creating geocode request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json, application/geo+json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return lonLat, &routetime.Error{
			Provider: ProviderName,
			Code:     "REQUEST_FAILED",
			Message:  "failed to reach geocoding endpoint",
			Err:      routetime.ErrProviderUnavailable,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return lonLat, fmt.Errorf("reading geocode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return lonLat, c.handleErrorResponse(resp.StatusCode, body)
	}

	var geo geocodeResponse
	if err := json.Unmarshal(body, &geo); err != nil {
		return lonLat, fmt.Errorf("decoding geocode response: %w", err)
	}

	if len(geo.Features) == 0 || len(geo.Features[0].Geometry.Coordinates) < 2 {
		return lonLat, &routetime.Error{
			Provider: ProviderName,
			Code:     "CITY_NOT_FOUND",
			Message:  fmt.Sprintf("could not geocode %q", city),
			Err:      routetime.ErrCityNotFound,
		}
	}

	coords := geo.Features[0].Geometry.Coordinates
	return [2]float64{coords[0], coords[1]}, nil
}

// directions fetches driving duration (seconds) and distance (meters)
// between two lon/lat points via /v2/directions/driving-car.
func (c *Client) directions(ctx context.Context, origin, dest [2]float64) (seconds, meters float64, err error) {
	orsReq := orsRequest{
		// ORS uses [lon, lat] order (GeoJSON)
		Coordinates: [][]float64{
			{origin[0], origin[1]},
			{dest[0], dest[1]},
		},
		Units: "m",
	}

	body, err := json.Marshal(orsReq)
	if err != nil {
		return 0, 0, fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s", c.baseURL, drivingProfile)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, 0, fmt.Errorf("creating directions request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", c.apiKey)
	httpReq.Header.Set("Accept", "application/json, application/geo+json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, 0, &routetime.Error{
			Provider: ProviderName,
			Code:     "REQUEST_FAILED",
			Message:  "failed to reach routing provider",
			Err:      routetime.ErrProviderUnavailable,
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, 0, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return 0, 0, c.handleErrorResponse(resp.StatusCode, respBody)
	}

	var orsResp orsResponse
	if err := json.Unmarshal(respBody, &orsResp); err != nil {
		return 0, 0, fmt.Errorf("decoding response: %w", err)
	}

	if len(orsResp.Routes) == 0 {
		return 0, 0, &routetime.Error{
			Provider: ProviderName,
			Code:     "NO_ROUTE",
			Message:  "no route found between the given points",
			Err:      routetime.ErrNoRouteFound,
		}
	}

	summary := orsResp.Routes[0].Summary
	return summary.Duration, summary.Distance, nil
}

// handleErrorResponse maps ORS error responses to domain errors.
func (c *Client) handleErrorResponse(statusCode int, body []byte) error {
	var orsErr orsErrorResponse
	if err := json.Unmarshal(body, &orsErr); err != nil {
		// Fall back to generic error if we can't parse
		return &routetime.Error{
			Provider: ProviderName,
			Code:     fmt.Sprintf("HTTP_%d", statusCode),
			Message:  fmt.Sprintf("routing provider returned status %d", statusCode),
			Err:      routetime.ErrProviderUnavailable,
		}
	}

	switch statusCode {
	case http.StatusTooManyRequests:
		return &routetime.Error{
			Provider: ProviderName,
			Code:     "RATE_LIMIT",
			Message:  "API rate limit exceeded, please try again later",
			Err:      routetime.ErrRateLimitExceeded,
		}
	case http.StatusForbidden:
		return &routetime.Error{
			Provider: ProviderName,
			Code:     "FORBIDDEN",
			Message:  "API access denied - check API key configuration",
			Err:      routetime.ErrProviderUnavailable,
		}
	case http.StatusNotFound:
		return &routetime.Error{
			Provider: ProviderName,
			Code:     "NO_ROUTE",
			Message:  "no route found between the given points",
			Err:      routetime.ErrNoRouteFound,
		}
	case http.StatusBadRequest:
		// ORS code 2010 means a routable point could not be found.
		if orsErr.Error.Code == orsErrorCodePointNotFound {
			return &routetime.Error{
				Provider: ProviderName,
				Code:     "NO_ROUTE",
				Message:  orsErr.Error.Message,
				Err:      routetime.ErrNoRouteFound,
			}
		}
		return &routetime.Error{
			Provider: ProviderName,
			Code:     "BAD_REQUEST",
			Message:  orsErr.Error.Message,
			Err:      routetime.ErrCityNotFound,
		}
	default:
		if statusCode >= 500 {
			return &routetime.Error{
				Provider: ProviderName,
				Code:     fmt.Sprintf("SERVER_%d", statusCode),
				Message:  "routing provider is temporarily unavailable",
				Err:      routetime.ErrProviderUnavailable,
			}
		}
		return &routetime.Error{
			Provider: ProviderName,
			Code:     fmt.Sprintf("HTTP_%d", statusCode),
			Message:  orsErr.Error.Message,
			Err:      routetime.ErrProviderUnavailable,
		}
	}
}
