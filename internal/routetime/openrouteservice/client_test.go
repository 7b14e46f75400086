package openrouteservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/roamplan/roamplan/internal/routetime"
)

// mockHTTPClient wraps the httptest server client to satisfy HTTPDoer.
type mockHTTPClient struct {
	client *http.Client
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.client.Do(req)
}

const geocodeBodyTemplate = `{"features":[{"geometry":{"coordinates":[%f,%f]}}]}`

func TestClient_RouteTime_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasPrefix(r.URL.Path, "/geocode/search"):
			if r.Method != http.MethodGet {
				t.Errorf("expected GET for geocode, got %s", r.Method)
			}
			city := r.URL.Query().Get("text")
			switch city {
			case "visakhapatnam":
				fmt.Fprintf(w, geocodeBodyTemplate, 83.2185, 17.6868)
			case "tirupati":
				fmt.Fprintf(w, geocodeBodyTemplate, 79.4192, 13.6288)
			default:
				t.Errorf("unexpected geocode query %q", city)
			}
		case r.URL.Path == "/v2/directions/driving-car":
			if r.Method != http.MethodPost {
				t.Errorf("expected POST for directions, got %s", r.Method)
			}
			if r.Header.Get("Authorization") != "mock123" {
				t.Errorf("expected Authorization header 'mock123', got '%s'", r.Header.Get("Authorization"))
			}
			fmt.Fprint(w, `{"routes":[{"summary":{"distance":786000,"duration":33840}}]}`)
		default:
			t.Errorf("unexpected request path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		APIKey:     "mock123",
		BaseURL:    server.URL,
		HTTPClient: &mockHTTPClient{client: server.Client()},
		Logger:     zerolog.Nop(),
	})

	rt, err := client.RouteTime(context.Background(), "Visakhapatnam", "Tirupati")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(rt.Hours-9.4) > 0.01 {
		t.Errorf("expected 9.4 hours, got %f", rt.Hours)
	}
	if math.Abs(rt.DistanceKm-786) > 0.01 {
		t.Errorf("expected 786 km, got %f", rt.DistanceKm)
	}
	if rt.Source != routetime.SourceService {
		t.Errorf("expected source %q, got %q", routetime.SourceService, rt.Source)
	}
}

func TestClient_RouteTime_CityNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"features":[]}`)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		APIKey:     "mock123",
		BaseURL:    server.URL,
		HTTPClient: &mockHTTPClient{client: server.Client()},
		Logger:     zerolog.Nop(),
	})

	_, err := client.RouteTime(context.Background(), "Nowheresville", "Tirupati")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var rtErr *routetime.Error
	if !errors.As(err, &rtErr) {
		t.Fatalf("expected routetime.Error, got %T", err)
	}
	if !errors.Is(rtErr.Err, routetime.ErrCityNotFound) {
		t.Errorf("expected ErrCityNotFound, got %v", rtErr.Err)
	}
}

func TestClient_RouteTime_NoRouteFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasPrefix(r.URL.Path, "/geocode/search") {
			fmt.Fprintf(w, geocodeBodyTemplate, 4.9041, 52.3676)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"code":2009,"message":"Route could not be found"}}`)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		APIKey:     "mock123",
		BaseURL:    server.URL,
		HTTPClient: &mockHTTPClient{client: server.Client()},
		Logger:     zerolog.Nop(),
	})

	_, err := client.RouteTime(context.Background(), "Amsterdam", "Reykjavik")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var rtErr *routetime.Error
	if !errors.As(err, &rtErr) {
		t.Fatalf("expected routetime.Error, got %T", err)
	}
	if !errors.Is(rtErr.Err, routetime.ErrNoRouteFound) {
		t.Errorf("expected ErrNoRouteFound, got %v", rtErr.Err)
	}
}

func TestClient_RouteTime_RateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"code":429,"message":"Quota exceeded"}}`)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		APIKey:     "mock123",
		BaseURL:    server.URL,
		HTTPClient: &mockHTTPClient{client: server.Client()},
		Logger:     zerolog.Nop(),
	})

	_, err := client.RouteTime(context.Background(), "Amsterdam", "Utrecht")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var rtErr *routetime.Error
	if !errors.As(err, &rtErr) {
		t.Fatalf("expected routetime.Error, got %T", err)
	}
	if !errors.Is(rtErr.Err, routetime.ErrRateLimitExceeded) {
		t.Errorf("expected ErrRateLimitExceeded, got %v", rtErr.Err)
	}
	if !rtErr.IsRetryable() {
		t.Error("rate limit errors should be retryable")
	}
}
