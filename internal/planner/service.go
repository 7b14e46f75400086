package planner

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/roamplan/roamplan/internal/routetime"
	"github.com/roamplan/roamplan/internal/trip"
)

// RouteTimes is the lookup surface the planner needs from the route
// time service. Lookup never fails; degraded results carry
// Source == SourceEstimate.
type RouteTimes interface {
	Lookup(ctx context.Context, from, to string) *routetime.RouteTime
}

// ServiceConfig configures the planner service.
type ServiceConfig struct {
	Routes RouteTimes
	Logger zerolog.Logger
}

// Service plans trip durations.
type Service struct {
	routes RouteTimes
	logger zerolog.Logger
}

// NewService creates a planner service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		routes: cfg.Routes,
		logger: cfg.Logger.With().Str("component", "planner").Logger(),
	}
}

// PlanTripDuration computes whether the requested day count covers the
// exploration days plus the travel days the route demands. Route-time
// failures never surface here; the route service degrades to estimates
// internally. The only errors returned are input contract violations.
func (s *Service) PlanTripDuration(ctx context.Context, req trip.TripRequest) (*FeasibilityResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	explorationDays := req.ExplorationDays()

	// Degenerate and staycation cases return before any route lookup.
	if len(req.Destinations) == 0 {
		return feasibleResult(req, explorationDaysOrRequested(explorationDays, req.RequestedTotalDays), nil), nil
	}
	if len(req.Destinations) == 1 && routetime.SameCity(req.StartLocation, req.Destinations[0].Location) {
		return feasibleResult(req, explorationDays, nil), nil
	}

	route := buildRoute(req)
	segments := s.lookupSegments(ctx, route, req.BudgetTier)

	travelDays := 0
	allOvernight := len(segments) > 0
	for _, seg := range segments {
		travelDays += seg.TravelDays
		if !seg.CanOvernight {
			allOvernight = false
		}
	}

	minimum := explorationDays + travelDays
	result := &FeasibilityResult{
		Feasible:            req.RequestedTotalDays >= minimum,
		RequestedDays:       req.RequestedTotalDays,
		TravelDaysRequired:  travelDays,
		ExplorationDays:     explorationDays,
		MinimumRequiredDays: minimum,
		Segments:            segments,
		AllOvernight:        allOvernight,
	}
	if result.Feasible {
		result.SuggestedDays = req.RequestedTotalDays
	} else {
		result.SuggestedDays = minimum
		result.Reason = fmt.Sprintf(
			"%d requested days cannot cover %d exploration days plus %d travel days; %d days needed",
			req.RequestedTotalDays, explorationDays, travelDays, minimum)
	}
	result.Days = buildDayPlan(req, result)

	s.logger.Debug().
		Bool("feasible", result.Feasible).
		Int("requested_days", result.RequestedDays).
		Int("travel_days", result.TravelDaysRequired).
		Int("minimum_days", result.MinimumRequiredDays).
		Msg("trip duration planned")

	return result, nil
}

// lookupSegments fetches route times for every leg concurrently. Order
// of the returned slice matches the route order regardless of lookup
// completion order.
func (s *Service) lookupSegments(ctx context.Context, route []string, tier trip.BudgetTier) []SegmentPlan {
	segments := make([]SegmentPlan, len(route)-1)

	var wg sync.WaitGroup
	for i := 0; i < len(route)-1; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rt := s.routes.Lookup(ctx, route[i], route[i+1])
			days, overnight := travelDaysFor(rt.Hours, tier)
			segments[i] = SegmentPlan{
				Route:        *rt,
				TravelDays:   days,
				CanOvernight: overnight,
			}
		}(i)
	}
	wg.Wait()

	return segments
}

// buildRoute returns the ordered city sequence start → destinations →
// return, with adjacent duplicates collapsed so no leg has from == to.
func buildRoute(req trip.TripRequest) []string {
	route := []string{req.StartLocation}
	for _, d := range req.Destinations {
		if !routetime.SameCity(route[len(route)-1], d.Location) {
			route = append(route, d.Location)
		}
	}
	if ret := req.ReturnTo(); !routetime.SameCity(route[len(route)-1], ret) {
		route = append(route, ret)
	}
	return route
}

func validateRequest(req trip.TripRequest) error {
	if strings.TrimSpace(req.StartLocation) == "" {
		return ErrMissingStartLocation
	}
	if req.RequestedTotalDays < 0 {
		return ErrNegativeDays
	}
	for _, d := range req.Destinations {
		if strings.TrimSpace(d.Location) == "" {
			return ErrMissingDestination
		}
		if d.RequestedDays < 0 {
			return ErrNegativeDays
		}
	}
	if req.BudgetTier != "" && !req.BudgetTier.Valid() {
		return ErrInvalidBudgetTier
	}
	return nil
}

func feasibleResult(req trip.TripRequest, explorationDays int, segments []SegmentPlan) *FeasibilityResult {
	result := &FeasibilityResult{
		Feasible:            true,
		RequestedDays:       req.RequestedTotalDays,
		SuggestedDays:       req.RequestedTotalDays,
		ExplorationDays:     explorationDays,
		MinimumRequiredDays: explorationDays,
		Segments:            segments,
	}
	result.Days = buildDayPlan(req, result)
	return result
}

// explorationDaysOrRequested keeps the degenerate no-destination case
// honest: with nothing to visit, every requested day is exploration.
func explorationDaysOrRequested(exploration, requested int) int {
	if exploration == 0 {
		return requested
	}
	return exploration
}
