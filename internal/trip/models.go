// Package trip provides trip management services and the shared domain
// model consumed by the planner, budget, and guard packages.
package trip

import (
	"errors"
	"strings"
	"time"
)

// Repository errors.
var (
	ErrTripNotFound = errors.New("trip not found")
)

// TravelStyle describes the pace and focus of a trip. The set is closed;
// lookup tables elsewhere switch exhaustively over it.
type TravelStyle string

// Supported travel styles.
const (
	StyleRelaxation   TravelStyle = "relaxation"
	StyleCityExplorer TravelStyle = "city_explorer"
	StyleAdventure    TravelStyle = "adventure"
	StyleBusiness     TravelStyle = "business"
	StyleRoadTrip     TravelStyle = "road_trip"
)

// Valid reports whether s is a known travel style.
func (s TravelStyle) Valid() bool {
	switch s {
	case StyleRelaxation, StyleCityExplorer, StyleAdventure, StyleBusiness, StyleRoadTrip:
		return true
	}
	return false
}

// BudgetTier describes the traveler's spending level.
type BudgetTier string

// Supported budget tiers.
const (
	TierLow  BudgetTier = "low"
	TierMid  BudgetTier = "mid"
	TierHigh BudgetTier = "high"
)

// Valid reports whether t is a known budget tier.
func (t BudgetTier) Valid() bool {
	switch t {
	case TierLow, TierMid, TierHigh:
		return true
	}
	return false
}

// ParseBudgetTier maps user-facing tier labels onto the canonical tiers.
// Both the marketing names (budget/mid-range/luxury) and the short forms
// are accepted.
func ParseBudgetTier(s string) (BudgetTier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "budget":
		return TierLow, true
	case "mid", "mid-range", "midrange", "moderate":
		return TierMid, true
	case "high", "luxury", "premium":
		return TierHigh, true
	}
	return "", false
}

// TransportMode is an intercity transport choice.
type TransportMode string

// Supported transport modes. ModeAny means the traveler expressed no
// preference and the guard may pick based on budget pressure.
const (
	ModeAny    TransportMode = "any"
	ModeFlight TransportMode = "flight"
	ModeTrain  TransportMode = "train"
	ModeBus    TransportMode = "bus"
	ModeCar    TransportMode = "car"
)

// Valid reports whether m is a known transport mode.
func (m TransportMode) Valid() bool {
	switch m {
	case ModeAny, ModeFlight, ModeTrain, ModeBus, ModeCar:
		return true
	}
	return false
}

// Explicit reports whether the mode is a concrete user choice rather
// than "any". Explicit modes are never downgraded by the guard.
func (m TransportMode) Explicit() bool {
	return m != "" && m != ModeAny
}

// Destination is one stop on a trip with the days the traveler wants
// to spend there.
type Destination struct {
	Location      string
	RequestedDays int
}

// TripRequest is the immutable input to duration planning and budget
// allocation. ReturnLocation defaults to StartLocation when empty.
type TripRequest struct {
	StartLocation      string
	ReturnLocation     string
	Destinations       []Destination
	RequestedTotalDays int
	TravelStyle        TravelStyle
	BudgetTier         BudgetTier
	TotalBudget        float64
	Currency           string
	Travelers          int
	TravelPreference   TransportMode
}

// ReturnTo resolves the effective return location.
func (r *TripRequest) ReturnTo() string {
	if strings.TrimSpace(r.ReturnLocation) == "" {
		return r.StartLocation
	}
	return r.ReturnLocation
}

// ExplorationDays is the total of per-destination requested days.
func (r *TripRequest) ExplorationDays() int {
	total := 0
	for _, d := range r.Destinations {
		total += d.RequestedDays
	}
	return total
}

// Trip is a saved trip.
type Trip struct {
	ID                 string
	UserID             string
	Name               string
	StartLocation      string
	ReturnLocation     string
	Destinations       []Destination
	TotalDays          int
	TravelStyle        TravelStyle
	BudgetTier         BudgetTier
	TotalBudget        float64
	Currency           string
	Travelers          int
	TravelPreference   TransportMode
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Request projects the stored trip back into a planning request.
func (t *Trip) Request() TripRequest {
	return TripRequest{
		StartLocation:      t.StartLocation,
		ReturnLocation:     t.ReturnLocation,
		Destinations:       t.Destinations,
		RequestedTotalDays: t.TotalDays,
		TravelStyle:        t.TravelStyle,
		BudgetTier:         t.BudgetTier,
		TotalBudget:        t.TotalBudget,
		Currency:           t.Currency,
		Travelers:          t.Travelers,
		TravelPreference:   t.TravelPreference,
	}
}
