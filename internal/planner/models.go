// Package planner decides whether a requested trip duration is
// physically achievable given the travel times between its
// destinations, and suggests a workable duration when it is not.
package planner

import (
	"errors"

	"github.com/roamplan/roamplan/internal/routetime"
)

// Input contract errors. These are reported to the caller immediately;
// they are never recovered from internally.
var (
	ErrMissingStartLocation = errors.New("start location is required")
	ErrMissingDestination   = errors.New("destination location is required")
	ErrNegativeDays         = errors.New("day counts must not be negative")
	ErrInvalidBudgetTier    = errors.New("unknown budget tier")
)

// DayKind classifies a day in a restructured plan.
type DayKind string

// Day kinds.
const (
	DayTravel  DayKind = "TRAVEL"
	DayExplore DayKind = "EXPLORE"
)

// DaySlot is one day of a restructured plan, for display only.
type DaySlot struct {
	DayNumber int
	Kind      DayKind
	// Location is the city explored, or "from → to" for a travel day.
	Location string
}

// SegmentPlan is one intercity leg with its computed travel-day cost.
type SegmentPlan struct {
	Route        routetime.RouteTime
	TravelDays   int
	CanOvernight bool
}

// FeasibilityResult is the outcome of duration planning. Infeasibility
// is a normal result, not an error; Reason carries the user-facing
// explanation when Feasible is false.
type FeasibilityResult struct {
	Feasible            bool
	RequestedDays       int
	SuggestedDays       int
	TravelDaysRequired  int
	ExplorationDays     int
	MinimumRequiredDays int
	Segments            []SegmentPlan
	AllOvernight        bool
	Reason              string
	Days                []DaySlot
}
