package planner

import (
	"fmt"

	"github.com/roamplan/roamplan/internal/routetime"
	"github.com/roamplan/roamplan/internal/trip"
)

// buildDayPlan derives a display-only day sequence from the planned
// segments and the requested per-destination days. It introduces no new
// information; callers render it as a TRAVEL/EXPLORE timeline.
func buildDayPlan(req trip.TripRequest, res *FeasibilityResult) []DaySlot {
	days := make([]DaySlot, 0, res.MinimumRequiredDays)
	next := 1

	emit := func(kind DayKind, location string) {
		days = append(days, DaySlot{DayNumber: next, Kind: kind, Location: location})
		next++
	}

	destIdx := 0
	exploreAt := func(city string) {
		for destIdx < len(req.Destinations) && routetime.SameCity(req.Destinations[destIdx].Location, city) {
			for i := 0; i < req.Destinations[destIdx].RequestedDays; i++ {
				emit(DayExplore, req.Destinations[destIdx].Location)
			}
			destIdx++
		}
	}

	if len(res.Segments) == 0 {
		// Staycation or empty trip: every day explores the start city.
		for i := 0; i < res.ExplorationDays; i++ {
			emit(DayExplore, req.StartLocation)
		}
		return days
	}

	// Destinations collapsed into the start city come first.
	exploreAt(req.StartLocation)

	for _, seg := range res.Segments {
		for i := 0; i < seg.TravelDays; i++ {
			emit(DayTravel, fmt.Sprintf("%s to %s", seg.Route.From, seg.Route.To))
		}
		exploreAt(seg.Route.To)
	}

	return days
}
