package guard

import (
	"fmt"

	"github.com/roamplan/roamplan/internal/budget"
	"github.com/roamplan/roamplan/internal/itinerary"
	"github.com/roamplan/roamplan/internal/planner"
	"github.com/roamplan/roamplan/internal/routetime"
	"github.com/roamplan/roamplan/internal/trip"
)

// downgradeOrder is the budget-pressure fallback chain for travelers
// with no explicit mode preference.
var downgradeOrder = []trip.TransportMode{trip.ModeFlight, trip.ModeTrain, trip.ModeBus}

// SelectTransportMode picks the mode for one intercity leg. An
// explicit preference is always honored regardless of envelope
// pressure; only an unset or "any" preference is subject to
// budget-based downgrading, which walks the fallback chain until a
// mode's leg cost fits the intercity envelope's remaining balance.
func (g *Guard) SelectTransportMode(pref trip.TransportMode, tier trip.BudgetTier, currency string, travelers int, alloc *budget.Allocation) (trip.TransportMode, float64) {
	if travelers < 1 {
		travelers = 1
	}

	legCost := func(mode trip.TransportMode) float64 {
		return g.book.TransportCost(mode, tier, currency) * float64(travelers)
	}

	if pref.Explicit() {
		return pref, legCost(pref)
	}

	for _, mode := range downgradeOrder {
		cost := legCost(mode)
		if alloc == nil || alloc.Left(budget.EnvelopeIntercity) >= cost {
			return mode, cost
		}
	}

	// Nothing fits; charge the cheapest mode anyway and let the
	// reconciler report the overshoot.
	last := downgradeOrder[len(downgradeOrder)-1]
	return last, legCost(last)
}

// BuildTravelSegments authors the outbound, intercity, and return
// travel segments for a planned route, selecting a transport mode per
// leg and consuming the intercity envelope. Legs the plan marked
// overnight-capable keep a note so the UI can surface the sleeper
// option.
func (g *Guard) BuildTravelSegments(req trip.TripRequest, plan *planner.FeasibilityResult, alloc *budget.Allocation) ([]itinerary.Segment, []string) {
	var segments []itinerary.Segment
	var issues []string

	day := 1
	destIdx := 0
	for i, seg := range plan.Segments {
		mode, cost := g.SelectTransportMode(req.TravelPreference, req.BudgetTier, req.Currency, req.Travelers, alloc)
		if alloc != nil {
			if err := alloc.Consume(budget.EnvelopeIntercity, cost); err != nil {
				issues = append(issues, fmt.Sprintf(
					"intercity envelope cannot cover %s leg %s to %s (%.2f %s)",
					mode, seg.Route.From, seg.Route.To, cost, req.Currency))
			}
		}

		segType := itinerary.TypeIntercityTravel
		switch i {
		case 0:
			segType = itinerary.TypeOutboundTravel
		case len(plan.Segments) - 1:
			segType = itinerary.TypeReturnTravel
		}

		notes := ""
		if seg.CanOvernight {
			notes = "overnight service available"
		}

		segments = append(segments, itinerary.Segment{
			Type:          segType,
			Title:         fmt.Sprintf("%s from %s to %s", modeTitle(mode), seg.Route.From, seg.Route.To),
			DayNumber:     day,
			Location:      seg.Route.To,
			EstimatedCost: cost,
			OrderIndex:    i,
			Metadata: itinerary.Metadata{
				TransportMode: string(mode),
				Notes:         notes,
			},
		})
		// Later legs start after this leg's travel days plus the stay
		// at its destination.
		day += seg.TravelDays
		for destIdx < len(req.Destinations) && routetime.SameCity(req.Destinations[destIdx].Location, seg.Route.To) {
			day += req.Destinations[destIdx].RequestedDays
			destIdx++
		}
	}

	return segments, issues
}

func modeTitle(mode trip.TransportMode) string {
	switch mode {
	case trip.ModeFlight:
		return "Flight"
	case trip.ModeTrain:
		return "Train"
	case trip.ModeBus:
		return "Bus"
	case trip.ModeCar:
		return "Drive"
	default:
		return "Journey"
	}
}
