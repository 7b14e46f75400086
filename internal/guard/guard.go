package guard

import (
	"github.com/rs/zerolog"

	"github.com/roamplan/roamplan/internal/budget"
	"github.com/roamplan/roamplan/internal/itinerary"
	"github.com/roamplan/roamplan/internal/routetime"
	"github.com/roamplan/roamplan/internal/trip"
)

// Guard runs the sanitization passes. Construction wires in the cost
// book; per-call inputs carry everything else, so one Guard serves all
// trips.
type Guard struct {
	cfg    Config
	book   *budget.CostBook
	logger zerolog.Logger
}

// New creates a guard.
func New(cfg Config, book *budget.CostBook, logger zerolog.Logger) *Guard {
	if book == nil {
		book = budget.NewCostBook()
	}
	return &Guard{
		cfg:    cfg,
		book:   book,
		logger: logger.With().Str("component", "guard").Logger(),
	}
}

// Result is the sanitized itinerary plus the log of alterations made.
// Issues are informational; sanitization never fails.
type Result struct {
	Segments []itinerary.Segment
	Issues   []string
}

// Sanitize applies every pass to each day of the itinerary:
// activity-count caps, the daily time window, cost clamping, proximity
// reordering, and local-transport insertion. The allocation, when
// given, is drawn down for inserted hops. The input slice is not
// modified.
func (g *Guard) Sanitize(req trip.TripRequest, alloc *budget.Allocation, segments []itinerary.Segment) *Result {
	singleDayIntercity := req.RequestedTotalDays == 1 && hasIntercityTravel(req)

	days := itinerary.GroupByDay(segments)
	var issues []string

	for _, n := range itinerary.DayNumbers(days) {
		day := &dayState{dayNumber: n, segments: days[n]}

		g.capActivityCount(day, req.TravelStyle, singleDayIntercity)
		g.capDayTime(day)
		g.clampCosts(day, req.BudgetTier, req.Currency)
		g.reorderByProximity(day)
		g.insertLocalTransport(day, req.BudgetTier, req.Currency, alloc)

		days[n] = day.segments
		issues = append(issues, day.issues...)
	}

	out := itinerary.Flatten(days)

	if len(issues) > 0 {
		g.logger.Debug().
			Int("segments", len(out)).
			Int("issues", len(issues)).
			Msg("itinerary sanitized with alterations")
	}

	return &Result{Segments: out, Issues: issues}
}

// hasIntercityTravel reports whether the trip leaves the start city.
func hasIntercityTravel(req trip.TripRequest) bool {
	for _, d := range req.Destinations {
		if !routetime.SameCity(req.StartLocation, d.Location) {
			return true
		}
	}
	return false
}
