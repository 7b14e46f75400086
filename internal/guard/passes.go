package guard

import (
	"fmt"
	"sort"

	"github.com/roamplan/roamplan/internal/itinerary"
	"github.com/roamplan/roamplan/internal/trip"
)

// dayState is the working copy one pass hands to the next.
type dayState struct {
	dayNumber int
	segments  []itinerary.Segment
	issues    []string
}

func (d *dayState) logf(format string, args ...any) {
	d.issues = append(d.issues, fmt.Sprintf(format, args...))
}

// splitActivities separates cap-relevant activities from pass-through
// segments (travel, accommodation, existing transport hops).
func splitActivities(segments []itinerary.Segment) (activities, rest []itinerary.Segment) {
	for _, s := range segments {
		if s.Type.IsActivity() {
			activities = append(activities, s)
		} else {
			rest = append(rest, s)
		}
	}
	return activities, rest
}

// capActivityCount enforces the per-style daily activity limit,
// tightened further on single-day intercity trips. Excess activities
// are dropped by descending order index so the earliest survive.
func (g *Guard) capActivityCount(day *dayState, style trip.TravelStyle, singleDayIntercity bool) {
	limit := activityCapFor(style)
	capSource := fmt.Sprintf("style %s", styleOrDefault(style))
	if singleDayIntercity && g.cfg.SingleDayIntercityCap < limit {
		limit = g.cfg.SingleDayIntercityCap
		capSource = "single-day intercity trip"
	}

	activities, rest := splitActivities(day.segments)
	if len(activities) <= limit {
		return
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].OrderIndex < activities[j].OrderIndex
	})
	dropped := len(activities) - limit
	day.segments = append(rest, activities[:limit]...)
	itinerary.SortDay(day.segments)
	day.logf("day %d: dropped %d activities over the limit of %d (%s)",
		day.dayNumber, dropped, limit, capSource)
}

// capDayTime drops activities from the end of the day once the
// cumulative nominal time (fixed duration per activity plus a
// transition buffer between consecutive ones) would exceed the usable
// window.
func (g *Guard) capDayTime(day *dayState) {
	budget := g.cfg.MaxDailyHours * 60
	used := 0.0
	kept := 0
	trimmed := 0

	out := day.segments[:0]
	for _, s := range day.segments {
		if !s.Type.IsActivity() {
			out = append(out, s)
			continue
		}
		cost := float64(g.cfg.ActivityMinutes)
		if kept > 0 {
			cost += float64(g.cfg.TransitionMinutes)
		}
		if used+cost > budget {
			trimmed++
			continue
		}
		used += cost
		kept++
		out = append(out, s)
	}
	day.segments = out

	if trimmed > 0 {
		day.logf("day %d: trimmed %d activities to fit the %.0f-hour day window",
			day.dayNumber, trimmed, g.cfg.MaxDailyHours)
	}
}

// clampCosts caps each activity's estimated cost at the tier/currency
// ceiling from the cost book.
func (g *Guard) clampCosts(day *dayState, tier trip.BudgetTier, currency string) {
	ceiling := g.book.ActivityCeiling(tier, currency)
	for i := range day.segments {
		s := &day.segments[i]
		if !s.Type.IsActivity() || s.EstimatedCost <= ceiling {
			continue
		}
		day.logf("day %d: clamped %q from %.2f to the %s-tier ceiling %.2f",
			day.dayNumber, s.Title, s.EstimatedCost, tier, ceiling)
		s.EstimatedCost = ceiling
	}
}

func styleOrDefault(style trip.TravelStyle) trip.TravelStyle {
	if style.Valid() {
		return style
	}
	return "default"
}
