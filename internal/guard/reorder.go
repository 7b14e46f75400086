package guard

import (
	"errors"
	"fmt"

	"github.com/roamplan/roamplan/internal/budget"
	"github.com/roamplan/roamplan/internal/itinerary"
	"github.com/roamplan/roamplan/internal/trip"
	"github.com/roamplan/roamplan/pkg/geo"
)

// reorderByProximity rearranges the day's activities into a greedy
// nearest-neighbor walk starting from the first activity in time
// order. This shortens backtracking on foot; it is a heuristic, not an
// optimal tour. Activities without coordinates keep their relative
// order at the end of the walk; ties break on original position.
// Non-activity segments stay ahead of the walk.
func (g *Guard) reorderByProximity(day *dayState) {
	activities, rest := splitActivities(day.segments)
	if len(activities) < 3 {
		return
	}

	type located struct {
		seg   itinerary.Segment
		coord geo.Coordinate
		pos   int
	}
	var placed []located
	var unplaced []itinerary.Segment
	for i, a := range activities {
		if c, ok := a.Coordinate(); ok {
			placed = append(placed, located{seg: a, coord: c, pos: i})
		} else {
			unplaced = append(unplaced, a)
		}
	}
	if len(placed) < 3 {
		return
	}

	ordered := make([]itinerary.Segment, 0, len(activities))
	current := placed[0]
	ordered = append(ordered, current.seg)
	remaining := placed[1:]
	for len(remaining) > 0 {
		best := 0
		bestDist := geo.HaversineKm(current.coord, remaining[0].coord)
		for i := 1; i < len(remaining); i++ {
			d := geo.HaversineKm(current.coord, remaining[i].coord)
			if d < bestDist || (d == bestDist && remaining[i].pos < remaining[best].pos) {
				best, bestDist = i, d
			}
		}
		current = remaining[best]
		ordered = append(ordered, current.seg)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	ordered = append(ordered, unplaced...)

	changed := false
	for i := range ordered {
		if ordered[i].Title != activities[i].Title {
			changed = true
			break
		}
	}

	// From here on the slice order is authoritative; order indexes are
	// reassigned at the end of the pipeline.
	day.segments = append(rest, ordered...)

	if changed {
		day.logf("day %d: reordered activities by proximity to reduce backtracking", day.dayNumber)
	}
}

// insertLocalTransport adds a local_transport hop between consecutive
// activities that are more than the minimum threshold apart but still
// within local range. Each hop draws its cost from the local_transport
// envelope; when the envelope cannot cover a hop the insertion is
// skipped but still reported. Identical or missing coordinates never
// produce a hop.
func (g *Guard) insertLocalTransport(day *dayState, tier trip.BudgetTier, currency string, alloc *budget.Allocation) {
	hopCost := g.book.LocalHopCost(tier, currency)

	var out []itinerary.Segment
	var prev *itinerary.Segment
	for i := range day.segments {
		s := day.segments[i]
		if !s.Type.IsActivity() {
			out = append(out, s)
			continue
		}
		if prev != nil {
			if hop, ok := g.hopBetween(prev, &s, day, hopCost, alloc); ok {
				out = append(out, hop)
			}
		}
		out = append(out, s)
		prev = &day.segments[i]
	}
	day.segments = out
}

// hopBetween decides whether a transport hop belongs between two
// consecutive activities and charges the envelope for it.
func (g *Guard) hopBetween(prev, next *itinerary.Segment, day *dayState, hopCost float64, alloc *budget.Allocation) (itinerary.Segment, bool) {
	from, okFrom := prev.Coordinate()
	to, okTo := next.Coordinate()
	if !okFrom || !okTo {
		return itinerary.Segment{}, false
	}
	dist := geo.HaversineKm(from, to)
	if dist <= g.cfg.LocalTransportMinKm || dist > g.cfg.LocalTransportMaxKm {
		return itinerary.Segment{}, false
	}

	if alloc != nil {
		if err := alloc.Consume(budget.EnvelopeLocalTransport, hopCost); err != nil {
			if errors.Is(err, budget.ErrEnvelopeExhausted) {
				day.logf("day %d: local transport envelope exhausted, hop %q to %q not added",
					day.dayNumber, prev.Title, next.Title)
			}
			return itinerary.Segment{}, false
		}
	}

	return itinerary.Segment{
		Type:          itinerary.TypeLocalTransport,
		Title:         "Local transport to " + next.Title,
		DayNumber:     day.dayNumber,
		Location:      next.Location,
		EstimatedCost: hopCost,
		Metadata: itinerary.Metadata{
			Notes: fmt.Sprintf("%.1f km from %s", dist, prev.Title),
		},
	}, true
}
