package budget

import (
	"math"

	"github.com/roamplan/roamplan/internal/itinerary"
)

// CategoryViolation reports one envelope whose consumption exceeds its
// own allocation.
type CategoryViolation struct {
	Category  Envelope
	Spent     float64
	Allocated float64
	Overshoot float64
}

// ReconciliationResult compares actual itinerary costs to an
// allocation. A category can overshoot its envelope while the trip as
// a whole stays balanced through buffer absorption; both facts are
// reported independently.
type ReconciliationResult struct {
	Balanced           bool
	Total              float64
	Overshoot          float64
	SpentByCategory    map[Envelope]float64
	CategoryViolations []CategoryViolation
}

// DeriveReconciliation sums segment costs per envelope category and
// flags overall and per-category overshoot. Pure function of its
// inputs; callers re-derive on every itinerary or budget mutation.
func DeriveReconciliation(alloc *Allocation, segments []itinerary.Segment) *ReconciliationResult {
	spent := make(map[Envelope]float64)
	total := 0.0
	for _, seg := range segments {
		cost := seg.EstimatedCost
		if cost < 0 {
			cost = 0
		}
		spent[CategoryOf(seg.Type)] += cost
		total += cost
	}
	for env, v := range spent {
		spent[env] = roundCents(v)
	}
	total = roundCents(total)

	var violations []CategoryViolation
	for _, env := range Envelopes {
		if env == EnvelopeBuffer {
			continue
		}
		used := spent[env]
		allocated := alloc.Allocated(env)
		if used > allocated {
			violations = append(violations, CategoryViolation{
				Category:  env,
				Spent:     used,
				Allocated: allocated,
				Overshoot: roundCents(used - allocated),
			})
		}
	}

	return &ReconciliationResult{
		Balanced:           total <= alloc.Total,
		Total:              total,
		Overshoot:          roundCents(math.Max(0, total-alloc.Total)),
		SpentByCategory:    spent,
		CategoryViolations: violations,
	}
}
