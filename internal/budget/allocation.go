package budget

import (
	"errors"
	"math"

	"github.com/roamplan/roamplan/internal/trip"
)

// Allocation input errors.
var (
	ErrNonPositiveBudget = errors.New("total budget must be positive")
)

// maxAccommodationShare caps the per-night accommodation carve-out so
// the remaining envelopes always keep a positive share of the budget.
const maxAccommodationShare = 0.6

var allocationCostBook = NewCostBook()

// DeriveAllocation partitions the trip's total budget into envelopes.
// Accommodation is a per-night calculation from the cost book (nights
// times the nightly rate, one room per two travelers, capped at
// maxAccommodationShare); the rest of the budget is split over the
// remaining envelopes in proportion to the tier/style ratio table.
// Trips without a day count fall back to the table's accommodation
// ratio. Every envelope except the buffer is rounded to two decimals;
// the buffer takes the residue so the envelopes always sum to exactly
// the total budget. Deterministic for identical inputs.
func DeriveAllocation(req trip.TripRequest) (*Allocation, error) {
	if req.TotalBudget <= 0 {
		return nil, ErrNonPositiveBudget
	}

	ratios := ratiosFor(req.BudgetTier, req.TravelStyle)
	amounts := make(map[Envelope]float64, len(Envelopes))

	accommodation := roundCents(req.TotalBudget * ratios[EnvelopeAccommodation])
	if nights := req.RequestedTotalDays - 1; nights > 0 {
		perNight := allocationCostBook.NightlyRate(req.BudgetTier, req.Currency)
		stay := float64(nights) * perNight * float64(roomsFor(req.Travelers))
		accommodation = roundCents(math.Min(stay, req.TotalBudget*maxAccommodationShare))
	}
	amounts[EnvelopeAccommodation] = accommodation
	allocated := accommodation

	residue := req.TotalBudget - accommodation
	restShare := 1 - ratios[EnvelopeAccommodation]
	for _, env := range Envelopes {
		if env == EnvelopeBuffer || env == EnvelopeAccommodation {
			continue
		}
		amount := roundCents(residue * ratios[env] / restShare)
		amounts[env] = amount
		allocated += amount
	}
	amounts[EnvelopeBuffer] = roundCents(req.TotalBudget - allocated)

	remaining := make(map[Envelope]float64, len(amounts))
	for env, amount := range amounts {
		remaining[env] = amount
	}

	return &Allocation{
		Total:     req.TotalBudget,
		Currency:  req.Currency,
		Tier:      req.BudgetTier,
		Amounts:   amounts,
		Remaining: remaining,
		Ratios:    ratios,
	}, nil
}

// roomsFor assumes double occupancy with solo travelers in their own
// room.
func roomsFor(travelers int) int {
	if travelers <= 1 {
		return 1
	}
	return (travelers + 1) / 2
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
