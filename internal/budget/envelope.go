// Package budget partitions a trip budget into category envelopes and
// reconciles itinerary costs against them. All operations are pure;
// allocations and reconciliations are derived values, never stored
// state.
package budget

import (
	"errors"

	"github.com/roamplan/roamplan/internal/itinerary"
	"github.com/roamplan/roamplan/internal/trip"
)

// Envelope names a sub-budget category.
type Envelope string

// Envelope keys.
const (
	EnvelopeIntercity      Envelope = "intercity"
	EnvelopeAccommodation  Envelope = "accommodation"
	EnvelopeLocalTransport Envelope = "local_transport"
	EnvelopeActivity       Envelope = "activity"
	EnvelopeFood           Envelope = "food"
	EnvelopeBuffer         Envelope = "buffer"
	EnvelopeUpgradePool    Envelope = "upgrade_pool"
	EnvelopeEmergency      Envelope = "emergency"
)

// Envelopes lists every envelope in canonical order. EnvelopeBuffer is
// deliberately last: it absorbs the rounding residue during allocation.
var Envelopes = []Envelope{
	EnvelopeIntercity,
	EnvelopeAccommodation,
	EnvelopeLocalTransport,
	EnvelopeActivity,
	EnvelopeFood,
	EnvelopeUpgradePool,
	EnvelopeEmergency,
	EnvelopeBuffer,
}

// ErrEnvelopeExhausted is returned by Consume when an envelope cannot
// cover the requested amount.
var ErrEnvelopeExhausted = errors.New("envelope exhausted")

// Allocation maps envelopes to allocated amounts alongside a remaining
// balance that Consume draws down. Ratios records the table used, for
// audit and display.
type Allocation struct {
	Total     float64
	Currency  string
	Tier      trip.BudgetTier
	Amounts   map[Envelope]float64
	Remaining map[Envelope]float64
	Ratios    map[Envelope]float64
}

// Allocated returns the amount allocated to an envelope.
func (a *Allocation) Allocated(e Envelope) float64 {
	return a.Amounts[e]
}

// Left returns the remaining balance of an envelope.
func (a *Allocation) Left(e Envelope) float64 {
	return a.Remaining[e]
}

// Consume draws amount from an envelope's remaining balance. It fails
// without partial draw when the balance cannot cover the amount.
func (a *Allocation) Consume(e Envelope, amount float64) error {
	if amount < 0 {
		return errors.New("consume amount must not be negative")
	}
	if a.Remaining[e] < amount {
		return ErrEnvelopeExhausted
	}
	a.Remaining[e] -= amount
	return nil
}

// CategoryOf maps a segment type onto the envelope its cost is charged
// against. Travel legs of every flavor charge the intercity envelope;
// hidden gems count as activities.
func CategoryOf(t itinerary.SegmentType) Envelope {
	switch t {
	case itinerary.TypeOutboundTravel, itinerary.TypeReturnTravel, itinerary.TypeIntercityTravel:
		return EnvelopeIntercity
	case itinerary.TypeLocalTransport:
		return EnvelopeLocalTransport
	case itinerary.TypeAccommodation:
		return EnvelopeAccommodation
	case itinerary.TypeActivity, itinerary.TypeGem:
		return EnvelopeActivity
	default:
		return EnvelopeBuffer
	}
}
