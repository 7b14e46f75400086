package budget

import (
	"strings"

	"github.com/roamplan/roamplan/internal/trip"
)

// CostBook is the single source of currency- and tier-aware base costs.
// Base figures are in USD; a purchasing-power factor per currency scales
// them into local units. The allocator, guard, and display layers all
// read this table rather than carrying their own magic numbers.
type CostBook struct {
	ppp map[string]float64
}

// NewCostBook returns the built-in cost book.
func NewCostBook() *CostBook {
	return &CostBook{ppp: pppFactors}
}

// pppFactors converts a USD base cost into local currency at typical
// in-country price levels, not market exchange rates.
var pppFactors = map[string]float64{
	"USD": 1.0,
	"EUR": 0.92,
	"GBP": 0.80,
	"INR": 22.0,
	"JPY": 102.0,
	"THB": 13.5,
	"VND": 8200.0,
	"BRL": 2.6,
	"MXN": 10.5,
	"ZAR": 7.4,
}

// transportBaseUSD is the per-traveler cost of one intercity leg.
var transportBaseUSD = map[trip.TransportMode]map[trip.BudgetTier]float64{
	trip.ModeFlight: {trip.TierLow: 90, trip.TierMid: 160, trip.TierHigh: 340},
	trip.ModeTrain:  {trip.TierLow: 25, trip.TierMid: 45, trip.TierHigh: 95},
	trip.ModeBus:    {trip.TierLow: 12, trip.TierMid: 22, trip.TierHigh: 40},
	trip.ModeCar:    {trip.TierLow: 30, trip.TierMid: 55, trip.TierHigh: 110},
}

// nightlyBaseUSD is the per-night accommodation cost for one room.
var nightlyBaseUSD = map[trip.BudgetTier]float64{
	trip.TierLow:  28,
	trip.TierMid:  75,
	trip.TierHigh: 190,
}

// activityCeilingBaseUSD caps a single activity's estimated cost.
var activityCeilingBaseUSD = map[trip.BudgetTier]float64{
	trip.TierLow:  22,
	trip.TierMid:  60,
	trip.TierHigh: 200,
}

// localHopBaseUSD is the cost of one in-city transport hop.
var localHopBaseUSD = map[trip.BudgetTier]float64{
	trip.TierLow:  2,
	trip.TierMid:  5,
	trip.TierHigh: 14,
}

// Factor returns the purchasing-power multiplier for a currency code.
// Unknown currencies are treated at par with USD.
func (b *CostBook) Factor(currency string) float64 {
	if f, ok := b.ppp[strings.ToUpper(strings.TrimSpace(currency))]; ok {
		return f
	}
	return 1.0
}

// TransportCost returns the local-currency cost of one intercity leg
// for a single traveler.
func (b *CostBook) TransportCost(mode trip.TransportMode, tier trip.BudgetTier, currency string) float64 {
	modes, ok := transportBaseUSD[mode]
	if !ok {
		modes = transportBaseUSD[trip.ModeTrain]
	}
	return modes[tierOrMid(tier)] * b.Factor(currency)
}

// NightlyRate returns the local-currency accommodation cost per night.
func (b *CostBook) NightlyRate(tier trip.BudgetTier, currency string) float64 {
	return nightlyBaseUSD[tierOrMid(tier)] * b.Factor(currency)
}

// ActivityCeiling returns the per-activity cost cap in local currency.
func (b *CostBook) ActivityCeiling(tier trip.BudgetTier, currency string) float64 {
	return activityCeilingBaseUSD[tierOrMid(tier)] * b.Factor(currency)
}

// LocalHopCost returns the local-currency cost of one in-city hop.
func (b *CostBook) LocalHopCost(tier trip.BudgetTier, currency string) float64 {
	return localHopBaseUSD[tierOrMid(tier)] * b.Factor(currency)
}

func tierOrMid(tier trip.BudgetTier) trip.BudgetTier {
	if tier.Valid() {
		return tier
	}
	return trip.TierMid
}
