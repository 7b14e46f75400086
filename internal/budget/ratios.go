package budget

import "github.com/roamplan/roamplan/internal/trip"

// ratioTables holds the closed, versioned allocation ratios per budget
// tier. Each table sums to exactly 1.0; changing a tier's split means
// editing one row here, nowhere else.
var ratioTables = map[trip.BudgetTier]map[Envelope]float64{
	trip.TierLow: {
		EnvelopeIntercity:      0.18,
		EnvelopeAccommodation:  0.26,
		EnvelopeLocalTransport: 0.06,
		EnvelopeActivity:       0.22,
		EnvelopeFood:           0.16,
		EnvelopeUpgradePool:    0.00,
		EnvelopeEmergency:      0.06,
		EnvelopeBuffer:         0.06,
	},
	trip.TierMid: {
		EnvelopeIntercity:      0.15,
		EnvelopeAccommodation:  0.28,
		EnvelopeLocalTransport: 0.05,
		EnvelopeActivity:       0.24,
		EnvelopeFood:           0.14,
		EnvelopeUpgradePool:    0.03,
		EnvelopeEmergency:      0.03,
		EnvelopeBuffer:         0.08,
	},
	trip.TierHigh: {
		EnvelopeIntercity:      0.20,
		EnvelopeAccommodation:  0.32,
		EnvelopeLocalTransport: 0.04,
		EnvelopeActivity:       0.20,
		EnvelopeFood:           0.12,
		EnvelopeUpgradePool:    0.05,
		EnvelopeEmergency:      0.02,
		EnvelopeBuffer:         0.05,
	},
}

// styleAdjustments nudges a tier table for styles with markedly
// different spending shapes. Deltas within a row sum to zero so tables
// keep summing to 1.0.
var styleAdjustments = map[trip.TravelStyle]map[Envelope]float64{
	trip.StyleRoadTrip: {
		EnvelopeIntercity:     0.05,
		EnvelopeAccommodation: -0.03,
		EnvelopeActivity:      -0.02,
	},
	trip.StyleRelaxation: {
		EnvelopeAccommodation: 0.04,
		EnvelopeActivity:      -0.04,
	},
	trip.StyleAdventure: {
		EnvelopeActivity: 0.04,
		EnvelopeFood:     -0.02,
		EnvelopeBuffer:   -0.02,
	},
}

// ratiosFor resolves the effective ratio table for a tier and style.
// Unknown tiers fall back to mid; the result is a fresh map safe to
// store in allocation metadata.
func ratiosFor(tier trip.BudgetTier, style trip.TravelStyle) map[Envelope]float64 {
	base, ok := ratioTables[tier]
	if !ok {
		base = ratioTables[trip.TierMid]
	}

	ratios := make(map[Envelope]float64, len(base))
	for env, r := range base {
		ratios[env] = r
	}
	for env, delta := range styleAdjustments[style] {
		ratios[env] += delta
	}
	return ratios
}
