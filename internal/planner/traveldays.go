package planner

import (
	"math"

	"github.com/roamplan/roamplan/internal/trip"
)

// Travel-day rule boundaries, in hours. A leg up to absorbableHours
// fits inside an exploration day; a leg inside the overnight band can
// be taken as a sleeper service; beyond overnightMaxHours the journey
// spills into multiple calendar days no matter how it is ridden.
const (
	absorbableHours   = 3.0
	overnightMinHours = 6.0
	overnightMaxHours = 16.0

	// Divisors for converting leg hours into whole travel days. Short
	// daytime legs burn a day per 6 usable hours; very long hauls are
	// measured against a 12-hour travelling day.
	daytimeDayHours  = 6.0
	longHaulDayHours = 12.0
)

// travelDaysFor computes the travel-day cost of a single leg under the
// tiered overnight rule:
//
//	hours ≤ 3              0 days, absorbed into exploration
//	3 < hours < 6          ceil(hours/6) days (one daytime leg)
//	6 ≤ hours ≤ 16         0 days for low/mid tiers (overnight sleeper),
//	                       ceil(hours/12) days for the high tier
//	hours > 16             ceil(hours/12) days, never overnight
//
// High-tier travelers are assumed to prefer daytime travel and forfeit
// the day; low/mid travelers in the overnight band arrive next morning
// with the day still usable.
func travelDaysFor(hours float64, tier trip.BudgetTier) (days int, canOvernight bool) {
	switch {
	case hours <= absorbableHours:
		return 0, false
	case hours < overnightMinHours:
		return int(math.Ceil(hours / daytimeDayHours)), false
	case hours <= overnightMaxHours:
		if tier == trip.TierHigh {
			return int(math.Ceil(hours / longHaulDayHours)), false
		}
		return 0, true
	default:
		return int(math.Ceil(hours / longHaulDayHours)), false
	}
}
