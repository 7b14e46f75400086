// Package guard sanitizes generated itineraries: it trims and clamps
// segments to respect per-day time budgets, per-style activity caps,
// and per-envelope cost limits, and inserts local-transport hops
// between separated activities. Every alteration is reported as a
// human-readable issue alongside the sanitized output.
package guard

import "github.com/roamplan/roamplan/internal/trip"

// Config tunes the guard's passes. The zero value is unusable; callers
// should start from DefaultConfig.
type Config struct {
	// MaxDailyHours is the usable activity window per day.
	MaxDailyHours float64

	// ActivityMinutes is the nominal duration charged per activity.
	ActivityMinutes int

	// TransitionMinutes is the buffer charged between consecutive
	// activities.
	TransitionMinutes int

	// LocalTransportMinKm is the distance above which a local-transport
	// hop is inserted between consecutive activities.
	LocalTransportMinKm float64

	// LocalTransportMaxKm is the distance beyond which a gap is no
	// longer considered local and no hop is inserted.
	LocalTransportMaxKm float64

	// SingleDayIntercityCap overrides the style cap on one-day trips
	// that involve intercity travel.
	SingleDayIntercityCap int
}

// DefaultConfig returns the production guard settings.
func DefaultConfig() Config {
	return Config{
		MaxDailyHours:         10,
		ActivityMinutes:       60,
		TransitionMinutes:     30,
		LocalTransportMinKm:   0.5,
		LocalTransportMaxKm:   15,
		SingleDayIntercityCap: 2,
	}
}

// styleActivityCaps is the per-day activity count limit per travel
// style.
var styleActivityCaps = map[trip.TravelStyle]int{
	trip.StyleRelaxation:   3,
	trip.StyleCityExplorer: 4,
	trip.StyleAdventure:    5,
	trip.StyleBusiness:     2,
	trip.StyleRoadTrip:     4,
}

// defaultActivityCap applies when the style is unknown or unset.
const defaultActivityCap = 3

func activityCapFor(style trip.TravelStyle) int {
	if cap, ok := styleActivityCaps[style]; ok {
		return cap
	}
	return defaultActivityCap
}
