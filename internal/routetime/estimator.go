package routetime

import (
	"strings"
	"time"

	"github.com/roamplan/roamplan/pkg/geo"
)

// DistanceTier is a coarse bucket used to estimate travel time when the
// routing provider cannot answer.
type DistanceTier string

const (
	TierLocal  DistanceTier = "local"
	TierShort  DistanceTier = "short"
	TierMedium DistanceTier = "medium"
	TierLong   DistanceTier = "long"
)

// Representative distances per tier, in kilometers, and the assumed average
// driving speed used to derive hours from distance. These are deliberately
// fixed so that the fallback path is fully deterministic.
const (
	tierLocalKm  = 25.0
	tierShortKm  = 400.0
	tierMediumKm = 650.0
	tierLongKm   = 1000.0

	assumedSpeedKmh = 80.0
)

// tierKmBounds classifies a known geographic distance into a tier.
func tierForDistanceKm(km float64) DistanceTier {
	switch {
	case km < 80:
		return TierLocal
	case km < 500:
		return TierShort
	case km < 850:
		return TierMedium
	default:
		return TierLong
	}
}

// RepresentativeKm returns the fixed distance assumed for a tier.
func (t DistanceTier) RepresentativeKm() float64 {
	switch t {
	case TierLocal:
		return tierLocalKm
	case TierShort:
		return tierShortKm
	case TierMedium:
		return tierMediumKm
	default:
		return tierLongKm
	}
}

// Estimator produces deterministic route-time estimates without any I/O.
// It is the guaranteed-termination path behind the Service: classification
// uses a small gazetteer of known city coordinates when both endpoints are
// known, and a region-suffix heuristic otherwise.
type Estimator struct {
	gazetteer map[string]geo.Coordinate
}

// NewEstimator creates an estimator backed by the built-in gazetteer.
func NewEstimator() *Estimator {
	return &Estimator{gazetteer: defaultGazetteer()}
}

// Classify returns the distance tier for a city pair.
func (e *Estimator) Classify(from, to string) DistanceTier {
	nf, nt := NormalizeCity(from), NormalizeCity(to)
	if nf == nt {
		return TierLocal
	}

	cf, okFrom := e.gazetteer[nf]
	ct, okTo := e.gazetteer[nt]
	if okFrom && okTo {
		return tierForDistanceKm(geo.HaversineKm(cf, ct))
	}

	// Region heuristic: "City, Region" suffixes. Same region implies a
	// short hop, different regions a medium one. Absent hints default to
	// medium rather than long so estimates err toward feasibility checks
	// that still require real travel days.
	rf, rt := regionHint(nf), regionHint(nt)
	if rf != "" && rf == rt {
		return TierShort
	}
	return TierMedium
}

// Estimate returns a route time derived from the pair's distance tier.
// It never fails.
func (e *Estimator) Estimate(from, to string) *RouteTime {
	tier := e.Classify(from, to)
	km := tier.RepresentativeKm()
	hours := km / assumedSpeedKmh
	if tier == TierLocal {
		hours = 0.5
	}

	return &RouteTime{
		From:       from,
		To:         to,
		Hours:      hours,
		DistanceKm: km,
		Source:     SourceEstimate,
		FetchedAt:  time.Now(),
	}
}

// regionHint extracts the trailing ", region" component of a normalized
// city name, if present.
func regionHint(normalized string) string {
	idx := strings.LastIndex(normalized, ",")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(normalized[idx+1:])
}

// defaultGazetteer lists coordinates for cities that commonly appear in trip
// requests. Unknown cities fall back to the region heuristic; routes between
// them are geographically static, so the table only ever grows.
func defaultGazetteer() map[string]geo.Coordinate {
	return map[string]geo.Coordinate{
		"amsterdam":     {Lat: 52.3676, Lon: 4.9041},
		"bangalore":     {Lat: 12.9716, Lon: 77.5946},
		"barcelona":     {Lat: 41.3874, Lon: 2.1686},
		"berlin":        {Lat: 52.5200, Lon: 13.4050},
		"chennai":       {Lat: 13.0827, Lon: 80.2707},
		"delhi":         {Lat: 28.6139, Lon: 77.2090},
		"goa":           {Lat: 15.2993, Lon: 74.1240},
		"hyderabad":     {Lat: 17.3850, Lon: 78.4867},
		"jaipur":        {Lat: 26.9124, Lon: 75.7873},
		"kolkata":       {Lat: 22.5726, Lon: 88.3639},
		"lisbon":        {Lat: 38.7223, Lon: -9.1393},
		"london":        {Lat: 51.5074, Lon: -0.1278},
		"madrid":        {Lat: 40.4168, Lon: -3.7038},
		"mumbai":        {Lat: 19.0760, Lon: 72.8777},
		"munich":        {Lat: 48.1351, Lon: 11.5820},
		"paris":         {Lat: 48.8566, Lon: 2.3522},
		"prague":        {Lat: 50.0755, Lon: 14.4378},
		"pune":          {Lat: 18.5204, Lon: 73.8567},
		"rome":          {Lat: 41.9028, Lon: 12.4964},
		"tirupati":      {Lat: 13.6288, Lon: 79.4192},
		"vienna":        {Lat: 48.2082, Lon: 16.3738},
		"vijayawada":    {Lat: 16.5062, Lon: 80.6480},
		"visakhapatnam": {Lat: 17.6868, Lon: 83.2185},
	}
}
