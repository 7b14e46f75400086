// Package itinerary defines the segment model shared by the guard,
// budget reconciler, and API layers. Segments arrive from an external
// generator or manual edits; this package only types and orders them.
package itinerary

import (
	"sort"

	"github.com/roamplan/roamplan/pkg/geo"
)

// SegmentType classifies an itinerary entry.
type SegmentType string

// Segment types.
const (
	TypeOutboundTravel  SegmentType = "outbound_travel"
	TypeReturnTravel    SegmentType = "return_travel"
	TypeIntercityTravel SegmentType = "intercity_travel"
	TypeLocalTransport  SegmentType = "local_transport"
	TypeAccommodation   SegmentType = "accommodation"
	TypeActivity        SegmentType = "activity"
	TypeGem             SegmentType = "gem"
)

// Valid reports whether t is a known segment type.
func (t SegmentType) Valid() bool {
	switch t {
	case TypeOutboundTravel, TypeReturnTravel, TypeIntercityTravel,
		TypeLocalTransport, TypeAccommodation, TypeActivity, TypeGem:
		return true
	}
	return false
}

// IsActivity reports whether the segment counts against per-day
// activity caps.
func (t SegmentType) IsActivity() bool {
	return t == TypeActivity || t == TypeGem
}

// Metadata carries free-form per-segment detail. Time is a "HH:mm"
// local clock string used for within-day ordering.
type Metadata struct {
	Time          string
	TransportMode string
	Notes         string
}

// Segment is one itinerary entry.
type Segment struct {
	Type          SegmentType
	Title         string
	DayNumber     int
	Location      string
	EstimatedCost float64
	OrderIndex    int
	Latitude      *float64
	Longitude     *float64
	Metadata      Metadata
}

// Coordinate returns the segment's position and whether one is set.
func (s *Segment) Coordinate() (geo.Coordinate, bool) {
	if s.Latitude == nil || s.Longitude == nil {
		return geo.Coordinate{}, false
	}
	return geo.Coordinate{Lat: *s.Latitude, Lon: *s.Longitude}, true
}

// SortDay orders a single day's segments in place by (time, orderIndex).
// Entries without a time sort after timed ones.
func SortDay(segments []Segment) {
	sort.SliceStable(segments, func(i, j int) bool {
		ti, tj := segments[i].Metadata.Time, segments[j].Metadata.Time
		if ti != tj {
			if ti == "" {
				return false
			}
			if tj == "" {
				return true
			}
			return ti < tj
		}
		return segments[i].OrderIndex < segments[j].OrderIndex
	})
}

// GroupByDay splits segments into per-day slices keyed by day number,
// each sorted by (time, orderIndex). Input order is preserved for ties.
func GroupByDay(segments []Segment) map[int][]Segment {
	days := make(map[int][]Segment)
	for _, s := range segments {
		days[s.DayNumber] = append(days[s.DayNumber], s)
	}
	for _, day := range days {
		SortDay(day)
	}
	return days
}

// DayNumbers returns the sorted day numbers present in the grouping.
func DayNumbers(days map[int][]Segment) []int {
	nums := make([]int, 0, len(days))
	for n := range days {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// Flatten joins per-day slices back into one list in day order,
// reassigning OrderIndex within each day to match final positions.
func Flatten(days map[int][]Segment) []Segment {
	var out []Segment
	for _, n := range DayNumbers(days) {
		for i, s := range days[n] {
			s.OrderIndex = i
			out = append(out, s)
		}
	}
	return out
}
