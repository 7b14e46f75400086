package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortDay_TimeThenOrderIndex(t *testing.T) {
	day := []Segment{
		{Title: "late", Metadata: Metadata{Time: "15:00"}, OrderIndex: 0},
		{Title: "untimed", OrderIndex: 1},
		{Title: "early-second", Metadata: Metadata{Time: "09:00"}, OrderIndex: 2},
		{Title: "early-first", Metadata: Metadata{Time: "09:00"}, OrderIndex: 1},
	}

	SortDay(day)

	titles := make([]string, len(day))
	for i, s := range day {
		titles[i] = s.Title
	}
	assert.Equal(t, []string{"early-first", "early-second", "late", "untimed"}, titles)
}

func TestGroupByDay(t *testing.T) {
	segments := []Segment{
		{Title: "d2", DayNumber: 2},
		{Title: "d1-b", DayNumber: 1, OrderIndex: 1},
		{Title: "d1-a", DayNumber: 1, OrderIndex: 0},
	}

	days := GroupByDay(segments)
	require.Len(t, days, 2)
	assert.Equal(t, []int{1, 2}, DayNumbers(days))
	assert.Equal(t, "d1-a", days[1][0].Title)
	assert.Equal(t, "d1-b", days[1][1].Title)
}

func TestFlatten_ReassignsOrderIndex(t *testing.T) {
	days := map[int][]Segment{
		2: {{Title: "b", OrderIndex: 7}},
		1: {{Title: "a", OrderIndex: 3}, {Title: "a2", OrderIndex: 9}},
	}

	flat := Flatten(days)
	require.Len(t, flat, 3)
	assert.Equal(t, "a", flat[0].Title)
	assert.Equal(t, 0, flat[0].OrderIndex)
	assert.Equal(t, 1, flat[1].OrderIndex)
	assert.Equal(t, "b", flat[2].Title)
	assert.Equal(t, 0, flat[2].OrderIndex)
}

func TestSegmentCoordinate(t *testing.T) {
	lat, lon := 38.7223, -9.1393
	withCoords := Segment{Latitude: &lat, Longitude: &lon}
	c, ok := withCoords.Coordinate()
	require.True(t, ok)
	assert.InDelta(t, 38.7223, c.Lat, 1e-9)

	_, ok = (&Segment{Latitude: &lat}).Coordinate()
	assert.False(t, ok)
}
