package models

// SegmentMetadata carries free-form per-segment detail.
type SegmentMetadata struct {
	Time          string `json:"time,omitempty"`
	TransportMode string `json:"transportMode,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// Segment is one itinerary entry.
type Segment struct {
	Type          string          `json:"type"`
	Title         string          `json:"title"`
	DayNumber     int             `json:"dayNumber"`
	Location      string          `json:"location,omitempty"`
	EstimatedCost float64         `json:"estimatedCost"`
	OrderIndex    int             `json:"orderIndex"`
	Latitude      *float64        `json:"latitude,omitempty"`
	Longitude     *float64        `json:"longitude,omitempty"`
	Metadata      SegmentMetadata `json:"metadata,omitempty"`
}

// SanitizeRequest is the request body for itinerary sanitization.
// When BuildTravelSegments is set, intercity travel segments are
// derived from the trip's route and returned alongside the sanitized
// itinerary.
type SanitizeRequest struct {
	Trip                PlanDurationRequest `json:"trip"`
	Budget              *AllocationRequest  `json:"budget,omitempty"`
	Segments            []Segment           `json:"segments"`
	BuildTravelSegments bool                `json:"buildTravelSegments,omitempty"`
}

// SanitizeResponse is the sanitized itinerary and the log of
// alterations made to it.
type SanitizeResponse struct {
	Segments       []Segment `json:"segments"`
	TravelSegments []Segment `json:"travelSegments,omitempty"`
	Issues         []string  `json:"issues"`
}
