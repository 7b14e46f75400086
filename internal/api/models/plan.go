package models

// PlanDurationRequest is the request body for duration feasibility
// planning.
type PlanDurationRequest struct {
	StartLocation      string        `json:"startLocation"`
	ReturnLocation     string        `json:"returnLocation,omitempty"`
	Destinations       []Destination `json:"destinations"`
	RequestedTotalDays int           `json:"requestedTotalDays"`
	TravelStyle        string        `json:"travelStyle,omitempty"`
	BudgetTier         string        `json:"budgetTier,omitempty"`
	TravelPreference   string        `json:"travelPreference,omitempty"`
}

// RouteSegment is one intercity leg with its route time and travel-day
// cost.
type RouteSegment struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	Hours        float64 `json:"hours"`
	DistanceKm   float64 `json:"distanceKm"`
	Source       string  `json:"source"`
	TravelDays   int     `json:"travelDays"`
	CanOvernight bool    `json:"canOvernight"`
}

// PlanDay is one day of the restructured display plan.
type PlanDay struct {
	DayNumber int    `json:"dayNumber"`
	Kind      string `json:"kind"`
	Location  string `json:"location"`
}

// FeasibilityResponse is the outcome of duration planning.
type FeasibilityResponse struct {
	Feasible            bool           `json:"feasible"`
	RequestedDays       int            `json:"requestedDays"`
	SuggestedDays       int            `json:"suggestedDays"`
	TravelDaysRequired  int            `json:"travelDaysRequired"`
	ExplorationDays     int            `json:"explorationDays"`
	MinimumRequiredDays int            `json:"minimumRequiredDays"`
	Segments            []RouteSegment `json:"segments"`
	AllOvernight        bool           `json:"allOvernight"`
	Reason              *string        `json:"reason,omitempty"`
	Days                []PlanDay      `json:"days,omitempty"`
}
