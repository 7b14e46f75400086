package models

// AllocationRequest is the request body for deriving a budget
// allocation.
type AllocationRequest struct {
	TotalBudget  float64       `json:"totalBudget"`
	Currency     string        `json:"currency"`
	TotalDays    int           `json:"totalDays"`
	Travelers    int           `json:"travelers"`
	TravelStyle  string        `json:"travelStyle,omitempty"`
	BudgetTier   string        `json:"budgetTier,omitempty"`
	Destinations []Destination `json:"destinations,omitempty"`
}

// AllocationResponse maps envelope keys to allocated amounts alongside
// the remaining balances and the ratio table used.
type AllocationResponse struct {
	Total     float64            `json:"total"`
	Currency  string             `json:"currency"`
	Tier      string             `json:"tier"`
	Amounts   map[string]float64 `json:"amounts"`
	Remaining map[string]float64 `json:"remaining"`
	Ratios    map[string]float64 `json:"ratios"`
}

// ReconciliationRequest is the request body for reconciling itinerary
// costs against an allocation.
type ReconciliationRequest struct {
	Allocation AllocationRequest `json:"allocation"`
	Segments   []Segment         `json:"segments"`
}

// CategoryViolation reports an envelope whose spend exceeds its
// allocation.
type CategoryViolation struct {
	Category  string  `json:"category"`
	Spent     float64 `json:"spent"`
	Allocated float64 `json:"allocated"`
	Overshoot float64 `json:"overshoot"`
}

// RiskFlag is one derived budget warning.
type RiskFlag struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ReconciliationResponse compares itinerary costs to the allocation.
type ReconciliationResponse struct {
	Balanced           bool                `json:"balanced"`
	Total              float64             `json:"total"`
	Overshoot          float64             `json:"overshoot"`
	SpentByCategory    map[string]float64  `json:"spentByCategory"`
	CategoryViolations []CategoryViolation `json:"categoryViolations"`
	Risks              []RiskFlag          `json:"risks,omitempty"`
}
