package models

// Destination is one stop on a trip.
type Destination struct {
	Location      string `json:"location"`
	RequestedDays int    `json:"requestedDays"`
}

// Trip represents a saved trip.
type Trip struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	StartLocation    string        `json:"startLocation"`
	ReturnLocation   string        `json:"returnLocation,omitempty"`
	Destinations     []Destination `json:"destinations"`
	TotalDays        int           `json:"totalDays"`
	TravelStyle      string        `json:"travelStyle,omitempty"`
	BudgetTier       string        `json:"budgetTier,omitempty"`
	TotalBudget      float64       `json:"totalBudget"`
	Currency         string        `json:"currency"`
	Travelers        int           `json:"travelers"`
	TravelPreference string        `json:"travelPreference,omitempty"`
	CreatedAt        Timestamp     `json:"createdAt"`
	UpdatedAt        Timestamp     `json:"updatedAt"`
}

// PagedTrips is a paginated list of trips.
type PagedTrips struct {
	Items []Trip            `json:"items"`
	Meta  PagedResponseMeta `json:"meta"`
}

// TripCreateRequest is the request body for creating a trip.
type TripCreateRequest struct {
	Name             string        `json:"name"`
	StartLocation    string        `json:"startLocation"`
	ReturnLocation   string        `json:"returnLocation,omitempty"`
	Destinations     []Destination `json:"destinations"`
	TotalDays        int           `json:"totalDays"`
	TravelStyle      string        `json:"travelStyle,omitempty"`
	BudgetTier       string        `json:"budgetTier,omitempty"`
	TotalBudget      float64       `json:"totalBudget"`
	Currency         string        `json:"currency"`
	Travelers        int           `json:"travelers"`
	TravelPreference string        `json:"travelPreference,omitempty"`
}

// TripUpdateRequest is the request body for updating a trip. Absent
// fields are left unchanged.
type TripUpdateRequest struct {
	Name             *string       `json:"name,omitempty"`
	StartLocation    *string       `json:"startLocation,omitempty"`
	ReturnLocation   *string       `json:"returnLocation,omitempty"`
	Destinations     []Destination `json:"destinations,omitempty"`
	TotalDays        *int          `json:"totalDays,omitempty"`
	TravelStyle      *string       `json:"travelStyle,omitempty"`
	BudgetTier       *string       `json:"budgetTier,omitempty"`
	TotalBudget      *float64      `json:"totalBudget,omitempty"`
	Currency         *string       `json:"currency,omitempty"`
	Travelers        *int          `json:"travelers,omitempty"`
	TravelPreference *string       `json:"travelPreference,omitempty"`
}
