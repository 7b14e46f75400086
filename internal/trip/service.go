package trip

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service errors.
var (
	ErrNotAuthorized = errors.New("not authorized to access this trip")
)

// Validation constants.
const (
	MaxNameLength     = 80
	MaxLocationLength = 120
	MaxDestinations   = 12
	MaxTravelers      = 20
	MaxTotalDays      = 90
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// CreateInput is the input for creating a trip.
type CreateInput struct {
	Name             string
	StartLocation    string
	ReturnLocation   string
	Destinations     []Destination
	TotalDays        int
	TravelStyle      TravelStyle
	BudgetTier       BudgetTier
	TotalBudget      float64
	Currency         string
	Travelers        int
	TravelPreference TransportMode
}

// UpdateInput is the input for updating a trip. Nil fields are left
// unchanged.
type UpdateInput struct {
	Name             *string
	StartLocation    *string
	ReturnLocation   *string
	Destinations     []Destination
	TotalDays        *int
	TravelStyle      *TravelStyle
	BudgetTier       *BudgetTier
	TotalBudget      *float64
	Currency         *string
	Travelers        *int
	TravelPreference *TransportMode
}

// Service provides trip operations.
type Service struct {
	repo Repository
}

// NewService creates a new trip service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List retrieves all trips for a user.
func (s *Service) List(ctx context.Context, userID string, limit int) (*ListResult, error) {
	return s.repo.List(ctx, userID, ListOptions{Limit: limit})
}

// Get retrieves a trip by ID for a user.
func (s *Service) Get(ctx context.Context, userID, tripID string) (*Trip, error) {
	return s.repo.GetByUserAndID(ctx, userID, tripID)
}

// Create creates a new trip for a user.
func (s *Service) Create(ctx context.Context, userID string, input *CreateInput) (*Trip, error) {
	if fieldErrors := validateCreateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	now := time.Now()
	t := &Trip{
		ID:               "trp_" + uuid.New().String()[:22],
		UserID:           userID,
		Name:             input.Name,
		StartLocation:    input.StartLocation,
		ReturnLocation:   input.ReturnLocation,
		Destinations:     input.Destinations,
		TotalDays:        input.TotalDays,
		TravelStyle:      input.TravelStyle,
		BudgetTier:       input.BudgetTier,
		TotalBudget:      input.TotalBudget,
		Currency:         input.Currency,
		Travelers:        input.Travelers,
		TravelPreference: input.TravelPreference,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if t.Travelers < 1 {
		t.Travelers = 1
	}
	if t.TravelPreference == "" {
		t.TravelPreference = ModeAny
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// Update updates an existing trip for a user.
func (s *Service) Update(ctx context.Context, userID, tripID string, input *UpdateInput) (*Trip, error) {
	t, err := s.repo.GetByUserAndID(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if fieldErrors := validateUpdateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	if input.Name != nil {
		t.Name = *input.Name
	}
	if input.StartLocation != nil {
		t.StartLocation = *input.StartLocation
	}
	if input.ReturnLocation != nil {
		t.ReturnLocation = *input.ReturnLocation
	}
	if input.Destinations != nil {
		t.Destinations = input.Destinations
	}
	if input.TotalDays != nil {
		t.TotalDays = *input.TotalDays
	}
	if input.TravelStyle != nil {
		t.TravelStyle = *input.TravelStyle
	}
	if input.BudgetTier != nil {
		t.BudgetTier = *input.BudgetTier
	}
	if input.TotalBudget != nil {
		t.TotalBudget = *input.TotalBudget
	}
	if input.Currency != nil {
		t.Currency = *input.Currency
	}
	if input.Travelers != nil {
		t.Travelers = *input.Travelers
	}
	if input.TravelPreference != nil {
		t.TravelPreference = *input.TravelPreference
	}
	t.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// Delete deletes a trip for a user.
func (s *Service) Delete(ctx context.Context, userID, tripID string) error {
	// Verify ownership
	if _, err := s.repo.GetByUserAndID(ctx, userID, tripID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, tripID)
}

// validateCreateInput validates the create trip input.
func validateCreateInput(input *CreateInput) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "is required"})
	} else if len(input.Name) > MaxNameLength {
		errs = append(errs, FieldError{Field: "name", Message: "must be at most 80 characters"})
	}

	if strings.TrimSpace(input.StartLocation) == "" {
		errs = append(errs, FieldError{Field: "startLocation", Message: "is required"})
	}

	errs = append(errs, validateDestinations(input.Destinations)...)
	errs = append(errs, validateTripNumbers(input.TotalDays, input.TotalBudget, input.Travelers)...)

	if input.TravelStyle != "" && !input.TravelStyle.Valid() {
		errs = append(errs, FieldError{Field: "travelStyle", Message: "is not a known style"})
	}
	if input.BudgetTier != "" && !input.BudgetTier.Valid() {
		errs = append(errs, FieldError{Field: "budgetTier", Message: "is not a known tier"})
	}
	if input.TravelPreference != "" && !input.TravelPreference.Valid() {
		errs = append(errs, FieldError{Field: "travelPreference", Message: "is not a known transport mode"})
	}

	return errs
}

// validateUpdateInput validates the update trip input.
func validateUpdateInput(input *UpdateInput) []FieldError {
	var errs []FieldError

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			errs = append(errs, FieldError{Field: "name", Message: "must not be empty"})
		} else if len(*input.Name) > MaxNameLength {
			errs = append(errs, FieldError{Field: "name", Message: "must be at most 80 characters"})
		}
	}
	if input.StartLocation != nil && strings.TrimSpace(*input.StartLocation) == "" {
		errs = append(errs, FieldError{Field: "startLocation", Message: "must not be empty"})
	}
	if input.Destinations != nil {
		errs = append(errs, validateDestinations(input.Destinations)...)
	}
	if input.TotalDays != nil && (*input.TotalDays < 1 || *input.TotalDays > MaxTotalDays) {
		errs = append(errs, FieldError{Field: "totalDays", Message: "must be between 1 and 90"})
	}
	if input.TotalBudget != nil && *input.TotalBudget <= 0 {
		errs = append(errs, FieldError{Field: "totalBudget", Message: "must be positive"})
	}
	if input.Travelers != nil && (*input.Travelers < 1 || *input.Travelers > MaxTravelers) {
		errs = append(errs, FieldError{Field: "travelers", Message: "must be between 1 and 20"})
	}
	if input.TravelStyle != nil && !input.TravelStyle.Valid() {
		errs = append(errs, FieldError{Field: "travelStyle", Message: "is not a known style"})
	}
	if input.BudgetTier != nil && !input.BudgetTier.Valid() {
		errs = append(errs, FieldError{Field: "budgetTier", Message: "is not a known tier"})
	}
	if input.TravelPreference != nil && !input.TravelPreference.Valid() {
		errs = append(errs, FieldError{Field: "travelPreference", Message: "is not a known transport mode"})
	}

	return errs
}

func validateDestinations(destinations []Destination) []FieldError {
	var errs []FieldError

	if len(destinations) > MaxDestinations {
		errs = append(errs, FieldError{Field: "destinations", Message: "must contain at most 12 entries"})
	}
	for _, d := range destinations {
		if strings.TrimSpace(d.Location) == "" {
			errs = append(errs, FieldError{Field: "destinations", Message: "every destination needs a location"})
			break
		}
		if len(d.Location) > MaxLocationLength {
			errs = append(errs, FieldError{Field: "destinations", Message: "locations must be at most 120 characters"})
			break
		}
		if d.RequestedDays < 0 {
			errs = append(errs, FieldError{Field: "destinations", Message: "requested days must not be negative"})
			break
		}
	}

	return errs
}

func validateTripNumbers(totalDays int, totalBudget float64, travelers int) []FieldError {
	var errs []FieldError

	if totalDays < 1 || totalDays > MaxTotalDays {
		errs = append(errs, FieldError{Field: "totalDays", Message: "must be between 1 and 90"})
	}
	if totalBudget <= 0 {
		errs = append(errs, FieldError{Field: "totalBudget", Message: "must be positive"})
	}
	if travelers < 0 || travelers > MaxTravelers {
		errs = append(errs, FieldError{Field: "travelers", Message: "must be between 1 and 20"})
	}

	return errs
}
