package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roamplan/roamplan/internal/api/models"
	"github.com/roamplan/roamplan/internal/api/response"
	"github.com/roamplan/roamplan/internal/trip"
)

// TripHandler handles saved-trip endpoints.
type TripHandler struct {
	service *trip.Service
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(service *trip.Service) *TripHandler {
	return &TripHandler{service: service}
}

const defaultTripPageLimit = 50

// ListTrips handles GET /v1/trips - list the caller's saved trips.
func (h *TripHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	result, err := h.service.List(r.Context(), userID, defaultTripPageLimit)
	if err != nil {
		response.InternalError(w, r, "listing trips failed")
		return
	}

	page := models.PagedTrips{
		Items: make([]models.Trip, 0, len(result.Items)),
		Meta: models.PagedResponseMeta{
			Limit: defaultTripPageLimit,
		},
	}
	if result.NextCursor != "" {
		cursor := result.NextCursor
		page.Meta.NextCursor = &cursor
	}
	for _, t := range result.Items {
		page.Items = append(page.Items, tripToAPI(t))
	}
	response.JSON(w, r, http.StatusOK, page)
}

// CreateTrip handles POST /v1/trips - create a saved trip.
func (h *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	var input models.TripCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	created, err := h.service.Create(r.Context(), userID, createInputFromAPI(&input))
	if err != nil {
		writeTripError(w, r, err)
		return
	}

	location := fmt.Sprintf("/v1/trips/%s", created.ID)
	response.Created(w, r, location, tripToAPI(created))
}

// GetTrip handles GET /v1/trips/{tripId} - get a saved trip.
func (h *TripHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	tripID := chi.URLParam(r, "tripId")
	if tripID == "" {
		response.BadRequest(w, r, "tripId is required", nil)
		return
	}

	found, err := h.service.Get(r.Context(), userID, tripID)
	if err != nil {
		writeTripError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, tripToAPI(found))
}

// UpdateTrip handles PATCH /v1/trips/{tripId} - update a saved trip.
func (h *TripHandler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	tripID := chi.URLParam(r, "tripId")
	if tripID == "" {
		response.BadRequest(w, r, "tripId is required", nil)
		return
	}

	var input models.TripUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	updated, err := h.service.Update(r.Context(), userID, tripID, updateInputFromAPI(&input))
	if err != nil {
		writeTripError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, tripToAPI(updated))
}

// DeleteTrip handles DELETE /v1/trips/{tripId} - delete a saved trip.
func (h *TripHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	tripID := chi.URLParam(r, "tripId")
	if tripID == "" {
		response.BadRequest(w, r, "tripId is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), userID, tripID); err != nil {
		writeTripError(w, r, err)
		return
	}
	response.NoContent(w, r)
}

// writeTripError maps trip service errors onto problem responses.
func writeTripError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *trip.ValidationError
	switch {
	case errors.As(err, &validationErr):
		fieldErrors := make([]models.FieldError, 0, len(validationErr.Errors))
		for _, fe := range validationErr.Errors {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   fe.Field,
				Message: fe.Message,
			})
		}
		response.BadRequest(w, r, "validation failed", fieldErrors)
	case errors.Is(err, trip.ErrTripNotFound):
		response.NotFound(w, r, "trip not found")
	case errors.Is(err, trip.ErrNotAuthorized):
		response.NotFound(w, r, "trip not found")
	default:
		response.InternalError(w, r, "trip operation failed")
	}
}

func tripToAPI(t *trip.Trip) models.Trip {
	out := models.Trip{
		ID:               t.ID,
		Name:             t.Name,
		StartLocation:    t.StartLocation,
		ReturnLocation:   t.ReturnLocation,
		Destinations:     make([]models.Destination, 0, len(t.Destinations)),
		TotalDays:        t.TotalDays,
		TravelStyle:      string(t.TravelStyle),
		BudgetTier:       string(t.BudgetTier),
		TotalBudget:      t.TotalBudget,
		Currency:         t.Currency,
		Travelers:        t.Travelers,
		TravelPreference: string(t.TravelPreference),
		CreatedAt:        models.Timestamp(t.CreatedAt),
		UpdatedAt:        models.Timestamp(t.UpdatedAt),
	}
	for _, d := range t.Destinations {
		out.Destinations = append(out.Destinations, models.Destination{
			Location:      d.Location,
			RequestedDays: d.RequestedDays,
		})
	}
	return out
}

func createInputFromAPI(in *models.TripCreateRequest) *trip.CreateInput {
	out := &trip.CreateInput{
		Name:             in.Name,
		StartLocation:    in.StartLocation,
		ReturnLocation:   in.ReturnLocation,
		TotalDays:        in.TotalDays,
		TravelStyle:      trip.TravelStyle(in.TravelStyle),
		BudgetTier:       tierFromLabel(in.BudgetTier),
		TotalBudget:      in.TotalBudget,
		Currency:         in.Currency,
		Travelers:        in.Travelers,
		TravelPreference: trip.TransportMode(in.TravelPreference),
	}
	for _, d := range in.Destinations {
		out.Destinations = append(out.Destinations, trip.Destination{
			Location:      d.Location,
			RequestedDays: d.RequestedDays,
		})
	}
	return out
}

func updateInputFromAPI(in *models.TripUpdateRequest) *trip.UpdateInput {
	out := &trip.UpdateInput{
		Name:           in.Name,
		StartLocation:  in.StartLocation,
		ReturnLocation: in.ReturnLocation,
		TotalDays:      in.TotalDays,
		TotalBudget:    in.TotalBudget,
		Currency:       in.Currency,
		Travelers:      in.Travelers,
	}
	if in.TravelStyle != nil {
		style := trip.TravelStyle(*in.TravelStyle)
		out.TravelStyle = &style
	}
	if in.BudgetTier != nil {
		tier := tierFromLabel(*in.BudgetTier)
		out.BudgetTier = &tier
	}
	if in.TravelPreference != nil {
		mode := trip.TransportMode(*in.TravelPreference)
		out.TravelPreference = &mode
	}
	for _, d := range in.Destinations {
		out.Destinations = append(out.Destinations, trip.Destination{
			Location:      d.Location,
			RequestedDays: d.RequestedDays,
		})
	}
	return out
}

// tierFromLabel accepts the user-facing tier labels; unparseable labels
// pass through untouched so the service reports them as field errors.
func tierFromLabel(label string) trip.BudgetTier {
	if tier, ok := trip.ParseBudgetTier(label); ok {
		return tier
	}
	return trip.BudgetTier(label)
}
