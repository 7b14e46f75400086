package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/roamplan/roamplan/internal/api/models"
	"github.com/roamplan/roamplan/internal/api/response"
	"github.com/roamplan/roamplan/internal/planner"
)

// PlanHandler handles duration feasibility endpoints.
type PlanHandler struct {
	planner *planner.Service
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(plannerService *planner.Service) *PlanHandler {
	return &PlanHandler{planner: plannerService}
}

// PlanDuration handles POST /v1/plan/duration - trip duration feasibility.
func (h *PlanHandler) PlanDuration(w http.ResponseWriter, r *http.Request) {
	var input models.PlanDurationRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	req, fieldErrors := tripRequestFromPlan(&input)
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "invalid plan request", fieldErrors)
		return
	}

	result, err := h.planner.PlanTripDuration(r.Context(), req)
	if err != nil {
		writePlannerError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, feasibilityToAPI(result))
}

// writePlannerError maps planner input contract errors to 400 responses.
func writePlannerError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, planner.ErrMissingStartLocation):
		response.BadRequest(w, r, err.Error(), []models.FieldError{
			{Field: "startLocation", Message: err.Error(), Code: "REQUIRED"},
		})
	case errors.Is(err, planner.ErrMissingDestination):
		response.BadRequest(w, r, err.Error(), []models.FieldError{
			{Field: "destinations", Message: err.Error(), Code: "REQUIRED"},
		})
	case errors.Is(err, planner.ErrNegativeDays):
		response.BadRequest(w, r, err.Error(), []models.FieldError{
			{Field: "requestedTotalDays", Message: err.Error(), Code: "INVALID"},
		})
	case errors.Is(err, planner.ErrInvalidBudgetTier):
		response.BadRequest(w, r, err.Error(), []models.FieldError{
			{Field: "budgetTier", Message: err.Error(), Code: "INVALID"},
		})
	default:
		response.InternalError(w, r, "plan computation failed")
	}
}
