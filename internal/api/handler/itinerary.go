package handler

import (
	"encoding/json"
	"net/http"

	"github.com/roamplan/roamplan/internal/api/models"
	"github.com/roamplan/roamplan/internal/api/response"
	"github.com/roamplan/roamplan/internal/budget"
	"github.com/roamplan/roamplan/internal/guard"
	"github.com/roamplan/roamplan/internal/planner"
)

// ItineraryHandler handles itinerary sanitization endpoints.
type ItineraryHandler struct {
	guard   *guard.Guard
	planner *planner.Service
}

// NewItineraryHandler creates a new ItineraryHandler.
func NewItineraryHandler(g *guard.Guard, plannerService *planner.Service) *ItineraryHandler {
	return &ItineraryHandler{guard: g, planner: plannerService}
}

// Sanitize handles POST /v1/itinerary/sanitize - run the feasibility
// guard over an itinerary.
func (h *ItineraryHandler) Sanitize(w http.ResponseWriter, r *http.Request) {
	var input models.SanitizeRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	req, fieldErrors := tripRequestFromPlan(&input.Trip)
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "invalid trip", fieldErrors)
		return
	}

	// The allocation is optional: without one the guard still trims and
	// reorders, it just cannot charge inserted hops or clamp to envelopes.
	var alloc *budget.Allocation
	if input.Budget != nil {
		budgetReq, fieldErrors := tripRequestFromAllocation(input.Budget)
		if len(fieldErrors) > 0 {
			response.BadRequest(w, r, "invalid budget", fieldErrors)
			return
		}
		req.TotalBudget = budgetReq.TotalBudget
		req.Currency = budgetReq.Currency
		req.Travelers = budgetReq.Travelers

		derived, err := budget.DeriveAllocation(req)
		if err != nil {
			response.BadRequest(w, r, err.Error(), []models.FieldError{
				{Field: "budget.totalBudget", Message: err.Error(), Code: "INVALID"},
			})
			return
		}
		alloc = derived
	}

	resp := models.SanitizeResponse{}

	if input.BuildTravelSegments {
		plan, err := h.planner.PlanTripDuration(r.Context(), req)
		if err != nil {
			writePlannerError(w, r, err)
			return
		}
		travelSegments, issues := h.guard.BuildTravelSegments(req, plan, alloc)
		resp.TravelSegments = segmentsToAPI(travelSegments)
		resp.Issues = append(resp.Issues, issues...)
	}

	result := h.guard.Sanitize(req, alloc, segmentsFromAPI(input.Segments))
	resp.Segments = segmentsToAPI(result.Segments)
	resp.Issues = append(resp.Issues, result.Issues...)
	if resp.Issues == nil {
		resp.Issues = []string{}
	}

	response.JSON(w, r, http.StatusOK, resp)
}
