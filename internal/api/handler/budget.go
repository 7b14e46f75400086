package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/roamplan/roamplan/internal/api/models"
	"github.com/roamplan/roamplan/internal/api/response"
	"github.com/roamplan/roamplan/internal/budget"
)

// BudgetHandler handles budget envelope endpoints.
type BudgetHandler struct{}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// Allocation handles POST /v1/budget/allocation - derive a budget allocation.
func (h *BudgetHandler) Allocation(w http.ResponseWriter, r *http.Request) {
	var input models.AllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	alloc, ok := deriveAllocation(w, r, &input)
	if !ok {
		return
	}

	response.JSON(w, r, http.StatusOK, allocationToAPI(alloc))
}

// Reconciliation handles POST /v1/budget/reconciliation - reconcile
// itinerary costs against a derived allocation.
func (h *BudgetHandler) Reconciliation(w http.ResponseWriter, r *http.Request) {
	var input models.ReconciliationRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	alloc, ok := deriveAllocation(w, r, &input.Allocation)
	if !ok {
		return
	}

	rec := budget.DeriveReconciliation(alloc, segmentsFromAPI(input.Segments))
	risks := budget.DetectRisks(alloc, rec)

	response.JSON(w, r, http.StatusOK, reconciliationToAPI(rec, risks))
}

// deriveAllocation validates and derives an allocation, writing the
// error response itself when the input is unusable.
func deriveAllocation(w http.ResponseWriter, r *http.Request, input *models.AllocationRequest) (*budget.Allocation, bool) {
	req, fieldErrors := tripRequestFromAllocation(input)
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "invalid allocation request", fieldErrors)
		return nil, false
	}

	alloc, err := budget.DeriveAllocation(req)
	if err != nil {
		if errors.Is(err, budget.ErrNonPositiveBudget) {
			response.BadRequest(w, r, err.Error(), []models.FieldError{
				{Field: "totalBudget", Message: err.Error(), Code: "INVALID"},
			})
			return nil, false
		}
		response.InternalError(w, r, "allocation failed")
		return nil, false
	}
	return alloc, true
}
