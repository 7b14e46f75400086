package budget

import "fmt"

// Buffer health threshold as a share of total budget.
const lowBufferShare = 0.05

// RiskFlag is one derived budget warning for dashboard display.
type RiskFlag struct {
	Code    string
	Message string
}

// Risk flag codes.
const (
	RiskLowBuffer         = "low_buffer"
	RiskEnvelopeExhausted = "envelope_exhausted"
	RiskOverBudget        = "over_budget"
	RiskCategoryOvershoot = "category_overshoot"
)

// DetectRisks derives warning flags from an allocation and its latest
// reconciliation. Thin view over the two results, no new computation of
// its own.
func DetectRisks(alloc *Allocation, rec *ReconciliationResult) []RiskFlag {
	var flags []RiskFlag

	if !rec.Balanced {
		flags = append(flags, RiskFlag{
			Code:    RiskOverBudget,
			Message: fmt.Sprintf("itinerary costs exceed the total budget by %.2f %s", rec.Overshoot, alloc.Currency),
		})
	}

	bufferLeft := alloc.Allocated(EnvelopeBuffer) - rec.SpentByCategory[EnvelopeBuffer]
	if bufferLeft < alloc.Total*lowBufferShare {
		flags = append(flags, RiskFlag{
			Code:    RiskLowBuffer,
			Message: fmt.Sprintf("buffer is below %.0f%% of the total budget", lowBufferShare*100),
		})
	}

	for _, env := range Envelopes {
		if env == EnvelopeBuffer {
			continue
		}
		if alloc.Allocated(env) > 0 && rec.SpentByCategory[env] >= alloc.Allocated(env) {
			flags = append(flags, RiskFlag{
				Code:    RiskEnvelopeExhausted,
				Message: fmt.Sprintf("%s envelope is fully consumed", env),
			})
		}
	}

	for _, v := range rec.CategoryViolations {
		flags = append(flags, RiskFlag{
			Code:    RiskCategoryOvershoot,
			Message: fmt.Sprintf("%s spending exceeds its envelope by %.2f %s", v.Category, v.Overshoot, alloc.Currency),
		})
	}

	return flags
}
