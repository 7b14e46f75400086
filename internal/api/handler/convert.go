package handler

import (
	"github.com/roamplan/roamplan/internal/api/models"
	"github.com/roamplan/roamplan/internal/budget"
	"github.com/roamplan/roamplan/internal/itinerary"
	"github.com/roamplan/roamplan/internal/planner"
	"github.com/roamplan/roamplan/internal/trip"
)

// tripRequestFromPlan maps a plan request onto the domain trip request.
// Unknown style and tier labels are reported as field errors rather
// than silently defaulted; absent ones stay empty and the domain
// packages apply their own defaults.
func tripRequestFromPlan(in *models.PlanDurationRequest) (trip.TripRequest, []models.FieldError) {
	var fieldErrors []models.FieldError

	req := trip.TripRequest{
		StartLocation:      in.StartLocation,
		ReturnLocation:     in.ReturnLocation,
		RequestedTotalDays: in.RequestedTotalDays,
	}
	for _, d := range in.Destinations {
		req.Destinations = append(req.Destinations, trip.Destination{
			Location:      d.Location,
			RequestedDays: d.RequestedDays,
		})
	}

	if in.TravelStyle != "" {
		style := trip.TravelStyle(in.TravelStyle)
		if !style.Valid() {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   "travelStyle",
				Message: "unknown travel style",
				Code:    "INVALID",
			})
		}
		req.TravelStyle = style
	}
	if in.BudgetTier != "" {
		tier, ok := trip.ParseBudgetTier(in.BudgetTier)
		if !ok {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   "budgetTier",
				Message: "unknown budget tier",
				Code:    "INVALID",
			})
		}
		req.BudgetTier = tier
	}
	if in.TravelPreference != "" {
		mode := trip.TransportMode(in.TravelPreference)
		if !mode.Valid() {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   "travelPreference",
				Message: "unknown transport mode",
				Code:    "INVALID",
			})
		}
		req.TravelPreference = mode
	}

	return req, fieldErrors
}

// tripRequestFromAllocation maps an allocation request onto the domain
// trip request.
func tripRequestFromAllocation(in *models.AllocationRequest) (trip.TripRequest, []models.FieldError) {
	req, fieldErrors := tripRequestFromPlan(&models.PlanDurationRequest{
		Destinations:       in.Destinations,
		RequestedTotalDays: in.TotalDays,
		TravelStyle:        in.TravelStyle,
		BudgetTier:         in.BudgetTier,
	})
	req.StartLocation = ""
	req.TotalBudget = in.TotalBudget
	req.Currency = in.Currency
	req.Travelers = in.Travelers
	return req, fieldErrors
}

func segmentsFromAPI(in []models.Segment) []itinerary.Segment {
	out := make([]itinerary.Segment, 0, len(in))
	for _, s := range in {
		out = append(out, itinerary.Segment{
			Type:          itinerary.SegmentType(s.Type),
			Title:         s.Title,
			DayNumber:     s.DayNumber,
			Location:      s.Location,
			EstimatedCost: s.EstimatedCost,
			OrderIndex:    s.OrderIndex,
			Latitude:      s.Latitude,
			Longitude:     s.Longitude,
			Metadata: itinerary.Metadata{
				Time:          s.Metadata.Time,
				TransportMode: s.Metadata.TransportMode,
				Notes:         s.Metadata.Notes,
			},
		})
	}
	return out
}

func segmentsToAPI(in []itinerary.Segment) []models.Segment {
	out := make([]models.Segment, 0, len(in))
	for _, s := range in {
		out = append(out, models.Segment{
			Type:          string(s.Type),
			Title:         s.Title,
			DayNumber:     s.DayNumber,
			Location:      s.Location,
			EstimatedCost: s.EstimatedCost,
			OrderIndex:    s.OrderIndex,
			Latitude:      s.Latitude,
			Longitude:     s.Longitude,
			Metadata: models.SegmentMetadata{
				Time:          s.Metadata.Time,
				TransportMode: s.Metadata.TransportMode,
				Notes:         s.Metadata.Notes,
			},
		})
	}
	return out
}

func feasibilityToAPI(res *planner.FeasibilityResult) models.FeasibilityResponse {
	resp := models.FeasibilityResponse{
		Feasible:            res.Feasible,
		RequestedDays:       res.RequestedDays,
		SuggestedDays:       res.SuggestedDays,
		TravelDaysRequired:  res.TravelDaysRequired,
		ExplorationDays:     res.ExplorationDays,
		MinimumRequiredDays: res.MinimumRequiredDays,
		Segments:            make([]models.RouteSegment, 0, len(res.Segments)),
		AllOvernight:        res.AllOvernight,
	}
	if res.Reason != "" {
		reason := res.Reason
		resp.Reason = &reason
	}
	for _, seg := range res.Segments {
		resp.Segments = append(resp.Segments, models.RouteSegment{
			From:         seg.Route.From,
			To:           seg.Route.To,
			Hours:        seg.Route.Hours,
			DistanceKm:   seg.Route.DistanceKm,
			Source:       string(seg.Route.Source),
			TravelDays:   seg.TravelDays,
			CanOvernight: seg.CanOvernight,
		})
	}
	for _, day := range res.Days {
		resp.Days = append(resp.Days, models.PlanDay{
			DayNumber: day.DayNumber,
			Kind:      string(day.Kind),
			Location:  day.Location,
		})
	}
	return resp
}

func allocationToAPI(alloc *budget.Allocation) models.AllocationResponse {
	resp := models.AllocationResponse{
		Total:     alloc.Total,
		Currency:  alloc.Currency,
		Tier:      string(alloc.Tier),
		Amounts:   envelopeMapToAPI(alloc.Amounts),
		Remaining: envelopeMapToAPI(alloc.Remaining),
		Ratios:    envelopeMapToAPI(alloc.Ratios),
	}
	return resp
}

func envelopeMapToAPI(in map[budget.Envelope]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}

func reconciliationToAPI(rec *budget.ReconciliationResult, risks []budget.RiskFlag) models.ReconciliationResponse {
	resp := models.ReconciliationResponse{
		Balanced:           rec.Balanced,
		Total:              rec.Total,
		Overshoot:          rec.Overshoot,
		SpentByCategory:    envelopeMapToAPI(rec.SpentByCategory),
		CategoryViolations: make([]models.CategoryViolation, 0, len(rec.CategoryViolations)),
	}
	for _, v := range rec.CategoryViolations {
		resp.CategoryViolations = append(resp.CategoryViolations, models.CategoryViolation{
			Category:  string(v.Category),
			Spent:     v.Spent,
			Allocated: v.Allocated,
			Overshoot: v.Overshoot,
		})
	}
	for _, risk := range risks {
		resp.Risks = append(resp.Risks, models.RiskFlag{
			Code:    risk.Code,
			Message: risk.Message,
		})
	}
	return resp
}
