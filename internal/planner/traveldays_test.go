package planner

import (
	"testing"

	"github.com/roamplan/roamplan/internal/trip"
)

func TestTravelDaysFor(t *testing.T) {
	tests := []struct {
		name          string
		hours         float64
		tier          trip.BudgetTier
		wantDays      int
		wantOvernight bool
	}{
		{"absorbable short hop", 2.5, trip.TierMid, 0, false},
		{"exactly three hours", 3.0, trip.TierLow, 0, false},
		{"daytime leg", 4.5, trip.TierMid, 1, false},
		{"just under overnight band", 5.9, trip.TierHigh, 1, false},
		{"overnight band low tier", 9.4, trip.TierLow, 0, true},
		{"overnight band mid tier", 12.0, trip.TierMid, 0, true},
		{"overnight band high tier", 9.4, trip.TierHigh, 1, false},
		{"overnight band high tier long", 14.0, trip.TierHigh, 2, false},
		{"band upper edge low tier", 16.0, trip.TierLow, 0, true},
		{"long haul low tier", 18.0, trip.TierLow, 2, false},
		{"long haul high tier", 30.0, trip.TierHigh, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, overnight := travelDaysFor(tt.hours, tt.tier)
			if days != tt.wantDays {
				t.Errorf("travelDaysFor(%v, %s) days = %d, want %d", tt.hours, tt.tier, days, tt.wantDays)
			}
			if overnight != tt.wantOvernight {
				t.Errorf("travelDaysFor(%v, %s) overnight = %v, want %v", tt.hours, tt.tier, overnight, tt.wantOvernight)
			}
		})
	}
}
