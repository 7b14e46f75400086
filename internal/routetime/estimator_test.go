package routetime

import "testing"

func TestEstimator_Classify(t *testing.T) {
	e := NewEstimator()

	tests := []struct {
		name string
		from string
		to   string
		want DistanceTier
	}{
		{name: "same city", from: "Visakhapatnam", to: "visakhapatnam", want: TierLocal},
		{name: "same city with whitespace", from: " Delhi ", to: "delhi", want: TierLocal},
		{name: "short hop", from: "Delhi", to: "Jaipur", want: TierShort},
		{name: "medium haul", from: "Visakhapatnam", to: "Tirupati", want: TierMedium},
		{name: "long haul", from: "Delhi", to: "Chennai", want: TierLong},
		{name: "unknown same region", from: "Springfield, Ohio", to: "Dayton, Ohio", want: TierShort},
		{name: "unknown different regions", from: "Springfield, Ohio", to: "Austin, Texas", want: TierMedium},
		{name: "unknown no region hint", from: "Atlantis", to: "El Dorado", want: TierMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Classify(tt.from, tt.to); got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestEstimator_Estimate_NeverNegative(t *testing.T) {
	e := NewEstimator()

	pairs := [][2]string{
		{"Delhi", "Delhi"},
		{"Delhi", "Mumbai"},
		{"Atlantis", "El Dorado"},
		{"", ""},
	}

	for _, p := range pairs {
		rt := e.Estimate(p[0], p[1])
		if rt.Hours < 0 {
			t.Errorf("Estimate(%q, %q) returned negative hours %f", p[0], p[1], rt.Hours)
		}
		if rt.Source != SourceEstimate {
			t.Errorf("Estimate(%q, %q) source = %q, want %q", p[0], p[1], rt.Source, SourceEstimate)
		}
	}
}

func TestEstimator_Estimate_Deterministic(t *testing.T) {
	e := NewEstimator()

	a := e.Estimate("Visakhapatnam", "Tirupati")
	b := e.Estimate("Visakhapatnam", "Tirupati")

	if a.Hours != b.Hours || a.DistanceKm != b.DistanceKm {
		t.Error("expected identical estimates for identical inputs")
	}
}

func TestEstimator_Estimate_LocalTier(t *testing.T) {
	e := NewEstimator()

	rt := e.Estimate("Mumbai", "Mumbai")
	if rt.Hours != 0.5 {
		t.Errorf("expected 0.5 hours for local tier, got %f", rt.Hours)
	}
}

func TestDistanceTier_RepresentativeKm_Monotonic(t *testing.T) {
	tiers := []DistanceTier{TierLocal, TierShort, TierMedium, TierLong}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].RepresentativeKm() <= tiers[i-1].RepresentativeKm() {
			t.Errorf("representative distance for %q should exceed %q", tiers[i], tiers[i-1])
		}
	}
}
