// Package worker provides background job processing for RoamPlan.
package worker

import (
	"time"
)

// WarmTarget represents a travel corridor to pre-warm.
type WarmTarget struct {
	// Name is the human-readable name of the corridor.
	Name string

	// Cities are the cities routinely combined into trips. Every
	// ordered pair within a corridor gets warmed.
	Cities []string

	// Priority determines warm order (lower = higher priority).
	Priority int
}

// CityPair is one ordered route-cache key.
type CityPair struct {
	From string
	To   string
}

// WarmConfig holds configuration for the route-cache warm job.
type WarmConfig struct {
	// Targets are the corridors to warm.
	// If empty, uses DefaultWarmTargets.
	Targets []WarmTarget

	// Concurrency is the number of concurrent warm operations.
	// Default: 3
	Concurrency int

	// Timeout is the timeout for each pair.
	// Default: 30 seconds
	Timeout time.Duration
}

// DefaultWarmConfig returns the default warm configuration.
func DefaultWarmConfig() WarmConfig {
	return WarmConfig{
		Targets:     DefaultWarmTargets(),
		Concurrency: 3,
		Timeout:     30 * time.Second,
	}
}

// DefaultWarmTargets returns the corridors that dominate planning
// traffic. Priorities follow observed request volume.
func DefaultWarmTargets() []WarmTarget {
	return []WarmTarget{
		{
			Name:     "Iberia",
			Priority: 1,
			Cities:   []string{"Lisbon", "Porto", "Madrid", "Barcelona", "Seville"},
		},
		{
			Name:     "Golden Triangle",
			Priority: 1,
			Cities:   []string{"Delhi", "Agra", "Jaipur"},
		},
		{
			Name:     "South India",
			Priority: 2,
			Cities:   []string{"Visakhapatnam", "Tirupati", "Hyderabad", "Bangalore"},
		},
		{
			Name:     "Central Europe",
			Priority: 2,
			Cities:   []string{"Prague", "Vienna", "Budapest", "Bratislava"},
		},
		{
			Name:     "Thailand",
			Priority: 3,
			Cities:   []string{"Bangkok", "Chiang Mai", "Phuket"},
		},
		{
			Name:     "Japan",
			Priority: 3,
			Cities:   []string{"Tokyo", "Kyoto", "Osaka"},
		},
	}
}

// AllPairs returns every ordered city pair from every corridor, in
// target order. Both directions are included: the cache keys ordered
// pairs.
func (c WarmConfig) AllPairs() []CityPair {
	var pairs []CityPair
	for _, target := range c.Targets {
		for i, from := range target.Cities {
			for j, to := range target.Cities {
				if i == j {
					continue
				}
				pairs = append(pairs, CityPair{From: from, To: to})
			}
		}
	}
	return pairs
}

// TotalPairs returns the total number of pairs to warm.
func (c WarmConfig) TotalPairs() int {
	total := 0
	for _, target := range c.Targets {
		n := len(target.Cities)
		total += n * (n - 1)
	}
	return total
}
