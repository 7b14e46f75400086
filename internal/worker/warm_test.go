package worker_test

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamplan/roamplan/internal/routetime"
	"github.com/roamplan/roamplan/internal/worker"
)

// stubWarmer records warmed pairs and fakes cache stats.
type stubWarmer struct {
	mu     sync.Mutex
	warmed []worker.CityPair
}

func (s *stubWarmer) Warm(_ context.Context, from, to string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warmed = append(s.warmed, worker.CityPair{From: from, To: to})
}

func (s *stubWarmer) CacheStats() routetime.CacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return routetime.CacheStats{
		TotalEntries:    len(s.warmed),
		EstimateEntries: len(s.warmed),
	}
}

func (s *stubWarmer) pairs() []worker.CityPair {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]worker.CityPair(nil), s.warmed...)
}

func TestDefaultWarmConfig(t *testing.T) {
	cfg := worker.DefaultWarmConfig()

	assert.Equal(t, 3, cfg.Concurrency)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.NotEmpty(t, cfg.Targets)
}

func TestDefaultWarmTargets(t *testing.T) {
	targets := worker.DefaultWarmTargets()

	// Should have multiple corridors
	assert.GreaterOrEqual(t, len(targets), 5)

	// Find Iberia
	var iberia *worker.WarmTarget
	for i := range targets {
		if targets[i].Name == "Iberia" {
			iberia = &targets[i]
			break
		}
	}
	require.NotNil(t, iberia, "Iberia should be in targets")
	assert.Equal(t, 1, iberia.Priority)
	assert.GreaterOrEqual(t, len(iberia.Cities), 3)
}

func TestWarmConfig_AllPairs(t *testing.T) {
	cfg := worker.WarmConfig{
		Targets: []worker.WarmTarget{
			{Name: "A", Cities: []string{"X", "Y", "Z"}},
			{Name: "B", Cities: []string{"P", "Q"}},
		},
	}

	pairs := cfg.AllPairs()

	// 3*2 ordered pairs for the first corridor, 2*1 for the second
	assert.Len(t, pairs, 8)
	assert.Equal(t, 8, cfg.TotalPairs())

	// Both directions present
	assert.Contains(t, pairs, worker.CityPair{From: "X", To: "Y"})
	assert.Contains(t, pairs, worker.CityPair{From: "Y", To: "X"})

	// No self pairs
	for _, p := range pairs {
		assert.NotEqual(t, p.From, p.To)
	}
}

func TestWarmJob_Run(t *testing.T) {
	warmer := &stubWarmer{}
	job := worker.NewWarmJob(worker.WarmJobConfig{
		Config: worker.WarmConfig{
			Targets: []worker.WarmTarget{
				{Name: "test", Cities: []string{"Lisbon", "Porto", "Madrid"}},
			},
			Concurrency: 2,
			Timeout:     time.Second,
		},
		Routes: warmer,
		Logger: zerolog.New(io.Discard),
	})

	result := job.Run(context.Background())

	assert.Equal(t, 6, result.TotalPairs)
	assert.Equal(t, 6, result.Warmed)
	assert.Len(t, warmer.pairs(), 6)
	assert.Equal(t, 6, result.EstimateEntries)
	assert.GreaterOrEqual(t, result.Duration, time.Duration(0))
}

func TestWarmJob_Run_AgainstRealCache(t *testing.T) {
	routes := routetime.NewService(routetime.ServiceConfig{
		Logger: zerolog.New(io.Discard),
	})
	job := worker.NewWarmJob(worker.WarmJobConfig{
		Config: worker.WarmConfig{
			Targets: []worker.WarmTarget{
				{Name: "test", Cities: []string{"Lisbon", "Porto"}},
			},
			Concurrency: 1,
			Timeout:     time.Second,
		},
		Routes: routes,
		Logger: zerolog.New(io.Discard),
	})

	result := job.Run(context.Background())

	assert.Equal(t, 2, result.Warmed)
	// No provider configured: everything lands as an estimate.
	assert.Equal(t, 2, result.EstimateEntries)
	assert.Zero(t, result.ServiceEntries)

	stats := routes.CacheStats()
	assert.Equal(t, 2, stats.TotalEntries)
}

func TestWarmJob_Run_CanceledContext(t *testing.T) {
	warmer := &stubWarmer{}
	job := worker.NewWarmJob(worker.WarmJobConfig{
		Config: worker.WarmConfig{
			Targets: []worker.WarmTarget{
				{Name: "test", Cities: []string{"Lisbon", "Porto", "Madrid", "Barcelona"}},
			},
			Concurrency: 1,
			Timeout:     time.Second,
		},
		Routes: warmer,
		Logger: zerolog.New(io.Discard),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := job.Run(ctx)

	// Workers observe cancellation before warming.
	assert.LessOrEqual(t, result.Warmed, result.TotalPairs)
}

func TestWarmJob_Metrics(t *testing.T) {
	warmer := &stubWarmer{}
	job := worker.NewWarmJob(worker.WarmJobConfig{
		Config: worker.WarmConfig{
			Targets: []worker.WarmTarget{
				{Name: "test", Cities: []string{"Lisbon", "Porto"}},
			},
			Concurrency: 1,
			Timeout:     time.Second,
		},
		Routes: warmer,
		Logger: zerolog.New(io.Discard),
	})

	job.Run(context.Background())
	job.Run(context.Background())

	m := job.GetMetrics()
	assert.Equal(t, int64(2), m.TotalRuns)
	assert.Equal(t, int64(4), m.WarmedPairs)
	assert.False(t, m.LastRunAt.IsZero())

	snapshot := job.MetricsSnapshot()
	assert.Equal(t, int64(2), snapshot["total_runs"])
}

func TestNewWarmJob_Defaults(t *testing.T) {
	job := worker.NewWarmJob(worker.WarmJobConfig{
		Routes: &stubWarmer{},
		Logger: zerolog.New(io.Discard),
	})

	result := job.Run(context.Background())

	assert.Equal(t, worker.DefaultWarmConfig().TotalPairs(), result.TotalPairs)
}
