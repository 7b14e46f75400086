package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/roamplan/roamplan/internal/routetime"
)

// RouteWarmer is the slice of the route-time service the warm job
// needs.
type RouteWarmer interface {
	Warm(ctx context.Context, from, to string)
	CacheStats() routetime.CacheStats
}

// WarmJob pre-populates the route-time cache for configured corridors.
type WarmJob struct {
	config WarmConfig
	routes RouteWarmer
	logger zerolog.Logger

	// Metrics
	metrics *WarmMetrics
}

// WarmMetrics tracks warm job statistics.
type WarmMetrics struct {
	mu sync.RWMutex

	// Counters
	TotalRuns   int64
	WarmedPairs int64

	// Timings
	LastRunAt       time.Time
	LastRunDuration time.Duration
	TotalDuration   time.Duration
}

// WarmJobConfig holds configuration for creating a WarmJob.
type WarmJobConfig struct {
	Config WarmConfig
	Routes RouteWarmer
	Logger zerolog.Logger
}

// NewWarmJob creates a new warm job processor.
func NewWarmJob(cfg WarmJobConfig) *WarmJob {
	config := cfg.Config
	if len(config.Targets) == 0 {
		config = DefaultWarmConfig()
	}
	if config.Concurrency < 1 {
		config.Concurrency = 3
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return &WarmJob{
		config:  config,
		routes:  cfg.Routes,
		logger:  cfg.Logger,
		metrics: &WarmMetrics{},
	}
}

// WarmResult contains the result of a warm operation. Warming never
// fails per pair; lookups that can't reach the provider land in the
// cache as estimates, which the cache stats make visible.
type WarmResult struct {
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
	TotalPairs      int
	Warmed          int
	ServiceEntries  int
	EstimateEntries int
}

// Run executes the warm job for all configured corridors.
func (j *WarmJob) Run(ctx context.Context) *WarmResult {
	startTime := time.Now()
	result := &WarmResult{
		StartTime:  startTime,
		TotalPairs: j.config.TotalPairs(),
	}

	j.logger.Info().
		Int("total_pairs", result.TotalPairs).
		Int("concurrency", j.config.Concurrency).
		Msg("starting route-cache warm job")

	pairs := j.config.AllPairs()

	pairsChan := make(chan CityPair, len(pairs))
	warmedChan := make(chan CityPair, len(pairs))

	var wg sync.WaitGroup
	for i := 0; i < j.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j.warmWorker(ctx, pairsChan, warmedChan)
		}()
	}

	for _, p := range pairs {
		pairsChan <- p
	}
	close(pairsChan)

	go func() {
		wg.Wait()
		close(warmedChan)
	}()

	for range warmedChan {
		result.Warmed++
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(startTime)

	stats := j.routes.CacheStats()
	result.ServiceEntries = stats.ServiceEntries
	result.EstimateEntries = stats.EstimateEntries

	j.updateMetrics(result)

	j.logger.Info().
		Dur("duration", result.Duration).
		Int("warmed", result.Warmed).
		Int("service_entries", result.ServiceEntries).
		Int("estimate_entries", result.EstimateEntries).
		Msg("route-cache warm job completed")

	return result
}

func (j *WarmJob) warmWorker(ctx context.Context, pairs <-chan CityPair, warmed chan<- CityPair) {
	for pair := range pairs {
		select {
		case <-ctx.Done():
			return
		default:
			pairCtx, cancel := context.WithTimeout(ctx, j.config.Timeout)
			j.routes.Warm(pairCtx, pair.From, pair.To)
			cancel()
			warmed <- pair
		}
	}
}

func (j *WarmJob) updateMetrics(result *WarmResult) {
	j.metrics.mu.Lock()
	defer j.metrics.mu.Unlock()

	j.metrics.TotalRuns++
	j.metrics.WarmedPairs += int64(result.Warmed)
	j.metrics.LastRunAt = result.EndTime
	j.metrics.LastRunDuration = result.Duration
	j.metrics.TotalDuration += result.Duration
}

// GetMetrics returns a copy of the current metrics.
func (j *WarmJob) GetMetrics() WarmMetrics {
	j.metrics.mu.RLock()
	defer j.metrics.mu.RUnlock()

	return WarmMetrics{
		TotalRuns:       j.metrics.TotalRuns,
		WarmedPairs:     j.metrics.WarmedPairs,
		LastRunAt:       j.metrics.LastRunAt,
		LastRunDuration: j.metrics.LastRunDuration,
		TotalDuration:   j.metrics.TotalDuration,
	}
}

// MetricsSnapshot returns a snapshot of the current metrics as a map.
func (j *WarmJob) MetricsSnapshot() map[string]interface{} {
	m := j.GetMetrics()
	return map[string]interface{}{
		"total_runs":        m.TotalRuns,
		"warmed_pairs":      m.WarmedPairs,
		"last_run_at":       m.LastRunAt,
		"last_run_duration": m.LastRunDuration.String(),
		"total_duration":    m.TotalDuration.String(),
	}
}
