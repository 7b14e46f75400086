package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/rs/zerolog"
)

// PubSubHandler handles Pub/Sub messages for the worker.
type PubSubHandler struct {
	client           *pubsub.Client
	subscriber       *pubsub.Subscriber
	subscriptionName string
	warmJob          *WarmJob
	logger           zerolog.Logger
}

// PubSubConfig holds configuration for the Pub/Sub handler.
type PubSubConfig struct {
	ProjectID        string
	SubscriptionName string
	WarmJob          *WarmJob
	Logger           zerolog.Logger
}

// WarmMessage represents a route-cache warm job message. Cities, when
// present, override the configured corridors for this run.
type WarmMessage struct {
	JobType string   `json:"job_type"`
	Cities  []string `json:"cities,omitempty"`
}

// NewPubSubHandler creates a new Pub/Sub handler.
func NewPubSubHandler(ctx context.Context, cfg PubSubConfig) (*PubSubHandler, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("creating pubsub client: %w", err)
	}

	subscriber := client.Subscriber(cfg.SubscriptionName)

	// Configure receive settings.
	subscriber.ReceiveSettings.MaxOutstandingMessages = 10
	subscriber.ReceiveSettings.MaxExtension = 10 * time.Minute

	return &PubSubHandler{
		client:           client,
		subscriber:       subscriber,
		subscriptionName: cfg.SubscriptionName,
		warmJob:          cfg.WarmJob,
		logger:           cfg.Logger,
	}, nil
}

// Start begins processing Pub/Sub messages.
func (h *PubSubHandler) Start(ctx context.Context) error {
	h.logger.Info().
		Str("subscription", h.subscriptionName).
		Msg("starting pubsub handler")

	return h.subscriber.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		h.handleMessage(ctx, msg)
	})
}

// Close closes the Pub/Sub client.
func (h *PubSubHandler) Close() error {
	return h.client.Close()
}

func (h *PubSubHandler) handleMessage(ctx context.Context, msg *pubsub.Message) {
	startTime := time.Now()

	logger := h.logger.With().
		Str("message_id", msg.ID).
		Str("publish_time", msg.PublishTime.Format(time.RFC3339)).
		Logger()

	logger.Debug().Msg("received pubsub message")

	// Parse message.
	var warmMsg WarmMessage
	if err := json.Unmarshal(msg.Data, &warmMsg); err != nil {
		logger.Error().Err(err).Msg("failed to parse message")
		msg.Nack()
		return
	}

	// Handle based on job type.
	var err error
	switch warmMsg.JobType {
	case "route_warm":
		err = h.handleRouteWarm(ctx, warmMsg)
	case "health_check":
		err = h.handleHealthCheck(ctx)
	default:
		logger.Warn().Str("job_type", warmMsg.JobType).Msg("unknown job type")
		msg.Ack() // Ack unknown messages to prevent redelivery
		return
	}

	if err != nil {
		logger.Error().Err(err).Msg("job failed")
		msg.Nack()
		return
	}

	duration := time.Since(startTime)
	logger.Info().
		Str("job_type", warmMsg.JobType).
		Dur("duration", duration).
		Msg("job completed successfully")

	msg.Ack()
}

func (h *PubSubHandler) handleRouteWarm(ctx context.Context, msg WarmMessage) error {
	job := h.warmJob
	if len(msg.Cities) >= 2 {
		// Ad-hoc corridor: warm exactly the requested cities.
		job = NewWarmJob(WarmJobConfig{
			Config: WarmConfig{
				Targets: []WarmTarget{{Name: "ad-hoc", Cities: msg.Cities}},
			},
			Routes: h.warmJob.routes,
			Logger: h.logger,
		})
	}

	h.logger.Info().
		Int("cities", len(msg.Cities)).
		Msg("starting route-cache warm")

	result := job.Run(ctx)

	h.logger.Info().
		Dur("duration", result.Duration).
		Int("warmed", result.Warmed).
		Int("total_pairs", result.TotalPairs).
		Msg("route-cache warm completed")

	if result.Warmed < result.TotalPairs {
		return fmt.Errorf("warm run incomplete: %d/%d pairs", result.Warmed, result.TotalPairs)
	}

	return nil
}

func (h *PubSubHandler) handleHealthCheck(ctx context.Context) error {
	h.logger.Debug().Msg("running health check")

	// Warm a single well-known pair to verify provider connectivity.
	healthCheckJob := NewWarmJob(WarmJobConfig{
		Config: WarmConfig{
			Targets: []WarmTarget{
				{Name: "health-check", Cities: []string{"Lisbon", "Porto"}},
			},
			Concurrency: 1,
			Timeout:     10 * time.Second,
		},
		Routes: h.warmJob.routes,
		Logger: h.logger,
	})

	result := healthCheckJob.Run(ctx)

	if result.Warmed < result.TotalPairs {
		return fmt.Errorf("health check incomplete: %d/%d pairs", result.Warmed, result.TotalPairs)
	}

	h.logger.Debug().Msg("health check passed")
	return nil
}
