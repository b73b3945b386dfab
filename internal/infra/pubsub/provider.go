package pubsub

import (
	"context"
	"log/slog"

	"accountd/config"
	"accountd/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Provider names accepted in the pubsub config block.
const (
	ProviderGoogle = "google"
	ProviderLocal  = "local"
	ProviderNoop   = "noop"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the publisher implementation from config and
// registers its shutdown hook.
func NewEventPublisher(params Params) (service.EventPublisher, error) {
	publisher, err := newPublisher(params)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(params Params) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderNoop {
		params.Logger.Info("event publishing disabled, using noop publisher")

		return NewNoopPublisher(params.Logger), nil
	}

	switch cfg.Provider {
	case ProviderGoogle:
		return NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, params.Logger)
	case ProviderLocal:
		return NewLocalHTTPPublisher(cfg.LocalEndpoint, params.Logger), nil
	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// noopPublisher discards events. Used when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher creates a publisher that drops all events.
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishAccountChanged(_ context.Context, event *service.AccountChangedEvent) error {
	p.logger.Debug("[NoopPubSub] Dropping account changed event", slog.String("account_id", event.ID))

	return nil
}

func (p *noopPublisher) PublishAccountDeleted(_ context.Context, event *service.AccountDeletedEvent) error {
	p.logger.Debug("[NoopPubSub] Dropping account deleted event", slog.String("account_id", event.ID))

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
