// Package pubsub provides EventPublisher implementations for the account
// change feed.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"accountd/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

const (
	eventTypeChanged = "account-changed"
	eventTypeDeleted = "account-deleted"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Fail fast if the topic is missing rather than on first publish.
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishAccountChanged publishes a created/updated event to Google Pub/Sub.
func (p *googlePubSubPublisher) PublishAccountChanged(ctx context.Context, event *service.AccountChangedEvent) error {
	return p.publish(ctx, eventTypeChanged, event.ID, event.RequestID, event)
}

// PublishAccountDeleted publishes a deletion event to Google Pub/Sub.
func (p *googlePubSubPublisher) PublishAccountDeleted(ctx context.Context, event *service.AccountDeletedEvent) error {
	return p.publish(ctx, eventTypeDeleted, event.ID, event.RequestID, event)
}

func (p *googlePubSubPublisher) publish(ctx context.Context, eventType, accountID, requestID string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_type": eventType,
		"account_id": accountID,
	}
	if requestID != "" {
		attributes["request_id"] = requestID
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}

	result := p.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Debug("[GooglePubSub] Event published",
		slog.String("event_type", eventType),
		slog.String("account_id", accountID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
