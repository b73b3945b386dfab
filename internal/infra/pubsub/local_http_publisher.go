package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"accountd/internal/domain/service"

	"github.com/pkg/errors"
)

const localPublishTimeout = 5 * time.Second

// PubSubPushMessage mirrors the envelope Google Pub/Sub uses for push
// subscriptions, so local subscribers can reuse the same decoding path.
type PubSubPushMessage struct {
	Message struct {
		Data       string            `json:"data"`
		Attributes map[string]string `json:"attributes"`
		MessageID  string            `json:"messageId"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher implements EventPublisher by POSTing push-style
// envelopes to a local endpoint. Intended for development without a
// Pub/Sub emulator.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher creates a publisher that delivers events over HTTP.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPublishTimeout},
		logger:   logger,
	}
}

// PublishAccountChanged delivers a created/updated event to the local endpoint.
func (p *localHTTPPublisher) PublishAccountChanged(ctx context.Context, event *service.AccountChangedEvent) error {
	return p.publish(ctx, eventTypeChanged, event.ID, event.RequestID, event)
}

// PublishAccountDeleted delivers a deletion event to the local endpoint.
func (p *localHTTPPublisher) PublishAccountDeleted(ctx context.Context, event *service.AccountDeletedEvent) error {
	return p.publish(ctx, eventTypeDeleted, event.ID, event.RequestID, event)
}

func (p *localHTTPPublisher) publish(ctx context.Context, eventType, accountID, requestID string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	var push PubSubPushMessage
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = map[string]string{
		"event_type": eventType,
		"account_id": accountID,
	}
	if requestID != "" {
		push.Message.Attributes["request_id"] = requestID
	}
	push.Message.MessageID = fmt.Sprintf("local-%d", time.Now().UnixNano())
	push.Subscription = "local"

	body, err := json.Marshal(&push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to deliver event to local endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("local endpoint returned status %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Event delivered",
		slog.String("event_type", eventType),
		slog.String("account_id", accountID),
		slog.String("endpoint", p.endpoint),
	)

	return nil
}

// Close is a no-op for the HTTP publisher.
func (p *localHTTPPublisher) Close() error {
	return nil
}
