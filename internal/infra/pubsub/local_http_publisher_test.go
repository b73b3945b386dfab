package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"accountd/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishAccountChanged(t *testing.T) {
	var received PubSubPushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	event := &service.AccountChangedEvent{
		RequestID: "req-1",
		ID:        "11111111-1111-1111-1111-111111111111",
		Email:     "user@example.com",
	}
	require.NoError(t, publisher.PublishAccountChanged(context.Background(), event))

	assert.Equal(t, eventTypeChanged, received.Message.Attributes["event_type"])
	assert.Equal(t, event.ID, received.Message.Attributes["account_id"])
	assert.Equal(t, event.RequestID, received.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.AccountChangedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_PublishAccountDeleted(t *testing.T) {
	var received PubSubPushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	event := &service.AccountDeletedEvent{ID: "22222222-2222-2222-2222-222222222222"}
	require.NoError(t, publisher.PublishAccountDeleted(context.Background(), event))

	assert.Equal(t, eventTypeDeleted, received.Message.Attributes["event_type"])
	// No request ID means no attribute at all.
	_, ok := received.Message.Attributes["request_id"]
	assert.False(t, ok)
}

func TestLocalHTTPPublisher_ServerErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishAccountChanged(context.Background(), &service.AccountChangedEvent{ID: "x"})
	assert.Error(t, err)
}

func TestNoopPublisher_DropsEverything(t *testing.T) {
	publisher := NewNoopPublisher(discardLogger())

	assert.NoError(t, publisher.PublishAccountChanged(context.Background(), &service.AccountChangedEvent{ID: "x"}))
	assert.NoError(t, publisher.PublishAccountDeleted(context.Background(), &service.AccountDeletedEvent{ID: "x"}))
	assert.NoError(t, publisher.Close())
}
