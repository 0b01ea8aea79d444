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
	"time"

	"rently/config"
	"rently/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.AccountEvent {
	return &service.AccountEvent{
		RequestID:        "req-123",
		EventType:        service.AccountEventRegistered,
		AccountID:        "0190f7f4-0000-7000-8000-000000000001",
		Email:            "jane@example.com",
		Role:             "landlord",
		MarketingConsent: true,
		OccurredAt:       time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishAccountEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-123", requestID)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, service.AccountEventRegistered, received.Message.Attributes["event_type"])
	assert.Equal(t, "landlord", received.Message.Attributes["role"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.AccountEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *testEvent(), decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishAccountEvent(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	event := testEvent()
	event.RequestID = ""

	attrs := eventAttributes(event)

	_, ok := attrs["request_id"]
	assert.False(t, ok)
	assert.Equal(t, event.AccountID, attrs["account_id"])
}

func newPublisherParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: discardLogger(),
	}
}

func TestNewEventPublisher_NoopWhenUnconfigured(t *testing.T) {
	publisher, err := NewEventPublisher(newPublisherParams(t, nil))
	require.NoError(t, err)

	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishAccountEvent(context.Background(), testEvent()))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher_Local(t *testing.T) {
	publisher, err := NewEventPublisher(newPublisherParams(t, &config.PubSubConfig{
		Provider:      ProviderLocal,
		LocalEndpoint: "http://localhost:8081/push",
	}))
	require.NoError(t, err)

	assert.IsType(t, &localHTTPPublisher{}, publisher)
}

func TestNewEventPublisher_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: ProviderLocal}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "t"}},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(newPublisherParams(t, tt.cfg))
			require.Error(t, err)
		})
	}
}
