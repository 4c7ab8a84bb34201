package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"streamalerts/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishedMessage struct {
	Subject string
	Data    []byte
}

// MockMessagePublisher records published messages
type MockMessagePublisher struct {
	Messages     []publishedMessage
	PublishError error
}

func (m *MockMessagePublisher) Publish(ctx context.Context, subject string, data []byte) error {
	if m.PublishError != nil {
		return m.PublishError
	}
	m.Messages = append(m.Messages, publishedMessage{Subject: subject, Data: data})
	return nil
}

func TestNATSLiveTracker_PublishesEnvelope(t *testing.T) {
	publisher := &MockMessagePublisher{}
	tracker := NewNATSLiveTracker(publisher)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tracker.now = func() time.Time { return fixed }
	ctx := context.Background()

	require.NoError(t, tracker.StreamerRemoved(ctx, "old"))
	require.NoError(t, tracker.StreamerAdded(ctx, "new"))

	require.Len(t, publisher.Messages, 2)
	assert.Equal(t, SubjectStreamerRemoved, publisher.Messages[0].Subject)
	assert.Equal(t, SubjectStreamerAdded, publisher.Messages[1].Subject)

	var envelope events.Envelope
	require.NoError(t, json.Unmarshal(publisher.Messages[1].Data, &envelope))
	assert.Equal(t, events.EventTypeStreamerAdded, envelope.EventType)
	assert.Equal(t, "new", envelope.StreamerID)
	assert.Equal(t, "stream-alerts", envelope.SourceService)
	assert.True(t, envelope.Timestamp.Equal(fixed))

	_, err := uuid.Parse(envelope.EventID)
	assert.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(publisher.Messages[0].Data, &raw))
	assert.Equal(t, "streamer_removed", raw["event_type"])
	assert.Equal(t, "old", raw["streamer_id"])
	assert.Contains(t, raw, "event_id")
	assert.Contains(t, raw, "timestamp")
}

func TestNATSLiveTracker_UniqueEventIDs(t *testing.T) {
	publisher := &MockMessagePublisher{}
	tracker := NewNATSLiveTracker(publisher)

	require.NoError(t, tracker.StreamerAdded(context.Background(), "s1"))
	require.NoError(t, tracker.StreamerAdded(context.Background(), "s1"))

	var first, second events.Envelope
	require.NoError(t, json.Unmarshal(publisher.Messages[0].Data, &first))
	require.NoError(t, json.Unmarshal(publisher.Messages[1].Data, &second))
	assert.NotEqual(t, first.EventID, second.EventID)
}

func TestNATSLiveTracker_PublishError(t *testing.T) {
	publishErr := errors.New("not connected")
	tracker := NewNATSLiveTracker(&MockMessagePublisher{PublishError: publishErr})

	err := tracker.StreamerAdded(context.Background(), "s1")

	assert.ErrorIs(t, err, publishErr)
	assert.Contains(t, err.Error(), "streamer_added")
}

func TestNATSClient_PublishWithoutConnection(t *testing.T) {
	client := NewNATSClient("nats://localhost:4222", "stream-alerts")

	err := client.Publish(context.Background(), SubjectStreamerAdded, []byte("{}"))
	assert.Error(t, err)
	assert.False(t, client.IsConnected())
	assert.Error(t, client.EnsureStreamerWatchStream())
	assert.NoError(t, client.Close())
}

func TestEventSubjectMapper(t *testing.T) {
	mapper := NewEventSubjectMapper()

	tests := []struct {
		event   events.Event
		subject string
	}{
		{events.StreamerAddedEvent{StreamerID: "s"}, SubjectStreamerAdded},
		{events.StreamerRemovedEvent{StreamerID: "s"}, SubjectStreamerRemoved},
	}

	for _, tt := range tests {
		t.Run(string(tt.event.Type()), func(t *testing.T) {
			subject := mapper.MapEventToSubject(tt.event)
			assert.Equal(t, tt.subject, subject)
			assert.Equal(t, tt.event.Type(), mapper.MapSubjectToEventType(subject))
		})
	}

	assert.ElementsMatch(t, []string{SubjectStreamerAdded, SubjectStreamerRemoved}, mapper.GetAllSubjects())
	assert.Equal(t, events.EventType("other.subject"), mapper.MapSubjectToEventType("other.subject"))
}

func TestNoopLiveTracker(t *testing.T) {
	tracker := NewNoopLiveTracker()

	assert.NoError(t, tracker.StreamerAdded(context.Background(), "s1"))
	assert.NoError(t, tracker.StreamerRemoved(context.Background(), "s1"))
}
