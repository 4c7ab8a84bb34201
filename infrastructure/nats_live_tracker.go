package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"streamalerts/events"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const sourceService = "stream-alerts"

// NATSLiveTracker announces watch list changes so the live-status poller can follow them
type NATSLiveTracker struct {
	publisher     MessagePublisher
	subjectMapper *EventSubjectMapper
	now           func() time.Time
}

// NewNATSLiveTracker creates a tracker publishing through publisher
func NewNATSLiveTracker(publisher MessagePublisher) *NATSLiveTracker {
	return &NATSLiveTracker{
		publisher:     publisher,
		subjectMapper: NewEventSubjectMapper(),
		now:           time.Now,
	}
}

// StreamerAdded publishes a streamer_added event
func (t *NATSLiveTracker) StreamerAdded(ctx context.Context, streamerID string) error {
	return t.publish(ctx, events.StreamerAddedEvent{StreamerID: streamerID}, streamerID)
}

// StreamerRemoved publishes a streamer_removed event
func (t *NATSLiveTracker) StreamerRemoved(ctx context.Context, streamerID string) error {
	return t.publish(ctx, events.StreamerRemovedEvent{StreamerID: streamerID}, streamerID)
}

func (t *NATSLiveTracker) publish(ctx context.Context, event events.Event, streamerID string) error {
	envelope := events.Envelope{
		EventID:       uuid.New().String(),
		EventType:     event.Type(),
		StreamerID:    streamerID,
		Timestamp:     t.now().UTC(),
		SourceService: sourceService,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event envelope: %w", err)
	}

	subject := t.subjectMapper.MapEventToSubject(event)
	if err := t.publisher.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type(), err)
	}

	log.WithFields(log.Fields{
		"eventType":  event.Type(),
		"eventId":    envelope.EventID,
		"streamerID": streamerID,
		"subject":    subject,
	}).Debug("Published streamer watch event")

	return nil
}
