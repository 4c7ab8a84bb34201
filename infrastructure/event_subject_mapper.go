package infrastructure

import (
	"fmt"

	"streamalerts/events"
)

const (
	SubjectStreamerAdded   = "streamers.watch.added"
	SubjectStreamerRemoved = "streamers.watch.removed"

	StreamerWatchStream = "streamer_watch"
)

// EventSubjectMapper handles mapping between events and NATS subjects
type EventSubjectMapper struct{}

// NewEventSubjectMapper creates a new event subject mapper
func NewEventSubjectMapper() *EventSubjectMapper {
	return &EventSubjectMapper{}
}

// MapEventToSubject converts an event to its NATS subject
func (m *EventSubjectMapper) MapEventToSubject(event events.Event) string {
	switch event.Type() {
	case events.EventTypeStreamerAdded:
		return SubjectStreamerAdded
	case events.EventTypeStreamerRemoved:
		return SubjectStreamerRemoved
	default:
		return fmt.Sprintf("unknown.%s", event.Type())
	}
}

// MapSubjectToEventType converts a NATS subject back to an event type
func (m *EventSubjectMapper) MapSubjectToEventType(subject string) events.EventType {
	switch subject {
	case SubjectStreamerAdded:
		return events.EventTypeStreamerAdded
	case SubjectStreamerRemoved:
		return events.EventTypeStreamerRemoved
	default:
		return events.EventType(subject)
	}
}

// GetAllSubjects returns all subjects that this service publishes to
func (m *EventSubjectMapper) GetAllSubjects() []string {
	return []string{
		SubjectStreamerAdded,
		SubjectStreamerRemoved,
	}
}
