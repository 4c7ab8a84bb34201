package events

import "time"

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeStreamerAdded   EventType = "streamer_added"
	EventTypeStreamerRemoved EventType = "streamer_removed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// StreamerAddedEvent is emitted after an alert starts referencing a streamer
type StreamerAddedEvent struct {
	StreamerID string `json:"streamer_id"`
}

func (e StreamerAddedEvent) Type() EventType {
	return EventTypeStreamerAdded
}

// StreamerRemovedEvent is emitted after an alert stops referencing a streamer
type StreamerRemovedEvent struct {
	StreamerID string `json:"streamer_id"`
}

func (e StreamerRemovedEvent) Type() EventType {
	return EventTypeStreamerRemoved
}

// Envelope is the wire format published for every event
type Envelope struct {
	EventID       string    `json:"event_id"`
	EventType     EventType `json:"event_type"`
	StreamerID    string    `json:"streamer_id"`
	Timestamp     time.Time `json:"timestamp"`
	SourceService string    `json:"source_service"`
}
