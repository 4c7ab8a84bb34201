package infrastructure

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// NoopLiveTracker is a live tracker that only logs.
// Used when no message bus is configured.
type NoopLiveTracker struct{}

// NewNoopLiveTracker creates a new no-op live tracker
func NewNoopLiveTracker() *NoopLiveTracker {
	return &NoopLiveTracker{}
}

func (n *NoopLiveTracker) StreamerAdded(ctx context.Context, streamerID string) error {
	log.WithField("streamerID", streamerID).Debug("Streamer added (no tracker configured)")
	return nil
}

func (n *NoopLiveTracker) StreamerRemoved(ctx context.Context, streamerID string) error {
	log.WithField("streamerID", streamerID).Debug("Streamer removed (no tracker configured)")
	return nil
}
