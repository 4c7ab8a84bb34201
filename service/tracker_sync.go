package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// SyncLiveTracker announces every stored streamer to tracker so it can rebuild its watch set after a restart
func SyncLiveTracker(ctx context.Context, store AlertStore, tracker LiveTracker) error {
	streamers, err := store.ListStreamers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list streamers: %w", err)
	}

	for _, streamer := range streamers {
		if err := tracker.StreamerAdded(ctx, streamer.StreamerID); err != nil {
			return fmt.Errorf("failed to announce streamer %s: %w", streamer.StreamerID, err)
		}
	}

	log.WithField("streamers", len(streamers)).Info("Synced live tracker with stored streamers")
	return nil
}
