package service

import (
	"context"
	"fmt"

	"streamalerts/models"

	log "github.com/sirupsen/logrus"
)

type alertStore struct {
	repo    AlertRepository
	tracker LiveTracker
}

// NewAlertStore creates an alert store that writes through repo and notifies tracker.
// tracker is required; pass infrastructure.NewNoopLiveTracker() when nothing should be notified.
func NewAlertStore(repo AlertRepository, tracker LiveTracker) AlertStore {
	if repo == nil {
		panic("alert store requires a repository")
	}
	if tracker == nil {
		panic("alert store requires a live tracker")
	}
	return &alertStore{
		repo:    repo,
		tracker: tracker,
	}
}

// UpsertGuild creates the guild row if it does not exist yet
func (s *alertStore) UpsertGuild(ctx context.Context, guildID string) error {
	return s.repo.UpsertGuild(ctx, guildID)
}

// SetGuildLanguage upserts the guild, then sets its language
func (s *alertStore) SetGuildLanguage(ctx context.Context, guildID string, language *string) error {
	if err := s.repo.UpsertGuild(ctx, guildID); err != nil {
		return err
	}
	return s.repo.UpdateGuildLanguage(ctx, guildID, language)
}

// GetGuild returns the guild or nil when it is unknown
func (s *alertStore) GetGuild(ctx context.Context, guildID string) (*models.Guild, error) {
	return s.repo.GetGuild(ctx, guildID)
}

// DeleteGuild runs the full alert deletion path for every alert of the guild, then deletes the guild
func (s *alertStore) DeleteGuild(ctx context.Context, guildID string) error {
	alerts, err := s.repo.GetAlertsByGuild(ctx, guildID)
	if err != nil {
		return err
	}

	for _, alert := range alerts {
		if err := s.DeleteAlert(ctx, guildID, alert.StreamerID); err != nil {
			return err
		}
	}

	if err := s.repo.DeleteGuild(ctx, guildID); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"guildID":       guildID,
		"deletedAlerts": len(alerts),
	}).Debug("Deleted guild")
	return nil
}

// ListAllAlerts returns every alert joined with its streamer and guild
func (s *alertStore) ListAllAlerts(ctx context.Context) ([]*models.AlertDetail, error) {
	return s.repo.GetAllAlerts(ctx)
}

// ListAlertsByGuild returns the alerts configured in a guild
func (s *alertStore) ListAlertsByGuild(ctx context.Context, guildID string) ([]*models.AlertDetail, error) {
	return s.repo.GetAlertsByGuild(ctx, guildID)
}

// ListAlertsByStreamer returns the alerts watching a streamer
func (s *alertStore) ListAlertsByStreamer(ctx context.Context, streamerID string) ([]*models.AlertDetail, error) {
	return s.repo.GetAlertsByStreamer(ctx, streamerID)
}

// GetAlert returns zero or one alert for the (guild, streamer) pair
func (s *alertStore) GetAlert(ctx context.Context, guildID, streamerID string) ([]*models.AlertDetail, error) {
	return s.repo.GetAlert(ctx, guildID, streamerID)
}

// CountAlertsByGuild returns the number of alerts configured in a guild
func (s *alertStore) CountAlertsByGuild(ctx context.Context, guildID string) (int, error) {
	return s.repo.CountAlertsByGuild(ctx, guildID)
}

// AddAlert upserts guild and streamer, inserts the alert, then notifies the tracker
func (s *alertStore) AddAlert(ctx context.Context, guildID, streamerID, channel, start, end string, displayGame, displayViewers bool) error {
	if err := s.repo.UpsertGuild(ctx, guildID); err != nil {
		return err
	}
	if err := s.repo.UpsertStreamer(ctx, streamerID); err != nil {
		return err
	}

	alert := &models.Alert{
		GuildID:        guildID,
		StreamerID:     streamerID,
		Channel:        channel,
		Start:          start,
		End:            end,
		DisplayGame:    displayGame,
		DisplayViewers: displayViewers,
	}
	if err := s.repo.CreateAlert(ctx, alert); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"guildID":    guildID,
		"streamerID": streamerID,
		"channel":    channel,
	}).Debug("Added alert")

	return s.notifyAdded(ctx, streamerID)
}

// EditAlert updates the alert settings. When the streamer changes, the new streamer is upserted
// before the update and the old one is cleaned up and both are reported to the tracker afterwards.
func (s *alertStore) EditAlert(ctx context.Context, guildID, oldStreamerID, newStreamerID, start, end string, displayGame, displayViewers bool) error {
	streamerChanged := oldStreamerID != newStreamerID

	if streamerChanged {
		if err := s.repo.UpsertStreamer(ctx, newStreamerID); err != nil {
			return err
		}
	}

	alert := &models.Alert{
		GuildID:        guildID,
		StreamerID:     newStreamerID,
		Start:          start,
		End:            end,
		DisplayGame:    displayGame,
		DisplayViewers: displayViewers,
	}
	if err := s.repo.UpdateAlert(ctx, oldStreamerID, alert); err != nil {
		return err
	}

	if !streamerChanged {
		return nil
	}

	if err := s.removeStreamerIfEmpty(ctx, oldStreamerID); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"guildID":       guildID,
		"oldStreamerID": oldStreamerID,
		"newStreamerID": newStreamerID,
	}).Debug("Repointed alert to another streamer")

	// Old streamer is reported before the new one
	if err := s.notifyRemoved(ctx, oldStreamerID); err != nil {
		return err
	}
	return s.notifyAdded(ctx, newStreamerID)
}

// MoveAlert changes the channel an alert posts to
func (s *alertStore) MoveAlert(ctx context.Context, guildID, streamerID, channel string) error {
	return s.repo.UpdateAlertChannel(ctx, guildID, streamerID, channel)
}

// DeleteAlert deletes the alert row, cleans up the streamer and notifies the tracker
func (s *alertStore) DeleteAlert(ctx context.Context, guildID, streamerID string) error {
	if err := s.repo.DeleteAlert(ctx, guildID, streamerID); err != nil {
		return err
	}
	if err := s.removeStreamerIfEmpty(ctx, streamerID); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"guildID":    guildID,
		"streamerID": streamerID,
	}).Debug("Deleted alert")

	return s.notifyRemoved(ctx, streamerID)
}

// SetAlertMessage records the last message posted for an alert
func (s *alertStore) SetAlertMessage(ctx context.Context, guildID, streamerID, messageID string) error {
	return s.repo.UpdateAlertMessage(ctx, guildID, streamerID, &messageID)
}

// RemoveAlertMessage clears the last posted message of an alert
func (s *alertStore) RemoveAlertMessage(ctx context.Context, guildID, streamerID string) error {
	return s.repo.UpdateAlertMessage(ctx, guildID, streamerID, nil)
}

// StreamOnline marks a streamer live
func (s *alertStore) StreamOnline(ctx context.Context, streamerID string) error {
	return s.repo.SetStreamerLive(ctx, streamerID, true)
}

// StreamOffline marks a streamer offline
func (s *alertStore) StreamOffline(ctx context.Context, streamerID string) error {
	return s.repo.SetStreamerLive(ctx, streamerID, false)
}

// ListStreamers returns every watched streamer
func (s *alertStore) ListStreamers(ctx context.Context) ([]*models.Streamer, error) {
	return s.repo.ListStreamers(ctx)
}

// removeStreamerIfEmpty deletes the streamer once no alert references it.
// It is the only place streamer rows are removed and runs after every delete or repoint.
func (s *alertStore) removeStreamerIfEmpty(ctx context.Context, streamerID string) error {
	remaining, err := s.repo.CountAlertsByStreamer(ctx, streamerID)
	if err != nil {
		return err
	}
	if remaining > 0 {
		return nil
	}

	if err := s.repo.DeleteStreamer(ctx, streamerID); err != nil {
		return err
	}

	log.WithField("streamerID", streamerID).Debug("Removed streamer without alerts")
	return nil
}

func (s *alertStore) notifyAdded(ctx context.Context, streamerID string) error {
	if err := s.tracker.StreamerAdded(ctx, streamerID); err != nil {
		return fmt.Errorf("failed to notify tracker of added streamer %s: %w", streamerID, err)
	}
	return nil
}

func (s *alertStore) notifyRemoved(ctx context.Context, streamerID string) error {
	if err := s.tracker.StreamerRemoved(ctx, streamerID); err != nil {
		return fmt.Errorf("failed to notify tracker of removed streamer %s: %w", streamerID, err)
	}
	return nil
}
