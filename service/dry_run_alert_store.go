package service

import (
	"context"

	"streamalerts/config"
	"streamalerts/models"

	log "github.com/sirupsen/logrus"
)

// dryRunAlertStore accepts every call and touches nothing.
// Used outside production so test runs never write to live alert data.
type dryRunAlertStore struct{}

// NewDryRunAlertStore creates an alert store whose operations are no-ops returning no result
func NewDryRunAlertStore() AlertStore {
	return &dryRunAlertStore{}
}

// NewAlertStoreForEnvironment returns the real store in production and the dry-run store elsewhere
func NewAlertStoreForEnvironment(cfg *config.Config, repo AlertRepository, tracker LiveTracker) AlertStore {
	if !cfg.IsProduction() {
		log.WithField("environment", cfg.Environment).Warn("Alert store running in dry-run mode, writes are discarded")
		return NewDryRunAlertStore()
	}
	return NewAlertStore(repo, tracker)
}

func (s *dryRunAlertStore) UpsertGuild(ctx context.Context, guildID string) error {
	return nil
}

func (s *dryRunAlertStore) SetGuildLanguage(ctx context.Context, guildID string, language *string) error {
	return nil
}

func (s *dryRunAlertStore) GetGuild(ctx context.Context, guildID string) (*models.Guild, error) {
	return nil, nil
}

func (s *dryRunAlertStore) DeleteGuild(ctx context.Context, guildID string) error {
	return nil
}

func (s *dryRunAlertStore) ListAllAlerts(ctx context.Context) ([]*models.AlertDetail, error) {
	return nil, nil
}

func (s *dryRunAlertStore) ListAlertsByGuild(ctx context.Context, guildID string) ([]*models.AlertDetail, error) {
	return nil, nil
}

func (s *dryRunAlertStore) ListAlertsByStreamer(ctx context.Context, streamerID string) ([]*models.AlertDetail, error) {
	return nil, nil
}

func (s *dryRunAlertStore) GetAlert(ctx context.Context, guildID, streamerID string) ([]*models.AlertDetail, error) {
	return nil, nil
}

func (s *dryRunAlertStore) CountAlertsByGuild(ctx context.Context, guildID string) (int, error) {
	return 0, nil
}

func (s *dryRunAlertStore) AddAlert(ctx context.Context, guildID, streamerID, channel, start, end string, displayGame, displayViewers bool) error {
	return nil
}

func (s *dryRunAlertStore) EditAlert(ctx context.Context, guildID, oldStreamerID, newStreamerID, start, end string, displayGame, displayViewers bool) error {
	return nil
}

func (s *dryRunAlertStore) MoveAlert(ctx context.Context, guildID, streamerID, channel string) error {
	return nil
}

func (s *dryRunAlertStore) DeleteAlert(ctx context.Context, guildID, streamerID string) error {
	return nil
}

func (s *dryRunAlertStore) SetAlertMessage(ctx context.Context, guildID, streamerID, messageID string) error {
	return nil
}

func (s *dryRunAlertStore) RemoveAlertMessage(ctx context.Context, guildID, streamerID string) error {
	return nil
}

func (s *dryRunAlertStore) StreamOnline(ctx context.Context, streamerID string) error {
	return nil
}

func (s *dryRunAlertStore) StreamOffline(ctx context.Context, streamerID string) error {
	return nil
}

func (s *dryRunAlertStore) ListStreamers(ctx context.Context) ([]*models.Streamer, error) {
	return nil, nil
}
