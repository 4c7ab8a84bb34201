package observability

import (
	"context"

	"streamalerts/models"
	"streamalerts/service"
)

// InstrumentedAlertStore records a metric for every call to the wrapped store
type InstrumentedAlertStore struct {
	next    service.AlertStore
	metrics *MetricsProvider
}

// NewInstrumentedAlertStore wraps next. A nil or disabled provider records nothing.
func NewInstrumentedAlertStore(next service.AlertStore, metrics *MetricsProvider) *InstrumentedAlertStore {
	return &InstrumentedAlertStore{
		next:    next,
		metrics: metrics,
	}
}

func (s *InstrumentedAlertStore) UpsertGuild(ctx context.Context, guildID string) (err error) {
	defer s.metrics.MeasureStoreOperation("UpsertGuild")(&err)
	return s.next.UpsertGuild(ctx, guildID)
}

func (s *InstrumentedAlertStore) SetGuildLanguage(ctx context.Context, guildID string, language *string) (err error) {
	defer s.metrics.MeasureStoreOperation("SetGuildLanguage")(&err)
	return s.next.SetGuildLanguage(ctx, guildID, language)
}

func (s *InstrumentedAlertStore) GetGuild(ctx context.Context, guildID string) (result *models.Guild, err error) {
	defer s.metrics.MeasureStoreOperation("GetGuild")(&err)
	return s.next.GetGuild(ctx, guildID)
}

func (s *InstrumentedAlertStore) DeleteGuild(ctx context.Context, guildID string) (err error) {
	defer s.metrics.MeasureStoreOperation("DeleteGuild")(&err)
	return s.next.DeleteGuild(ctx, guildID)
}

func (s *InstrumentedAlertStore) ListAllAlerts(ctx context.Context) (result []*models.AlertDetail, err error) {
	defer s.metrics.MeasureStoreOperation("ListAllAlerts")(&err)
	return s.next.ListAllAlerts(ctx)
}

func (s *InstrumentedAlertStore) ListAlertsByGuild(ctx context.Context, guildID string) (result []*models.AlertDetail, err error) {
	defer s.metrics.MeasureStoreOperation("ListAlertsByGuild")(&err)
	return s.next.ListAlertsByGuild(ctx, guildID)
}

func (s *InstrumentedAlertStore) ListAlertsByStreamer(ctx context.Context, streamerID string) (result []*models.AlertDetail, err error) {
	defer s.metrics.MeasureStoreOperation("ListAlertsByStreamer")(&err)
	return s.next.ListAlertsByStreamer(ctx, streamerID)
}

func (s *InstrumentedAlertStore) GetAlert(ctx context.Context, guildID, streamerID string) (result []*models.AlertDetail, err error) {
	defer s.metrics.MeasureStoreOperation("GetAlert")(&err)
	return s.next.GetAlert(ctx, guildID, streamerID)
}

func (s *InstrumentedAlertStore) CountAlertsByGuild(ctx context.Context, guildID string) (result int, err error) {
	defer s.metrics.MeasureStoreOperation("CountAlertsByGuild")(&err)
	return s.next.CountAlertsByGuild(ctx, guildID)
}

func (s *InstrumentedAlertStore) AddAlert(ctx context.Context, guildID, streamerID, channel, start, end string, displayGame, displayViewers bool) (err error) {
	defer s.metrics.MeasureStoreOperation("AddAlert")(&err)
	return s.next.AddAlert(ctx, guildID, streamerID, channel, start, end, displayGame, displayViewers)
}

func (s *InstrumentedAlertStore) EditAlert(ctx context.Context, guildID, oldStreamerID, newStreamerID, start, end string, displayGame, displayViewers bool) (err error) {
	defer s.metrics.MeasureStoreOperation("EditAlert")(&err)
	return s.next.EditAlert(ctx, guildID, oldStreamerID, newStreamerID, start, end, displayGame, displayViewers)
}

func (s *InstrumentedAlertStore) MoveAlert(ctx context.Context, guildID, streamerID, channel string) (err error) {
	defer s.metrics.MeasureStoreOperation("MoveAlert")(&err)
	return s.next.MoveAlert(ctx, guildID, streamerID, channel)
}

func (s *InstrumentedAlertStore) DeleteAlert(ctx context.Context, guildID, streamerID string) (err error) {
	defer s.metrics.MeasureStoreOperation("DeleteAlert")(&err)
	return s.next.DeleteAlert(ctx, guildID, streamerID)
}

func (s *InstrumentedAlertStore) SetAlertMessage(ctx context.Context, guildID, streamerID, messageID string) (err error) {
	defer s.metrics.MeasureStoreOperation("SetAlertMessage")(&err)
	return s.next.SetAlertMessage(ctx, guildID, streamerID, messageID)
}

func (s *InstrumentedAlertStore) RemoveAlertMessage(ctx context.Context, guildID, streamerID string) (err error) {
	defer s.metrics.MeasureStoreOperation("RemoveAlertMessage")(&err)
	return s.next.RemoveAlertMessage(ctx, guildID, streamerID)
}

func (s *InstrumentedAlertStore) StreamOnline(ctx context.Context, streamerID string) (err error) {
	defer s.metrics.MeasureStoreOperation("StreamOnline")(&err)
	return s.next.StreamOnline(ctx, streamerID)
}

func (s *InstrumentedAlertStore) StreamOffline(ctx context.Context, streamerID string) (err error) {
	defer s.metrics.MeasureStoreOperation("StreamOffline")(&err)
	return s.next.StreamOffline(ctx, streamerID)
}

func (s *InstrumentedAlertStore) ListStreamers(ctx context.Context) (result []*models.Streamer, err error) {
	defer s.metrics.MeasureStoreOperation("ListStreamers")(&err)
	return s.next.ListStreamers(ctx)
}

// InstrumentedLiveTracker counts notifications sent through the wrapped tracker
type InstrumentedLiveTracker struct {
	next    service.LiveTracker
	metrics *MetricsProvider
}

// NewInstrumentedLiveTracker wraps next
func NewInstrumentedLiveTracker(next service.LiveTracker, metrics *MetricsProvider) *InstrumentedLiveTracker {
	return &InstrumentedLiveTracker{
		next:    next,
		metrics: metrics,
	}
}

func (t *InstrumentedLiveTracker) StreamerAdded(ctx context.Context, streamerID string) error {
	err := t.next.StreamerAdded(ctx, streamerID)
	t.metrics.RecordTrackerNotification(NotificationStreamerAdded, err)
	return err
}

func (t *InstrumentedLiveTracker) StreamerRemoved(ctx context.Context, streamerID string) error {
	err := t.next.StreamerRemoved(ctx, streamerID)
	t.metrics.RecordTrackerNotification(NotificationStreamerRemoved, err)
	return err
}
