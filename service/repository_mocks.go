package service

import (
	"context"

	"streamalerts/models"

	"github.com/stretchr/testify/mock"
)

// MockAlertRepository is a mock implementation of AlertRepository
type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) UpsertGuild(ctx context.Context, guildID string) error {
	args := m.Called(ctx, guildID)
	return args.Error(0)
}

func (m *MockAlertRepository) UpdateGuildLanguage(ctx context.Context, guildID string, language *string) error {
	args := m.Called(ctx, guildID, language)
	return args.Error(0)
}

func (m *MockAlertRepository) GetGuild(ctx context.Context, guildID string) (*models.Guild, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guild), args.Error(1)
}

func (m *MockAlertRepository) DeleteGuild(ctx context.Context, guildID string) error {
	args := m.Called(ctx, guildID)
	return args.Error(0)
}

func (m *MockAlertRepository) UpsertStreamer(ctx context.Context, streamerID string) error {
	args := m.Called(ctx, streamerID)
	return args.Error(0)
}

func (m *MockAlertRepository) DeleteStreamer(ctx context.Context, streamerID string) error {
	args := m.Called(ctx, streamerID)
	return args.Error(0)
}

func (m *MockAlertRepository) SetStreamerLive(ctx context.Context, streamerID string, live bool) error {
	args := m.Called(ctx, streamerID, live)
	return args.Error(0)
}

func (m *MockAlertRepository) ListStreamers(ctx context.Context) ([]*models.Streamer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Streamer), args.Error(1)
}

func (m *MockAlertRepository) CreateAlert(ctx context.Context, alert *models.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertRepository) UpdateAlert(ctx context.Context, oldStreamerID string, alert *models.Alert) error {
	args := m.Called(ctx, oldStreamerID, alert)
	return args.Error(0)
}

func (m *MockAlertRepository) UpdateAlertChannel(ctx context.Context, guildID, streamerID, channel string) error {
	args := m.Called(ctx, guildID, streamerID, channel)
	return args.Error(0)
}

func (m *MockAlertRepository) UpdateAlertMessage(ctx context.Context, guildID, streamerID string, messageID *string) error {
	args := m.Called(ctx, guildID, streamerID, messageID)
	return args.Error(0)
}

func (m *MockAlertRepository) DeleteAlert(ctx context.Context, guildID, streamerID string) error {
	args := m.Called(ctx, guildID, streamerID)
	return args.Error(0)
}

func (m *MockAlertRepository) GetAllAlerts(ctx context.Context) ([]*models.AlertDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AlertDetail), args.Error(1)
}

func (m *MockAlertRepository) GetAlertsByGuild(ctx context.Context, guildID string) ([]*models.AlertDetail, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AlertDetail), args.Error(1)
}

func (m *MockAlertRepository) GetAlertsByStreamer(ctx context.Context, streamerID string) ([]*models.AlertDetail, error) {
	args := m.Called(ctx, streamerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AlertDetail), args.Error(1)
}

func (m *MockAlertRepository) GetAlert(ctx context.Context, guildID, streamerID string) ([]*models.AlertDetail, error) {
	args := m.Called(ctx, guildID, streamerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AlertDetail), args.Error(1)
}

func (m *MockAlertRepository) CountAlertsByGuild(ctx context.Context, guildID string) (int, error) {
	args := m.Called(ctx, guildID)
	return args.Int(0), args.Error(1)
}

func (m *MockAlertRepository) CountAlertsByStreamer(ctx context.Context, streamerID string) (int, error) {
	args := m.Called(ctx, streamerID)
	return args.Int(0), args.Error(1)
}

// MockLiveTracker is a mock implementation of LiveTracker
type MockLiveTracker struct {
	mock.Mock
}

func (m *MockLiveTracker) StreamerAdded(ctx context.Context, streamerID string) error {
	args := m.Called(ctx, streamerID)
	return args.Error(0)
}

func (m *MockLiveTracker) StreamerRemoved(ctx context.Context, streamerID string) error {
	args := m.Called(ctx, streamerID)
	return args.Error(0)
}

// MockAlertStore is a mock implementation of AlertStore
type MockAlertStore struct {
	mock.Mock
}

func (m *MockAlertStore) UpsertGuild(ctx context.Context, guildID string) error {
	args := m.Called(ctx, guildID)
	return args.Error(0)
}

func (m *MockAlertStore) SetGuildLanguage(ctx context.Context, guildID string, language *string) error {
	args := m.Called(ctx, guildID, language)
	return args.Error(0)
}

func (m *MockAlertStore) GetGuild(ctx context.Context, guildID string) (*models.Guild, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guild), args.Error(1)
}

func (m *MockAlertStore) DeleteGuild(ctx context.Context, guildID string) error {
	args := m.Called(ctx, guildID)
	return args.Error(0)
}

func (m *MockAlertStore) ListAllAlerts(ctx context.Context) ([]*models.AlertDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AlertDetail), args.Error(1)
}

func (m *MockAlertStore) ListAlertsByGuild(ctx context.Context, guildID string) ([]*models.AlertDetail, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AlertDetail), args.Error(1)
}

func (m *MockAlertStore) ListAlertsByStreamer(ctx context.Context, streamerID string) ([]*models.AlertDetail, error) {
	args := m.Called(ctx, streamerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AlertDetail), args.Error(1)
}

func (m *MockAlertStore) GetAlert(ctx context.Context, guildID, streamerID string) ([]*models.AlertDetail, error) {
	args := m.Called(ctx, guildID, streamerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AlertDetail), args.Error(1)
}

func (m *MockAlertStore) CountAlertsByGuild(ctx context.Context, guildID string) (int, error) {
	args := m.Called(ctx, guildID)
	return args.Int(0), args.Error(1)
}

func (m *MockAlertStore) AddAlert(ctx context.Context, guildID, streamerID, channel, start, end string, displayGame, displayViewers bool) error {
	args := m.Called(ctx, guildID, streamerID, channel, start, end, displayGame, displayViewers)
	return args.Error(0)
}

func (m *MockAlertStore) EditAlert(ctx context.Context, guildID, oldStreamerID, newStreamerID, start, end string, displayGame, displayViewers bool) error {
	args := m.Called(ctx, guildID, oldStreamerID, newStreamerID, start, end, displayGame, displayViewers)
	return args.Error(0)
}

func (m *MockAlertStore) MoveAlert(ctx context.Context, guildID, streamerID, channel string) error {
	args := m.Called(ctx, guildID, streamerID, channel)
	return args.Error(0)
}

func (m *MockAlertStore) DeleteAlert(ctx context.Context, guildID, streamerID string) error {
	args := m.Called(ctx, guildID, streamerID)
	return args.Error(0)
}

func (m *MockAlertStore) SetAlertMessage(ctx context.Context, guildID, streamerID, messageID string) error {
	args := m.Called(ctx, guildID, streamerID, messageID)
	return args.Error(0)
}

func (m *MockAlertStore) RemoveAlertMessage(ctx context.Context, guildID, streamerID string) error {
	args := m.Called(ctx, guildID, streamerID)
	return args.Error(0)
}

func (m *MockAlertStore) StreamOnline(ctx context.Context, streamerID string) error {
	args := m.Called(ctx, streamerID)
	return args.Error(0)
}

func (m *MockAlertStore) StreamOffline(ctx context.Context, streamerID string) error {
	args := m.Called(ctx, streamerID)
	return args.Error(0)
}

func (m *MockAlertStore) ListStreamers(ctx context.Context) ([]*models.Streamer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Streamer), args.Error(1)
}
