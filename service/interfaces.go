package service

import (
	"context"

	"streamalerts/models"
)

// AlertStore is the data-access façade used by the bot for guilds, streamers and alerts
type AlertStore interface {
	// UpsertGuild creates the guild row if it does not exist yet
	UpsertGuild(ctx context.Context, guildID string) error

	// SetGuildLanguage upserts the guild and sets its language (nil clears it)
	SetGuildLanguage(ctx context.Context, guildID string, language *string) error

	// GetGuild returns the guild or nil when it is unknown
	GetGuild(ctx context.Context, guildID string) (*models.Guild, error)

	// DeleteGuild deletes every alert of the guild through DeleteAlert, then the guild itself
	DeleteGuild(ctx context.Context, guildID string) error

	// ListAllAlerts returns every alert joined with its streamer and guild
	ListAllAlerts(ctx context.Context) ([]*models.AlertDetail, error)

	// ListAlertsByGuild returns the alerts configured in a guild
	ListAlertsByGuild(ctx context.Context, guildID string) ([]*models.AlertDetail, error)

	// ListAlertsByStreamer returns the alerts watching a streamer
	ListAlertsByStreamer(ctx context.Context, streamerID string) ([]*models.AlertDetail, error)

	// GetAlert returns zero or one alert for the (guild, streamer) pair
	GetAlert(ctx context.Context, guildID, streamerID string) ([]*models.AlertDetail, error)

	// CountAlertsByGuild returns the number of alerts configured in a guild
	CountAlertsByGuild(ctx context.Context, guildID string) (int, error)

	// AddAlert creates an alert and tells the tracker the streamer is watched.
	// Fails with a unique violation if the pair already has an alert.
	AddAlert(ctx context.Context, guildID, streamerID, channel, start, end string, displayGame, displayViewers bool) error

	// EditAlert updates the window and display settings and may repoint the alert to another streamer
	EditAlert(ctx context.Context, guildID, oldStreamerID, newStreamerID, start, end string, displayGame, displayViewers bool) error

	// MoveAlert changes the channel an alert posts to
	MoveAlert(ctx context.Context, guildID, streamerID, channel string) error

	// DeleteAlert removes an alert, drops the streamer if nothing else watches it and notifies the tracker
	DeleteAlert(ctx context.Context, guildID, streamerID string) error

	// SetAlertMessage records the last message posted for an alert
	SetAlertMessage(ctx context.Context, guildID, streamerID, messageID string) error

	// RemoveAlertMessage clears the last posted message of an alert
	RemoveAlertMessage(ctx context.Context, guildID, streamerID string) error

	// StreamOnline marks a streamer live
	StreamOnline(ctx context.Context, streamerID string) error

	// StreamOffline marks a streamer offline
	StreamOffline(ctx context.Context, streamerID string) error

	// ListStreamers returns every watched streamer
	ListStreamers(ctx context.Context) ([]*models.Streamer, error)
}

// AlertRepository defines single-statement data access for the alert tables
type AlertRepository interface {
	// UpsertGuild inserts the guild, ignoring an existing row
	UpsertGuild(ctx context.Context, guildID string) error

	// UpdateGuildLanguage sets guild_language for an existing guild
	UpdateGuildLanguage(ctx context.Context, guildID string, language *string) error

	// GetGuild returns the guild or nil when not found
	GetGuild(ctx context.Context, guildID string) (*models.Guild, error)

	// DeleteGuild deletes the guild row
	DeleteGuild(ctx context.Context, guildID string) error

	// UpsertStreamer inserts the streamer, ignoring an existing row
	UpsertStreamer(ctx context.Context, streamerID string) error

	// DeleteStreamer deletes the streamer row
	DeleteStreamer(ctx context.Context, streamerID string) error

	// SetStreamerLive updates the live flag
	SetStreamerLive(ctx context.Context, streamerID string, live bool) error

	// ListStreamers returns every streamer row
	ListStreamers(ctx context.Context) ([]*models.Streamer, error)

	// CreateAlert inserts a new alert row
	CreateAlert(ctx context.Context, alert *models.Alert) error

	// UpdateAlert rewrites window, display settings and streamer of the alert keyed by (guildID, oldStreamerID).
	// alert.StreamerID is the new streamer; Channel and MessageID are left untouched.
	UpdateAlert(ctx context.Context, oldStreamerID string, alert *models.Alert) error

	// UpdateAlertChannel changes alert_channel only
	UpdateAlertChannel(ctx context.Context, guildID, streamerID, channel string) error

	// UpdateAlertMessage sets alert_message, nil clears it
	UpdateAlertMessage(ctx context.Context, guildID, streamerID string, messageID *string) error

	// DeleteAlert deletes the alert row
	DeleteAlert(ctx context.Context, guildID, streamerID string) error

	// GetAllAlerts returns every alert detail row
	GetAllAlerts(ctx context.Context) ([]*models.AlertDetail, error)

	// GetAlertsByGuild returns the alert detail rows of a guild
	GetAlertsByGuild(ctx context.Context, guildID string) ([]*models.AlertDetail, error)

	// GetAlertsByStreamer returns the alert detail rows of a streamer
	GetAlertsByStreamer(ctx context.Context, streamerID string) ([]*models.AlertDetail, error)

	// GetAlert returns the detail rows for a (guild, streamer) pair
	GetAlert(ctx context.Context, guildID, streamerID string) ([]*models.AlertDetail, error)

	// CountAlertsByGuild counts the alerts of a guild
	CountAlertsByGuild(ctx context.Context, guildID string) (int, error)

	// CountAlertsByStreamer counts the alerts referencing a streamer
	CountAlertsByStreamer(ctx context.Context, streamerID string) (int, error)
}

// LiveTracker keeps an external live-status poller in sync with the watched streamers
type LiveTracker interface {
	// StreamerAdded is called after an alert for the streamer was created or repointed to it
	StreamerAdded(ctx context.Context, streamerID string) error

	// StreamerRemoved is called after an alert for the streamer was deleted or repointed away
	StreamerRemoved(ctx context.Context, streamerID string) error
}
