package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"streamalerts/database"
	"streamalerts/models"
)

// SQLiteAlertRepository implements the AlertRepository interface on the embedded SQLite file
type SQLiteAlertRepository struct {
	db *sql.DB
}

// NewSQLiteAlertRepository creates a new SQLite alert repository
func NewSQLiteAlertRepository(db *database.SQLiteDB) *SQLiteAlertRepository {
	return &SQLiteAlertRepository{db: db.DB}
}

// UpsertGuild inserts the guild, ignoring an existing row
func (r *SQLiteAlertRepository) UpsertGuild(ctx context.Context, guildID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO guilds (guild_id) VALUES (?) ON CONFLICT (guild_id) DO NOTHING`,
		guildID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert guild %s: %w", guildID, err)
	}
	return nil
}

// UpdateGuildLanguage sets guild_language for an existing guild
func (r *SQLiteAlertRepository) UpdateGuildLanguage(ctx context.Context, guildID string, language *string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE guilds SET guild_language = ? WHERE guild_id = ?`,
		language, guildID,
	)
	if err != nil {
		return fmt.Errorf("failed to update language for guild %s: %w", guildID, err)
	}
	return nil
}

// GetGuild returns the guild or nil when not found
func (r *SQLiteAlertRepository) GetGuild(ctx context.Context, guildID string) (*models.Guild, error) {
	var guild models.Guild
	err := r.db.QueryRowContext(ctx,
		`SELECT guild_id, guild_language FROM guilds WHERE guild_id = ?`,
		guildID,
	).Scan(&guild.GuildID, &guild.Language)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild %s: %w", guildID, err)
	}
	return &guild, nil
}

// DeleteGuild deletes the guild row
func (r *SQLiteAlertRepository) DeleteGuild(ctx context.Context, guildID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM guilds WHERE guild_id = ?`, guildID); err != nil {
		return fmt.Errorf("failed to delete guild %s: %w", guildID, err)
	}
	return nil
}

// UpsertStreamer inserts the streamer, ignoring an existing row
func (r *SQLiteAlertRepository) UpsertStreamer(ctx context.Context, streamerID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO streamers (streamer_id) VALUES (?) ON CONFLICT (streamer_id) DO NOTHING`,
		streamerID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert streamer %s: %w", streamerID, err)
	}
	return nil
}

// DeleteStreamer deletes the streamer row
func (r *SQLiteAlertRepository) DeleteStreamer(ctx context.Context, streamerID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM streamers WHERE streamer_id = ?`, streamerID); err != nil {
		return fmt.Errorf("failed to delete streamer %s: %w", streamerID, err)
	}
	return nil
}

// SetStreamerLive updates the live flag
func (r *SQLiteAlertRepository) SetStreamerLive(ctx context.Context, streamerID string, live bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE streamers SET streamer_live = ? WHERE streamer_id = ?`,
		live, streamerID,
	)
	if err != nil {
		return fmt.Errorf("failed to set live=%t for streamer %s: %w", live, streamerID, err)
	}
	return nil
}

// ListStreamers returns every streamer row
func (r *SQLiteAlertRepository) ListStreamers(ctx context.Context) ([]*models.Streamer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT streamer_id, streamer_live FROM streamers ORDER BY streamer_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list streamers: %w", err)
	}
	defer rows.Close()

	streamers := make([]*models.Streamer, 0)
	for rows.Next() {
		var streamer models.Streamer
		if err := rows.Scan(&streamer.StreamerID, &streamer.Live); err != nil {
			return nil, fmt.Errorf("failed to scan streamer: %w", err)
		}
		streamers = append(streamers, &streamer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over streamer rows: %w", err)
	}

	return streamers, nil
}

// CreateAlert inserts a new alert row
func (r *SQLiteAlertRepository) CreateAlert(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (
			guild_id, streamer_id, alert_channel, alert_start, alert_end,
			alert_pref_display_game, alert_pref_display_viewers
		)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		alert.GuildID,
		alert.StreamerID,
		alert.Channel,
		alert.Start,
		alert.End,
		alert.DisplayGame,
		alert.DisplayViewers,
	)
	if err != nil {
		return fmt.Errorf("failed to create alert for guild %s, streamer %s: %w", alert.GuildID, alert.StreamerID, err)
	}
	return nil
}

// UpdateAlert rewrites window, display settings and streamer of the alert keyed by (alert.GuildID, oldStreamerID)
func (r *SQLiteAlertRepository) UpdateAlert(ctx context.Context, oldStreamerID string, alert *models.Alert) error {
	query := `
		UPDATE alerts
		SET alert_start = ?,
			alert_end = ?,
			streamer_id = ?,
			alert_pref_display_game = ?,
			alert_pref_display_viewers = ?
		WHERE streamer_id = ? AND guild_id = ?`

	_, err := r.db.ExecContext(ctx, query,
		alert.Start,
		alert.End,
		alert.StreamerID,
		alert.DisplayGame,
		alert.DisplayViewers,
		oldStreamerID,
		alert.GuildID,
	)
	if err != nil {
		return fmt.Errorf("failed to update alert for guild %s, streamer %s: %w", alert.GuildID, oldStreamerID, err)
	}
	return nil
}

// UpdateAlertChannel changes alert_channel only
func (r *SQLiteAlertRepository) UpdateAlertChannel(ctx context.Context, guildID, streamerID, channel string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE alerts SET alert_channel = ? WHERE streamer_id = ? AND guild_id = ?`,
		channel, streamerID, guildID,
	)
	if err != nil {
		return fmt.Errorf("failed to move alert for guild %s, streamer %s: %w", guildID, streamerID, err)
	}
	return nil
}

// UpdateAlertMessage sets alert_message, nil clears it
func (r *SQLiteAlertRepository) UpdateAlertMessage(ctx context.Context, guildID, streamerID string, messageID *string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE alerts SET alert_message = ? WHERE streamer_id = ? AND guild_id = ?`,
		messageID, streamerID, guildID,
	)
	if err != nil {
		return fmt.Errorf("failed to update alert message for guild %s, streamer %s: %w", guildID, streamerID, err)
	}
	return nil
}

// DeleteAlert deletes the alert row
func (r *SQLiteAlertRepository) DeleteAlert(ctx context.Context, guildID, streamerID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM alerts WHERE guild_id = ? AND streamer_id = ?`,
		guildID, streamerID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete alert for guild %s, streamer %s: %w", guildID, streamerID, err)
	}
	return nil
}

// GetAllAlerts returns every alert detail row
func (r *SQLiteAlertRepository) GetAllAlerts(ctx context.Context) ([]*models.AlertDetail, error) {
	return r.queryAlertDetails(ctx, alertDetailSelect+` ORDER BY a.guild_id, a.streamer_id`)
}

// GetAlertsByGuild returns the alert detail rows of a guild
func (r *SQLiteAlertRepository) GetAlertsByGuild(ctx context.Context, guildID string) ([]*models.AlertDetail, error) {
	return r.queryAlertDetails(ctx, alertDetailSelect+` WHERE a.guild_id = ? ORDER BY a.streamer_id`, guildID)
}

// GetAlertsByStreamer returns the alert detail rows of a streamer
func (r *SQLiteAlertRepository) GetAlertsByStreamer(ctx context.Context, streamerID string) ([]*models.AlertDetail, error) {
	return r.queryAlertDetails(ctx, alertDetailSelect+` WHERE a.streamer_id = ? ORDER BY a.guild_id`, streamerID)
}

// GetAlert returns the detail rows for a (guild, streamer) pair
func (r *SQLiteAlertRepository) GetAlert(ctx context.Context, guildID, streamerID string) ([]*models.AlertDetail, error) {
	return r.queryAlertDetails(ctx, alertDetailSelect+` WHERE a.guild_id = ? AND a.streamer_id = ?`, guildID, streamerID)
}

// CountAlertsByGuild counts the alerts of a guild
func (r *SQLiteAlertRepository) CountAlertsByGuild(ctx context.Context, guildID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(streamer_id) FROM alerts WHERE guild_id = ?`, guildID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count alerts for guild %s: %w", guildID, err)
	}
	return count, nil
}

// CountAlertsByStreamer counts the alerts referencing a streamer
func (r *SQLiteAlertRepository) CountAlertsByStreamer(ctx context.Context, streamerID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(guild_id) FROM alerts WHERE streamer_id = ?`, streamerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count alerts for streamer %s: %w", streamerID, err)
	}
	return count, nil
}

func (r *SQLiteAlertRepository) queryAlertDetails(ctx context.Context, query string, args ...any) ([]*models.AlertDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	details := make([]*models.AlertDetail, 0)
	for rows.Next() {
		var detail models.AlertDetail
		err := rows.Scan(
			&detail.StreamerID, &detail.StreamerLive,
			&detail.GuildID, &detail.Channel,
			&detail.Start, &detail.End,
			&detail.DisplayGame, &detail.DisplayViewers,
			&detail.MessageID, &detail.GuildLanguage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert detail: %w", err)
		}
		details = append(details, &detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over alert rows: %w", err)
	}

	return details, nil
}
