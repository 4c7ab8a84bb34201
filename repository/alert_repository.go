package repository

import (
	"context"
	"errors"
	"fmt"

	"streamalerts/database"
	"streamalerts/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Queryable is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx
type Queryable interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const alertDetailSelect = `
	SELECT
		s.streamer_id,
		s.streamer_live,
		a.guild_id,
		a.alert_channel,
		a.alert_start,
		a.alert_end,
		a.alert_pref_display_game,
		a.alert_pref_display_viewers,
		a.alert_message,
		g.guild_language
	FROM streamers s
	JOIN alerts a ON a.streamer_id = s.streamer_id
	JOIN guilds g ON g.guild_id = a.guild_id`

// AlertRepository implements the AlertRepository interface on PostgreSQL
type AlertRepository struct {
	q Queryable
}

// NewAlertRepository creates a new PostgreSQL alert repository
func NewAlertRepository(db *database.DB) *AlertRepository {
	return &AlertRepository{q: db.Pool}
}

// NewAlertRepositoryWithQueryable creates an alert repository over a connection or transaction
func NewAlertRepositoryWithQueryable(q Queryable) *AlertRepository {
	return &AlertRepository{q: q}
}

// UpsertGuild inserts the guild, ignoring an existing row
func (r *AlertRepository) UpsertGuild(ctx context.Context, guildID string) error {
	query := `INSERT INTO guilds (guild_id) VALUES ($1) ON CONFLICT (guild_id) DO NOTHING`

	if _, err := r.q.Exec(ctx, query, guildID); err != nil {
		return fmt.Errorf("failed to upsert guild %s: %w", guildID, err)
	}
	return nil
}

// UpdateGuildLanguage sets guild_language for an existing guild
func (r *AlertRepository) UpdateGuildLanguage(ctx context.Context, guildID string, language *string) error {
	query := `UPDATE guilds SET guild_language = $1 WHERE guild_id = $2`

	if _, err := r.q.Exec(ctx, query, language, guildID); err != nil {
		return fmt.Errorf("failed to update language for guild %s: %w", guildID, err)
	}
	return nil
}

// GetGuild returns the guild or nil when not found
func (r *AlertRepository) GetGuild(ctx context.Context, guildID string) (*models.Guild, error) {
	query := `SELECT guild_id, guild_language FROM guilds WHERE guild_id = $1`

	var guild models.Guild
	err := r.q.QueryRow(ctx, query, guildID).Scan(&guild.GuildID, &guild.Language)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild %s: %w", guildID, err)
	}
	return &guild, nil
}

// DeleteGuild deletes the guild row
func (r *AlertRepository) DeleteGuild(ctx context.Context, guildID string) error {
	query := `DELETE FROM guilds WHERE guild_id = $1`

	if _, err := r.q.Exec(ctx, query, guildID); err != nil {
		return fmt.Errorf("failed to delete guild %s: %w", guildID, err)
	}
	return nil
}

// UpsertStreamer inserts the streamer, ignoring an existing row
func (r *AlertRepository) UpsertStreamer(ctx context.Context, streamerID string) error {
	query := `INSERT INTO streamers (streamer_id) VALUES ($1) ON CONFLICT (streamer_id) DO NOTHING`

	if _, err := r.q.Exec(ctx, query, streamerID); err != nil {
		return fmt.Errorf("failed to upsert streamer %s: %w", streamerID, err)
	}
	return nil
}

// DeleteStreamer deletes the streamer row
func (r *AlertRepository) DeleteStreamer(ctx context.Context, streamerID string) error {
	query := `DELETE FROM streamers WHERE streamer_id = $1`

	if _, err := r.q.Exec(ctx, query, streamerID); err != nil {
		return fmt.Errorf("failed to delete streamer %s: %w", streamerID, err)
	}
	return nil
}

// SetStreamerLive updates the live flag
func (r *AlertRepository) SetStreamerLive(ctx context.Context, streamerID string, live bool) error {
	query := `UPDATE streamers SET streamer_live = $1 WHERE streamer_id = $2`

	if _, err := r.q.Exec(ctx, query, live, streamerID); err != nil {
		return fmt.Errorf("failed to set live=%t for streamer %s: %w", live, streamerID, err)
	}
	return nil
}

// ListStreamers returns every streamer row
func (r *AlertRepository) ListStreamers(ctx context.Context) ([]*models.Streamer, error) {
	query := `SELECT streamer_id, streamer_live FROM streamers ORDER BY streamer_id`

	rows, err := r.q.Query(ctx, query)
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
func (r *AlertRepository) CreateAlert(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (
			guild_id, streamer_id, alert_channel, alert_start, alert_end,
			alert_pref_display_game, alert_pref_display_viewers
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.q.Exec(ctx, query,
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
func (r *AlertRepository) UpdateAlert(ctx context.Context, oldStreamerID string, alert *models.Alert) error {
	query := `
		UPDATE alerts
		SET alert_start = $1,
			alert_end = $2,
			streamer_id = $3,
			alert_pref_display_game = $4,
			alert_pref_display_viewers = $5
		WHERE streamer_id = $6 AND guild_id = $7`

	_, err := r.q.Exec(ctx, query,
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
func (r *AlertRepository) UpdateAlertChannel(ctx context.Context, guildID, streamerID, channel string) error {
	query := `UPDATE alerts SET alert_channel = $1 WHERE streamer_id = $2 AND guild_id = $3`

	if _, err := r.q.Exec(ctx, query, channel, streamerID, guildID); err != nil {
		return fmt.Errorf("failed to move alert for guild %s, streamer %s: %w", guildID, streamerID, err)
	}
	return nil
}

// UpdateAlertMessage sets alert_message, nil clears it
func (r *AlertRepository) UpdateAlertMessage(ctx context.Context, guildID, streamerID string, messageID *string) error {
	query := `UPDATE alerts SET alert_message = $1 WHERE streamer_id = $2 AND guild_id = $3`

	if _, err := r.q.Exec(ctx, query, messageID, streamerID, guildID); err != nil {
		return fmt.Errorf("failed to update alert message for guild %s, streamer %s: %w", guildID, streamerID, err)
	}
	return nil
}

// DeleteAlert deletes the alert row
func (r *AlertRepository) DeleteAlert(ctx context.Context, guildID, streamerID string) error {
	query := `DELETE FROM alerts WHERE guild_id = $1 AND streamer_id = $2`

	if _, err := r.q.Exec(ctx, query, guildID, streamerID); err != nil {
		return fmt.Errorf("failed to delete alert for guild %s, streamer %s: %w", guildID, streamerID, err)
	}
	return nil
}

// GetAllAlerts returns every alert detail row
func (r *AlertRepository) GetAllAlerts(ctx context.Context) ([]*models.AlertDetail, error) {
	return r.queryAlertDetails(ctx, alertDetailSelect+` ORDER BY a.guild_id, a.streamer_id`)
}

// GetAlertsByGuild returns the alert detail rows of a guild
func (r *AlertRepository) GetAlertsByGuild(ctx context.Context, guildID string) ([]*models.AlertDetail, error) {
	return r.queryAlertDetails(ctx, alertDetailSelect+` WHERE a.guild_id = $1 ORDER BY a.streamer_id`, guildID)
}

// GetAlertsByStreamer returns the alert detail rows of a streamer
func (r *AlertRepository) GetAlertsByStreamer(ctx context.Context, streamerID string) ([]*models.AlertDetail, error) {
	return r.queryAlertDetails(ctx, alertDetailSelect+` WHERE a.streamer_id = $1 ORDER BY a.guild_id`, streamerID)
}

// GetAlert returns the detail rows for a (guild, streamer) pair
func (r *AlertRepository) GetAlert(ctx context.Context, guildID, streamerID string) ([]*models.AlertDetail, error) {
	return r.queryAlertDetails(ctx, alertDetailSelect+` WHERE a.guild_id = $1 AND a.streamer_id = $2`, guildID, streamerID)
}

// CountAlertsByGuild counts the alerts of a guild
func (r *AlertRepository) CountAlertsByGuild(ctx context.Context, guildID string) (int, error) {
	query := `SELECT COUNT(streamer_id) FROM alerts WHERE guild_id = $1`

	var count int
	if err := r.q.QueryRow(ctx, query, guildID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count alerts for guild %s: %w", guildID, err)
	}
	return count, nil
}

// CountAlertsByStreamer counts the alerts referencing a streamer
func (r *AlertRepository) CountAlertsByStreamer(ctx context.Context, streamerID string) (int, error) {
	query := `SELECT COUNT(guild_id) FROM alerts WHERE streamer_id = $1`

	var count int
	if err := r.q.QueryRow(ctx, query, streamerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count alerts for streamer %s: %w", streamerID, err)
	}
	return count, nil
}

func (r *AlertRepository) queryAlertDetails(ctx context.Context, query string, args ...any) ([]*models.AlertDetail, error) {
	rows, err := r.q.Query(ctx, query, args...)
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
