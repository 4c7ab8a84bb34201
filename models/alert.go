package models

// Alert represents a guild's subscription to a streamer going live
type Alert struct {
	GuildID        string  `db:"guild_id"`
	StreamerID     string  `db:"streamer_id"`
	Channel        string  `db:"alert_channel"`
	Start          string  `db:"alert_start"`
	End            string  `db:"alert_end"`
	DisplayGame    bool    `db:"alert_pref_display_game"`
	DisplayViewers bool    `db:"alert_pref_display_viewers"`
	MessageID      *string `db:"alert_message"` // Nullable - last posted alert message
}

// AlertDetail represents a combined view of streamer, alert and guild information
// Used by callers that render or dispatch alerts and need every column at once
type AlertDetail struct {
	// Streamer information
	StreamerID   string `db:"streamer_id"`
	StreamerLive bool   `db:"streamer_live"`

	// Alert information
	GuildID        string  `db:"guild_id"`
	Channel        string  `db:"alert_channel"`
	Start          string  `db:"alert_start"`
	End            string  `db:"alert_end"`
	DisplayGame    bool    `db:"alert_pref_display_game"`
	DisplayViewers bool    `db:"alert_pref_display_viewers"`
	MessageID      *string `db:"alert_message"`

	// Guild information
	GuildLanguage *string `db:"guild_language"`
}

// Alert returns the alert columns of the detail row
func (d *AlertDetail) Alert() *Alert {
	return &Alert{
		GuildID:        d.GuildID,
		StreamerID:     d.StreamerID,
		Channel:        d.Channel,
		Start:          d.Start,
		End:            d.End,
		DisplayGame:    d.DisplayGame,
		DisplayViewers: d.DisplayViewers,
		MessageID:      d.MessageID,
	}
}
