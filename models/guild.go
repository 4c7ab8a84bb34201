package models

// Guild represents a Discord guild that configures stream alerts
type Guild struct {
	GuildID  string  `db:"guild_id"`
	Language *string `db:"guild_language"` // Nullable - falls back to the bot default
}
