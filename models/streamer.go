package models

// Streamer represents a broadcaster watched by at least one alert
type Streamer struct {
	StreamerID string `db:"streamer_id"`
	Live       bool   `db:"streamer_live"`
}
