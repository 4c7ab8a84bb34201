package testutil

import (
	"streamalerts/models"
)

// CreateTestAlert creates an alert with default window and display settings
func CreateTestAlert(guildID, streamerID string) *models.Alert {
	return &models.Alert{
		GuildID:        guildID,
		StreamerID:     streamerID,
		Channel:        "channel-" + guildID,
		Start:          "18:00",
		End:            "23:30",
		DisplayGame:    true,
		DisplayViewers: true,
	}
}

// CreateTestAlertInChannel creates an alert posting to a specific channel
func CreateTestAlertInChannel(guildID, streamerID, channel string) *models.Alert {
	alert := CreateTestAlert(guildID, streamerID)
	alert.Channel = channel
	return alert
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}
