package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlertDetail_Alert(t *testing.T) {
	messageID := "m1"
	language := "de"
	detail := &AlertDetail{
		StreamerID:     "s1",
		StreamerLive:   true,
		GuildID:        "g1",
		Channel:        "c1",
		Start:          "18:00",
		End:            "20:00",
		DisplayGame:    true,
		DisplayViewers: false,
		MessageID:      &messageID,
		GuildLanguage:  &language,
	}

	alert := detail.Alert()

	assert.Equal(t, &Alert{
		GuildID:        "g1",
		StreamerID:     "s1",
		Channel:        "c1",
		Start:          "18:00",
		End:            "20:00",
		DisplayGame:    true,
		DisplayViewers: false,
		MessageID:      &messageID,
	}, alert)
}
