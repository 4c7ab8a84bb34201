package repository

import (
	"context"
	"testing"

	"streamalerts/database"
	"streamalerts/repository/testutil"
	"streamalerts/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runAlertRepositoryTests exercises behaviour both backends must share.
// Subtests use disjoint guild and streamer IDs so they can share one database.
func runAlertRepositoryTests(t *testing.T, repo service.AlertRepository) {
	ctx := context.Background()

	t.Run("upsert guild is idempotent", func(t *testing.T) {
		require.NoError(t, repo.UpsertGuild(ctx, "g-upsert"))
		require.NoError(t, repo.UpsertGuild(ctx, "g-upsert"))

		guild, err := repo.GetGuild(ctx, "g-upsert")
		require.NoError(t, err)
		require.NotNil(t, guild)
		assert.Equal(t, "g-upsert", guild.GuildID)
		assert.Nil(t, guild.Language)
	})

	t.Run("unknown guild returns nil", func(t *testing.T) {
		guild, err := repo.GetGuild(ctx, "g-missing")
		require.NoError(t, err)
		assert.Nil(t, guild)
	})

	t.Run("guild language set and cleared", func(t *testing.T) {
		require.NoError(t, repo.UpsertGuild(ctx, "g-lang"))
		require.NoError(t, repo.UpdateGuildLanguage(ctx, "g-lang", testutil.StringPtr("de")))

		guild, err := repo.GetGuild(ctx, "g-lang")
		require.NoError(t, err)
		require.NotNil(t, guild.Language)
		assert.Equal(t, "de", *guild.Language)

		// Upsert must not reset the language
		require.NoError(t, repo.UpsertGuild(ctx, "g-lang"))
		guild, err = repo.GetGuild(ctx, "g-lang")
		require.NoError(t, err)
		require.NotNil(t, guild.Language)

		require.NoError(t, repo.UpdateGuildLanguage(ctx, "g-lang", nil))
		guild, err = repo.GetGuild(ctx, "g-lang")
		require.NoError(t, err)
		assert.Nil(t, guild.Language)
	})

	t.Run("create and read alert", func(t *testing.T) {
		require.NoError(t, repo.UpsertGuild(ctx, "g-create"))
		require.NoError(t, repo.UpsertStreamer(ctx, "s-create"))
		require.NoError(t, repo.CreateAlert(ctx, testutil.CreateTestAlertInChannel("g-create", "s-create", "c-1")))

		details, err := repo.GetAlert(ctx, "g-create", "s-create")
		require.NoError(t, err)
		require.Len(t, details, 1)

		detail := details[0]
		assert.Equal(t, "s-create", detail.StreamerID)
		assert.False(t, detail.StreamerLive)
		assert.Equal(t, "g-create", detail.GuildID)
		assert.Equal(t, "c-1", detail.Channel)
		assert.Equal(t, "18:00", detail.Start)
		assert.Equal(t, "23:30", detail.End)
		assert.True(t, detail.DisplayGame)
		assert.True(t, detail.DisplayViewers)
		assert.Nil(t, detail.MessageID)
		assert.Nil(t, detail.GuildLanguage)
	})

	t.Run("duplicate alert is a unique violation", func(t *testing.T) {
		require.NoError(t, repo.UpsertGuild(ctx, "g-dup"))
		require.NoError(t, repo.UpsertStreamer(ctx, "s-dup"))
		require.NoError(t, repo.CreateAlert(ctx, testutil.CreateTestAlert("g-dup", "s-dup")))

		err := repo.CreateAlert(ctx, testutil.CreateTestAlertInChannel("g-dup", "s-dup", "other"))
		require.Error(t, err)
		assert.True(t, database.IsUniqueViolation(err))

		details, err := repo.GetAlert(ctx, "g-dup", "s-dup")
		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, "channel-g-dup", details[0].Channel)
	})

	t.Run("alert requires existing guild and streamer", func(t *testing.T) {
		err := repo.CreateAlert(ctx, testutil.CreateTestAlert("g-orphan", "s-orphan"))
		assert.Error(t, err)
	})

	t.Run("missing alert reads are empty", func(t *testing.T) {
		details, err := repo.GetAlert(ctx, "g-none", "s-none")
		require.NoError(t, err)
		assert.NotNil(t, details)
		assert.Empty(t, details)

		byGuild, err := repo.GetAlertsByGuild(ctx, "g-none")
		require.NoError(t, err)
		assert.Empty(t, byGuild)

		count, err := repo.CountAlertsByGuild(ctx, "g-none")
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("list and count by guild and streamer", func(t *testing.T) {
		for _, g := range []string{"g-list-1", "g-list-2"} {
			require.NoError(t, repo.UpsertGuild(ctx, g))
		}
		for _, s := range []string{"s-list-a", "s-list-b"} {
			require.NoError(t, repo.UpsertStreamer(ctx, s))
		}
		require.NoError(t, repo.CreateAlert(ctx, testutil.CreateTestAlert("g-list-1", "s-list-b")))
		require.NoError(t, repo.CreateAlert(ctx, testutil.CreateTestAlert("g-list-1", "s-list-a")))
		require.NoError(t, repo.CreateAlert(ctx, testutil.CreateTestAlert("g-list-2", "s-list-a")))

		byGuild, err := repo.GetAlertsByGuild(ctx, "g-list-1")
		require.NoError(t, err)
		require.Len(t, byGuild, 2)
		assert.Equal(t, "s-list-a", byGuild[0].StreamerID)
		assert.Equal(t, "s-list-b", byGuild[1].StreamerID)

		byStreamer, err := repo.GetAlertsByStreamer(ctx, "s-list-a")
		require.NoError(t, err)
		require.Len(t, byStreamer, 2)
		assert.Equal(t, "g-list-1", byStreamer[0].GuildID)
		assert.Equal(t, "g-list-2", byStreamer[1].GuildID)

		guildCount, err := repo.CountAlertsByGuild(ctx, "g-list-1")
		require.NoError(t, err)
		assert.Equal(t, 2, guildCount)

		streamerCount, err := repo.CountAlertsByStreamer(ctx, "s-list-a")
		require.NoError(t, err)
		assert.Equal(t, 2, streamerCount)

		all, err := repo.GetAllAlerts(ctx)
		require.NoError(t, err)
		listed := 0
		for _, d := range all {
			if d.GuildID == "g-list-1" || d.GuildID == "g-list-2" {
				listed++
			}
		}
		assert.Equal(t, 3, listed)
	})

	t.Run("update alert repoints streamer and keeps channel", func(t *testing.T) {
		require.NoError(t, repo.UpsertGuild(ctx, "g-update"))
		require.NoError(t, repo.UpsertStreamer(ctx, "s-update-old"))
		require.NoError(t, repo.UpsertStreamer(ctx, "s-update-new"))
		require.NoError(t, repo.CreateAlert(ctx, testutil.CreateTestAlertInChannel("g-update", "s-update-old", "c-keep")))
		require.NoError(t, repo.UpdateAlertMessage(ctx, "g-update", "s-update-old", testutil.StringPtr("m-1")))

		updated := testutil.CreateTestAlert("g-update", "s-update-new")
		updated.Start = "08:00"
		updated.End = "12:00"
		updated.DisplayGame = false
		updated.Channel = "ignored"
		require.NoError(t, repo.UpdateAlert(ctx, "s-update-old", updated))

		old, err := repo.GetAlert(ctx, "g-update", "s-update-old")
		require.NoError(t, err)
		assert.Empty(t, old)

		details, err := repo.GetAlert(ctx, "g-update", "s-update-new")
		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, "c-keep", details[0].Channel)
		assert.Equal(t, "08:00", details[0].Start)
		assert.Equal(t, "12:00", details[0].End)
		assert.False(t, details[0].DisplayGame)
		assert.True(t, details[0].DisplayViewers)
		require.NotNil(t, details[0].MessageID)
		assert.Equal(t, "m-1", *details[0].MessageID)
	})

	t.Run("update alert channel", func(t *testing.T) {
		require.NoError(t, repo.UpsertGuild(ctx, "g-move"))
		require.NoError(t, repo.UpsertStreamer(ctx, "s-move"))
		require.NoError(t, repo.CreateAlert(ctx, testutil.CreateTestAlertInChannel("g-move", "s-move", "c-from")))

		require.NoError(t, repo.UpdateAlertChannel(ctx, "g-move", "s-move", "c-to"))

		details, err := repo.GetAlert(ctx, "g-move", "s-move")
		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, "c-to", details[0].Channel)
		assert.Equal(t, "18:00", details[0].Start)
	})

	t.Run("alert message set and cleared", func(t *testing.T) {
		require.NoError(t, repo.UpsertGuild(ctx, "g-msg"))
		require.NoError(t, repo.UpsertStreamer(ctx, "s-msg"))
		require.NoError(t, repo.CreateAlert(ctx, testutil.CreateTestAlert("g-msg", "s-msg")))

		require.NoError(t, repo.UpdateAlertMessage(ctx, "g-msg", "s-msg", testutil.StringPtr("m-42")))
		details, err := repo.GetAlert(ctx, "g-msg", "s-msg")
		require.NoError(t, err)
		require.NotNil(t, details[0].MessageID)
		assert.Equal(t, "m-42", *details[0].MessageID)

		require.NoError(t, repo.UpdateAlertMessage(ctx, "g-msg", "s-msg", nil))
		details, err = repo.GetAlert(ctx, "g-msg", "s-msg")
		require.NoError(t, err)
		assert.Nil(t, details[0].MessageID)
	})

	t.Run("streamer live flag", func(t *testing.T) {
		require.NoError(t, repo.UpsertGuild(ctx, "g-live"))
		require.NoError(t, repo.UpsertStreamer(ctx, "s-live"))
		require.NoError(t, repo.CreateAlert(ctx, testutil.CreateTestAlert("g-live", "s-live")))

		require.NoError(t, repo.SetStreamerLive(ctx, "s-live", true))
		details, err := repo.GetAlert(ctx, "g-live", "s-live")
		require.NoError(t, err)
		assert.True(t, details[0].StreamerLive)

		// Upsert of an existing streamer must not reset the flag
		require.NoError(t, repo.UpsertStreamer(ctx, "s-live"))
		details, err = repo.GetAlert(ctx, "g-live", "s-live")
		require.NoError(t, err)
		assert.True(t, details[0].StreamerLive)

		require.NoError(t, repo.SetStreamerLive(ctx, "s-live", false))
		details, err = repo.GetAlert(ctx, "g-live", "s-live")
		require.NoError(t, err)
		assert.False(t, details[0].StreamerLive)

		// Unknown streamer is a no-op
		assert.NoError(t, repo.SetStreamerLive(ctx, "s-live-unknown", true))
	})

	t.Run("guild language is joined into details", func(t *testing.T) {
		require.NoError(t, repo.UpsertGuild(ctx, "g-join"))
		require.NoError(t, repo.UpdateGuildLanguage(ctx, "g-join", testutil.StringPtr("fr")))
		require.NoError(t, repo.UpsertStreamer(ctx, "s-join"))
		require.NoError(t, repo.CreateAlert(ctx, testutil.CreateTestAlert("g-join", "s-join")))

		details, err := repo.GetAlertsByStreamer(ctx, "s-join")
		require.NoError(t, err)
		require.Len(t, details, 1)
		require.NotNil(t, details[0].GuildLanguage)
		assert.Equal(t, "fr", *details[0].GuildLanguage)
	})

	t.Run("delete alert then streamer and guild", func(t *testing.T) {
		require.NoError(t, repo.UpsertGuild(ctx, "g-delete"))
		require.NoError(t, repo.UpsertStreamer(ctx, "s-delete"))
		require.NoError(t, repo.CreateAlert(ctx, testutil.CreateTestAlert("g-delete", "s-delete")))

		// Referenced streamer cannot be removed
		assert.Error(t, repo.DeleteStreamer(ctx, "s-delete"))

		require.NoError(t, repo.DeleteAlert(ctx, "g-delete", "s-delete"))
		count, err := repo.CountAlertsByStreamer(ctx, "s-delete")
		require.NoError(t, err)
		assert.Zero(t, count)

		require.NoError(t, repo.DeleteStreamer(ctx, "s-delete"))
		require.NoError(t, repo.DeleteGuild(ctx, "g-delete"))

		guild, err := repo.GetGuild(ctx, "g-delete")
		require.NoError(t, err)
		assert.Nil(t, guild)

		streamers, err := repo.ListStreamers(ctx)
		require.NoError(t, err)
		for _, s := range streamers {
			assert.NotEqual(t, "s-delete", s.StreamerID)
		}

		// Deleting missing rows is a no-op
		assert.NoError(t, repo.DeleteAlert(ctx, "g-delete", "s-delete"))
		assert.NoError(t, repo.DeleteStreamer(ctx, "s-delete"))
	})

	t.Run("list streamers", func(t *testing.T) {
		require.NoError(t, repo.UpsertStreamer(ctx, "s-roster"))
		require.NoError(t, repo.SetStreamerLive(ctx, "s-roster", true))

		streamers, err := repo.ListStreamers(ctx)
		require.NoError(t, err)

		var found bool
		for _, s := range streamers {
			if s.StreamerID == "s-roster" {
				found = true
				assert.True(t, s.Live)
			}
		}
		assert.True(t, found)
	})
}
