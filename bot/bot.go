package bot

import (
	"context"
	"fmt"
	"time"

	"streamalerts/infrastructure/observability"
	"streamalerts/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const handlerTimeout = 10 * time.Second

// Config holds bot configuration
type Config struct {
	Token string
}

type Bot struct {
	config  Config
	session *discordgo.Session
	store   service.AlertStore
	metrics *observability.MetricsProvider
}

// New opens a Discord session that keeps guild rows in step with the guilds the bot is in
func New(config Config, store service.AlertStore, metrics *observability.MetricsProvider) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	bot := newBot(config, dg, store, metrics)

	dg.AddHandler(bot.handleGuildCreate)
	dg.AddHandler(bot.handleGuildDelete)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	log.Info("Discord session opened")
	return bot, nil
}

func newBot(config Config, session *discordgo.Session, store service.AlertStore, metrics *observability.MetricsProvider) *Bot {
	return &Bot{
		config:  config,
		session: session,
		store:   store,
		metrics: metrics,
	}
}

func (b *Bot) Close() error {
	return b.session.Close()
}

// handleGuildCreate fires on startup for every guild and whenever the bot joins one
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if g.Guild == nil || g.Unavailable {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	if err := b.store.UpsertGuild(ctx, g.ID); err != nil {
		log.WithFields(log.Fields{
			"guildID": g.ID,
			"error":   err,
		}).Error("Failed to register guild")
		return
	}

	b.metrics.RecordGuildEvent(observability.GuildEventJoined)
	log.WithFields(log.Fields{
		"guildID": g.ID,
		"name":    g.Name,
	}).Debug("Registered guild")
}

// handleGuildDelete removes the guild and its alerts when the bot leaves or is kicked.
// Outages also arrive as GuildDelete with Unavailable set and are ignored.
func (b *Bot) handleGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	if g.Guild == nil || g.Unavailable {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	if err := b.store.DeleteGuild(ctx, g.ID); err != nil {
		log.WithFields(log.Fields{
			"guildID": g.ID,
			"error":   err,
		}).Error("Failed to delete guild")
		return
	}

	b.metrics.RecordGuildEvent(observability.GuildEventRemoved)
	log.WithField("guildID", g.ID).Info("Removed guild and its alerts")
}
