package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"streamalerts/bot"
	"streamalerts/config"
	"streamalerts/database"
	"streamalerts/infrastructure"
	"streamalerts/infrastructure/observability"
	"streamalerts/repository"
	"streamalerts/service"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	cfg := config.Get()
	setupLogging(cfg)

	log.WithField("environment", cfg.Environment).Info("Starting stream alerts bot...")

	metrics := observability.NewMetricsProvider(cfg)
	if err := metrics.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}

	databaseURL := cfg.GetDatabaseURL()
	log.WithField("driver", database.DetectDriver(databaseURL)).Info("Running database migrations...")
	if err := database.RunMigrationsWithURL(databaseURL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	repo, closeRepo, err := openRepository(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer closeRepo()

	tracker, closeTracker, err := newLiveTracker(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeTracker()

	instrumentedTracker := observability.NewInstrumentedLiveTracker(tracker, metrics)
	store := observability.NewInstrumentedAlertStore(
		service.NewAlertStoreForEnvironment(cfg, repo, instrumentedTracker),
		metrics,
	)

	if err := service.SyncLiveTracker(ctx, store, instrumentedTracker); err != nil {
		log.WithError(err).Warn("Failed to sync live tracker on startup")
	}

	discordBot, err := bot.New(bot.Config{Token: cfg.DiscordToken}, store, metrics)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	<-ctx.Done()

	log.Info("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.WithError(err).Error("Error closing Discord bot")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := metrics.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Error shutting down metrics")
	}

	log.Info("Shutdown completed")
	return nil
}

// setupLogging configures the global logrus logger from cfg
func setupLogging(cfg *config.Config) {
	log.SetOutput(os.Stdout)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("Unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

// openRepository connects to the backend selected by databaseURL
func openRepository(ctx context.Context, databaseURL string) (service.AlertRepository, func(), error) {
	switch database.DetectDriver(databaseURL) {
	case database.DriverPostgres:
		db, err := database.NewConnection(ctx, databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return repository.NewAlertRepository(db), db.Close, nil

	default:
		db, err := database.OpenSQLite(ctx, databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				log.WithError(err).Error("Error closing database")
			}
		}
		return repository.NewSQLiteAlertRepository(db), closeDB, nil
	}
}

// newLiveTracker publishes to NATS when servers are configured and only logs otherwise
func newLiveTracker(ctx context.Context, cfg *config.Config) (service.LiveTracker, func(), error) {
	if cfg.NATSServers == "" {
		log.Info("NATS_SERVERS not set, live tracker notifications are logged only")
		return infrastructure.NewNoopLiveTracker(), func() {}, nil
	}

	client := infrastructure.NewNATSClient(cfg.NATSServers, cfg.OTelServiceName)
	if err := client.Connect(ctx); err != nil {
		return nil, nil, err
	}
	if err := client.EnsureStreamerWatchStream(); err != nil {
		client.Close()
		return nil, nil, err
	}

	closeClient := func() {
		if err := client.Close(); err != nil {
			log.WithError(err).Error("Error closing NATS connection")
		}
	}
	return infrastructure.NewNATSLiveTracker(client), closeClient, nil
}
