package cmd

import (
	"context"
	"fmt"
	"time"

	"smanager/application"
	"smanager/bot"
	"smanager/config"
	"smanager/database"
	"smanager/infrastructure"
	"smanager/infrastructure/observability"
	"smanager/repository"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	cfg := config.Get()
	SetupLogging(cfg)
	log.Info("Starting smanager bot...")

	if err := observability.InitializeGlobalMetrics(ctx, cfg); err != nil {
		log.WithError(err).Warn("Failed to initialize metrics, continuing without them")
	}

	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Info("Database connection established successfully")

	uowFactory := repository.NewUnitOfWorkFactory(db)
	eventBus := infrastructure.NewEventBus()
	scheduler := infrastructure.NewTaskScheduler()

	log.Info("Warming channel cache...")
	channelCache := infrastructure.NewChannelCache()
	if err := channelCache.Warm(ctx,
		repository.NewScrimRepository(db),
		repository.NewTourneyRepository(db),
		repository.NewTagCheckRepository(db),
		repository.NewEasyTagRepository(db),
	); err != nil {
		return fmt.Errorf("failed to warm channel cache: %w", err)
	}

	log.Info("Initializing Discord bot...")
	discordBot, err := bot.New(bot.Config{Token: cfg.DiscordToken}, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	messenger := bot.NewMessenger(discordBot.Session())

	if err := application.RegisterApplicationSubscriptions(
		eventBus,
		uowFactory,
		messenger,
		scheduler,
		channelCache,
		cfg.DeniedMessageDeleteDelay,
	); err != nil {
		return fmt.Errorf("failed to register event handlers: %w", err)
	}

	if err := discordBot.Open(); err != nil {
		return fmt.Errorf("failed to connect to Discord: %w", err)
	}
	log.Info("Discord bot connected successfully")

	var natsClient *infrastructure.NATSClient
	if cfg.NATSEnabled {
		natsClient, err = startNATS(ctx, cfg, eventBus)
		if err != nil {
			_ = discordBot.Close()
			return err
		}
	} else {
		log.Info("NATS disabled, only gateway events will be handled")
	}

	var debugAPI *bot.DebugAPI
	if cfg.DebugAPIAddr != "" {
		debugAPI = bot.NewDebugAPI(cfg.DebugAPIAddr, eventBus, channelCache)
		debugAPI.Start()
	}

	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	log.Info("Shutting down bot...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Stop intake before draining scheduled work that still needs the session.
	if natsClient != nil {
		if err := natsClient.Close(); err != nil {
			log.Errorf("Error closing NATS client: %v", err)
		}
	}
	if debugAPI != nil {
		if err := debugAPI.Shutdown(shutdownCtx); err != nil {
			log.Errorf("Error stopping debug API: %v", err)
		}
	}
	if err := scheduler.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error draining scheduled tasks: %v", err)
	}
	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}
	if err := observability.ShutdownGlobalMetrics(shutdownCtx); err != nil {
		log.Errorf("Error shutting down metrics: %v", err)
	}

	log.Info("Shutdown completed")
	return nil
}

func startNATS(ctx context.Context, cfg *config.Config, eventBus *infrastructure.EventBus) (*infrastructure.NATSClient, error) {
	log.Infof("Connecting to NATS at %s...", cfg.NATSServers)
	natsClient := infrastructure.NewNATSClient(cfg.NATSServers)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := natsClient.Connect(connectCtx); err != nil {
		return nil, err
	}

	if err := natsClient.EnsureEsportsEventStream(); err != nil {
		natsClient.Close()
		return nil, fmt.Errorf("failed to ensure event stream: %w", err)
	}

	subscriber := infrastructure.NewNATSEventSubscriber(natsClient, infrastructure.NewEventSubjectMapper(), eventBus)
	if err := subscriber.Start(ctx); err != nil {
		natsClient.Close()
		return nil, fmt.Errorf("failed to subscribe to esports events: %w", err)
	}

	log.Info("NATS event subscriber started")
	return natsClient, nil
}
