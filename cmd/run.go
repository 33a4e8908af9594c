package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"cardinal/bot"
	"cardinal/config"
	"cardinal/database"
	"cardinal/events"
	"cardinal/repository"
	"cardinal/scheduler"
	"cardinal/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting cardinal bot...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Opening store...")
	db, err := database.NewConnection(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	if db.Fresh() {
		log.Println("Store file did not exist, guild provisioning will run")
	}

	// Bring the schema up to date; a no-op on an already-migrated store
	if err := database.RunMigrations(db.Path()); err != nil {
		return fmt.Errorf("failed to migrate store: %w", err)
	}
	log.Println("Store ready")

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize repositories
	userAccountRepo := repository.NewUserAccountRepository(db)
	guildConfigRepo := repository.NewGuildConfigRepository(db)

	// Initialize services
	economyService := service.NewEconomyService(userAccountRepo, eventBus)
	guildConfigService := service.NewGuildConfigService(guildConfigRepo)

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:           cfg.DiscordToken,
		GuildID:         cfg.DiscordGuildID,
		ScoreboardLimit: cfg.ScoreboardLimit,
	}
	discordBot, err := bot.New(botConfig, economyService, guildConfigService, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Println("Discord bot initialized successfully")

	// A freshly created store gets default guild configs once the gateway
	// cache has had time to populate
	if db.Fresh() {
		provisioner := bot.NewProvisioner(discordBot.Session(), guildConfigRepo, eventBus, cfg.ProvisionDelay)
		go provisioner.Run(ctx)
	}

	// Schedule the daily scoreboard digest
	digestCron, err := scheduler.Setup(discordBot.Session(), economyService, guildConfigService, cfg.DigestCronSpec, cfg.ScoreboardLimit)
	if err != nil {
		discordBot.Close()
		return fmt.Errorf("failed to schedule scoreboard digest: %w", err)
	}

	// Wait for context cancellation
	log.Printf("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down bot...")

	digestCron.Stop()

	// Close Discord bot connection
	if err := discordBot.Close(); err != nil {
		log.Printf("Error closing Discord bot: %v", err)
	}

	// Give cleanup operations time to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Close database connection
	log.Println("Closing store...")
	if err := db.Close(); err != nil {
		log.Printf("Error closing store: %v", err)
	}

	select {
	case <-shutdownCtx.Done():
		log.Println("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Println("Shutdown completed")
	}

	return nil
}
