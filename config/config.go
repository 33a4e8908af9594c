package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// DefaultDatabasePath is where the SQLite file lives unless overridden
const DefaultDatabasePath = "data/cardinal.db"

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Database configuration
	DatabasePath string

	// Provisioning configuration
	ProvisionDelay time.Duration // wait for the guild cache to populate before the sweep

	// Scoreboard configuration
	ScoreboardLimit int    // entries shown by /top and the daily digest
	DigestCronSpec  string // cron schedule for the daily scoreboard digest

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Database
		DatabasePath: os.Getenv("DATABASE_PATH"),

		// Defaults
		ProvisionDelay:  5 * time.Second,
		ScoreboardLimit: 10,
		DigestCronSpec:  "0 9 * * *",

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if delay := os.Getenv("PROVISION_DELAY_SECONDS"); delay != "" {
		if parsedDelay, err := strconv.Atoi(delay); err == nil {
			config.ProvisionDelay = time.Duration(parsedDelay) * time.Second
		}
	}
	if limit := os.Getenv("SCOREBOARD_LIMIT"); limit != "" {
		if parsedLimit, err := strconv.Atoi(limit); err == nil && parsedLimit > 0 {
			config.ScoreboardLimit = parsedLimit
		}
	}
	if spec := os.Getenv("DIGEST_CRON_SPEC"); spec != "" {
		config.DigestCronSpec = spec
	}

	if config.DatabasePath == "" {
		config.DatabasePath = DefaultDatabasePath
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
	}

	return config, nil
}
