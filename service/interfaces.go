package service

import (
	"context"

	"cardinal/events"
	"cardinal/models"
)

// UserAccountRepository defines the interface for user account data access
type UserAccountRepository interface {
	// GetByUserID retrieves an account by user ID; (nil, nil) when absent
	GetByUserID(ctx context.Context, userID int64) (*models.UserAccount, error)

	// GetTopByExperience returns up to limit accounts, highest experience first
	GetTopByExperience(ctx context.Context, limit int) ([]*models.UserAccount, error)

	// ApplyCurrencyDelta atomically adjusts an account's currency and
	// returns the resulting balance; repository.ErrNotFound when no row
	ApplyCurrencyDelta(ctx context.Context, userID int64, delta int64) (int64, error)
}

// GuildConfigRepository defines the interface for guild configuration data access
type GuildConfigRepository interface {
	// GetByGuildID retrieves a guild's configuration; (nil, nil) when absent
	GetByGuildID(ctx context.Context, guildID int64) (*models.GuildConfig, error)

	// Upsert inserts or refreshes a guild's configuration without duplicating rows
	Upsert(ctx context.Context, config *models.GuildConfig) error

	// SetDisabledCmds overwrites a guild's disabled command list
	SetDisabledCmds(ctx context.Context, guildID int64, cmds []string) error
}

// EconomyService is the contract every economy-style command handler codes
// against: look up the account, validate the stake against the observed
// balance, compute a signed outcome, and apply it through ApplyOutcome.
type EconomyService interface {
	// GetAccount retrieves an account; (nil, nil) when not initialized
	GetAccount(ctx context.Context, userID int64) (*models.UserAccount, error)

	// TopAccounts returns the experience leaderboard, bounded by limit
	TopAccounts(ctx context.Context, limit int) ([]*models.UserAccount, error)

	// ApplyOutcome applies a signed game outcome to an account and returns
	// the new balance. A zero delta represents a draw and issues no store
	// statement.
	ApplyOutcome(ctx context.Context, userID int64, delta int64) (int64, error)
}

// GuildConfigService defines the interface for guild configuration operations
type GuildConfigService interface {
	// GetConfig retrieves a guild's configuration; (nil, nil) when not provisioned
	GetConfig(ctx context.Context, guildID int64) (*models.GuildConfig, error)

	// SetDisabledCmds overwrites a guild's disabled command list
	SetDisabledCmds(ctx context.Context, guildID int64, cmds []string) error

	// IsCommandDisabled reports whether a guild has disabled the named command
	IsCommandDisabled(ctx context.Context, guildID int64, name string) (bool, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Emit(ctx context.Context, event events.Event)
}
