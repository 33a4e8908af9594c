package service

import (
	"context"
	"fmt"

	"cardinal/models"
)

// guildConfigService implements the GuildConfigService interface
type guildConfigService struct {
	configs GuildConfigRepository
}

// NewGuildConfigService creates a new guild config service
func NewGuildConfigService(configs GuildConfigRepository) GuildConfigService {
	return &guildConfigService{
		configs: configs,
	}
}

// GetConfig retrieves a guild's configuration. An unprovisioned guild is a
// normal outcome and returns (nil, nil).
func (s *guildConfigService) GetConfig(ctx context.Context, guildID int64) (*models.GuildConfig, error) {
	config, err := s.configs.GetByGuildID(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild config: %w", err)
	}
	return config, nil
}

// SetDisabledCmds overwrites a guild's disabled command list
func (s *guildConfigService) SetDisabledCmds(ctx context.Context, guildID int64, cmds []string) error {
	if err := s.configs.SetDisabledCmds(ctx, guildID, cmds); err != nil {
		return err
	}
	return nil
}

// IsCommandDisabled reports whether a guild has disabled the named command.
// Guilds without a configuration row have nothing disabled.
func (s *guildConfigService) IsCommandDisabled(ctx context.Context, guildID int64, name string) (bool, error) {
	config, err := s.configs.GetByGuildID(ctx, guildID)
	if err != nil {
		return false, fmt.Errorf("failed to get guild config: %w", err)
	}
	if config == nil {
		return false, nil
	}
	return config.CommandDisabled(name), nil
}
