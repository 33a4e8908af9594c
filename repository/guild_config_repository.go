package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"cardinal/database"
	"cardinal/models"
)

// GuildConfigRepository provides access to per-guild configuration rows
type GuildConfigRepository struct {
	q queryable
}

// NewGuildConfigRepository creates a new guild config repository
func NewGuildConfigRepository(db *database.DB) *GuildConfigRepository {
	return &GuildConfigRepository{q: db.DB}
}

// GetByGuildID retrieves the configuration for a guild. A missing row is a
// normal outcome and returns (nil, nil). A disabled_cmds value that is not
// valid JSON surfaces as a *DecodeError.
func (r *GuildConfigRepository) GetByGuildID(ctx context.Context, guildID int64) (*models.GuildConfig, error) {
	query := `
		SELECT id, guild_id, log_enabled, log_channel, muted_role, disabled_cmds
		FROM guild_configs
		WHERE guild_id = ?
	`

	var config models.GuildConfig
	var rawDisabled string
	err := r.q.QueryRowContext(ctx, query, guildID).Scan(
		&config.ID,
		&config.GuildID,
		&config.LogEnabled,
		&config.LogChannel,
		&config.MutedRole,
		&rawDisabled,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get config for guild %d: %w", guildID, err)
	}

	if err := json.Unmarshal([]byte(rawDisabled), &config.DisabledCmds); err != nil {
		return nil, &DecodeError{Column: "disabled_cmds", Err: err}
	}
	if config.DisabledCmds == nil {
		config.DisabledCmds = []string{}
	}

	return &config, nil
}

// Upsert inserts a guild's configuration, replacing the config fields of an
// existing row for the same guild. Repeated provisioning runs therefore
// never produce duplicate rows. DisabledCmds is left untouched on conflict.
func (r *GuildConfigRepository) Upsert(ctx context.Context, config *models.GuildConfig) error {
	encoded, err := encodeDisabledCmds(config.DisabledCmds)
	if err != nil {
		return fmt.Errorf("failed to encode disabled commands: %w", err)
	}

	query := `
		INSERT INTO guild_configs (guild_id, log_enabled, log_channel, muted_role, disabled_cmds)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (guild_id) DO UPDATE SET
			log_enabled = excluded.log_enabled,
			log_channel = excluded.log_channel,
			muted_role = excluded.muted_role
	`

	if _, err := r.q.ExecContext(ctx, query, config.GuildID, config.LogEnabled, config.LogChannel, config.MutedRole, encoded); err != nil {
		return fmt.Errorf("failed to upsert config for guild %d: %w", config.GuildID, err)
	}

	return nil
}

// SetDisabledCmds overwrites the disabled command list for a guild.
// Idempotent; a nil list stores the empty list.
func (r *GuildConfigRepository) SetDisabledCmds(ctx context.Context, guildID int64, cmds []string) error {
	encoded, err := encodeDisabledCmds(cmds)
	if err != nil {
		return fmt.Errorf("failed to encode disabled commands: %w", err)
	}

	query := `UPDATE guild_configs SET disabled_cmds = ? WHERE guild_id = ?`

	result, err := r.q.ExecContext(ctx, query, encoded, guildID)
	if err != nil {
		return fmt.Errorf("failed to set disabled commands for guild %d: %w", guildID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for guild %d: %w", guildID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func encodeDisabledCmds(cmds []string) (string, error) {
	if cmds == nil {
		cmds = []string{}
	}
	encoded, err := json.Marshal(cmds)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
