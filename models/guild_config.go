package models

// GuildConfig represents per-guild bot configuration. One row exists per
// guild; the store enforces uniqueness on GuildID.
type GuildConfig struct {
	ID           int64    `db:"id"`
	GuildID      int64    `db:"guild_id"`
	LogEnabled   bool     `db:"log_enabled"`
	LogChannel   *int64   `db:"log_channel"`
	MutedRole    *int64   `db:"muted_role"`
	DisabledCmds []string `db:"disabled_cmds"` // stored JSON-encoded
}

// CommandDisabled reports whether the named command is disabled in this guild.
func (g *GuildConfig) CommandDisabled(name string) bool {
	for _, cmd := range g.DisabledCmds {
		if cmd == name {
			return true
		}
	}
	return false
}
