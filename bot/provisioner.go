package bot

import (
	"context"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"cardinal/events"
	"cardinal/models"
	"cardinal/service"

	"github.com/bwmarrin/discordgo"
)

// logChannelNames are the case-insensitive channel names the provisioner
// treats as a guild's log channel, with or without the leading glyph.
var logChannelNames = []string{"logs", "📜│logs"}

// mutedRoleName is matched literally; roles carrying administrator
// permission never qualify.
const mutedRoleName = "Muted"

// Provisioner writes a default configuration row for every guild the bot
// has joined. It runs once per process, and only against a freshly created
// store.
type Provisioner struct {
	session  *discordgo.Session
	configs  service.GuildConfigRepository
	eventBus *events.Bus
	delay    time.Duration
}

// NewProvisioner creates a guild provisioner
func NewProvisioner(session *discordgo.Session, configs service.GuildConfigRepository, eventBus *events.Bus, delay time.Duration) *Provisioner {
	return &Provisioner{
		session:  session,
		configs:  configs,
		eventBus: eventBus,
		delay:    delay,
	}
}

// Run waits for the gateway's guild cache to populate, then sweeps every
// known guild. Per-guild failures are logged and do not abort the sweep.
func (p *Provisioner) Run(ctx context.Context) {
	log.Infof("Setting timeout to create server configs to %.2f seconds", p.delay.Seconds())

	select {
	case <-ctx.Done():
		return
	case <-time.After(p.delay):
	}

	for _, guild := range p.session.State.Guilds {
		if err := p.provisionGuild(ctx, guild); err != nil {
			log.Errorf("Error provisioning guild %s (%s): %v", guild.Name, guild.ID, err)
		}
	}
}

func (p *Provisioner) provisionGuild(ctx context.Context, guild *discordgo.Guild) error {
	guildID, err := strconv.ParseInt(guild.ID, 10, 64)
	if err != nil {
		return err
	}

	logChannel, logFound := DetectLogChannel(guild.Channels)
	mutedRole, roleFound := DetectMutedRole(guild.Roles)

	config := &models.GuildConfig{
		GuildID:      guildID,
		LogEnabled:   logFound,
		DisabledCmds: []string{},
	}
	if logFound {
		config.LogChannel = &logChannel
	}
	if roleFound {
		config.MutedRole = &mutedRole
	}

	if err := p.configs.Upsert(ctx, config); err != nil {
		return err
	}

	log.Infof("Set guild data for: %s (%s) members: %d", guild.Name, guild.ID, guild.MemberCount)
	if !roleFound {
		log.Infof("    - No muted role could be found for %s", guild.Name)
	}
	if !logFound {
		log.Infof("    - No log channel could be found for %s", guild.Name)
	}

	p.eventBus.Emit(ctx, events.GuildProvisionedEvent{
		GuildID:         guildID,
		GuildName:       guild.Name,
		LogChannelFound: logFound,
		MutedRoleFound:  roleFound,
	})

	return nil
}

// DetectLogChannel scans a guild's channels for a text channel named like a
// log channel. First match wins; the gateway does not guarantee channel
// order, so which of several matching channels is chosen is unspecified.
func DetectLogChannel(channels []*discordgo.Channel) (int64, bool) {
	for _, channel := range channels {
		if channel.Type != discordgo.ChannelTypeGuildText {
			continue
		}
		name := strings.ToLower(channel.Name)
		for _, candidate := range logChannelNames {
			if name == candidate {
				if id, err := strconv.ParseInt(channel.ID, 10, 64); err == nil {
					return id, true
				}
			}
		}
	}
	return 0, false
}

// DetectMutedRole scans a guild's roles for a role literally named "Muted"
// that does not carry administrator permission. First match wins under the
// same ordering caveat as DetectLogChannel.
func DetectMutedRole(roles []*discordgo.Role) (int64, bool) {
	for _, role := range roles {
		if role.Name != mutedRoleName {
			continue
		}
		if role.Permissions&discordgo.PermissionAdministrator != 0 {
			continue
		}
		if id, err := strconv.ParseInt(role.ID, 10, 64); err == nil {
			return id, true
		}
	}
	return 0, false
}
