package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"cardinal/repository"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) handleToggleCmd(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var name string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "command" {
			name = strings.ToLower(strings.TrimSpace(opt.StringValue()))
		}
	}
	if name == "" || name == "togglecmd" {
		b.respondWithError(s, i, "That command cannot be toggled.")
		return
	}

	config, err := b.guildConfigService.GetConfig(ctx, guildID)
	if err != nil {
		var decodeErr *repository.DecodeError
		if errors.As(err, &decodeErr) {
			log.Errorf("Corrupt config for guild %d: %v", guildID, err)
			b.respondWithError(s, i, "This server's configuration is corrupt. Please contact the bot owner.")
			return
		}
		log.Errorf("Error getting config for guild %d: %v", guildID, err)
		b.respondWithError(s, i, "Unable to load server configuration. Please try again.")
		return
	}
	if config == nil {
		b.respondWithError(s, i, "This server has not been provisioned yet.")
		return
	}

	var cmds []string
	var verb string
	if config.CommandDisabled(name) {
		verb = "enabled"
		for _, cmd := range config.DisabledCmds {
			if cmd != name {
				cmds = append(cmds, cmd)
			}
		}
	} else {
		verb = "disabled"
		cmds = append(config.DisabledCmds, name)
	}

	if err := b.guildConfigService.SetDisabledCmds(ctx, guildID, cmds); err != nil {
		log.Errorf("Error setting disabled commands for guild %d: %v", guildID, err)
		b.respondWithError(s, i, "Unable to update server configuration. Please try again.")
		return
	}

	b.respond(s, i, fmt.Sprintf("The `/%s` command is now %s in this server.", name, verb))
}
