package bot

import (
	"context"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/bwmarrin/discordgo"
)

var adminPermission = int64(discordgo.PermissionAdministrator)

func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "rps",
			Description: "Classic Rock Paper Scissors",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "choice",
					Description: "Rock, Paper, or Scissors",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Rock", Value: "rock"},
						{Name: "Paper", Value: "paper"},
						{Name: "Scissors", Value: "scissors"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "wager",
					Description: "Amount you would like to wager",
					Required:    true,
				},
			},
		},
		{
			Name:        "balance",
			Description: "Check your current balance",
		},
		{
			Name:        "top",
			Description: "Show the experience leaderboard",
		},
		{
			Name:                     "togglecmd",
			Description:              "Enable or disable a command in this server",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "command",
					Description: "Name of the command to toggle",
					Required:    true,
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name

	// togglecmd bypasses the disabled check so admins cannot lock
	// themselves out of it.
	if name != "togglecmd" && b.commandDisabled(i, name) {
		b.respondWithError(s, i, fmt.Sprintf("The `/%s` command is disabled in this server.", name))
		return
	}

	switch name {
	case "rps":
		b.handleRps(s, i)
	case "balance":
		b.handleBalance(s, i)
	case "top":
		b.handleTop(s, i)
	case "togglecmd":
		b.handleToggleCmd(s, i)
	}
}

// commandDisabled consults the guild's configuration. Lookup failures fail
// open: a broken config row should not lock every command out.
func (b *Bot) commandDisabled(i *discordgo.InteractionCreate, name string) bool {
	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		return false
	}

	disabled, err := b.guildConfigService.IsCommandDisabled(context.Background(), guildID, name)
	if err != nil {
		log.Errorf("Error checking disabled commands for guild %d: %v", guildID, err)
		return false
	}
	return disabled
}
