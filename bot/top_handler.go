package bot

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"cardinal/models"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) handleTop(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	accounts, err := b.economyService.TopAccounts(ctx, b.config.ScoreboardLimit)
	if err != nil {
		log.Errorf("Error getting top accounts: %v", err)
		b.respondWithError(s, i, "Unable to retrieve leaderboard. Please try again.")
		return
	}

	embed := BuildScoreboardEmbed(accounts)

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Errorf("Error responding to top command: %v", err)
	}
}

// BuildScoreboardEmbed renders the experience leaderboard. Shared with the
// daily digest job.
func BuildScoreboardEmbed(accounts []*models.UserAccount) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🏆 Experience Leaderboard",
		Color: 0x00ff00,
	}

	if len(accounts) == 0 {
		embed.Description = "No ranked users yet."
		return embed
	}

	var table strings.Builder
	table.WriteString("```\n")
	table.WriteString(fmt.Sprintf("%-4s %-20s %-10s %s\n", "Rank", "User", "Total XP", "Alcoins"))
	table.WriteString(strings.Repeat("-", 46) + "\n")

	for rank, account := range accounts {
		rankStr := fmt.Sprintf("#%d", rank+1)
		switch rank {
		case 0:
			rankStr = "🥇"
		case 1:
			rankStr = "🥈"
		case 2:
			rankStr = "🥉"
		}

		name := account.UserName
		if len(name) > 18 {
			name = name[:15] + "..."
		}

		table.WriteString(fmt.Sprintf("%-4s %-20s %-10d %s\n",
			rankStr, name, account.Experience(), FormatBalance(account.Currency)))
	}
	table.WriteString("```")

	embed.Description = table.String()
	return embed
}
