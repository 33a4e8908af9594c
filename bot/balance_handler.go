package bot

import (
	"context"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	account, err := b.economyService.GetAccount(ctx, userID)
	if err != nil {
		log.Errorf("Error getting account %d: %v", userID, err)
		b.respondWithError(s, i, "Unable to retrieve balance. Please try again.")
		return
	}
	if account == nil {
		b.respond(s, i, "Userdata has likely not been initialized!\nPlease try again.")
		return
	}

	b.respond(s, i, fmt.Sprintf("%s, your current balance: **%s Alcoins**",
		GetDisplayName(s, i.GuildID, i.Member.User.ID), FormatBalance(account.Currency)))
}
