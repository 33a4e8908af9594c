package bot

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	log "github.com/sirupsen/logrus"

	"cardinal/repository"

	"github.com/bwmarrin/discordgo"
)

var rpsChoices = []string{"rock", "paper", "scissors"}

// rpsBeats maps each choice to the choice it defeats.
var rpsBeats = map[string]string{
	"rock":     "scissors",
	"paper":    "rock",
	"scissors": "paper",
}

// rpsOutcome returns +1 when choice beats housePick, -1 when it loses and
// 0 for a draw.
func rpsOutcome(choice, housePick string) int64 {
	switch {
	case choice == housePick:
		return 0
	case rpsBeats[choice] == housePick:
		return 1
	default:
		return -1
	}
}

func (b *Bot) handleRps(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var choice string
	var wager int64
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "choice":
			choice = opt.StringValue()
		case "wager":
			wager = opt.IntValue()
		}
	}

	userID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if wager <= 0 {
		b.respondWithError(s, i, "Wager must be a positive amount.")
		return
	}

	account, err := b.economyService.GetAccount(ctx, userID)
	if err != nil {
		log.Errorf("Error getting account %d: %v", userID, err)
		b.respondWithError(s, i, "Something didn't process correctly. Please contact the bot owner if the issue persists.")
		return
	}
	if account == nil {
		b.respond(s, i, "Userdata has likely not been initialized!\nPlease try again.")
		return
	}

	// Advisory check against the balance observed at lookup time; it may be
	// stale by the time the outcome applies. The atomic delta keeps the
	// stored balance consistent either way.
	if wager > account.Currency {
		b.respond(s, i, "You don't have that much! Try again with a lower wager.")
		return
	}

	housePick := rpsChoices[rand.Intn(len(rpsChoices))]
	delta := rpsOutcome(choice, housePick) * wager

	// Draws never touch the store
	if delta == 0 {
		b.respond(s, i, fmt.Sprintf("Draw! You chose %s, and I chose %s.", choice, housePick))
		return
	}

	newBalance, err := b.economyService.ApplyOutcome(ctx, userID, delta)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			b.respond(s, i, "Userdata has likely not been initialized!\nPlease try again.")
			return
		}
		log.Errorf("Error applying outcome for user %d: %v", userID, err)
		b.respondWithError(s, i, "Something didn't process correctly. Please contact the bot owner if the issue persists.")
		return
	}

	if delta > 0 {
		b.respond(s, i, fmt.Sprintf("%s beats %s! You won **%s Alcoins**. New balance: **%s Alcoins**.",
			choice, housePick, FormatBalance(delta), FormatBalance(newBalance)))
	} else {
		b.respond(s, i, fmt.Sprintf("%s beats %s! You lost **%s Alcoins**. New balance: **%s Alcoins**.",
			housePick, choice, FormatBalance(-delta), FormatBalance(newBalance)))
	}

	log.Infof("Paid out %d for %s", delta, i.Member.User.Username)
}
