package bot

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"cardinal/events"
	"cardinal/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token           string
	GuildID         string
	ScoreboardLimit int
}

type Bot struct {
	config             Config
	session            *discordgo.Session
	economyService     service.EconomyService
	guildConfigService service.GuildConfigService
	eventBus           *events.Bus
}

func New(config Config, economyService service.EconomyService, guildConfigService service.GuildConfigService, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:             config,
		session:            dg,
		economyService:     economyService,
		guildConfigService: guildConfigService,
		eventBus:           eventBus,
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Audit every applied delta
	eventBus.Subscribe(events.EventTypeBalanceChange, func(ctx context.Context, event events.Event) {
		if change, ok := event.(events.BalanceChangeEvent); ok {
			log.WithFields(log.Fields{
				"userID":     change.UserID,
				"delta":      change.Delta,
				"newBalance": change.NewBalance,
			}).Info("Balance changed")
		}
	})

	return bot, nil
}

// Session exposes the underlying Discord session for collaborators that
// need gateway state, like the guild provisioner and the digest scheduler.
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) respondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending error response: %v", err)
	}
}

func (b *Bot) respond(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
	if err != nil {
		log.Errorf("Error sending response: %v", err)
	}
}
