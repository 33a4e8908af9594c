package scheduler

import (
	"context"
	"strconv"

	log "github.com/sirupsen/logrus"

	"cardinal/bot"
	"cardinal/service"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
)

// Setup schedules the daily scoreboard digest and starts the cron runner.
// The returned cron must be stopped on shutdown.
func Setup(session *discordgo.Session, economy service.EconomyService, configs service.GuildConfigService, spec string, limit int) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		if err := PostDigest(context.Background(), session, economy, configs, limit); err != nil {
			log.Errorf("Error posting scoreboard digest: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}

// PostDigest sends the experience leaderboard to every guild that has
// logging enabled with a detected log channel. Per-guild delivery failures
// are logged and do not stop the remaining guilds.
func PostDigest(ctx context.Context, session *discordgo.Session, economy service.EconomyService, configs service.GuildConfigService, limit int) error {
	accounts, err := economy.TopAccounts(ctx, limit)
	if err != nil {
		return err
	}

	embed := bot.BuildScoreboardEmbed(accounts)

	for _, guild := range session.State.Guilds {
		guildID, err := strconv.ParseInt(guild.ID, 10, 64)
		if err != nil {
			continue
		}

		config, err := configs.GetConfig(ctx, guildID)
		if err != nil {
			log.Errorf("Error getting config for guild %s: %v", guild.ID, err)
			continue
		}
		if config == nil || !config.LogEnabled || config.LogChannel == nil {
			continue
		}

		channelID := strconv.FormatInt(*config.LogChannel, 10)
		if _, err := session.ChannelMessageSendEmbed(channelID, embed); err != nil {
			log.Errorf("Error sending digest to guild %s channel %s: %v", guild.ID, channelID, err)
		}
	}

	return nil
}
