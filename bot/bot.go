package bot

import (
	"context"
	"fmt"

	"smanager/bot/common"
	"smanager/domain/events"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token string
}

type eventDispatcher interface {
	Dispatch(ctx context.Context, event events.Event) error
}

// Bot owns the gateway session and turns gateway events into domain events
type Bot struct {
	config     Config
	session    *discordgo.Session
	dispatcher eventDispatcher
}

// New creates a bot. The gateway connection is opened by Open.
func New(config Config, dispatcher eventDispatcher) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsGuildMessageReactions

	bot := &Bot{
		config:     config,
		session:    dg,
		dispatcher: dispatcher,
	}

	dg.AddHandler(bot.handleReady)
	dg.AddHandler(bot.handleGuildCreate)
	dg.AddHandler(bot.handleChannelDelete)

	return bot, nil
}

// Open connects to the gateway
func (b *Bot) Open() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}
	return nil
}

// Close gracefully shuts down the gateway connection
func (b *Bot) Close() error {
	return b.session.Close()
}

// Session returns the Discord session
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.WithFields(log.Fields{
		"user":   r.User.String(),
		"guilds": len(r.Guilds),
	}).Info("Connected to Discord gateway")
}

func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.WithFields(log.Fields{
		"guild_id": g.ID,
		"name":     g.Name,
	}).Debug("Guild available")
}

// handleChannelDelete raises a GuildChannelDeleteEvent for deleted guild channels
func (b *Bot) handleChannelDelete(s *discordgo.Session, c *discordgo.ChannelDelete) {
	if c.Channel == nil || c.GuildID == "" {
		return
	}

	fields := log.Fields{
		"guild_id":   c.GuildID,
		"channel_id": c.ID,
	}

	guildID, err := common.ParseID(c.GuildID)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("Failed to parse guild ID")
		return
	}
	channelID, err := common.ParseID(c.ID)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("Failed to parse channel ID")
		return
	}

	event := &events.GuildChannelDeleteEvent{GuildID: guildID, ChannelID: channelID}
	if err := b.dispatcher.Dispatch(context.Background(), event); err != nil {
		log.WithFields(fields).WithError(err).Error("Failed to handle channel deletion")
	}
}
