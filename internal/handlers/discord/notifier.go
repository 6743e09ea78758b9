package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/jetlag/internal/models"
	"github.com/KirkDiggler/jetlag/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// NotifierConfig holds the configuration for the channel notifier
type NotifierConfig struct {
	Session *discordgo.Session

	// GuildID is optional, the first guild the bot is in is used without it
	GuildID string

	MainChannel    string
	RunnersChannel string
	ChasersChannel string

	MessagingService messaging.Service
}

// Notifier posts game notifications to the channel of their audience
type Notifier struct {
	session   *discordgo.Session
	guildID   string
	channels  map[models.Audience]string
	messaging messaging.Service
}

// NewNotifier creates a notifier that delivers into guild text channels
func NewNotifier(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &Notifier{
		session:   cfg.Session,
		guildID:   cfg.GuildID,
		channels:  audienceChannels(cfg.MainChannel, cfg.RunnersChannel, cfg.ChasersChannel),
		messaging: cfg.MessagingService,
	}, nil
}

func audienceChannels(main, runners, chasers string) map[models.Audience]string {
	return map[models.Audience]string{
		models.AudienceAll:     main,
		models.AudienceRunners: runners,
		models.AudienceChasers: chasers,
	}
}

// Deliver posts a notification to its audience channel
func (n *Notifier) Deliver(ctx context.Context, notification *models.Notification) error {
	name, ok := n.channels[notification.Audience]
	if !ok || name == "" {
		return fmt.Errorf("no channel for audience %q", notification.Audience)
	}

	guildID, err := n.resolveGuild()
	if err != nil {
		return err
	}

	channel, err := findChannel(n.session, guildID, name)
	if err != nil {
		return fmt.Errorf("failed to find channel %s: %w", name, err)
	}

	rendered, err := n.messaging.GetNotificationMessage(ctx, &messaging.GetNotificationMessageInput{
		Notification: notification,
	})
	if err != nil {
		return fmt.Errorf("failed to render notification: %w", err)
	}

	if _, err := n.session.ChannelMessageSend(channel.ID, rendered.Message); err != nil {
		return fmt.Errorf("failed to send notification to %s: %w", name, err)
	}
	return nil
}

func (n *Notifier) resolveGuild() (string, error) {
	if n.guildID != "" {
		return n.guildID, nil
	}

	state := n.session.State
	state.RLock()
	defer state.RUnlock()

	if len(state.Guilds) > 0 {
		return state.Guilds[0].ID, nil
	}
	return "", errors.New("bot is not in any guild")
}
