package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/KirkDiggler/jetlag/internal/models"
	"github.com/KirkDiggler/jetlag/internal/repositories/chatlog"
	"github.com/KirkDiggler/jetlag/internal/repositories/result"
	"github.com/KirkDiggler/jetlag/internal/services/confirmation"
	"github.com/KirkDiggler/jetlag/internal/services/game"
	"github.com/KirkDiggler/jetlag/internal/services/geo"
	"github.com/KirkDiggler/jetlag/internal/services/maprender"
	"github.com/KirkDiggler/jetlag/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config

	gameService         game.Service
	confirmationService confirmation.Service
	messagingService    messaging.Service
	chatLogRepo         chatlog.Repository
	resultRepo          result.Repository
	geocoder            geo.Geocoder
	mapRenderer         maprender.Renderer

	// starting is held from the running check until the new session exists
	starting atomic.Bool
}

// Config holds the configuration for the bot
type Config struct {
	// Session is shared with the notifier, see NewSession
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Channel names
	MainChannel    string
	RunnersChannel string
	ChasersChannel string

	// Services
	GameService         game.Service
	ConfirmationService confirmation.Service
	MessagingService    messaging.Service
	Geocoder            geo.Geocoder
	MapRenderer         maprender.Renderer

	// Repositories
	ChatLogRepo chatlog.Repository
	ResultRepo  result.Repository
}

// NewSession creates a Discord session with the intents the bot needs
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.ConfirmationService == nil {
		return nil, errors.New("confirmation service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Geocoder == nil {
		return nil, errors.New("geocoder cannot be nil")
	}

	if cfg.MapRenderer == nil {
		return nil, errors.New("map renderer cannot be nil")
	}

	if cfg.ChatLogRepo == nil {
		return nil, errors.New("chat log repository cannot be nil")
	}

	if cfg.ResultRepo == nil {
		return nil, errors.New("result repository cannot be nil")
	}

	if cfg.MainChannel == "" || cfg.RunnersChannel == "" || cfg.ChasersChannel == "" {
		return nil, errors.New("channel names cannot be empty")
	}

	bot := &Bot{
		session:             cfg.Session,
		commands:            make(map[string]CommandHandler),
		commandIDs:          make(map[string]string),
		config:              cfg,
		gameService:         cfg.GameService,
		confirmationService: cfg.ConfirmationService,
		messagingService:    cfg.MessagingService,
		chatLogRepo:         cfg.ChatLogRepo,
		resultRepo:          cfg.ResultRepo,
		geocoder:            cfg.Geocoder,
		mapRenderer:         cfg.MapRenderer,
	}

	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range b.buildCommands() {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	if b.config.GuildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), b.config.GuildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		h, ok := b.commands[name]
		if !ok {
			return
		}

		if allowed, reason := b.checkScope(s, i, h.GetScope()); !allowed {
			if err := RespondWithError(s, i, "Not allowed", reason); err != nil {
				log.Printf("Error responding to command %s: %v", name, err)
			}
			return
		}

		if err := h.Handle(s, i); err != nil {
			log.Printf("Error handling command %s: %v", name, err)
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Printf("Error handling component interaction: %v", err)
		}
	}
}

// checkScope applies the admin and channel restrictions of a command
func (b *Bot) checkScope(s *discordgo.Session, i *discordgo.InteractionCreate, scope CommandScope) (bool, string) {
	if scope == ScopeAnywhere {
		return true, ""
	}

	user := interactionUser(i)
	name, err := channelName(s, i.ChannelID)
	if err != nil {
		log.Printf("Failed to resolve channel %s: %v", i.ChannelID, err)
	}

	switch scope {
	case ScopeRunners:
		if name != b.config.RunnersChannel {
			return false, fmt.Sprintf("You can't use this command here, %s", user.Mention())
		}
	case ScopeAdminMain:
		if i.Member == nil || i.Member.Permissions&discordgo.PermissionAdministrator == 0 {
			return false, fmt.Sprintf("You don't have permission to use this command, %s", user.Mention())
		}
		if name != b.config.MainChannel {
			return false, fmt.Sprintf("You can't use this command here, %s", user.Mention())
		}
	}
	return true, ""
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	prefix, value, ok := parseCustomID(i.MessageComponentData().CustomID)
	if !ok {
		return RespondWithError(s, i, "Unknown button", i.MessageComponentData().CustomID)
	}

	switch prefix {
	case prefixConfirm:
		return b.handleConfirmButton(s, i, value)
	case prefixCancel:
		return b.handleCancelButton(s, i, value)
	case prefixShop:
		return b.handleShopButton(s, i, game.EffectID(value))
	default:
		return RespondWithError(s, i, "Unknown button", i.MessageComponentData().CustomID)
	}
}

// propose asks the invoking user to confirm an action before it runs
func (b *Bot) propose(s *discordgo.Session, i *discordgo.InteractionCreate, description string, action confirmation.Action) error {
	output, err := b.confirmationService.Propose(context.Background(), &confirmation.ProposeInput{
		IssuerID:    interactionUser(i).ID,
		Description: description,
		Action:      action,
	})
	if err != nil {
		return b.respondWithError(s, i, err)
	}

	return RespondWithEphemeralEmbedAndButtons(s, i, "Are you sure?", fmt.Sprintf("This will %s.", description), confirmButtons(output.ProposalID))
}

func (b *Bot) handleConfirmButton(s *discordgo.Session, i *discordgo.InteractionCreate, proposalID string) error {
	// Actions can take a while, acknowledge the click first
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}); err != nil {
		return fmt.Errorf("failed to acknowledge confirmation: %w", err)
	}

	output, err := b.confirmationService.Confirm(context.Background(), &confirmation.ConfirmInput{
		ProposalID:  proposalID,
		ResponderID: interactionUser(i).ID,
	})
	if err != nil {
		log.Printf("Confirmation %s failed: %v", proposalID, err)
		return EditResponse(s, i, b.errorText(err, interactionUser(i)))
	}

	return EditResponse(s, i, fmt.Sprintf("Done: %s.", output.Description))
}

func (b *Bot) handleCancelButton(s *discordgo.Session, i *discordgo.InteractionCreate, proposalID string) error {
	output, err := b.confirmationService.Cancel(context.Background(), &confirmation.CancelInput{
		ProposalID:  proposalID,
		ResponderID: interactionUser(i).ID,
	})

	message := ""
	if err != nil {
		message = b.errorText(err, interactionUser(i))
	} else {
		message = fmt.Sprintf("Cancelled: %s.", output.Description)
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    message,
			Embeds:     []*discordgo.MessageEmbed{},
			Components: []discordgo.MessageComponent{},
		},
	})
}

func (b *Bot) handleShopButton(s *discordgo.Session, i *discordgo.InteractionCreate, effect game.EffectID) error {
	ctx := context.Background()
	user := interactionUser(i)

	output, err := b.gameService.Purchase(ctx, &game.PurchaseInput{
		PlayerID: user.ID,
		EffectID: effect,
	})
	if err != nil {
		return b.respondWithError(s, i, err)
	}

	receipt, err := b.messagingService.GetPurchaseMessage(ctx, &messaging.GetPurchaseMessageInput{
		PlayerName: user.Mention(),
		Item:       output.Item,
		Balance:    output.Balance,
	})
	if err != nil {
		return err
	}

	return RespondWithMessage(s, i, receipt.Message)
}

// handleMessageCreate archives every message the bot can see
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}

	name, err := channelName(s, m.ChannelID)
	if err != nil {
		log.Printf("Failed to resolve channel %s for archiving: %v", m.ChannelID, err)
		return
	}

	ctx := context.Background()
	attachments, files := archiveAttachments(ctx, s.Client, m.Attachments)

	err = b.chatLogRepo.AppendMessage(ctx, &chatlog.AppendMessageInput{
		Message: &models.ChatMessage{
			ID:          m.ID,
			ChannelName: name,
			AuthorName:  m.Author.Username,
			Content:     m.Content,
			Attachments: attachments,
			Timestamp:   m.Timestamp,
		},
		Files: files,
	})
	if err != nil {
		log.Printf("Failed to archive message %s: %v", m.ID, err)
	}
}

// beginStart reserves the start of a game until release is called. A second
// start confirmed meanwhile fails instead of resetting the chat log twice.
func (b *Bot) beginStart() (release func(), err error) {
	if !b.starting.CompareAndSwap(false, true) {
		return nil, game.ErrGameAlreadyRunning
	}
	return func() { b.starting.Store(false) }, nil
}

// errorText renders an error for the user, unexpected errors are logged
func (b *Bot) errorText(err error, user *discordgo.User) string {
	if !game.IsGuardViolation(err) {
		log.Printf("Command failed: %v", err)
	}

	output, msgErr := b.messagingService.GetErrorMessage(context.Background(), &messaging.GetErrorMessageInput{
		Err:           err,
		PlayerMention: user.Mention(),
	})
	if msgErr != nil {
		return err.Error()
	}
	return output.Message
}

func (b *Bot) respondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	return RespondWithError(s, i, "Can't do that", b.errorText(err, interactionUser(i)))
}

// interactionUser returns the user behind an interaction in a guild or a DM
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}
