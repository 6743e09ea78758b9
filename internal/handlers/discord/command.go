package discord

import (
	"bytes"

	"github.com/bwmarrin/discordgo"
)

// CommandScope restricts where and by whom a command may be used
type CommandScope int

const (
	// ScopeAnywhere commands can be used by anyone in any channel
	ScopeAnywhere CommandScope = iota

	// ScopeRunners commands can only be used in the runners channel
	ScopeRunners

	// ScopeAdminMain commands can only be used by admins in the main channel
	ScopeAdminMain
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetScope returns where the command may be used
	GetScope() CommandScope

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Scope       CommandScope
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetScope returns where the command may be used
func (c *BaseCommand) GetScope() CommandScope {
	return c.Scope
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// funcCommand is a command whose behaviour is a single function
type funcCommand struct {
	BaseCommand
	handle func(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// Handle processes a Discord interaction
func (c *funcCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return c.handle(s, i)
}

// RespondWithMessage sends a simple text message response to an interaction
func RespondWithMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
}

// RespondWithEmbed sends an embed response to an interaction
func RespondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, title, description string, fields []*discordgo.MessageEmbedField) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{newEmbed(title, description, colorInfo, fields)},
		},
	})
}

// RespondWithError sends an ephemeral error response to an interaction
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, title, errorMessage string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{newEmbed(title, errorMessage, colorError, nil)},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondWithEphemeralEmbedAndButtons sends an ephemeral embed response with buttons to an interaction
func RespondWithEphemeralEmbedAndButtons(s *discordgo.Session, i *discordgo.InteractionCreate, title, description string, buttons []discordgo.MessageComponent) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{newEmbed(title, description, colorInfo, nil)},
			Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}},
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondWithEphemeralMessage sends an ephemeral message response to an interaction
func RespondWithEphemeralMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondWithEphemeralEmbed sends an embed only the invoking user can see
func RespondWithEphemeralEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, title, description string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{newEmbed(title, description, colorInfo, nil)},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondWithEphemeralFile sends a file only the invoking user can see
func RespondWithEphemeralFile(s *discordgo.Session, i *discordgo.InteractionCreate, name string, data []byte) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Files: []*discordgo.File{{Name: name, Reader: bytes.NewReader(data)}},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

// DeferResponse acknowledges an interaction that needs more than three seconds
func DeferResponse(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) error {
	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: flags,
		},
	})
}

// EditResponse replaces the content of a deferred or earlier response and drops its buttons
func EditResponse(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	components := []discordgo.MessageComponent{}
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content:    &message,
		Components: &components,
	})
	return err
}
