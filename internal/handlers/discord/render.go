package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/jetlag/internal/models"
	"github.com/KirkDiggler/jetlag/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorInfo    = 0x3498db
	colorSuccess = 0x00ff00
	colorWarning = 0xffa500
	colorError   = 0xff0000
)

// Custom ID prefixes, the part after the colon is the proposal or effect id
const (
	prefixConfirm = "confirm"
	prefixCancel  = "cancel"
	prefixShop    = "shop"
)

func newEmbed(title, description string, color int, fields []*discordgo.MessageEmbedField) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Fields:      fields,
	}
}

func customID(prefix, value string) string {
	return prefix + ":" + value
}

// parseCustomID splits a component custom ID into its prefix and value
func parseCustomID(id string) (prefix, value string, ok bool) {
	prefix, value, ok = strings.Cut(id, ":")
	if !ok || prefix == "" || value == "" {
		return "", "", false
	}
	return prefix, value, true
}

func confirmButtons(proposalID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Yes",
			Style:    discordgo.SuccessButton,
			CustomID: customID(prefixConfirm, proposalID),
		},
		discordgo.Button{
			Label:    "No",
			Style:    discordgo.DangerButton,
			CustomID: customID(prefixCancel, proposalID),
		},
	}
}

func shopButtons(items []game.ShopItem) []discordgo.MessageComponent {
	buttons := make([]discordgo.MessageComponent, 0, len(items))
	for _, item := range items {
		buttons = append(buttons, discordgo.Button{
			Label:    fmt.Sprintf("%s (%d)", item.Label, item.Price),
			Style:    discordgo.PrimaryButton,
			CustomID: customID(prefixShop, string(item.ID)),
		})
	}
	return buttons
}

// playerFields renders one embed field per player
func playerFields(players []*models.Player, showCoins bool) []*discordgo.MessageEmbedField {
	fields := make([]*discordgo.MessageEmbedField, 0, len(players))
	for _, p := range players {
		value := string(p.Role)
		if showCoins {
			value = fmt.Sprintf("%s, %d coins", p.Role, p.Coins)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   p.Name,
			Value:  value,
			Inline: true,
		})
	}
	return fields
}

func mention(userID string) string {
	return "<@" + userID + ">"
}

func travelChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(game.TravelRates))
	for _, r := range game.TravelRates {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s (%d/min)", r.Label, r.Rate),
			Value: string(r.Method),
		})
	}
	return choices
}
