package discord

import (
	"testing"

	"github.com/KirkDiggler/jetlag/internal/models"
	"github.com/KirkDiggler/jetlag/internal/services/game"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCustomID(t *testing.T) {
	prefix, value, ok := parseCustomID(customID(prefixConfirm, "1b4e28ba-2fa1-11d2-883f-0016d3cca427"))
	require.True(t, ok)
	assert.Equal(t, prefixConfirm, prefix)
	assert.Equal(t, "1b4e28ba-2fa1-11d2-883f-0016d3cca427", value)

	prefix, value, ok = parseCustomID("shop:tracker_off")
	require.True(t, ok)
	assert.Equal(t, prefixShop, prefix)
	assert.Equal(t, string(game.EffectTrackerOff), value)

	for _, bad := range []string{"", "confirm", "confirm:", ":abc"} {
		_, _, ok := parseCustomID(bad)
		assert.False(t, ok, bad)
	}
}

func TestConfirmButtons(t *testing.T) {
	buttons := confirmButtons("abc")
	require.Len(t, buttons, 2)
	assert.Equal(t, "confirm:abc", buttons[0].(discordgo.Button).CustomID)
	assert.Equal(t, "cancel:abc", buttons[1].(discordgo.Button).CustomID)
}

func TestShopButtons(t *testing.T) {
	buttons := shopButtons([]game.ShopItem{
		{ID: game.EffectDouble, Label: "Double", Price: 250},
		{ID: game.EffectFreeze, Label: "Freeze", Price: 2000},
	})
	require.Len(t, buttons, 2)
	assert.Equal(t, "shop:double", buttons[0].(discordgo.Button).CustomID)
	assert.Equal(t, "Double (250)", buttons[0].(discordgo.Button).Label)
	assert.Equal(t, "shop:freeze", buttons[1].(discordgo.Button).CustomID)
}

func TestTravelChoicesCoverEveryMethod(t *testing.T) {
	choices := travelChoices()
	require.Len(t, choices, len(game.TravelRates))
	for i, r := range game.TravelRates {
		assert.Equal(t, string(r.Method), choices[i].Value)
	}
}

func TestAudienceChannels(t *testing.T) {
	channels := audienceChannels("main", "runners-only", "chasers-only")
	assert.Equal(t, "main", channels[models.AudienceAll])
	assert.Equal(t, "runners-only", channels[models.AudienceRunners])
	assert.Equal(t, "chasers-only", channels[models.AudienceChasers])
}

func TestIsAdmin(t *testing.T) {
	guild := &discordgo.Guild{
		OwnerID: "owner",
		Roles: []*discordgo.Role{
			{ID: "admins", Permissions: discordgo.PermissionAdministrator},
			{ID: "members", Permissions: discordgo.PermissionSendMessages},
		},
	}

	assert.True(t, isAdmin(guild, &discordgo.Member{User: &discordgo.User{ID: "owner"}}))
	assert.True(t, isAdmin(guild, &discordgo.Member{User: &discordgo.User{ID: "a"}, Roles: []string{"members", "admins"}}))
	assert.False(t, isAdmin(guild, &discordgo.Member{User: &discordgo.User{ID: "b"}, Roles: []string{"members"}}))
	assert.False(t, isAdmin(guild, &discordgo.Member{}))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Nick", displayName(&discordgo.Member{Nick: "Nick", User: &discordgo.User{Username: "user"}}))
	assert.Equal(t, "Global", displayName(&discordgo.Member{User: &discordgo.User{Username: "user", GlobalName: "Global"}}))
	assert.Equal(t, "user", displayName(&discordgo.Member{User: &discordgo.User{Username: "user"}}))
}

func TestPlayerFields(t *testing.T) {
	players := []*models.Player{
		{ID: "a", Name: "Alice", Role: models.RoleRunner, Coins: 2000},
		{ID: "b", Name: "Bob", Role: models.RoleChaser, Coins: 1750},
	}

	fields := playerFields(players, true)
	require.Len(t, fields, 2)
	assert.Equal(t, "Alice", fields[0].Name)
	assert.Equal(t, "Runner, 2000 coins", fields[0].Value)

	fields = playerFields(players, false)
	assert.Equal(t, "Chaser", fields[1].Value)
}
