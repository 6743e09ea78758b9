package discord

import (
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/jetlag/internal/models"
	"github.com/KirkDiggler/jetlag/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

// errChannelNotFound is returned when no guild channel has the requested name
var errChannelNotFound = errors.New("channel not found")

// maxPurgeRounds bounds how many pages of 100 messages a purge deletes
const maxPurgeRounds = 50

func getGuild(s *discordgo.Session, guildID string) (*discordgo.Guild, error) {
	if g, err := s.State.Guild(guildID); err == nil {
		return g, nil
	}
	return s.Guild(guildID)
}

// isAdmin reports whether a member owns the guild or holds a role with the administrator permission
func isAdmin(guild *discordgo.Guild, member *discordgo.Member) bool {
	if member == nil || member.User == nil {
		return false
	}
	if guild.OwnerID == member.User.ID {
		return true
	}

	perms := make(map[string]int64, len(guild.Roles))
	for _, r := range guild.Roles {
		perms[r.ID] = r.Permissions
	}
	for _, id := range member.Roles {
		if perms[id]&discordgo.PermissionAdministrator != 0 {
			return true
		}
	}
	return false
}

func displayName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}

// gatherPlayers returns the members that can play, everyone but bots and admins
func gatherPlayers(s *discordgo.Session, guildID string) ([]game.PlayerInfo, error) {
	guild, err := getGuild(s, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild: %w", err)
	}

	members, err := s.GuildMembers(guildID, "", 1000)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	var players []game.PlayerInfo
	for _, m := range members {
		if m.User == nil || m.User.Bot || isAdmin(guild, m) {
			continue
		}
		players = append(players, game.PlayerInfo{
			ID:   m.User.ID,
			Name: displayName(m),
		})
	}
	return players, nil
}

// ensureRole returns the id of the guild role named after a game role, creating it when missing
func ensureRole(s *discordgo.Session, guildID string, role models.Role) (string, error) {
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		return "", fmt.Errorf("failed to list roles: %w", err)
	}

	for _, r := range roles {
		if r.Name == string(role) {
			return r.ID, nil
		}
	}

	mentionable := true
	created, err := s.GuildRoleCreate(guildID, &discordgo.RoleParams{
		Name:        string(role),
		Mentionable: &mentionable,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create role %s: %w", role, err)
	}
	return created.ID, nil
}

// syncRoles gives every player the guild role of their game role and removes the other one
func syncRoles(s *discordgo.Session, guildID string, players []*models.Player) error {
	roleIDs := make(map[models.Role]string, 2)
	for _, role := range []models.Role{models.RoleRunner, models.RoleChaser} {
		id, err := ensureRole(s, guildID, role)
		if err != nil {
			return err
		}
		roleIDs[role] = id
	}

	for _, p := range players {
		if err := s.GuildMemberRoleRemove(guildID, p.ID, roleIDs[p.Role.Opposing()]); err != nil {
			log.Printf("Failed to remove role from %s: %v", p.Name, err)
		}
		if err := s.GuildMemberRoleAdd(guildID, p.ID, roleIDs[p.Role]); err != nil {
			return fmt.Errorf("failed to give %s the %s role: %w", p.Name, p.Role, err)
		}
	}
	return nil
}

// revokeRoles removes the game roles players held when the game stopped
func revokeRoles(s *discordgo.Session, guildID string, revocations []game.RoleAssignment) {
	for _, r := range revocations {
		roleID, err := ensureRole(s, guildID, r.Role)
		if err != nil {
			log.Printf("Failed to look up role %s: %v", r.Role, err)
			continue
		}
		if err := s.GuildMemberRoleRemove(guildID, r.PlayerID, roleID); err != nil {
			log.Printf("Failed to revoke role %s from %s: %v", r.Role, r.PlayerID, err)
		}
	}
}

func findChannel(s *discordgo.Session, guildID, name string) (*discordgo.Channel, error) {
	channels, err := s.GuildChannels(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}

	for _, c := range channels {
		if c.Type == discordgo.ChannelTypeGuildText && c.Name == name {
			return c, nil
		}
	}
	return nil, errChannelNotFound
}

// channelName resolves a channel id to its name, the state cache is tried first
func channelName(s *discordgo.Session, channelID string) (string, error) {
	if c, err := s.State.Channel(channelID); err == nil {
		return c.Name, nil
	}

	c, err := s.Channel(channelID)
	if err != nil {
		return "", err
	}
	return c.Name, nil
}

// createRoleChannel creates a text channel only members of one game role can see
func createRoleChannel(s *discordgo.Session, guildID, name string, role models.Role) (*discordgo.Channel, error) {
	if existing, err := findChannel(s, guildID, name); err == nil {
		return existing, nil
	}

	roleID, err := ensureRole(s, guildID, role)
	if err != nil {
		return nil, err
	}

	overwrites := []*discordgo.PermissionOverwrite{
		{
			// The @everyone role shares its id with the guild
			ID:   guildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		{
			ID:    roleID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages,
		},
	}
	if s.State.User != nil {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    s.State.User.ID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages,
		})
	}

	channel, err := s.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildText,
		PermissionOverwrites: overwrites,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create channel %s: %w", name, err)
	}
	return channel, nil
}

func deleteChannel(s *discordgo.Session, guildID, name string) {
	channel, err := findChannel(s, guildID, name)
	if err != nil {
		if !errors.Is(err, errChannelNotFound) {
			log.Printf("Failed to find channel %s: %v", name, err)
		}
		return
	}

	if _, err := s.ChannelDelete(channel.ID); err != nil {
		log.Printf("Failed to delete channel %s: %v", name, err)
	}
}

// purgeChannel deletes the messages of a channel.
// Bulk deletion only accepts messages younger than two weeks, older ones are deleted one by one.
func purgeChannel(s *discordgo.Session, channelID string) error {
	for round := 0; round < maxPurgeRounds; round++ {
		messages, err := s.ChannelMessages(channelID, 100, "", "", "")
		if err != nil {
			return fmt.Errorf("failed to read messages: %w", err)
		}
		if len(messages) == 0 {
			return nil
		}

		ids := make([]string, 0, len(messages))
		for _, m := range messages {
			ids = append(ids, m.ID)
		}

		if len(ids) > 1 {
			if err := s.ChannelMessagesBulkDelete(channelID, ids); err == nil {
				continue
			}
		}

		for _, id := range ids {
			if err := s.ChannelMessageDelete(channelID, id); err != nil {
				return fmt.Errorf("failed to delete message %s: %w", id, err)
			}
		}
	}
	return nil
}

func purgeChannelByName(s *discordgo.Session, guildID, name string) {
	channel, err := findChannel(s, guildID, name)
	if err != nil {
		log.Printf("Failed to find channel %s to purge: %v", name, err)
		return
	}
	if err := purgeChannel(s, channel.ID); err != nil {
		log.Printf("Failed to purge channel %s: %v", name, err)
	}
}
