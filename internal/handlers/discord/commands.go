package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/jetlag/internal/models"
	"github.com/KirkDiggler/jetlag/internal/repositories/chatlog"
	"github.com/KirkDiggler/jetlag/internal/repositories/result"
	"github.com/KirkDiggler/jetlag/internal/services/game"
	"github.com/KirkDiggler/jetlag/internal/services/geo"
	"github.com/KirkDiggler/jetlag/internal/services/maprender"
	"github.com/KirkDiggler/jetlag/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

const (
	mapFileName     = "map.png"
	defaultLogLimit = 20
	maxLogLimit     = 100
)

// buildCommands returns every slash command of the bot
func (b *Bot) buildCommands() []CommandHandler {
	minMinutes := float64(1)
	minLogLimit := float64(1)

	return []CommandHandler{
		&funcCommand{
			BaseCommand: BaseCommand{
				Name:        "help",
				Description: "Shows the help menu",
			},
			handle: b.handleHelp,
		},
		&funcCommand{
			BaseCommand: BaseCommand{
				Name:        "history",
				Description: "Lists the last finished games",
			},
			handle: b.handleHistory,
		},
		&funcCommand{
			BaseCommand: BaseCommand{
				Name:        "wallet",
				Description: "Shows how many coins you have, only to you",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "Admins only: the player to look up",
					},
				},
			},
			handle: b.handleWallet,
		},
		&funcCommand{
			BaseCommand: BaseCommand{
				Name:        "winner",
				Description: "Shows who would win at a place or at coordinates",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "place",
						Description: "A place name or \"lat, lon\"",
						Required:    true,
					},
				},
			},
			handle: b.handleWinner,
		},
		&funcCommand{
			BaseCommand: BaseCommand{
				Name:        "shop",
				Description: "Opens the shop",
				Scope:       ScopeRunners,
			},
			handle: b.handleShop,
		},
		&funcCommand{
			BaseCommand: BaseCommand{
				Name:        "travel",
				Description: "Pays for travelling with a method for some minutes",
				Scope:       ScopeRunners,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "method",
						Description: "How you travel",
						Required:    true,
						Choices:     travelChoices(),
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "minutes",
						Description: "How long you travel",
						Required:    true,
						MinValue:    &minMinutes,
					},
				},
			},
			handle: b.handleTravel,
		},
		&funcCommand{
			BaseCommand: BaseCommand{
				Name:        "draw",
				Description: "Draws a challenge card",
				Scope:       ScopeRunners,
			},
			handle: b.handleDraw,
		},
		&funcCommand{
			BaseCommand: BaseCommand{
				Name:        "finished",
				Description: "Completes the card, a proof photo is required",
				Scope:       ScopeRunners,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionAttachment,
						Name:        "photo",
						Description: "The picture the card asks for",
						Required:    true,
					},
				},
			},
			handle: b.handleFinished,
		},
		&funcCommand{
			BaseCommand: BaseCommand{
				Name:        "veto",
				Description: "Vetoes the card, no draws or purchases until the veto ends",
				Scope:       ScopeRunners,
			},
			handle: b.handleVeto,
		},
		&funcCommand{
			BaseCommand: BaseCommand{
				Name:        "start",
				Description: "Starts the game",
				Scope:       ScopeAdminMain,
				Options: []*discordgo.ApplicationCommandOption{
					placeOption("start", "Where everyone starts"),
					placeOption("end1", "First destination"),
					placeOption("end2", "Second destination"),
					placeOption("end3", "Third destination"),
				},
			},
			handle: b.handleStart,
		},
		&funcCommand{
			BaseCommand: BaseCommand{
				Name:        "stop",
				Description: "Stops the game",
				Scope:       ScopeAdminMain,
			},
			handle: b.handleStop,
		},
		&funcCommand{
			BaseCommand: BaseCommand{
				Name:        "tagged",
				Description: "Hands the runner role to the next player",
				Scope:       ScopeAdminMain,
			},
			handle: b.handleTagged,
		},
		&funcCommand{
			BaseCommand: BaseCommand{
				Name:        "manual",
				Description: "Fixes a player's role and coins",
				Scope:       ScopeAdminMain,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "The player to fix",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "role",
						Description: "The player's role",
						Required:    true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: string(models.RoleRunner), Value: string(models.RoleRunner)},
							{Name: string(models.RoleChaser), Value: string(models.RoleChaser)},
						},
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "coins",
						Description: "The player's coins",
						Required:    true,
					},
				},
			},
			handle: b.handleManual,
		},
		&funcCommand{
			BaseCommand: BaseCommand{
				Name:        "clear",
				Description: "Deletes the messages in this channel",
				Scope:       ScopeAdminMain,
			},
			handle: b.handleClear,
		},
		&funcCommand{
			BaseCommand: BaseCommand{
				Name:        "log",
				Description: "Reads the chat archive of the current game, only to you",
				Scope:       ScopeAdminMain,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "channel",
						Description: "Archived channel name, leave out to list them",
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "limit",
						Description: "How many of the latest messages to show",
						MinValue:    &minLogLimit,
						MaxValue:    maxLogLimit,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "attachment",
						Description: "ID of an archived file to send back",
					},
				},
			},
			handle: b.handleLog,
		},
	}
}

func placeOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    true,
	}
}

// options indexes the options of a slash command by name
func options(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	out := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		out[o.Name] = o
	}
	return out
}

func (b *Bot) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := b.messagingService.GetHelpMessage(context.Background(), &messaging.GetHelpMessageInput{})
	if err != nil {
		return err
	}
	return RespondWithEmbed(s, i, output.Title, output.Message, nil)
}

func (b *Bot) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	listed, err := b.resultRepo.ListResults(ctx, &result.ListResultsInput{})
	if err != nil {
		return err
	}

	output, err := b.messagingService.GetHistoryMessage(ctx, &messaging.GetHistoryMessageInput{
		Results: listed.Results,
	})
	if err != nil {
		return err
	}
	return RespondWithEmbed(s, i, output.Title, output.Message, nil)
}

func (b *Bot) handleWallet(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	user := interactionUser(i)

	target := user
	if opt, ok := options(i)["user"]; ok {
		target = opt.UserValue(s)
	}

	own := target.ID == user.ID
	if !own && (i.Member == nil || i.Member.Permissions&discordgo.PermissionAdministrator == 0) {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("You can't see the amount of coins someone else has, %s. Use this without the optional part", user.Mention()))
	}

	balance, err := b.gameService.Balance(ctx, &game.BalanceInput{PlayerID: target.ID})
	if err != nil {
		return b.respondWithError(s, i, err)
	}

	output, err := b.messagingService.GetWalletMessage(ctx, &messaging.GetWalletMessageInput{
		PlayerName: target.Mention(),
		Coins:      balance.Coins,
		Own:        own,
	})
	if err != nil {
		return err
	}
	return RespondWithEphemeralMessage(s, i, output.Message)
}

func (b *Bot) handleWinner(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	place := options(i)["place"].StringValue()

	// Geocoding is slower than the interaction deadline
	if err := DeferResponse(s, i, false); err != nil {
		return err
	}

	winner, err := b.gameService.WinnerNear(ctx, &game.WinnerNearInput{Place: place})
	if err != nil {
		return EditResponse(s, i, b.errorText(err, interactionUser(i)))
	}

	output, err := b.messagingService.GetWinnerMessage(ctx, &messaging.GetWinnerMessageInput{
		Place:          place,
		WinnerName:     mention(winner.Winner.ID),
		Destination:    winner.Winner.Destination,
		DistanceMeters: winner.DistanceMeters,
	})
	if err != nil {
		return err
	}
	return EditResponse(s, i, output.Message)
}

func (b *Bot) handleShop(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	shop, err := b.gameService.GetShop(ctx, &game.GetShopInput{})
	if err != nil {
		return b.respondWithError(s, i, err)
	}

	output, err := b.messagingService.GetShopMessage(ctx, &messaging.GetShopMessageInput{Items: shop.Items})
	if err != nil {
		return err
	}
	return RespondWithEphemeralEmbedAndButtons(s, i, output.Title, output.Message, shopButtons(shop.Items))
}

func (b *Bot) handleTravel(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	opts := options(i)
	user := interactionUser(i)

	travel, err := b.gameService.Travel(ctx, &game.TravelInput{
		PlayerID: user.ID,
		Method:   game.TravelMethod(opts["method"].StringValue()),
		Minutes:  int(opts["minutes"].IntValue()),
	})
	if err != nil {
		return b.respondWithError(s, i, err)
	}

	output, err := b.messagingService.GetTravelMessage(ctx, &messaging.GetTravelMessageInput{
		PlayerName: user.Mention(),
		Rate:       travel.Rate,
		Minutes:    travel.Minutes,
		Cost:       travel.Cost,
		Balance:    travel.Balance,
	})
	if err != nil {
		return err
	}
	return RespondWithMessage(s, i, output.Message)
}

func (b *Bot) handleDraw(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	draw, err := b.gameService.DrawCard(ctx, &game.DrawCardInput{})
	if err != nil {
		return b.respondWithError(s, i, err)
	}

	output, err := b.messagingService.GetCardMessage(ctx, &messaging.GetCardMessageInput{
		Card:       draw.Card,
		HasSubRoll: draw.HasSubRoll,
		SubRoll:    draw.SubRoll,
		Doubled:    draw.Doubled,
	})
	if err != nil {
		return err
	}
	return RespondWithEmbed(s, i, output.Title, output.Message, nil)
}

func (b *Bot) handleFinished(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	user := interactionUser(i)

	var proof *discordgo.MessageAttachment
	if opt, ok := options(i)["photo"]; ok {
		if id, ok := opt.Value.(string); ok && i.ApplicationCommandData().Resolved != nil {
			proof = i.ApplicationCommandData().Resolved.Attachments[id]
		}
	}

	proofURL := ""
	if proof != nil {
		proofURL = proof.URL
	}

	resolved, err := b.gameService.ResolveCard(ctx, &game.ResolveCardInput{
		PlayerID: user.ID,
		ProofURL: proofURL,
	})
	if err != nil {
		return b.respondWithError(s, i, err)
	}

	// Slash command attachments never show up as channel messages, archive the proof here
	attachments, files := archiveAttachments(ctx, s.Client, []*discordgo.MessageAttachment{proof})
	err = b.chatLogRepo.AppendMessage(ctx, &chatlog.AppendMessageInput{
		Message: &models.ChatMessage{
			ID:          i.ID,
			ChannelName: b.config.RunnersChannel,
			AuthorName:  user.Username,
			Content:     fmt.Sprintf("Proof for card %d", resolved.Card.ID),
			Attachments: attachments,
			Timestamp:   time.Now(),
		},
		Files: files,
	})
	if err != nil {
		log.Printf("Failed to archive proof for card %d: %v", resolved.Card.ID, err)
	}

	output, err := b.messagingService.GetCardFinishedMessage(ctx, &messaging.GetCardFinishedMessageInput{
		PlayerName: user.Mention(),
		ProofURL:   proofURL,
		Payout:     resolved.Payout,
		Doubled:    resolved.Doubled,
		Balance:    resolved.Balance,
	})
	if err != nil {
		return err
	}
	return RespondWithEmbed(s, i, output.Title, output.Message, nil)
}

func (b *Bot) handleVeto(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	channelID := i.ChannelID

	return b.propose(s, i, "veto the current card", func(ctx context.Context) error {
		veto, err := b.gameService.Veto(ctx, &game.VetoInput{})
		if err != nil {
			return err
		}

		output, err := b.messagingService.GetVetoMessage(ctx, &messaging.GetVetoMessageInput{
			EndsAt:  veto.EndsAt,
			Doubled: veto.Doubled,
		})
		if err != nil {
			return err
		}

		b.sendEmbed(s, channelID, newEmbed(output.Title, output.Message, colorWarning, nil))
		return nil
	})
}

func (b *Bot) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := options(i)
	start := opts["start"].StringValue()
	ends := []string{
		opts["end1"].StringValue(),
		opts["end2"].StringValue(),
		opts["end3"].StringValue(),
	}
	guildID := i.GuildID
	channelID := i.ChannelID

	return b.propose(s, i, "start a new game", func(ctx context.Context) error {
		return b.startGame(ctx, s, guildID, channelID, start, ends)
	})
}

// startGame validates the places, resets the chat log and sets up roles and channels
func (b *Bot) startGame(ctx context.Context, s *discordgo.Session, guildID, channelID, start string, ends []string) error {
	release, err := b.beginStart()
	if err != nil {
		return err
	}
	defer release()

	candidates, err := gatherPlayers(s, guildID)
	if err != nil {
		return err
	}
	if len(candidates) != game.PlayerCount {
		return game.ErrWrongPlayerCount
	}

	places := make([]geo.Coordinates, 0, len(ends)+1)
	for _, place := range append([]string{start}, ends...) {
		coords, err := b.geocoder.Geocode(ctx, place)
		if err != nil {
			return fmt.Errorf("failed to locate %q: %w", place, err)
		}
		places = append(places, coords)
	}

	// A game already running must not lose its chat log
	if _, err := b.gameService.GetSession(ctx, &game.GetSessionInput{}); err == nil {
		return game.ErrGameAlreadyRunning
	}

	if err := b.chatLogRepo.Reset(ctx, &chatlog.ResetInput{}); err != nil {
		return fmt.Errorf("failed to reset chat log: %w", err)
	}

	started, err := b.gameService.StartSession(ctx, &game.StartSessionInput{
		Players:      candidates,
		Destinations: ends,
	})
	if err != nil {
		return err
	}

	if err := syncRoles(s, guildID, started.Players); err != nil {
		log.Printf("Failed to hand out roles: %v", err)
	}

	session, err := b.gameService.GetSession(ctx, &game.GetSessionInput{})
	if err != nil {
		return err
	}

	output, err := b.messagingService.GetGameStartedMessage(ctx, &messaging.GetGameStartedMessageInput{
		Start:         start,
		Players:       started.Players,
		StartingCoins: started.Players[0].Coins,
	})
	if err != nil {
		return err
	}
	b.sendEmbed(s, channelID, newEmbed(output.Title, output.Message, colorSuccess, nil))
	b.sendMap(ctx, s, channelID, start, ends, places)

	for _, rc := range []struct {
		name string
		role models.Role
	}{
		{b.config.RunnersChannel, models.RoleRunner},
		{b.config.ChasersChannel, models.RoleChaser},
	} {
		channel, err := createRoleChannel(s, guildID, rc.name, rc.role)
		if err != nil {
			log.Printf("Failed to create channel %s: %v", rc.name, err)
			continue
		}
		b.sendEmbed(s, channel.ID, newEmbed(fmt.Sprintf("You are a %s", rc.role), "Good luck!", colorInfo, playerFields(session.Session.Players, false)))
	}

	return nil
}

func (b *Bot) handleStop(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	guildID := i.GuildID
	channelID := i.ChannelID

	return b.propose(s, i, "stop the game", func(ctx context.Context) error {
		stopped, err := b.gameService.StopSession(ctx, &game.StopSessionInput{})
		if err != nil {
			return err
		}

		if _, err := b.resultRepo.SaveResult(ctx, &result.SaveResultInput{
			StartedAt: stopped.StartedAt,
			EndedAt:   stopped.StoppedAt,
			Players:   stopped.Players,
		}); err != nil {
			log.Printf("Failed to save game result: %v", err)
		}

		revokeRoles(s, guildID, stopped.Revocations)
		deleteChannel(s, guildID, b.config.RunnersChannel)
		deleteChannel(s, guildID, b.config.ChasersChannel)

		output, err := b.messagingService.GetGameStoppedMessage(ctx, &messaging.GetGameStoppedMessageInput{
			Players: stopped.Players,
		})
		if err != nil {
			return err
		}

		b.sendEmbed(s, channelID, newEmbed(output.Title, output.Message, colorWarning, nil))
		return nil
	})
}

func (b *Bot) handleTagged(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	guildID := i.GuildID
	channelID := i.ChannelID

	return b.propose(s, i, "hand the runner role to the next player", func(ctx context.Context) error {
		tagged, err := b.gameService.Tag(ctx, &game.TagInput{})
		if err != nil {
			return err
		}

		purgeChannelByName(s, guildID, b.config.RunnersChannel)
		purgeChannelByName(s, guildID, b.config.ChasersChannel)

		if err := syncRoles(s, guildID, tagged.Players); err != nil {
			log.Printf("Failed to switch roles: %v", err)
		}

		output, err := b.messagingService.GetTagMessage(ctx, &messaging.GetTagMessageInput{
			PreviousRunnerName: mention(tagged.PreviousRunner.ID),
			NewRunnerName:      mention(tagged.NewRunner.ID),
			BonusPaid:          tagged.BonusPaid,
			Bonus:              tagged.Bonus,
		})
		if err != nil {
			return err
		}

		b.sendEmbed(s, channelID, newEmbed(output.Title, output.Message, colorSuccess, playerFields(tagged.Players, false)))
		return nil
	})
}

func (b *Bot) handleManual(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := options(i)
	target := opts["user"].UserValue(s)
	role := models.Role(opts["role"].StringValue())
	coins := int(opts["coins"].IntValue())
	guildID := i.GuildID
	channelID := i.ChannelID

	description := fmt.Sprintf("make %s a %s with %d coins", target.Username, role, coins)
	return b.propose(s, i, description, func(ctx context.Context) error {
		fixed, err := b.gameService.ManualOverride(ctx, &game.ManualOverrideInput{
			PlayerID: target.ID,
			Role:     role,
			Coins:    coins,
		})
		if err != nil {
			return err
		}

		if err := syncRoles(s, guildID, fixed.Players); err != nil {
			log.Printf("Failed to sync roles after manual fix: %v", err)
		}

		message := fmt.Sprintf("%s has been set to %s and has %d coins.", target.Mention(), fixed.Player.Role, fixed.Player.Coins)
		b.sendEmbed(s, channelID, newEmbed("Manual fix", message, colorInfo, playerFields(fixed.Players, true)))
		return nil
	})
}

func (b *Bot) handleClear(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	// Clearing is only for tidying up between games
	if _, err := b.gameService.GetSession(context.Background(), &game.GetSessionInput{}); err == nil {
		return b.respondWithError(s, i, game.ErrGameAlreadyRunning)
	} else if !errors.Is(err, game.ErrGameNotRunning) {
		return b.respondWithError(s, i, err)
	}

	channelID := i.ChannelID
	return b.propose(s, i, "delete the messages in this channel", func(ctx context.Context) error {
		return purgeChannel(s, channelID)
	})
}

// sendMap posts the start and destinations as an attached map image
func (b *Bot) sendMap(ctx context.Context, s *discordgo.Session, channelID, start string, ends []string, places []geo.Coordinates) {
	rendered, err := b.mapRenderer.Render(ctx, &maprender.RenderInput{
		Start:        places[0],
		Destinations: places[1:],
	})
	if err != nil {
		log.Printf("Failed to render the map: %v", err)
		return
	}

	legend, err := b.messagingService.GetMapMessage(ctx, &messaging.GetMapMessageInput{
		Start:        start,
		Destinations: ends,
	})
	if err != nil {
		log.Printf("Failed to build the map legend: %v", err)
		return
	}

	embed := newEmbed(legend.Title, legend.Message, colorInfo, nil)
	embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + mapFileName}

	_, err = s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Files: []*discordgo.File{
			{Name: mapFileName, ContentType: "image/png", Reader: bytes.NewReader(rendered.PNG)},
		},
	})
	if err != nil {
		log.Printf("Failed to send the map to channel %s: %v", channelID, err)
	}
}

func (b *Bot) handleLog(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	opts := options(i)

	if opt, ok := opts["attachment"]; ok {
		return b.sendArchivedFile(ctx, s, i, strings.TrimSpace(opt.StringValue()))
	}

	input := &messaging.GetLogMessageInput{}
	if opt, ok := opts["channel"]; ok {
		limit := defaultLogLimit
		if l, ok := opts["limit"]; ok {
			limit = int(l.IntValue())
		}

		input.ChannelName = strings.TrimPrefix(strings.TrimSpace(opt.StringValue()), "#")
		archive, err := b.chatLogRepo.GetMessages(ctx, &chatlog.GetMessagesInput{
			ChannelName: input.ChannelName,
			Limit:       limit,
		})
		if err != nil {
			return b.respondWithError(s, i, err)
		}
		input.Messages = archive.Messages
	} else {
		channels, err := b.chatLogRepo.ListChannels(ctx, &chatlog.ListChannelsInput{})
		if err != nil {
			return b.respondWithError(s, i, err)
		}
		input.ChannelNames = channels.ChannelNames
	}

	output, err := b.messagingService.GetLogMessage(ctx, input)
	if err != nil {
		return err
	}
	return RespondWithEphemeralEmbed(s, i, output.Title, output.Message)
}

// sendArchivedFile answers with the stored content of an attachment
func (b *Bot) sendArchivedFile(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, attachmentID string) error {
	file, err := b.chatLogRepo.GetAttachment(ctx, &chatlog.GetAttachmentInput{AttachmentID: attachmentID})
	if errors.Is(err, chatlog.ErrAttachmentNotFound) {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("No archived file with ID %s.", attachmentID))
	}
	if err != nil {
		return b.respondWithError(s, i, err)
	}

	return RespondWithEphemeralFile(s, i, archivedFileName(attachmentID, file.Data), file.Data)
}

// archivedFileName picks an extension from the content so Discord previews images
func archivedFileName(attachmentID string, data []byte) string {
	contentType := http.DetectContentType(data)
	if contentType == "application/octet-stream" {
		return attachmentID
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return attachmentID + exts[0]
	}
	return attachmentID
}

func (b *Bot) sendEmbed(s *discordgo.Session, channelID string, embed *discordgo.MessageEmbed) {
	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.Printf("Failed to send message to channel %s: %v", channelID, err)
	}
}
