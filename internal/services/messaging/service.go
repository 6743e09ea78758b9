package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/jetlag/internal/services/confirmation"
	"github.com/KirkDiggler/jetlag/internal/services/game"
	"github.com/KirkDiggler/jetlag/internal/services/geo"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting flavour lines, rand.Rand is not safe for concurrent use
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// relativeTime renders a Discord timestamp that counts down in the client
func relativeTime(t time.Time) string {
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}

// GetHelpMessage returns the help menu
func (s *service) GetHelpMessage(ctx context.Context, input *GetHelpMessageInput) (*GetHelpMessageOutput, error) {
	var b strings.Builder

	b.WriteString("**Usable everywhere**\n")
	b.WriteString("`/winner place` shows who would win at a place or at \"lat, lon\" coordinates\n")
	b.WriteString("`/help` shows this menu\n")
	b.WriteString("`/history` lists the last finished games\n")
	b.WriteString("`/wallet` shows how many coins you have, only to you\n\n")

	b.WriteString("**Runners channel only**\n")
	b.WriteString("`/shop` opens the shop\n")
	b.WriteString("`/travel method minutes` pays for travel\n")
	b.WriteString("`/draw` draws a challenge card\n")
	b.WriteString("`/finished photo` completes the card with a proof picture\n")
	b.WriteString("`/veto` vetoes the card, no draws or purchases until the veto ends\n\n")

	b.WriteString("**Admins, main channel only**\n")
	b.WriteString("`/start start end1 end2 end3` starts a game\n")
	b.WriteString("`/stop` stops the game\n")
	b.WriteString("`/tagged` hands the runner role to the next player\n")
	b.WriteString("`/manual user role coins` fixes a player's role and coins\n")
	b.WriteString("`/clear` deletes the messages in this channel\n")
	b.WriteString("`/log channel limit attachment` reads the chat archive of the current game\n\n")

	b.WriteString("**Travel prices per minute**\n")
	for _, r := range game.TravelRates {
		fmt.Fprintf(&b, "%s: %d coins\n", r.Label, r.Rate)
	}

	return &GetHelpMessageOutput{
		Title:   "Jet Lag Tag",
		Message: b.String(),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	who := input.PlayerMention
	if who == "" {
		who = "you"
	}

	var message string
	switch {
	case errors.Is(input.Err, game.ErrGameAlreadyRunning):
		message = "A game is already running. Please stop the game before running this command."
	case errors.Is(input.Err, game.ErrGameNotRunning):
		message = "No game is currently running, go start one first."
	case errors.Is(input.Err, game.ErrWrongPlayerCount):
		message = "Not the right amount of players to start the game. There need to be exactly 3 players, excluding bots and admins."
	case errors.Is(input.Err, game.ErrWrongDestinationCount):
		message = "A game needs exactly 3 destinations."
	case errors.Is(input.Err, game.ErrDuplicatePlayer):
		message = "Every player can only take part once."
	case errors.Is(input.Err, game.ErrCardActive):
		message = "A card is currently active. Please finish that one before drawing a new one."
	case errors.Is(input.Err, game.ErrNoCardActive):
		message = "No card is currently active. Please draw a card first."
	case errors.Is(input.Err, game.ErrVetoActive):
		message = "A veto is currently active. Please wait for it to finish."
	case errors.Is(input.Err, game.ErrProofRequired):
		message = "Send a photo as proof to finish the card."
	case errors.Is(input.Err, game.ErrInsufficientFunds):
		message = fmt.Sprintf("Sorry %s, you don't have enough coins for that.", who)
	case errors.Is(input.Err, game.ErrInvalidMinutes):
		message = "You can't travel back in time, silly."
	case errors.Is(input.Err, game.ErrUnknownTravelMethod):
		message = "That's not a valid method of travel."
	case errors.Is(input.Err, game.ErrUnknownEffect):
		message = "That's not in the shop."
	case errors.Is(input.Err, game.ErrPlayerNotFound):
		message = fmt.Sprintf("Sorry %s, that player was not found in the players list.", who)
	case errors.Is(input.Err, game.ErrRunnerRequired):
		message = "The game always needs a runner. Make another player the runner instead."
	case errors.Is(input.Err, game.ErrNegativeCoins):
		message = "Coins can't be negative."
	case errors.Is(input.Err, game.ErrInvalidRole):
		message = "That role doesn't exist, pick Runner or Chaser."
	case errors.Is(input.Err, geo.ErrPlaceNotFound):
		message = "One or more of the places you entered was not found. Please try again."
	case errors.Is(input.Err, confirmation.ErrNotIssuer):
		message = fmt.Sprintf("Hands off %s, only the person who asked can answer that.", who)
	case errors.Is(input.Err, confirmation.ErrProposalNotFound):
		message = "That question has already been answered."
	default:
		message = s.pick([]string{
			"Something went wrong! Try again in a moment.",
			"Oops! The train got stuck. Try again.",
			"Technical difficulties! Please try again.",
		})
	}

	return &GetErrorMessageOutput{
		Title:   "Can't do that",
		Message: message,
	}, nil
}

// GetGameStartedMessage returns the announcement for a new game
func (s *service) GetGameStartedMessage(ctx context.Context, input *GetGameStartedMessageInput) (*GetGameStartedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Start: %s\n\n", input.Start)
	for _, p := range input.Players {
		fmt.Fprintf(&b, "%s is a %s, heading for %s\n", p.Name, p.Role, p.Destination)
	}
	fmt.Fprintf(&b, "\nEveryone gets %d coins. Good luck!", input.StartingCoins)

	return &GetGameStartedMessageOutput{
		Title:   "The game has started!",
		Message: b.String(),
	}, nil
}

// GetGameStoppedMessage returns the announcement for a stopped game
func (s *service) GetGameStoppedMessage(ctx context.Context, input *GetGameStoppedMessageInput) (*GetGameStoppedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var b strings.Builder
	b.WriteString("The roles have been revoked and the channels have been deleted.\n\nFinal wallets:\n")
	for _, p := range input.Players {
		fmt.Fprintf(&b, "%s: %d coins\n", p.Name, p.Coins)
	}

	return &GetGameStoppedMessageOutput{
		Title:   "Game stopped",
		Message: b.String(),
	}, nil
}

// GetCardMessage returns the text of a drawn card
func (s *service) GetCardMessage(ctx context.Context, input *GetCardMessageInput) (*GetCardMessageOutput, error) {
	if input == nil || input.Card == nil {
		return nil, errors.New("input cannot be nil")
	}

	reward := input.Card.Reward
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", input.Card.Challenge)
	if input.Doubled {
		fmt.Fprintf(&b, "Points: %d (doubled to %d)\n\n", reward, reward*2)
	} else {
		fmt.Fprintf(&b, "Points: %d\n\n", reward)
	}
	fmt.Fprintf(&b, "Picture: %s", input.Card.Picture)
	if input.Card.Explanation != "" {
		fmt.Fprintf(&b, "\n\nExplanation: %s", input.Card.Explanation)
	}
	if input.HasSubRoll {
		fmt.Fprintf(&b, "\n\nAlso, your random number is: %d", input.SubRoll)
	}

	return &GetCardMessageOutput{
		Title:   fmt.Sprintf("Card %d", input.Card.ID),
		Message: b.String(),
	}, nil
}

// GetCardFinishedMessage returns the message for a completed card
func (s *service) GetCardFinishedMessage(ctx context.Context, input *GetCardFinishedMessageInput) (*GetCardFinishedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	message := fmt.Sprintf("Photo received: %s\n\n%s earned %d coins and now has %d.", input.ProofURL, input.PlayerName, input.Payout, input.Balance)
	if input.Doubled {
		message += "\nThe reward was doubled!"
	}

	return &GetCardFinishedMessageOutput{
		Title:   "Challenge complete",
		Message: message,
	}, nil
}

// GetVetoMessage returns the message for a vetoed card
func (s *service) GetVetoMessage(ctx context.Context, input *GetVetoMessageInput) (*GetVetoMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	message := fmt.Sprintf("No new cards can be drawn and no purchases can be made until %s.", relativeTime(input.EndsAt))
	if input.Doubled {
		message = "The penalty was doubled! " + message
	}

	return &GetVetoMessageOutput{
		Title:   "Veto activated",
		Message: message,
	}, nil
}

// GetShopMessage returns the shop listing
func (s *service) GetShopMessage(ctx context.Context, input *GetShopMessageInput) (*GetShopMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var b strings.Builder
	for _, item := range input.Items {
		fmt.Fprintf(&b, "%s: %d coins\n", item.Label, item.Price)
	}
	b.WriteString("\nWhat item do you want to buy?")

	return &GetShopMessageOutput{
		Title:   "Shop",
		Message: b.String(),
	}, nil
}

// GetPurchaseMessage returns the receipt for a purchase
func (s *service) GetPurchaseMessage(ctx context.Context, input *GetPurchaseMessageInput) (*GetPurchaseMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetPurchaseMessageOutput{
		Message: fmt.Sprintf("%s bought \"%s\" for %d coins and has %d left.", input.PlayerName, input.Item.Label, input.Item.Price, input.Balance),
	}, nil
}

// GetTravelMessage returns the receipt for paid travel
func (s *service) GetTravelMessage(ctx context.Context, input *GetTravelMessageInput) (*GetTravelMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetTravelMessageOutput{
		Message: fmt.Sprintf("%s, you can travel for %d minutes by %s. This cost you %d coins, %d left.", input.PlayerName, input.Minutes, input.Rate.Label, input.Cost, input.Balance),
	}, nil
}

// GetTagMessage returns the announcement for a tag
func (s *service) GetTagMessage(ctx context.Context, input *GetTagMessageInput) (*GetTagMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	title := s.pick([]string{
		"Tagged!",
		"Gotcha!",
		"Caught!",
	})

	message := fmt.Sprintf("%s got caught. %s is the runner now, run!", input.PreviousRunnerName, input.NewRunnerName)
	if input.BonusPaid {
		message += fmt.Sprintf("\n\n%d coins given to the new runner (a full round has been done).", input.Bonus)
	}

	return &GetTagMessageOutput{
		Title:   title,
		Message: message,
	}, nil
}

// GetWalletMessage returns a player's balance
func (s *service) GetWalletMessage(ctx context.Context, input *GetWalletMessageInput) (*GetWalletMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Own {
		return &GetWalletMessageOutput{
			Message: fmt.Sprintf("You have %d coins.", input.Coins),
		}, nil
	}

	return &GetWalletMessageOutput{
		Message: fmt.Sprintf("%s has %d coins.", input.PlayerName, input.Coins),
	}, nil
}

// GetWinnerMessage returns who would win at a place
func (s *service) GetWinnerMessage(ctx context.Context, input *GetWinnerMessageInput) (*GetWinnerMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetWinnerMessageOutput{
		Message: fmt.Sprintf("The winner at %s would be %s, %.1f km from %s!", input.Place, input.WinnerName, input.DistanceMeters/1000, input.Destination),
	}, nil
}

// GetHistoryMessage lists finished games with their richest player
func (s *service) GetHistoryMessage(ctx context.Context, input *GetHistoryMessageInput) (*GetHistoryMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.Results) == 0 {
		return &GetHistoryMessageOutput{
			Title:   "Past games",
			Message: "No games have been finished yet.",
		}, nil
	}

	var b strings.Builder
	for _, result := range input.Results {
		fmt.Fprintf(&b, "**%s** (%s)\n", relativeTime(result.EndedAt), result.EndedAt.Sub(result.StartedAt).Round(time.Minute))
		for _, p := range result.Players {
			fmt.Fprintf(&b, "%s: %d coins\n", p.Name, p.Coins)
		}
		if richest := result.Richest(); richest != nil {
			fmt.Fprintf(&b, "Richest: %s\n", richest.Name)
		}
		b.WriteString("\n")
	}

	return &GetHistoryMessageOutput{
		Title:   "Past games",
		Message: strings.TrimSpace(b.String()),
	}, nil
}

// mapColors names the destination markers in formation order
var mapColors = []string{"Red", "Green", "Yellow"}

// GetMapMessage returns the legend of the game map
func (s *service) GetMapMessage(ctx context.Context, input *GetMapMessageInput) (*GetMapMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Black: %s (start)\n", input.Start)
	for i, d := range input.Destinations {
		fmt.Fprintf(&b, "%s: %s\n", mapColors[i%len(mapColors)], d)
	}
	if len(input.Destinations) == len(mapColors) {
		b.WriteString("\nThe shaded areas show where each destination wins.")
	}

	return &GetMapMessageOutput{
		Title:   "The map",
		Message: strings.TrimSpace(b.String()),
	}, nil
}

// maxLogLength keeps the listing within a Discord embed description
const maxLogLength = 4000

// GetLogMessage lists archived channels or the messages of one of them
func (s *service) GetLogMessage(ctx context.Context, input *GetLogMessageInput) (*GetLogMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ChannelName == "" {
		if len(input.ChannelNames) == 0 {
			return &GetLogMessageOutput{
				Title:   "Chat archive",
				Message: "Nothing has been archived for this game yet.",
			}, nil
		}

		var b strings.Builder
		b.WriteString("Archived channels:\n")
		for _, name := range input.ChannelNames {
			fmt.Fprintf(&b, "#%s\n", name)
		}
		return &GetLogMessageOutput{
			Title:   "Chat archive",
			Message: strings.TrimSpace(b.String()),
		}, nil
	}

	title := fmt.Sprintf("Chat archive of #%s", input.ChannelName)
	if len(input.Messages) == 0 {
		return &GetLogMessageOutput{
			Title:   title,
			Message: "No messages archived in this channel.",
		}, nil
	}

	lines := make([]string, 0, len(input.Messages))
	for _, m := range input.Messages {
		line := fmt.Sprintf("%s **%s**: %s", relativeTime(m.Timestamp), m.AuthorName, m.Content)
		for _, a := range m.Attachments {
			line += fmt.Sprintf(" [%s `%s`]", a.Filename, a.ID)
		}
		lines = append(lines, strings.TrimSpace(line))
	}

	// Newest messages matter most, drop from the top until it fits
	omitted := 0
	for len(lines) > 1 && len(strings.Join(lines, "\n")) > maxLogLength {
		lines = lines[1:]
		omitted++
	}

	message := strings.Join(lines, "\n")
	if omitted > 0 {
		message = fmt.Sprintf("(%d older messages omitted)\n", omitted) + message
	}

	return &GetLogMessageOutput{
		Title:   title,
		Message: message,
	}, nil
}

// GetNotificationMessage renders a game notification for a channel
func (s *service) GetNotificationMessage(ctx context.Context, input *GetNotificationMessageInput) (*GetNotificationMessageOutput, error) {
	if input == nil || input.Notification == nil {
		return nil, errors.New("input cannot be nil")
	}

	message := input.Notification.Message
	if !input.Notification.ExpiresAt.IsZero() {
		message += fmt.Sprintf("\n\nTime left: %s", relativeTime(input.Notification.ExpiresAt))
	}

	return &GetNotificationMessageOutput{
		Message: message,
	}, nil
}
