package messaging

import (
	"time"

	"github.com/KirkDiggler/jetlag/internal/models"
	"github.com/KirkDiggler/jetlag/internal/services/game"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed seeds the picker for flavour lines, zero seeds from the time
	Seed int64
}

// GetHelpMessageInput contains parameters for the help menu
type GetHelpMessageInput struct{}

// GetHelpMessageOutput contains the help menu
type GetHelpMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by a service
	Err error

	// PlayerMention addresses the player who caused the error, optional
	PlayerMention string
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
}

// GetGameStartedMessageInput contains the input for GetGameStartedMessage
type GetGameStartedMessageInput struct {
	// Start is the place the game starts at
	Start string

	// Players in formation order
	Players []*models.Player

	// StartingCoins is the balance every player starts with
	StartingCoins int
}

// GetGameStartedMessageOutput contains the output for GetGameStartedMessage
type GetGameStartedMessageOutput struct {
	Title   string
	Message string
}

// GetGameStoppedMessageInput contains the input for GetGameStoppedMessage
type GetGameStoppedMessageInput struct {
	// Players is the final roster
	Players []*models.Player
}

// GetGameStoppedMessageOutput contains the output for GetGameStoppedMessage
type GetGameStoppedMessageOutput struct {
	Title   string
	Message string
}

// GetCardMessageInput contains a drawn card
type GetCardMessageInput struct {
	Card       *models.Card
	HasSubRoll bool
	SubRoll    int
	Doubled    bool
}

// GetCardMessageOutput contains the text of the card
type GetCardMessageOutput struct {
	Title   string
	Message string
}

// GetCardFinishedMessageInput contains a completed card
type GetCardFinishedMessageInput struct {
	PlayerName string
	ProofURL   string
	Payout     int
	Doubled    bool
	Balance    int
}

// GetCardFinishedMessageOutput contains the payout message
type GetCardFinishedMessageOutput struct {
	Title   string
	Message string
}

// GetVetoMessageInput contains a veto
type GetVetoMessageInput struct {
	EndsAt  time.Time
	Doubled bool
}

// GetVetoMessageOutput contains the veto message
type GetVetoMessageOutput struct {
	Title   string
	Message string
}

// GetShopMessageInput contains the shop items
type GetShopMessageInput struct {
	Items []game.ShopItem
}

// GetShopMessageOutput contains the shop listing
type GetShopMessageOutput struct {
	Title   string
	Message string
}

// GetPurchaseMessageInput contains a purchase
type GetPurchaseMessageInput struct {
	PlayerName string
	Item       game.ShopItem
	Balance    int
}

// GetPurchaseMessageOutput contains the receipt
type GetPurchaseMessageOutput struct {
	Message string
}

// GetTravelMessageInput contains paid travel
type GetTravelMessageInput struct {
	PlayerName string
	Rate       game.TravelRate
	Minutes    int
	Cost       int
	Balance    int
}

// GetTravelMessageOutput contains the receipt
type GetTravelMessageOutput struct {
	Message string
}

// GetTagMessageInput contains the result of a tag
type GetTagMessageInput struct {
	PreviousRunnerName string
	NewRunnerName      string
	BonusPaid          bool
	Bonus              int
}

// GetTagMessageOutput contains the tag announcement
type GetTagMessageOutput struct {
	Title   string
	Message string
}

// GetWalletMessageInput contains a balance
type GetWalletMessageInput struct {
	PlayerName string
	Coins      int

	// Own is true when players look at their own wallet
	Own bool
}

// GetWalletMessageOutput contains the balance message
type GetWalletMessageOutput struct {
	Message string
}

// GetWinnerMessageInput contains a winner lookup
type GetWinnerMessageInput struct {
	Place          string
	WinnerName     string
	Destination    string
	DistanceMeters float64
}

// GetWinnerMessageOutput contains the winner message
type GetWinnerMessageOutput struct {
	Message string
}

// GetHistoryMessageInput contains finished games, newest first
type GetHistoryMessageInput struct {
	Results []*models.GameResult
}

// GetHistoryMessageOutput contains the history listing
type GetHistoryMessageOutput struct {
	Title   string
	Message string
}

// GetMapMessageInput contains the places drawn on the map
type GetMapMessageInput struct {
	Start        string
	Destinations []string
}

// GetMapMessageOutput contains the map legend
type GetMapMessageOutput struct {
	Title   string
	Message string
}

// GetLogMessageInput contains archived chat, either channel names or one channel's messages
type GetLogMessageInput struct {
	// ChannelNames lists the archived channels when no channel was picked
	ChannelNames []string

	// ChannelName is the picked channel, Messages are its archive oldest first
	ChannelName string
	Messages    []*models.ChatMessage
}

// GetLogMessageOutput contains the archive listing
type GetLogMessageOutput struct {
	Title   string
	Message string
}

// GetNotificationMessageInput contains a game notification
type GetNotificationMessageInput struct {
	Notification *models.Notification
}

// GetNotificationMessageOutput contains the text to post
type GetNotificationMessageOutput struct {
	Message string
}
