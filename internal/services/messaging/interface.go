package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetHelpMessage returns the help menu
	GetHelpMessage(ctx context.Context, input *GetHelpMessageInput) (*GetHelpMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetGameStartedMessage returns the announcement for a new game
	GetGameStartedMessage(ctx context.Context, input *GetGameStartedMessageInput) (*GetGameStartedMessageOutput, error)

	// GetGameStoppedMessage returns the announcement for a stopped game
	GetGameStoppedMessage(ctx context.Context, input *GetGameStoppedMessageInput) (*GetGameStoppedMessageOutput, error)

	// GetCardMessage returns the text of a drawn card
	GetCardMessage(ctx context.Context, input *GetCardMessageInput) (*GetCardMessageOutput, error)

	// GetCardFinishedMessage returns the message for a completed card
	GetCardFinishedMessage(ctx context.Context, input *GetCardFinishedMessageInput) (*GetCardFinishedMessageOutput, error)

	// GetVetoMessage returns the message for a vetoed card
	GetVetoMessage(ctx context.Context, input *GetVetoMessageInput) (*GetVetoMessageOutput, error)

	// GetShopMessage returns the shop listing
	GetShopMessage(ctx context.Context, input *GetShopMessageInput) (*GetShopMessageOutput, error)

	// GetPurchaseMessage returns the receipt for a purchase
	GetPurchaseMessage(ctx context.Context, input *GetPurchaseMessageInput) (*GetPurchaseMessageOutput, error)

	// GetTravelMessage returns the receipt for paid travel
	GetTravelMessage(ctx context.Context, input *GetTravelMessageInput) (*GetTravelMessageOutput, error)

	// GetTagMessage returns the announcement for a tag
	GetTagMessage(ctx context.Context, input *GetTagMessageInput) (*GetTagMessageOutput, error)

	// GetWalletMessage returns a player's balance
	GetWalletMessage(ctx context.Context, input *GetWalletMessageInput) (*GetWalletMessageOutput, error)

	// GetWinnerMessage returns who would win at a place
	GetWinnerMessage(ctx context.Context, input *GetWinnerMessageInput) (*GetWinnerMessageOutput, error)

	// GetHistoryMessage lists finished games
	GetHistoryMessage(ctx context.Context, input *GetHistoryMessageInput) (*GetHistoryMessageOutput, error)

	// GetMapMessage returns the legend of the game map
	GetMapMessage(ctx context.Context, input *GetMapMessageInput) (*GetMapMessageOutput, error)

	// GetLogMessage lists archived channels or the messages of one of them
	GetLogMessage(ctx context.Context, input *GetLogMessageInput) (*GetLogMessageOutput, error)

	// GetNotificationMessage renders a game notification for a channel
	GetNotificationMessage(ctx context.Context, input *GetNotificationMessageInput) (*GetNotificationMessageOutput, error)
}
