package game

import (
	"context"

	"github.com/KirkDiggler/jetlag/internal/models"
)

// Service defines the interface for game operations
type Service interface {
	// StartSession forms the roster of three players and starts the game
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// StopSession ends the game and returns the roles to revoke
	StopSession(ctx context.Context, input *StopSessionInput) (*StopSessionOutput, error)

	// GetSession returns a snapshot of the running game
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// DrawCard draws a random challenge for the runners
	DrawCard(ctx context.Context, input *DrawCardInput) (*DrawCardOutput, error)

	// ResolveCard pays out the active challenge to the player who completed it
	ResolveCard(ctx context.Context, input *ResolveCardInput) (*ResolveCardOutput, error)

	// Veto discards the active challenge and starts the veto cooldown
	Veto(ctx context.Context, input *VetoInput) (*VetoOutput, error)

	// GetShop lists the items that can be bought
	GetShop(ctx context.Context, input *GetShopInput) (*GetShopOutput, error)

	// Purchase buys a shop item for a player
	Purchase(ctx context.Context, input *PurchaseInput) (*PurchaseOutput, error)

	// Travel charges a player for travelling with a method for some minutes
	Travel(ctx context.Context, input *TravelInput) (*TravelOutput, error)

	// Tag hands the runner role to the next player in rotation
	Tag(ctx context.Context, input *TagInput) (*TagOutput, error)

	// Balance returns a player's coins
	Balance(ctx context.Context, input *BalanceInput) (*BalanceOutput, error)

	// ManualOverride sets a player's role and coins
	ManualOverride(ctx context.Context, input *ManualOverrideInput) (*ManualOverrideOutput, error)

	// WinnerNear returns the player whose destination is closest to a place
	WinnerNear(ctx context.Context, input *WinnerNearInput) (*WinnerNearOutput, error)
}

// Notifier delivers game notifications to a group of players
//
//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/jetlag/internal/services/game Notifier
type Notifier interface {
	Deliver(ctx context.Context, notification *models.Notification) error
}
