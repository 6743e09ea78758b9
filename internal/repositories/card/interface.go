package card

import (
	"context"

	"github.com/KirkDiggler/jetlag/internal/models"
)

// Repository provides read-only access to the challenge deck
//
//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/jetlag/internal/repositories/card Repository
type Repository interface {
	// GetCard retrieves a card by its number
	GetCard(ctx context.Context, input *GetCardInput) (*models.Card, error)

	// ListCards returns the whole deck ordered by card number
	ListCards(ctx context.Context, input *ListCardsInput) (*ListCardsOutput, error)
}
