package card

import (
	"github.com/KirkDiggler/jetlag/internal/models"
)

// GetCardInput contains parameters for retrieving a card
type GetCardInput struct {
	// CardID is the card number
	CardID int
}

// ListCardsInput contains parameters for listing the deck
type ListCardsInput struct{}

// ListCardsOutput contains the deck
type ListCardsOutput struct {
	// Cards ordered by ID
	Cards []*models.Card
}
