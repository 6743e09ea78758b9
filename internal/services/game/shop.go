package game

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/jetlag/internal/models"
)

// GetShop lists the items that can be bought
func (s *service) GetShop(ctx context.Context, input *GetShopInput) (*GetShopOutput, error) {
	items := make([]ShopItem, len(shopItems))
	copy(items, shopItems)

	return &GetShopOutput{
		Items: items,
	}, nil
}

// Purchase buys a shop item for a player.
// The price is debited before the effect applies; if the debit fails nothing changes.
// Notifications go out after the session lock is released.
func (s *service) Purchase(ctx context.Context, input *PurchaseInput) (*PurchaseOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	output, err := s.purchase(input)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, output.Notification)

	return output, nil
}

func (s *service) purchase(input *PurchaseInput) (*PurchaseOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if err := checkGuards(s.session, now, gameRunning, noVeto); err != nil {
		return nil, err
	}

	item, ok := findShopItem(input.EffectID)
	if !ok {
		return nil, ErrUnknownEffect
	}

	player, err := s.findPlayer(input.PlayerID)
	if err != nil {
		return nil, err
	}

	if err := debit(player, item.Price); err != nil {
		return nil, err
	}

	output := &PurchaseOutput{
		Item:    item,
		Balance: player.Coins,
	}

	audience := player.Role.Opposing().Audience()
	minutes := int(s.effectDuration.Minutes())

	switch item.ID {
	case EffectDouble:
		// The flag is binary, buying it twice does not stack
		s.session.doubleArmed = true
	case EffectTrackerOff:
		output.Notification = &models.Notification{
			Audience:  audience,
			Message:   fmt.Sprintf("%s has turned off their tracker for %d minutes!", player.Name, minutes),
			ExpiresAt: now.Add(s.effectDuration),
		}
	case EffectReveal:
		output.Notification = &models.Notification{
			Audience: audience,
			Message:  fmt.Sprintf("%s paid to know where you are! Let them know!", player.Name),
		}
	case EffectFreeze:
		output.Notification = &models.Notification{
			Audience:  audience,
			Message:   fmt.Sprintf("%s paid for you to stay still for %d minutes! Send a picture now, and one when the time is up, so you don't cheat!", player.Name, minutes),
			ExpiresAt: now.Add(s.effectDuration),
		}
	}

	log.Printf("%s bought %s for %d coins", player.Name, item.ID, item.Price)

	return output, nil
}

func findShopItem(id EffectID) (ShopItem, bool) {
	for _, item := range shopItems {
		if item.ID == id {
			return item, true
		}
	}
	return ShopItem{}, false
}
