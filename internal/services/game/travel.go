package game

import (
	"context"
	"log"
)

// Travel charges a player for travelling with a method for some minutes
func (s *service) Travel(ctx context.Context, input *TravelInput) (*TravelOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkGuards(s.session, s.clock.Now(), gameRunning, noVeto); err != nil {
		return nil, err
	}

	if input.Minutes <= 0 {
		return nil, ErrInvalidMinutes
	}

	rate, ok := FindTravelRate(input.Method)
	if !ok {
		return nil, ErrUnknownTravelMethod
	}

	player, err := s.findPlayer(input.PlayerID)
	if err != nil {
		return nil, err
	}

	cost := TravelCost(rate, input.Minutes)
	if err := debit(player, cost); err != nil {
		return nil, err
	}

	log.Printf("%s travels by %s for %d minutes (%d coins)", player.Name, rate.Label, input.Minutes, cost)

	return &TravelOutput{
		Rate:    rate,
		Minutes: input.Minutes,
		Cost:    cost,
		Balance: player.Coins,
	}, nil
}

// TravelCost returns the price of travelling minutes with a rate
func TravelCost(rate TravelRate, minutes int) int {
	return rate.Rate * minutes
}

// FindTravelRate looks up a travel method
func FindTravelRate(method TravelMethod) (TravelRate, bool) {
	for _, r := range TravelRates {
		if r.Method == method {
			return r, true
		}
	}
	return TravelRate{}, false
}
