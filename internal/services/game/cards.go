package game

import (
	"context"
	"fmt"
	"log"

	cardRepo "github.com/KirkDiggler/jetlag/internal/repositories/card"
)

// DrawCard draws a random challenge for the runners
func (s *service) DrawCard(ctx context.Context, input *DrawCardInput) (*DrawCardOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkGuards(s.session, s.clock.Now(), gameRunning, noActiveCard, noVeto); err != nil {
		return nil, err
	}

	cardID := s.deck[s.diceRoller.Roll(len(s.deck))-1]
	drawn, err := s.cards.GetCard(ctx, &cardRepo.GetCardInput{CardID: cardID})
	if err != nil {
		return nil, fmt.Errorf("failed to get card %d: %w", cardID, err)
	}

	output := &DrawCardOutput{
		Card:    copyCard(drawn),
		Doubled: s.session.doubleArmed,
	}

	if drawn.ID == s.subRollCardID {
		output.HasSubRoll = true
		output.SubRoll = s.diceRoller.Roll(s.subRollSides)
	}

	s.session.currentCard = copyCard(drawn)

	log.Printf("Card %d drawn", drawn.ID)

	return output, nil
}

// ResolveCard pays out the active challenge to the player who completed it.
// The double effect is consumed whether or not it doubled anything.
func (s *service) ResolveCard(ctx context.Context, input *ResolveCardInput) (*ResolveCardOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkGuards(s.session, s.clock.Now(), gameRunning, activeCard, noVeto); err != nil {
		return nil, err
	}

	if input.ProofURL == "" {
		return nil, ErrProofRequired
	}

	player, err := s.findPlayer(input.PlayerID)
	if err != nil {
		return nil, err
	}

	st := s.session
	card := st.currentCard
	payout := card.Reward
	doubled := st.doubleArmed
	if doubled {
		payout *= 2
	}

	credit(player, payout)
	st.doubleArmed = false
	st.currentCard = nil

	log.Printf("Card %d finished by %s for %d coins", card.ID, player.Name, payout)

	return &ResolveCardOutput{
		Card:    card,
		Payout:  payout,
		Doubled: doubled,
		Balance: player.Coins,
	}, nil
}

// Veto discards the active challenge and starts the veto cooldown.
// The cooldown is twice as long when the double effect is armed.
func (s *service) Veto(ctx context.Context, input *VetoInput) (*VetoOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if err := checkGuards(s.session, now, gameRunning, activeCard, noVeto); err != nil {
		return nil, err
	}

	st := s.session
	duration := s.vetoDuration
	doubled := st.doubleArmed
	if doubled {
		duration *= 2
	}

	card := st.currentCard
	st.vetoEndsAt = now.Add(duration)
	st.doubleArmed = false
	st.currentCard = nil

	log.Printf("Card %d vetoed until %s", card.ID, st.vetoEndsAt.Format("15:04:05"))

	return &VetoOutput{
		Card:    card,
		EndsAt:  st.vetoEndsAt,
		Doubled: doubled,
	}, nil
}
