package game

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/jetlag/internal/common/clock"
	"github.com/KirkDiggler/jetlag/internal/dice"
	"github.com/KirkDiggler/jetlag/internal/models"
	cardRepo "github.com/KirkDiggler/jetlag/internal/repositories/card"
	"github.com/KirkDiggler/jetlag/internal/services/geo"
)

// sessionState is the mutable state of a running game
type sessionState struct {
	// players in formation order, rotation follows this order
	players []*models.Player

	currentCard   *models.Card
	doubleArmed   bool
	vetoEndsAt    time.Time
	fullRoundDone bool
	startedAt     time.Time
}

// service implements the Service interface.
// Every read or write of the session happens with mu held.
type service struct {
	mu      sync.Mutex
	session *sessionState

	cards      cardRepo.Repository
	deck       []int
	diceRoller dice.Roller
	clock      clock.Clock
	geocoder   geo.Geocoder
	distance   geo.DistanceFunc
	notifier   Notifier

	startingCoins  int
	tagBonus       int
	vetoDuration   time.Duration
	effectDuration time.Duration
	subRollCardID  int
	subRollSides   int
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.CardRepo == nil {
		return nil, ErrNilCardRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Geocoder == nil {
		return nil, ErrNilGeocoder
	}

	// Only the card numbers are kept, cards are read from the repository on draw
	deck, err := cfg.CardRepo.ListCards(context.Background(), &cardRepo.ListCardsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}
	if len(deck.Cards) == 0 {
		return nil, fmt.Errorf("failed to load cards: deck is empty")
	}

	ids := make([]int, 0, len(deck.Cards))
	for _, c := range deck.Cards {
		ids = append(ids, c.ID)
	}

	s := &service{
		cards:          cfg.CardRepo,
		deck:           ids,
		diceRoller:     cfg.DiceRoller,
		clock:          cfg.Clock,
		geocoder:       cfg.Geocoder,
		distance:       cfg.Distance,
		notifier:       cfg.Notifier,
		startingCoins:  cfg.StartingCoins,
		tagBonus:       cfg.TagBonus,
		vetoDuration:   cfg.VetoDuration,
		effectDuration: cfg.EffectDuration,
		subRollCardID:  cfg.SubRollCardID,
		subRollSides:   cfg.SubRollSides,
	}

	// Set default values if not provided
	if s.distance == nil {
		s.distance = geo.GreatCircle
	}
	if s.startingCoins == 0 {
		s.startingCoins = defaultStartingCoins
	}
	if s.tagBonus == 0 {
		s.tagBonus = defaultTagBonus
	}
	if s.vetoDuration == 0 {
		s.vetoDuration = defaultVetoDuration
	}
	if s.effectDuration == 0 {
		s.effectDuration = defaultEffectDuration
	}
	if s.subRollCardID == 0 {
		s.subRollCardID = defaultSubRollCardID
	}
	if s.subRollSides == 0 {
		s.subRollSides = defaultSubRollSides
	}

	return s, nil
}

// StartSession forms the roster of three players and starts the game
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		return nil, ErrGameAlreadyRunning
	}

	players, err := s.formRoster(input.Players, input.Destinations)
	if err != nil {
		return nil, err
	}

	s.session = &sessionState{
		players:   players,
		startedAt: s.clock.Now(),
	}

	log.Printf("Game started, %s is the runner", players[0].Name)

	return &StartSessionOutput{
		Players: copyPlayers(players),
	}, nil
}

// StopSession ends the game and returns the roles to revoke
func (s *service) StopSession(ctx context.Context, input *StopSessionInput) (*StopSessionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkGuards(s.session, s.clock.Now(), gameRunning); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	startedAt := s.session.startedAt
	players := copyPlayers(s.session.players)
	revocations := s.teardownRoster()

	log.Printf("Game stopped after %s", now.Sub(startedAt).Round(time.Second))
	s.session = nil

	return &StopSessionOutput{
		Revocations: revocations,
		Players:     players,
		StartedAt:   startedAt,
		StoppedAt:   now,
	}, nil
}

// GetSession returns a snapshot of the running game
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if err := checkGuards(s.session, now, gameRunning); err != nil {
		return nil, err
	}

	st := s.session
	snapshot := &models.Session{
		Players:       copyPlayers(st.players),
		CurrentCard:   copyCard(st.currentCard),
		DoubleArmed:   st.doubleArmed,
		VetoEndsAt:    st.vetoEndsAt,
		FullRoundDone: st.fullRoundDone,
		StartedAt:     st.startedAt,
	}

	return &GetSessionOutput{
		Session:    snapshot,
		VetoActive: now.Before(st.vetoEndsAt),
	}, nil
}

// Balance returns a player's coins
func (s *service) Balance(ctx context.Context, input *BalanceInput) (*BalanceOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkGuards(s.session, s.clock.Now(), gameRunning); err != nil {
		return nil, err
	}

	player, err := s.findPlayer(input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &BalanceOutput{
		Player: copyPlayer(player),
		Coins:  player.Coins,
	}, nil
}

// ManualOverride sets a player's role and coins.
// Promoting a chaser demotes the current runner; demoting the runner is refused.
func (s *service) ManualOverride(ctx context.Context, input *ManualOverrideInput) (*ManualOverrideOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkGuards(s.session, s.clock.Now(), gameRunning); err != nil {
		return nil, err
	}

	if !input.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	if input.Coins < 0 {
		return nil, ErrNegativeCoins
	}

	player, err := s.findPlayer(input.PlayerID)
	if err != nil {
		return nil, err
	}

	if player.Role == models.RoleRunner && input.Role == models.RoleChaser {
		return nil, ErrRunnerRequired
	}

	if input.Role == models.RoleRunner && player.Role != models.RoleRunner {
		if current := s.session.players[s.runnerIndex()]; current != nil {
			current.Role = models.RoleChaser
		}
		player.Role = models.RoleRunner
	}
	player.Coins = input.Coins

	log.Printf("Manual override: %s is now a %s with %d coins", player.Name, player.Role, player.Coins)

	return &ManualOverrideOutput{
		Player:  copyPlayer(player),
		Players: copyPlayers(s.session.players),
	}, nil
}

// notify delivers a notification, must be called without mu held
func (s *service) notify(ctx context.Context, notification *models.Notification) {
	if notification == nil {
		return
	}

	if s.notifier == nil {
		log.Printf("No notifier configured, dropping notification for %s: %s", notification.Audience, notification.Message)
		return
	}

	if err := s.notifier.Deliver(ctx, notification); err != nil {
		log.Printf("Error delivering notification to %s: %v", notification.Audience, err)
	}
}

func copyPlayer(p *models.Player) *models.Player {
	if p == nil {
		return nil
	}
	out := *p
	return &out
}

func copyPlayers(players []*models.Player) []*models.Player {
	out := make([]*models.Player, len(players))
	for i, p := range players {
		out[i] = copyPlayer(p)
	}
	return out
}

func copyCard(c *models.Card) *models.Card {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}
