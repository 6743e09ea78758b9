package game

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/jetlag/internal/common/clock/mocks"
	diceMocks "github.com/KirkDiggler/jetlag/internal/dice/mocks"
	"github.com/KirkDiggler/jetlag/internal/models"
	cardRepo "github.com/KirkDiggler/jetlag/internal/repositories/card"
	cardMocks "github.com/KirkDiggler/jetlag/internal/repositories/card/mocks"
	gameMocks "github.com/KirkDiggler/jetlag/internal/services/game/mocks"
	"github.com/KirkDiggler/jetlag/internal/services/geo"
	geoMocks "github.com/KirkDiggler/jetlag/internal/services/geo/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testDeck = []byte(`
cards:
  - id: 1
    challenge: Sing in public.
    reward: 100
    picture: You singing.
  - id: 2
    challenge: Take as many stops as you rolled.
    reward: 200
    picture: The last stop sign.
  - id: 3
    challenge: Pet a dog.
    reward: 50
    picture: The dog.
`)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDiceRoller *diceMocks.MockRoller
	mockClock      *mocks.MockClock
	mockGeocoder   *geoMocks.MockGeocoder
	mockNotifier   *gameMocks.MockNotifier
	gameService    Service
	ctx            context.Context

	// now is what the mocked clock returns
	now      time.Time
	testTime time.Time

	players      []PlayerInfo
	destinations []string
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockGeocoder = geoMocks.NewMockGeocoder(s.mockCtrl)
	s.mockNotifier = gameMocks.NewMockNotifier(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s.now = s.testTime
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	s.players = []PlayerInfo{
		{ID: "alice-id", Name: "Alice"},
		{ID: "bob-id", Name: "Bob"},
		{ID: "carol-id", Name: "Carol"},
	}
	s.destinations = []string{"Lyon", "Geneva", "Turin"}

	cards, err := cardRepo.NewYAML(&cardRepo.Config{Data: testDeck})
	s.Require().NoError(err)

	svc, err := New(&Config{
		CardRepo:      cards,
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		Geocoder:      s.mockGeocoder,
		Notifier:      s.mockNotifier,
		SubRollCardID: 2,
		// Distance along the latitude only keeps the numbers readable
		Distance: func(a, b geo.Coordinates) float64 {
			return math.Abs(a.Lat - b.Lat)
		},
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// startGame starts a game without shuffling, so Alice runs and keeps Lyon
func (s *GameServiceTestSuite) startGame() *StartSessionOutput {
	s.mockDiceRoller.EXPECT().Shuffle(3, gomock.Any()).Times(2)

	output, err := s.gameService.StartSession(s.ctx, &StartSessionInput{
		Players:      s.players,
		Destinations: s.destinations,
	})
	s.Require().NoError(err)
	return output
}

func (s *GameServiceTestSuite) drawCard(cardID int) *DrawCardOutput {
	s.mockDiceRoller.EXPECT().Roll(3).Return(cardID)

	output, err := s.gameService.DrawCard(s.ctx, &DrawCardInput{})
	s.Require().NoError(err)
	return output
}

func (s *GameServiceTestSuite) coins(playerID string) int {
	output, err := s.gameService.Balance(s.ctx, &BalanceInput{PlayerID: playerID})
	s.Require().NoError(err)
	return output.Coins
}

func (s *GameServiceTestSuite) runner() *models.Player {
	output, err := s.gameService.GetSession(s.ctx, &GetSessionInput{})
	s.Require().NoError(err)
	return output.Session.Runner()
}

func (s *GameServiceTestSuite) TestNew_MissingDependencies() {
	cards, err := cardRepo.NewYAML(nil)
	s.Require().NoError(err)

	_, err = New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{DiceRoller: s.mockDiceRoller, Clock: s.mockClock, Geocoder: s.mockGeocoder})
	s.ErrorIs(err, ErrNilCardRepo)

	_, err = New(&Config{CardRepo: cards, Clock: s.mockClock, Geocoder: s.mockGeocoder})
	s.ErrorIs(err, ErrNilDiceRoller)

	_, err = New(&Config{CardRepo: cards, DiceRoller: s.mockDiceRoller, Geocoder: s.mockGeocoder})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{CardRepo: cards, DiceRoller: s.mockDiceRoller, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilGeocoder)
}

func (s *GameServiceTestSuite) TestStartSession_HappyPath() {
	output := s.startGame()

	s.Require().Len(output.Players, 3)
	s.Equal("alice-id", output.Players[0].ID)
	s.Equal(models.RoleRunner, output.Players[0].Role)
	s.Equal("Lyon", output.Players[0].Destination)
	for _, p := range output.Players[1:] {
		s.Equal(models.RoleChaser, p.Role)
	}
	for _, p := range output.Players {
		s.Equal(2000, p.Coins)
	}
}

func (s *GameServiceTestSuite) TestStartSession_ShufflesPlayersAndDestinationsSeparately() {
	gomock.InOrder(
		// Destinations: rotate left
		s.mockDiceRoller.EXPECT().Shuffle(3, gomock.Any()).Do(func(n int, swap func(i, j int)) {
			swap(0, 1)
			swap(1, 2)
		}),
		// Players: swap first and last
		s.mockDiceRoller.EXPECT().Shuffle(3, gomock.Any()).Do(func(n int, swap func(i, j int)) {
			swap(0, 2)
		}),
	)

	output, err := s.gameService.StartSession(s.ctx, &StartSessionInput{
		Players:      s.players,
		Destinations: s.destinations,
	})
	s.Require().NoError(err)

	s.Equal("carol-id", output.Players[0].ID)
	s.Equal(models.RoleRunner, output.Players[0].Role)
	s.Equal("Geneva", output.Players[0].Destination)
	s.Equal("bob-id", output.Players[1].ID)
	s.Equal("Turin", output.Players[1].Destination)
	s.Equal("alice-id", output.Players[2].ID)
	s.Equal("Lyon", output.Players[2].Destination)
}

func (s *GameServiceTestSuite) TestStartSession_WrongPlayerCount() {
	_, err := s.gameService.StartSession(s.ctx, &StartSessionInput{
		Players:      s.players[:2],
		Destinations: s.destinations,
	})
	s.ErrorIs(err, ErrWrongPlayerCount)
	s.True(IsGuardViolation(err))

	_, err = s.gameService.StartSession(s.ctx, &StartSessionInput{
		Players:      append(s.players, PlayerInfo{ID: "dave-id", Name: "Dave"}),
		Destinations: s.destinations,
	})
	s.ErrorIs(err, ErrWrongPlayerCount)

	_, err = s.gameService.GetSession(s.ctx, &GetSessionInput{})
	s.ErrorIs(err, ErrGameNotRunning)
}

func (s *GameServiceTestSuite) TestStartSession_InvalidRoster() {
	_, err := s.gameService.StartSession(s.ctx, &StartSessionInput{
		Players:      s.players,
		Destinations: s.destinations[:2],
	})
	s.ErrorIs(err, ErrWrongDestinationCount)

	_, err = s.gameService.StartSession(s.ctx, &StartSessionInput{
		Players:      []PlayerInfo{s.players[0], s.players[1], s.players[0]},
		Destinations: s.destinations,
	})
	s.ErrorIs(err, ErrDuplicatePlayer)
}

func (s *GameServiceTestSuite) TestStartSession_AlreadyRunning() {
	s.startGame()

	_, err := s.gameService.StartSession(s.ctx, &StartSessionInput{
		Players:      s.players,
		Destinations: s.destinations,
	})
	s.ErrorIs(err, ErrGameAlreadyRunning)
}

func (s *GameServiceTestSuite) TestStopSession() {
	s.startGame()
	s.now = s.testTime.Add(2 * time.Hour)

	output, err := s.gameService.StopSession(s.ctx, &StopSessionInput{})
	s.Require().NoError(err)
	s.Equal(s.testTime, output.StartedAt)
	s.Equal(s.testTime.Add(2*time.Hour), output.StoppedAt)
	s.Len(output.Players, 3)
	s.Equal([]RoleAssignment{
		{PlayerID: "alice-id", Role: models.RoleRunner},
		{PlayerID: "bob-id", Role: models.RoleChaser},
		{PlayerID: "carol-id", Role: models.RoleChaser},
	}, output.Revocations)

	_, err = s.gameService.DrawCard(s.ctx, &DrawCardInput{})
	s.ErrorIs(err, ErrGameNotRunning)

	_, err = s.gameService.StopSession(s.ctx, &StopSessionInput{})
	s.ErrorIs(err, ErrGameNotRunning)

	// A new game can start once the old one is gone
	s.startGame()
}

func (s *GameServiceTestSuite) TestOperations_RequireRunningGame() {
	_, err := s.gameService.DrawCard(s.ctx, &DrawCardInput{})
	s.ErrorIs(err, ErrGameNotRunning)

	_, err = s.gameService.Purchase(s.ctx, &PurchaseInput{PlayerID: "alice-id", EffectID: EffectDouble})
	s.ErrorIs(err, ErrGameNotRunning)

	_, err = s.gameService.Travel(s.ctx, &TravelInput{PlayerID: "alice-id", Method: TravelBike, Minutes: 1})
	s.ErrorIs(err, ErrGameNotRunning)

	_, err = s.gameService.Tag(s.ctx, &TagInput{})
	s.ErrorIs(err, ErrGameNotRunning)

	_, err = s.gameService.Balance(s.ctx, &BalanceInput{PlayerID: "alice-id"})
	s.ErrorIs(err, ErrGameNotRunning)

	_, err = s.gameService.WinnerNear(s.ctx, &WinnerNearInput{Place: "Paris"})
	s.ErrorIs(err, ErrGameNotRunning)
}

func (s *GameServiceTestSuite) TestBalance_PlayerNotFound() {
	s.startGame()

	_, err := s.gameService.Balance(s.ctx, &BalanceInput{PlayerID: "mallory-id"})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *GameServiceTestSuite) TestDrawCard_HappyPath() {
	s.startGame()

	output := s.drawCard(1)
	s.Equal(1, output.Card.ID)
	s.False(output.HasSubRoll)
	s.False(output.Doubled)

	_, err := s.gameService.DrawCard(s.ctx, &DrawCardInput{})
	s.ErrorIs(err, ErrCardActive)
}

func (s *GameServiceTestSuite) TestDrawCard_ReadsCardFromRepository() {
	mockCards := cardMocks.NewMockRepository(s.mockCtrl)
	mockCards.EXPECT().ListCards(gomock.Any(), gomock.Any()).Return(&cardRepo.ListCardsOutput{
		Cards: []*models.Card{{ID: 5}, {ID: 9}, {ID: 12}},
	}, nil)

	svc, err := New(&Config{
		CardRepo:   mockCards,
		DiceRoller: s.mockDiceRoller,
		Clock:      s.mockClock,
		Geocoder:   s.mockGeocoder,
		Notifier:   s.mockNotifier,
	})
	s.Require().NoError(err)

	s.mockDiceRoller.EXPECT().Shuffle(3, gomock.Any()).Times(2)
	_, err = svc.StartSession(s.ctx, &StartSessionInput{
		Players:      s.players,
		Destinations: s.destinations,
	})
	s.Require().NoError(err)

	gomock.InOrder(
		s.mockDiceRoller.EXPECT().Roll(3).Return(3),
		mockCards.EXPECT().GetCard(gomock.Any(), &cardRepo.GetCardInput{CardID: 12}).Return(nil, cardRepo.ErrCardNotFound),
		s.mockDiceRoller.EXPECT().Roll(3).Return(2),
		mockCards.EXPECT().GetCard(gomock.Any(), &cardRepo.GetCardInput{CardID: 9}).Return(&models.Card{
			ID:        9,
			Challenge: "Find a fountain.",
			Reward:    150,
		}, nil),
	)

	_, err = svc.DrawCard(s.ctx, &DrawCardInput{})
	s.ErrorIs(err, cardRepo.ErrCardNotFound)

	// A failed draw leaves no card active
	output, err := svc.DrawCard(s.ctx, &DrawCardInput{})
	s.Require().NoError(err)
	s.Equal(9, output.Card.ID)
	s.Equal("Find a fountain.", output.Card.Challenge)
}

func (s *GameServiceTestSuite) TestDrawCard_SubRoll() {
	s.startGame()

	gomock.InOrder(
		s.mockDiceRoller.EXPECT().Roll(3).Return(2),
		s.mockDiceRoller.EXPECT().Roll(6).Return(4),
	)

	output, err := s.gameService.DrawCard(s.ctx, &DrawCardInput{})
	s.Require().NoError(err)
	s.Equal(2, output.Card.ID)
	s.True(output.HasSubRoll)
	s.Equal(4, output.SubRoll)
}

func (s *GameServiceTestSuite) TestResolveCard_HappyPath() {
	s.startGame()
	s.drawCard(1)

	output, err := s.gameService.ResolveCard(s.ctx, &ResolveCardInput{
		PlayerID: "alice-id",
		ProofURL: "https://cdn.example.com/proof.png",
	})
	s.Require().NoError(err)
	s.Equal(100, output.Payout)
	s.False(output.Doubled)
	s.Equal(2100, output.Balance)
	s.Equal(2100, s.coins("alice-id"))

	// Back to idle
	_, err = s.gameService.ResolveCard(s.ctx, &ResolveCardInput{
		PlayerID: "alice-id",
		ProofURL: "https://cdn.example.com/proof.png",
	})
	s.ErrorIs(err, ErrNoCardActive)
	s.drawCard(3)
}

func (s *GameServiceTestSuite) TestResolveCard_ProofRequired() {
	s.startGame()
	s.drawCard(1)

	_, err := s.gameService.ResolveCard(s.ctx, &ResolveCardInput{PlayerID: "alice-id"})
	s.ErrorIs(err, ErrProofRequired)
	s.Equal(2000, s.coins("alice-id"))

	// The card stays active
	_, err = s.gameService.DrawCard(s.ctx, &DrawCardInput{})
	s.ErrorIs(err, ErrCardActive)
}

func (s *GameServiceTestSuite) TestResolveCard_NoCard() {
	s.startGame()

	_, err := s.gameService.ResolveCard(s.ctx, &ResolveCardInput{
		PlayerID: "alice-id",
		ProofURL: "https://cdn.example.com/proof.png",
	})
	s.ErrorIs(err, ErrNoCardActive)
}

func (s *GameServiceTestSuite) TestResolveCard_Doubled() {
	s.startGame()

	_, err := s.gameService.Purchase(s.ctx, &PurchaseInput{PlayerID: "alice-id", EffectID: EffectDouble})
	s.Require().NoError(err)

	draw := s.drawCard(1)
	s.True(draw.Doubled)

	output, err := s.gameService.ResolveCard(s.ctx, &ResolveCardInput{
		PlayerID: "bob-id",
		ProofURL: "https://cdn.example.com/proof.png",
	})
	s.Require().NoError(err)
	s.True(output.Doubled)
	s.Equal(200, output.Payout)
	s.Equal(2200, s.coins("bob-id"))
	s.Equal(1750, s.coins("alice-id"))

	// The flag is used up
	s.drawCard(1)
	output, err = s.gameService.ResolveCard(s.ctx, &ResolveCardInput{
		PlayerID: "bob-id",
		ProofURL: "https://cdn.example.com/proof.png",
	})
	s.Require().NoError(err)
	s.False(output.Doubled)
	s.Equal(100, output.Payout)
}

func (s *GameServiceTestSuite) TestVeto_BlocksDrawForThirtyMinutes() {
	s.startGame()
	s.drawCard(1)

	output, err := s.gameService.Veto(s.ctx, &VetoInput{})
	s.Require().NoError(err)
	s.False(output.Doubled)
	s.Equal(s.testTime.Add(1800*time.Second), output.EndsAt)

	s.now = s.testTime.Add(29 * time.Minute)
	_, err = s.gameService.DrawCard(s.ctx, &DrawCardInput{})
	s.ErrorIs(err, ErrVetoActive)
	s.True(IsGuardViolation(err))

	session, err := s.gameService.GetSession(s.ctx, &GetSessionInput{})
	s.Require().NoError(err)
	s.True(session.VetoActive)

	s.now = s.testTime.Add(30 * time.Minute)
	s.drawCard(3)
}

func (s *GameServiceTestSuite) TestVeto_DoubledPenalty() {
	s.startGame()

	_, err := s.gameService.Purchase(s.ctx, &PurchaseInput{PlayerID: "alice-id", EffectID: EffectDouble})
	s.Require().NoError(err)
	s.drawCard(1)

	output, err := s.gameService.Veto(s.ctx, &VetoInput{})
	s.Require().NoError(err)
	s.True(output.Doubled)
	s.Equal(s.testTime.Add(3600*time.Second), output.EndsAt)

	s.now = s.testTime.Add(59 * time.Minute)
	_, err = s.gameService.DrawCard(s.ctx, &DrawCardInput{})
	s.ErrorIs(err, ErrVetoActive)

	s.now = s.testTime.Add(60 * time.Minute)
	draw := s.drawCard(1)
	s.False(draw.Doubled)
}

func (s *GameServiceTestSuite) TestVeto_Guards() {
	s.startGame()

	_, err := s.gameService.Veto(s.ctx, &VetoInput{})
	s.ErrorIs(err, ErrNoCardActive)

	s.drawCard(1)
	_, err = s.gameService.Veto(s.ctx, &VetoInput{})
	s.Require().NoError(err)

	_, err = s.gameService.Purchase(s.ctx, &PurchaseInput{PlayerID: "alice-id", EffectID: EffectDouble})
	s.ErrorIs(err, ErrVetoActive)

	_, err = s.gameService.Travel(s.ctx, &TravelInput{PlayerID: "alice-id", Method: TravelBike, Minutes: 5})
	s.ErrorIs(err, ErrVetoActive)
	s.Equal(2000, s.coins("alice-id"))
}

func (s *GameServiceTestSuite) TestGetShop() {
	output, err := s.gameService.GetShop(s.ctx, &GetShopInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Items, 4)

	prices := map[EffectID]int{}
	for _, item := range output.Items {
		prices[item.ID] = item.Price
	}
	s.Equal(map[EffectID]int{
		EffectDouble:     250,
		EffectTrackerOff: 1500,
		EffectReveal:     1000,
		EffectFreeze:     2000,
	}, prices)
}

func (s *GameServiceTestSuite) TestPurchase_InsufficientFunds() {
	s.startGame()

	_, err := s.gameService.ManualOverride(s.ctx, &ManualOverrideInput{
		PlayerID: "alice-id",
		Role:     models.RoleRunner,
		Coins:    100,
	})
	s.Require().NoError(err)

	_, err = s.gameService.Purchase(s.ctx, &PurchaseInput{PlayerID: "alice-id", EffectID: EffectDouble})
	s.ErrorIs(err, ErrInsufficientFunds)
	s.Equal(100, s.coins("alice-id"))

	// No effect was applied
	draw := s.drawCard(1)
	s.False(draw.Doubled)
}

func (s *GameServiceTestSuite) TestPurchase_UnknownEffect() {
	s.startGame()

	_, err := s.gameService.Purchase(s.ctx, &PurchaseInput{PlayerID: "alice-id", EffectID: "teleport"})
	s.ErrorIs(err, ErrUnknownEffect)
	s.Equal(2000, s.coins("alice-id"))
}

func (s *GameServiceTestSuite) TestPurchase_DoubleIsNotStacked() {
	s.startGame()

	for i := 0; i < 2; i++ {
		_, err := s.gameService.Purchase(s.ctx, &PurchaseInput{PlayerID: "alice-id", EffectID: EffectDouble})
		s.Require().NoError(err)
	}
	s.Equal(1500, s.coins("alice-id"))

	s.drawCard(1)
	output, err := s.gameService.ResolveCard(s.ctx, &ResolveCardInput{
		PlayerID: "alice-id",
		ProofURL: "https://cdn.example.com/proof.png",
	})
	s.Require().NoError(err)
	s.Equal(200, output.Payout)
}

func (s *GameServiceTestSuite) TestPurchase_TrackerOffNotifiesChasers() {
	s.startGame()

	s.mockNotifier.EXPECT().
		Deliver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n *models.Notification) error {
			s.Equal(models.AudienceChasers, n.Audience)
			s.Contains(n.Message, "Alice")
			s.Equal(s.testTime.Add(10*time.Minute), n.ExpiresAt)
			return nil
		})

	output, err := s.gameService.Purchase(s.ctx, &PurchaseInput{PlayerID: "alice-id", EffectID: EffectTrackerOff})
	s.Require().NoError(err)
	s.Equal(500, output.Balance)
	s.Require().NotNil(output.Notification)
}

func (s *GameServiceTestSuite) TestPurchase_RevealFromChaserNotifiesRunners() {
	s.startGame()

	s.mockNotifier.EXPECT().
		Deliver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n *models.Notification) error {
			s.Equal(models.AudienceRunners, n.Audience)
			s.True(n.ExpiresAt.IsZero())
			return nil
		})

	output, err := s.gameService.Purchase(s.ctx, &PurchaseInput{PlayerID: "bob-id", EffectID: EffectReveal})
	s.Require().NoError(err)
	s.Equal(1000, output.Balance)
}

func (s *GameServiceTestSuite) TestPurchase_DeliveryFailureKeepsPurchase() {
	s.startGame()

	s.mockNotifier.EXPECT().
		Deliver(gomock.Any(), gomock.Any()).
		Return(errors.New("channel missing"))

	output, err := s.gameService.Purchase(s.ctx, &PurchaseInput{PlayerID: "bob-id", EffectID: EffectFreeze})
	s.Require().NoError(err)
	s.Equal(0, output.Balance)
	s.Equal(0, s.coins("bob-id"))
}

func (s *GameServiceTestSuite) TestPurchase_ConcurrentSpendingNeverOverdraws() {
	s.startGame()

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.gameService.Purchase(s.ctx, &PurchaseInput{PlayerID: "carol-id", EffectID: EffectDouble})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(8, succeeded)
	s.Equal(0, s.coins("carol-id"))
}

func (s *GameServiceTestSuite) TestTravel_HappyPath() {
	s.startGame()

	output, err := s.gameService.Travel(s.ctx, &TravelInput{
		PlayerID: "alice-id",
		Method:   TravelHighSpeedRail,
		Minutes:  4,
	})
	s.Require().NoError(err)
	s.Equal(100, output.Cost)
	s.Equal(1900, output.Balance)
	s.Equal(1900, s.coins("alice-id"))
}

func (s *GameServiceTestSuite) TestTravel_Rejections() {
	s.startGame()

	_, err := s.gameService.Travel(s.ctx, &TravelInput{PlayerID: "alice-id", Method: TravelPlane, Minutes: 0})
	s.ErrorIs(err, ErrInvalidMinutes)

	_, err = s.gameService.Travel(s.ctx, &TravelInput{PlayerID: "alice-id", Method: "rocket", Minutes: 5})
	s.ErrorIs(err, ErrUnknownTravelMethod)

	_, err = s.gameService.Travel(s.ctx, &TravelInput{PlayerID: "alice-id", Method: TravelPlane, Minutes: 21})
	s.ErrorIs(err, ErrInsufficientFunds)

	s.Equal(2000, s.coins("alice-id"))
}

func (s *GameServiceTestSuite) TestTravelCost() {
	for _, tc := range []struct {
		method  TravelMethod
		minutes int
		want    int
	}{
		{TravelHighSpeedRail, 4, 100},
		{TravelLowSpeedRail, 3, 30},
		{TravelLocalTransit, 10, 50},
		{TravelPlane, 2, 200},
		{TravelFerry, 6, 60},
		{TravelBike, 7, 7},
	} {
		rate, ok := FindTravelRate(tc.method)
		s.Require().True(ok, tc.method)
		s.Equal(tc.want, TravelCost(rate, tc.minutes), tc.method)
	}
}

func (s *GameServiceTestSuite) TestTag_FullRoundBonus() {
	s.startGame()

	expectations := []struct {
		runner    string
		bonusPaid bool
		fullRound bool
	}{
		{"bob-id", false, false},
		{"carol-id", false, false},
		{"alice-id", false, true},
		{"bob-id", true, true},
	}

	for _, e := range expectations {
		output, err := s.gameService.Tag(s.ctx, &TagInput{})
		s.Require().NoError(err)
		s.Equal(e.runner, output.NewRunner.ID)
		s.Equal(e.bonusPaid, output.BonusPaid)
		s.Equal(e.fullRound, output.FullRoundDone)
		s.Equal(e.runner, s.runner().ID)

		runners := 0
		for _, p := range output.Players {
			if p.Role == models.RoleRunner {
				runners++
			}
		}
		s.Equal(1, runners)
	}

	s.Equal(2300, s.coins("bob-id"))
	s.Equal(2000, s.coins("alice-id"))
	s.Equal(2000, s.coins("carol-id"))
}

func (s *GameServiceTestSuite) TestTag_ResetsCardAndVeto() {
	s.startGame()

	_, err := s.gameService.Purchase(s.ctx, &PurchaseInput{PlayerID: "alice-id", EffectID: EffectDouble})
	s.Require().NoError(err)
	s.drawCard(1)
	_, err = s.gameService.Veto(s.ctx, &VetoInput{})
	s.Require().NoError(err)

	_, err = s.gameService.Tag(s.ctx, &TagInput{})
	s.Require().NoError(err)

	session, err := s.gameService.GetSession(s.ctx, &GetSessionInput{})
	s.Require().NoError(err)
	s.False(session.VetoActive)
	s.Nil(session.Session.CurrentCard)
	s.False(session.Session.DoubleArmed)

	s.drawCard(1)
}

func (s *GameServiceTestSuite) TestManualOverride_PromoteChaser() {
	s.startGame()

	output, err := s.gameService.ManualOverride(s.ctx, &ManualOverrideInput{
		PlayerID: "carol-id",
		Role:     models.RoleRunner,
		Coins:    50,
	})
	s.Require().NoError(err)
	s.Equal(models.RoleRunner, output.Player.Role)
	s.Equal(50, output.Player.Coins)
	s.Equal(models.RoleChaser, output.Players[0].Role)
	s.Equal("carol-id", s.runner().ID)

	// Rotation continues from the new runner
	tag, err := s.gameService.Tag(s.ctx, &TagInput{})
	s.Require().NoError(err)
	s.Equal("alice-id", tag.NewRunner.ID)
	s.True(tag.FullRoundDone)
}

func (s *GameServiceTestSuite) TestManualOverride_Rejections() {
	s.startGame()

	_, err := s.gameService.ManualOverride(s.ctx, &ManualOverrideInput{
		PlayerID: "alice-id",
		Role:     models.RoleChaser,
		Coins:    10,
	})
	s.ErrorIs(err, ErrRunnerRequired)

	_, err = s.gameService.ManualOverride(s.ctx, &ManualOverrideInput{
		PlayerID: "bob-id",
		Role:     models.RoleChaser,
		Coins:    -1,
	})
	s.ErrorIs(err, ErrNegativeCoins)

	_, err = s.gameService.ManualOverride(s.ctx, &ManualOverrideInput{
		PlayerID: "bob-id",
		Role:     "Referee",
		Coins:    10,
	})
	s.ErrorIs(err, ErrInvalidRole)

	s.Equal(2000, s.coins("alice-id"))
	s.Equal(2000, s.coins("bob-id"))
	s.Equal("alice-id", s.runner().ID)
}

func (s *GameServiceTestSuite) TestWinnerNear_Closest() {
	s.startGame()

	s.mockGeocoder.EXPECT().Geocode(gomock.Any(), "Chambery").Return(geo.Coordinates{Lat: 45.5}, nil)
	s.mockGeocoder.EXPECT().Geocode(gomock.Any(), "Lyon").Return(geo.Coordinates{Lat: 45.7}, nil)
	s.mockGeocoder.EXPECT().Geocode(gomock.Any(), "Geneva").Return(geo.Coordinates{Lat: 46.2}, nil)
	s.mockGeocoder.EXPECT().Geocode(gomock.Any(), "Turin").Return(geo.Coordinates{Lat: 45.1}, nil)

	output, err := s.gameService.WinnerNear(s.ctx, &WinnerNearInput{Place: "Chambery"})
	s.Require().NoError(err)
	s.Equal("alice-id", output.Winner.ID)
	s.InDelta(0.2, output.DistanceMeters, 1e-9)
}

func (s *GameServiceTestSuite) TestWinnerNear_TieGoesToFormationOrder() {
	s.startGame()

	s.mockGeocoder.EXPECT().Geocode(gomock.Any(), "Aosta").Return(geo.Coordinates{Lat: 45.0}, nil)
	s.mockGeocoder.EXPECT().Geocode(gomock.Any(), "Lyon").Return(geo.Coordinates{Lat: 47.0}, nil)
	s.mockGeocoder.EXPECT().Geocode(gomock.Any(), "Geneva").Return(geo.Coordinates{Lat: 44.0}, nil)
	s.mockGeocoder.EXPECT().Geocode(gomock.Any(), "Turin").Return(geo.Coordinates{Lat: 46.0}, nil)

	output, err := s.gameService.WinnerNear(s.ctx, &WinnerNearInput{Place: "Aosta"})
	s.Require().NoError(err)
	s.Equal("bob-id", output.Winner.ID)
}

func (s *GameServiceTestSuite) TestWinnerNear_PlaceNotFound() {
	s.startGame()

	s.mockGeocoder.EXPECT().Geocode(gomock.Any(), "Atlantis").Return(geo.Coordinates{}, geo.ErrPlaceNotFound)

	_, err := s.gameService.WinnerNear(s.ctx, &WinnerNearInput{Place: "Atlantis"})
	s.ErrorIs(err, geo.ErrPlaceNotFound)
}
