package game

import (
	"time"

	"github.com/KirkDiggler/jetlag/internal/common/clock"
	"github.com/KirkDiggler/jetlag/internal/dice"
	"github.com/KirkDiggler/jetlag/internal/models"
	cardRepo "github.com/KirkDiggler/jetlag/internal/repositories/card"
	"github.com/KirkDiggler/jetlag/internal/services/geo"
)

const (
	// PlayerCount is the number of players in every game
	PlayerCount = 3

	defaultStartingCoins  = 2000
	defaultTagBonus       = 300
	defaultVetoDuration   = 30 * time.Minute
	defaultEffectDuration = 10 * time.Minute
	defaultSubRollCardID  = 14
	defaultSubRollSides   = 6
)

// EffectID identifies a shop item
type EffectID string

const (
	// EffectDouble doubles the reward and the veto penalty of the next challenge
	EffectDouble EffectID = "double"

	// EffectTrackerOff lets the buyer turn their tracker off for a while
	EffectTrackerOff EffectID = "tracker_off"

	// EffectReveal makes the other team share their location
	EffectReveal EffectID = "reveal"

	// EffectFreeze makes the other team stay still for a while
	EffectFreeze EffectID = "freeze"
)

// ShopItem describes something that can be bought
type ShopItem struct {
	ID    EffectID
	Label string
	Price int

	// Timed items notify the other team with an end time
	Timed bool
}

// shopItems is the catalog in display order
var shopItems = []ShopItem{
	{ID: EffectDouble, Label: "Double value & veto penalty of next challenge", Price: 250},
	{ID: EffectTrackerOff, Label: "10 minutes with your tracker off", Price: 1500, Timed: true},
	{ID: EffectReveal, Label: "Find out where the chasers are", Price: 1000},
	{ID: EffectFreeze, Label: "Chasers stay still for 10 minutes", Price: 2000, Timed: true},
}

// TravelMethod identifies a way of travelling
type TravelMethod string

const (
	TravelHighSpeedRail TravelMethod = "high_speed_rail"
	TravelLowSpeedRail  TravelMethod = "low_speed_rail"
	TravelLocalTransit  TravelMethod = "local_transit"
	TravelPlane         TravelMethod = "plane"
	TravelFerry         TravelMethod = "ferry"
	TravelBike          TravelMethod = "bike"
)

// TravelRate is the per-minute price of a travel method
type TravelRate struct {
	Method TravelMethod
	Label  string
	Rate   int
}

// TravelRates lists the travel methods in display order
var TravelRates = []TravelRate{
	{Method: TravelHighSpeedRail, Label: "high-speed rail", Rate: 25},
	{Method: TravelLowSpeedRail, Label: "low-speed rail", Rate: 10},
	{Method: TravelLocalTransit, Label: "local bus/tram/metro", Rate: 5},
	{Method: TravelPlane, Label: "plane", Rate: 100},
	{Method: TravelFerry, Label: "ferry", Rate: 10},
	{Method: TravelBike, Label: "bike/scooter", Rate: 1},
}

// Config holds configuration for the game service
type Config struct {
	// Coins every player starts with
	StartingCoins int

	// Coins paid to a new runner once a full round is done
	TagBonus int

	// Length of a veto, doubled when the double effect is armed
	VetoDuration time.Duration

	// Length of the timed shop effects
	EffectDuration time.Duration

	// Card that comes with an extra roll, and the sides of that roll
	SubRollCardID int
	SubRollSides  int

	// Repository dependencies
	CardRepo cardRepo.Repository

	// Service dependencies
	DiceRoller dice.Roller
	Clock      clock.Clock
	Geocoder   geo.Geocoder

	// Distance defaults to geo.GreatCircle
	Distance geo.DistanceFunc

	// Notifier is optional, notifications are only logged without one
	Notifier Notifier
}

// PlayerInfo identifies a player joining a game
type PlayerInfo struct {
	// ID is the Discord user ID
	ID string

	// Name is the display name
	Name string
}

// RoleAssignment pairs a player with a role
type RoleAssignment struct {
	PlayerID string
	Role     models.Role
}

// StartSessionInput contains parameters for starting a game
type StartSessionInput struct {
	// Players must hold exactly three distinct players
	Players []PlayerInfo

	// Destinations must hold exactly three places
	Destinations []string
}

// StartSessionOutput contains the formed roster
type StartSessionOutput struct {
	// Players in formation order, the runner comes first
	Players []*models.Player
}

// StopSessionInput contains parameters for stopping a game
type StopSessionInput struct{}

// StopSessionOutput contains what needs cleaning up after a game
type StopSessionOutput struct {
	// Revocations lists the roles each player held when the game stopped
	Revocations []RoleAssignment

	// Players is the final roster, including balances
	Players []*models.Player

	// StartedAt is when the game was started
	StartedAt time.Time

	// StoppedAt is when the game was stopped
	StoppedAt time.Time
}

// GetSessionInput contains parameters for reading the game
type GetSessionInput struct{}

// GetSessionOutput contains a snapshot of the game
type GetSessionOutput struct {
	Session *models.Session

	// VetoActive is true while the veto cooldown is running
	VetoActive bool
}

// DrawCardInput contains parameters for drawing a card
type DrawCardInput struct{}

// DrawCardOutput contains the drawn card
type DrawCardOutput struct {
	Card *models.Card

	// HasSubRoll is true when the card comes with an extra roll
	HasSubRoll bool
	SubRoll    int

	// Doubled is true when the double effect is armed for this card
	Doubled bool
}

// ResolveCardInput contains parameters for completing the active card
type ResolveCardInput struct {
	// PlayerID is the player who completed the challenge
	PlayerID string

	// ProofURL references the picture proving completion
	ProofURL string
}

// ResolveCardOutput contains the payout
type ResolveCardOutput struct {
	Card    *models.Card
	Payout  int
	Doubled bool

	// Balance is the player's coins after the payout
	Balance int
}

// VetoInput contains parameters for vetoing the active card
type VetoInput struct{}

// VetoOutput contains the veto cooldown
type VetoOutput struct {
	// Card is the vetoed card
	Card *models.Card

	// EndsAt is when draws and purchases are allowed again
	EndsAt time.Time

	// Doubled is true when the penalty was doubled by the double effect
	Doubled bool
}

// GetShopInput contains parameters for listing the shop
type GetShopInput struct{}

// GetShopOutput contains the shop items
type GetShopOutput struct {
	Items []ShopItem
}

// PurchaseInput contains parameters for buying a shop item
type PurchaseInput struct {
	PlayerID string
	EffectID EffectID
}

// PurchaseOutput contains the result of a purchase
type PurchaseOutput struct {
	Item ShopItem

	// Balance is the buyer's coins after the purchase
	Balance int

	// Notification is what was sent to the other team, nil when nothing was sent
	Notification *models.Notification
}

// TravelInput contains parameters for paying for travel
type TravelInput struct {
	PlayerID string
	Method   TravelMethod
	Minutes  int
}

// TravelOutput contains the charged travel
type TravelOutput struct {
	Rate    TravelRate
	Minutes int
	Cost    int

	// Balance is the player's coins after paying
	Balance int
}

// TagInput contains parameters for a tag
type TagInput struct{}

// TagOutput contains the result of a tag
type TagOutput struct {
	PreviousRunner *models.Player
	NewRunner      *models.Player

	// BonusPaid is true when the new runner received the tag bonus
	BonusPaid bool
	Bonus     int

	// FullRoundDone reports the flag after this tag
	FullRoundDone bool

	// Players is the roster after the tag
	Players []*models.Player
}

// BalanceInput contains parameters for reading a balance
type BalanceInput struct {
	PlayerID string
}

// BalanceOutput contains a balance
type BalanceOutput struct {
	Player *models.Player
	Coins  int
}

// ManualOverrideInput contains parameters for fixing a player
type ManualOverrideInput struct {
	PlayerID string
	Role     models.Role
	Coins    int
}

// ManualOverrideOutput contains the roster after the fix
type ManualOverrideOutput struct {
	Player *models.Player

	// Players is the whole roster, roles may have changed for two players
	Players []*models.Player
}

// WinnerNearInput contains parameters for a winner lookup
type WinnerNearInput struct {
	// Place is a place name or "lat, lon"
	Place string
}

// WinnerNearOutput contains the winner at a place
type WinnerNearOutput struct {
	Winner *models.Player

	// DistanceMeters is the distance from the place to the winner's destination
	DistanceMeters float64
}
