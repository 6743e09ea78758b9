package game

import "errors"

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameAlreadyRunning    GameError = "a game is already running"
	ErrGameNotRunning        GameError = "no game is currently running"
	ErrPlayerNotFound        GameError = "player not found"
	ErrInsufficientFunds     GameError = "not enough coins"
	ErrWrongPlayerCount      GameError = "a game needs exactly 3 players"
	ErrWrongDestinationCount GameError = "a game needs exactly 3 destinations"
	ErrDuplicatePlayer       GameError = "a player can only take part once"
	ErrVetoActive            GameError = "a veto is currently active"
	ErrCardActive            GameError = "a card is currently active"
	ErrNoCardActive          GameError = "no card is currently active"
	ErrProofRequired         GameError = "a proof picture is required"
	ErrInvalidMinutes        GameError = "travel time must be positive"
	ErrUnknownTravelMethod   GameError = "unknown travel method"
	ErrUnknownEffect         GameError = "unknown shop item"
	ErrInvalidRole           GameError = "unknown role"
	ErrRunnerRequired        GameError = "the game needs a runner, promote another player instead"
	ErrNegativeCoins         GameError = "coins cannot be negative"
	ErrNilConfig             GameError = "config cannot be nil"
	ErrNilCardRepo           GameError = "card repository cannot be nil"
	ErrNilDiceRoller         GameError = "dice roller cannot be nil"
	ErrNilClock              GameError = "clock cannot be nil"
	ErrNilGeocoder           GameError = "geocoder cannot be nil"
	ErrNilInput              GameError = "input cannot be nil"
)

// guardViolations are the errors raised by precondition checks
var guardViolations = []GameError{
	ErrWrongPlayerCount,
	ErrWrongDestinationCount,
	ErrDuplicatePlayer,
	ErrVetoActive,
	ErrCardActive,
	ErrNoCardActive,
	ErrProofRequired,
	ErrInvalidMinutes,
	ErrUnknownTravelMethod,
	ErrUnknownEffect,
	ErrInvalidRole,
	ErrRunnerRequired,
	ErrNegativeCoins,
}

// IsGuardViolation reports whether err was caused by a failed precondition
func IsGuardViolation(err error) bool {
	for _, g := range guardViolations {
		if errors.Is(err, g) {
			return true
		}
	}
	return false
}
