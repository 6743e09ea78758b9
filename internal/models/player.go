package models

// Player represents one of the three participants in a running game
type Player struct {
	// ID is the Discord user ID of the player
	ID string

	// Name is the display name of the player
	Name string

	// Destination is the place the player is racing towards
	Destination string

	// Role is the player's current role
	Role Role

	// Coins is the player's current balance
	Coins int
}
