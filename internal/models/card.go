package models

// Card is a challenge from the deck
type Card struct {
	// ID is the card number, starting at 1
	ID int `yaml:"id"`

	// Challenge describes what the runner has to do
	Challenge string `yaml:"challenge"`

	// Reward is the number of coins paid on completion
	Reward int `yaml:"reward"`

	// Picture describes the photo that proves completion
	Picture string `yaml:"picture"`

	// Explanation holds any extra rules for the challenge
	Explanation string `yaml:"explanation"`
}
