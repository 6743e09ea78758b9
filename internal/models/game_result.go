package models

import "time"

// GameResult is the record of a finished game
type GameResult struct {
	ID        string
	StartedAt time.Time
	EndedAt   time.Time

	// Players holds the final roster with balances, in formation order
	Players []*Player
}

// Richest returns the player with the most coins, the first one formed on a tie
func (r *GameResult) Richest() *Player {
	var best *Player
	for _, p := range r.Players {
		if best == nil || p.Coins > best.Coins {
			best = p
		}
	}
	return best
}
