package models

import (
	"time"
)

// Session is a point-in-time view of the running game
type Session struct {
	// Players in formation order
	Players []*Player

	// CurrentCard is the drawn challenge, nil when no card is active
	CurrentCard *Card

	// DoubleArmed indicates the next reward and veto penalty are doubled
	DoubleArmed bool

	// VetoEndsAt is when the current veto ends, zero when no veto was started
	VetoEndsAt time.Time

	// FullRoundDone is set once the runner role has gone around every player
	FullRoundDone bool

	// StartedAt is when the session was started
	StartedAt time.Time
}

// Runner returns the player currently holding the runner role
func (s *Session) Runner() *Player {
	for _, p := range s.Players {
		if p.Role == RoleRunner {
			return p
		}
	}
	return nil
}
