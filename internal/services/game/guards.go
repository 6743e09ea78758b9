package game

import "time"

// guard is a precondition evaluated with the session lock held.
// Every guard except gameRunning assumes the session exists.
type guard func(st *sessionState, now time.Time) error

// checkGuards runs guards in order and returns the first violation
func checkGuards(st *sessionState, now time.Time, guards ...guard) error {
	for _, g := range guards {
		if err := g(st, now); err != nil {
			return err
		}
	}
	return nil
}

func gameRunning(st *sessionState, now time.Time) error {
	if st == nil {
		return ErrGameNotRunning
	}
	return nil
}

func noVeto(st *sessionState, now time.Time) error {
	if now.Before(st.vetoEndsAt) {
		return ErrVetoActive
	}
	return nil
}

func noActiveCard(st *sessionState, now time.Time) error {
	if st.currentCard != nil {
		return ErrCardActive
	}
	return nil
}

func activeCard(st *sessionState, now time.Time) error {
	if st.currentCard == nil {
		return ErrNoCardActive
	}
	return nil
}
