package game

import (
	"context"
	"log"
	"time"

	"github.com/KirkDiggler/jetlag/internal/models"
)

// Tag hands the runner role to the next player in formation order.
//
// The tag bonus is only paid once full_round_done is set. The flag itself is
// set by the tag that passes the role from the last player back to the first,
// and that tag pays nothing. Every tag resets the card, the veto and the
// double effect; balances and the flag survive.
func (s *service) Tag(ctx context.Context, input *TagInput) (*TagOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkGuards(s.session, s.clock.Now(), gameRunning); err != nil {
		return nil, err
	}

	st := s.session
	current := s.runnerIndex()
	next := (current + 1) % len(st.players)

	previous := st.players[current]
	runner := st.players[next]
	previous.Role = models.RoleChaser
	runner.Role = models.RoleRunner

	bonusPaid := false
	if st.fullRoundDone {
		credit(runner, s.tagBonus)
		bonusPaid = true
	} else if current == len(st.players)-1 {
		st.fullRoundDone = true
	}

	st.currentCard = nil
	st.doubleArmed = false
	st.vetoEndsAt = time.Time{}

	log.Printf("%s tagged, %s is the new runner (bonus paid: %t)", previous.Name, runner.Name, bonusPaid)

	output := &TagOutput{
		PreviousRunner: copyPlayer(previous),
		NewRunner:      copyPlayer(runner),
		BonusPaid:      bonusPaid,
		FullRoundDone:  st.fullRoundDone,
		Players:        copyPlayers(st.players),
	}
	if bonusPaid {
		output.Bonus = s.tagBonus
	}

	return output, nil
}
