package game

import (
	"github.com/KirkDiggler/jetlag/internal/models"
)

// formRoster shuffles players and destinations independently.
// The first shuffled player becomes the runner.
func (s *service) formRoster(candidates []PlayerInfo, destinations []string) ([]*models.Player, error) {
	if len(candidates) != PlayerCount {
		return nil, ErrWrongPlayerCount
	}

	if len(destinations) != PlayerCount {
		return nil, ErrWrongDestinationCount
	}

	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c.ID == "" || seen[c.ID] {
			return nil, ErrDuplicatePlayer
		}
		seen[c.ID] = true
	}

	people := append([]PlayerInfo(nil), candidates...)
	places := append([]string(nil), destinations...)

	s.diceRoller.Shuffle(len(places), func(i, j int) {
		places[i], places[j] = places[j], places[i]
	})
	s.diceRoller.Shuffle(len(people), func(i, j int) {
		people[i], people[j] = people[j], people[i]
	})

	players := make([]*models.Player, len(people))
	for i, p := range people {
		role := models.RoleChaser
		if i == 0 {
			role = models.RoleRunner
		}
		players[i] = &models.Player{
			ID:          p.ID,
			Name:        p.Name,
			Destination: places[i],
			Role:        role,
			Coins:       s.startingCoins,
		}
	}

	return players, nil
}

// findPlayer looks a player up in the running session, callers hold mu
func (s *service) findPlayer(playerID string) (*models.Player, error) {
	for _, p := range s.session.players {
		if p.ID == playerID {
			return p, nil
		}
	}
	return nil, ErrPlayerNotFound
}

// runnerIndex returns the formation index of the runner, callers hold mu
func (s *service) runnerIndex() int {
	for i, p := range s.session.players {
		if p.Role == models.RoleRunner {
			return i
		}
	}
	// Unreachable while the role invariant holds
	return 0
}

// teardownRoster returns the roles held by each player, callers hold mu
func (s *service) teardownRoster() []RoleAssignment {
	revocations := make([]RoleAssignment, 0, len(s.session.players))
	for _, p := range s.session.players {
		revocations = append(revocations, RoleAssignment{
			PlayerID: p.ID,
			Role:     p.Role,
		})
	}
	s.session.players = nil
	return revocations
}
