package game

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/jetlag/internal/models"
)

// WinnerNear returns the player whose destination is closest to a place.
// Ties go to the player formed earliest. Geocoding happens without the session lock.
func (s *service) WinnerNear(ctx context.Context, input *WinnerNearInput) (*WinnerNearOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	players, err := s.snapshotPlayers()
	if err != nil {
		return nil, err
	}

	target, err := s.geocoder.Geocode(ctx, input.Place)
	if err != nil {
		return nil, fmt.Errorf("failed to locate %q: %w", input.Place, err)
	}

	best := -1
	var bestDistance float64
	for i, p := range players {
		coords, err := s.geocoder.Geocode(ctx, p.Destination)
		if err != nil {
			return nil, fmt.Errorf("failed to locate destination %q: %w", p.Destination, err)
		}

		d := s.distance(target, coords)
		if best == -1 || d < bestDistance {
			best = i
			bestDistance = d
		}
	}

	return &WinnerNearOutput{
		Winner:         players[best],
		DistanceMeters: bestDistance,
	}, nil
}

func (s *service) snapshotPlayers() ([]*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkGuards(s.session, s.clock.Now(), gameRunning); err != nil {
		return nil, err
	}
	return copyPlayers(s.session.players), nil
}
