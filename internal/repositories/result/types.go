package result

import (
	"time"

	"github.com/KirkDiggler/jetlag/internal/models"
)

// SaveResultInput contains parameters for recording a finished game
type SaveResultInput struct {
	StartedAt time.Time
	EndedAt   time.Time

	// Players is the final roster
	Players []*models.Player
}

// GetResultInput contains parameters for reading a finished game
type GetResultInput struct {
	ResultID string
}

// ListResultsInput contains parameters for listing finished games
type ListResultsInput struct {
	// Limit restricts the number of games returned, 0 uses the default of 5
	Limit int
}

// ListResultsOutput contains finished games
type ListResultsOutput struct {
	// Results ordered newest first
	Results []*models.GameResult
}
