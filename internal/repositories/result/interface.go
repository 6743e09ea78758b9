package result

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/jetlag/internal/repositories/result Repository

import (
	"context"

	"github.com/KirkDiggler/jetlag/internal/models"
)

// Repository defines the interface for finished game records
type Repository interface {
	// SaveResult records a finished game and assigns its ID
	SaveResult(ctx context.Context, input *SaveResultInput) (*models.GameResult, error)

	// GetResult retrieves a finished game by ID
	GetResult(ctx context.Context, input *GetResultInput) (*models.GameResult, error)

	// ListResults returns the most recently finished games, newest first
	ListResults(ctx context.Context, input *ListResultsInput) (*ListResultsOutput, error)
}
