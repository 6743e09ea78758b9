package result

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/jetlag/internal/common/uuid"
	"github.com/KirkDiggler/jetlag/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	resultKeyPrefix = "result:"
	resultsByEndKey = "results:by_end"

	defaultListLimit = 5
)

// ErrResultNotFound is returned when a game record does not exist
var ErrResultNotFound = errors.New("result not found")

// Config holds configuration for the Redis result repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// UUIDGenerator assigns result IDs
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client        *redis.Client
	uuidGenerator uuid.UUID
}

// NewRedis creates a new Redis-backed result repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client:        cfg.RedisClient,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// SaveResult records a finished game and indexes it by end time
func (r *redisRepository) SaveResult(ctx context.Context, input *SaveResultInput) (*models.GameResult, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.Players) == 0 {
		return nil, errors.New("a result needs players")
	}

	result := &models.GameResult{
		ID:        r.uuidGenerator.NewUUID(),
		StartedAt: input.StartedAt,
		EndedAt:   input.EndedAt,
		Players:   input.Players,
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, resultKeyPrefix+result.ID, resultJSON, 0)
	pipe.ZAdd(ctx, resultsByEndKey, redis.Z{
		Score:  float64(result.EndedAt.Unix()),
		Member: result.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	return result, nil
}

// GetResult retrieves a finished game by ID
func (r *redisRepository) GetResult(ctx context.Context, input *GetResultInput) (*models.GameResult, error) {
	if input == nil || input.ResultID == "" {
		return nil, errors.New("result ID is required")
	}

	resultJSON, err := r.client.Get(ctx, resultKeyPrefix+input.ResultID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	var result models.GameResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// ListResults returns the most recently finished games, newest first
func (r *redisRepository) ListResults(ctx context.Context, input *ListResultsInput) (*ListResultsOutput, error) {
	limit := defaultListLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	ids, err := r.client.ZRevRange(ctx, resultsByEndKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	results := make([]*models.GameResult, 0, len(ids))
	for _, id := range ids {
		result, err := r.GetResult(ctx, &GetResultInput{ResultID: id})
		if err != nil {
			// An index entry without its record is skipped
			if errors.Is(err, ErrResultNotFound) {
				continue
			}
			return nil, err
		}
		results = append(results, result)
	}

	return &ListResultsOutput{
		Results: results,
	}, nil
}
