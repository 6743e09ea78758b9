package chatlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/jetlag/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	channelLogKeyPrefix = "chatlog:channel:"
	channelsKey         = "chatlog:channels"
	attachmentKeyPrefix = "chatlog:attachment:"
	attachmentsKey      = "chatlog:attachments"
)

// ErrAttachmentNotFound is returned when no content was archived for an attachment
var ErrAttachmentNotFound = errors.New("attachment not found")

// Config holds configuration for the Redis chat log repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed chat log repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AppendMessage archives a message at the end of its channel log
func (r *redisRepository) AppendMessage(ctx context.Context, input *AppendMessageInput) error {
	if input == nil || input.Message == nil {
		return errors.New("input and message cannot be nil")
	}

	if input.Message.ChannelName == "" {
		return errors.New("channel name cannot be empty")
	}

	messageJSON, err := json.Marshal(input.Message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, channelLogKeyPrefix+input.Message.ChannelName, messageJSON)
	pipe.SAdd(ctx, channelsKey, input.Message.ChannelName)
	for id, data := range input.Files {
		if id == "" || len(data) == 0 {
			continue
		}
		pipe.Set(ctx, attachmentKeyPrefix+id, data, 0)
		pipe.SAdd(ctx, attachmentsKey, id)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}

	return nil
}

// GetMessages retrieves the archived messages of a channel
func (r *redisRepository) GetMessages(ctx context.Context, input *GetMessagesInput) (*GetMessagesOutput, error) {
	if input == nil || input.ChannelName == "" {
		return nil, errors.New("input and channel name cannot be empty")
	}

	start := int64(0)
	if input.Limit > 0 {
		start = int64(-input.Limit)
	}

	raw, err := r.client.LRange(ctx, channelLogKeyPrefix+input.ChannelName, start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	messages := make([]*models.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var message models.ChatMessage
		if err := json.Unmarshal([]byte(item), &message); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, &message)
	}

	return &GetMessagesOutput{
		Messages: messages,
	}, nil
}

// ListChannels returns the names of all channels with archived messages
func (r *redisRepository) ListChannels(ctx context.Context, input *ListChannelsInput) (*ListChannelsOutput, error) {
	names, err := r.client.SMembers(ctx, channelsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}

	sort.Strings(names)

	return &ListChannelsOutput{
		ChannelNames: names,
	}, nil
}

// GetAttachment retrieves the content of an archived file
func (r *redisRepository) GetAttachment(ctx context.Context, input *GetAttachmentInput) (*GetAttachmentOutput, error) {
	if input == nil || input.AttachmentID == "" {
		return nil, errors.New("input and attachment ID cannot be empty")
	}

	data, err := r.client.Get(ctx, attachmentKeyPrefix+input.AttachmentID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrAttachmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	return &GetAttachmentOutput{
		Data: data,
	}, nil
}

// Reset removes every archived message and file
func (r *redisRepository) Reset(ctx context.Context, input *ResetInput) error {
	names, err := r.client.SMembers(ctx, channelsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to list channels: %w", err)
	}

	attachmentIDs, err := r.client.SMembers(ctx, attachmentsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to list attachments: %w", err)
	}

	keys := make([]string, 0, len(names)+len(attachmentIDs)+2)
	for _, name := range names {
		keys = append(keys, channelLogKeyPrefix+name)
	}
	for _, id := range attachmentIDs {
		keys = append(keys, attachmentKeyPrefix+id)
	}
	keys = append(keys, channelsKey, attachmentsKey)

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to reset chat log: %w", err)
	}

	return nil
}
