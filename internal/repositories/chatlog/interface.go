package chatlog

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/jetlag/internal/repositories/chatlog Repository

import (
	"context"
)

// Repository defines the interface for chat log archival
type Repository interface {
	// AppendMessage archives a message at the end of its channel log
	AppendMessage(ctx context.Context, input *AppendMessageInput) error

	// GetMessages retrieves the archived messages of a channel, oldest first
	GetMessages(ctx context.Context, input *GetMessagesInput) (*GetMessagesOutput, error)

	// ListChannels returns the names of all channels with archived messages
	ListChannels(ctx context.Context, input *ListChannelsInput) (*ListChannelsOutput, error)

	// GetAttachment retrieves the content of an archived file
	GetAttachment(ctx context.Context, input *GetAttachmentInput) (*GetAttachmentOutput, error)

	// Reset removes every archived message and file
	Reset(ctx context.Context, input *ResetInput) error
}
