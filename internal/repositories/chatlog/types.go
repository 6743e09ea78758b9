package chatlog

import (
	"github.com/KirkDiggler/jetlag/internal/models"
)

// AppendMessageInput contains parameters for archiving a message
type AppendMessageInput struct {
	// Message is the message to archive
	Message *models.ChatMessage

	// Files maps attachment IDs to their downloaded content
	Files map[string][]byte
}

// GetMessagesInput contains parameters for reading a channel log
type GetMessagesInput struct {
	// ChannelName is the channel to read
	ChannelName string

	// Limit restricts the result to the most recent messages, 0 for all
	Limit int
}

// GetMessagesOutput contains the archived messages
type GetMessagesOutput struct {
	// Messages ordered oldest first
	Messages []*models.ChatMessage
}

// ListChannelsInput contains parameters for listing archived channels
type ListChannelsInput struct{}

// ListChannelsOutput contains the archived channel names
type ListChannelsOutput struct {
	// ChannelNames sorted alphabetically
	ChannelNames []string
}

// GetAttachmentInput contains parameters for reading an archived file
type GetAttachmentInput struct {
	AttachmentID string
}

// GetAttachmentOutput contains the archived file content
type GetAttachmentOutput struct {
	Data []byte
}

// ResetInput contains parameters for clearing the archive
type ResetInput struct{}
