package models

import (
	"time"
)

// ChatMessage is an archived message from one of the game channels
type ChatMessage struct {
	// ID is the Discord message ID
	ID string

	// ChannelName is the name of the channel the message was posted in
	ChannelName string

	// AuthorName is the display name of the author
	AuthorName string

	// Content is the message text
	Content string

	// Attachments lists the files posted with the message
	Attachments []*ChatAttachment

	// Timestamp is when the message was posted
	Timestamp time.Time
}

// ChatAttachment is a file posted with an archived message
type ChatAttachment struct {
	// ID is the Discord attachment ID, the archived content is stored under it
	ID string

	Filename    string
	ContentType string

	// URL is the Discord CDN link, which stops working after a while
	URL string
}
