package models

import "time"

// Audience addresses a group of players for a notification
type Audience string

const (
	AudienceRunners Audience = "runners"
	AudienceChasers Audience = "chasers"
	AudienceAll     Audience = "all"
)

// Notification is a message emitted by the game for delivery to an audience
type Notification struct {
	// Audience is who should receive the message
	Audience Audience

	// Message is the text to deliver
	Message string

	// ExpiresAt is when a timed effect ends, zero for one-shot notifications
	ExpiresAt time.Time
}
