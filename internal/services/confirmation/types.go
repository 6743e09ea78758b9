package confirmation

import (
	"context"

	"github.com/KirkDiggler/jetlag/internal/common/uuid"
)

// Action is the deferred work of a proposal
type Action func(ctx context.Context) error

// Config holds configuration for the confirmation service
type Config struct {
	UUIDGenerator uuid.UUID
}

// ProposeInput contains parameters for proposing an action
type ProposeInput struct {
	// IssuerID is the user who must answer the proposal
	IssuerID string

	// Description is shown to the issuer, e.g. "stop the game"
	Description string

	// Action runs on confirmation
	Action Action
}

// ProposeOutput contains the created proposal
type ProposeOutput struct {
	// ProposalID identifies the proposal in confirm and cancel calls
	ProposalID string
}

// ConfirmInput contains parameters for confirming a proposal
type ConfirmInput struct {
	ProposalID  string
	ResponderID string
}

// ConfirmOutput contains the result of a confirmation
type ConfirmOutput struct {
	// Description of the action that ran
	Description string
}

// CancelInput contains parameters for cancelling a proposal
type CancelInput struct {
	ProposalID  string
	ResponderID string
}

// CancelOutput contains the result of a cancellation
type CancelOutput struct {
	// Description of the discarded action
	Description string
}

type proposal struct {
	issuerID    string
	description string
	action      Action
}
