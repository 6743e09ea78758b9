package confirmation

import "context"

// Service holds commands that only run once the user who issued them confirms
type Service interface {
	// Propose registers an action and returns the id used to answer it
	Propose(ctx context.Context, input *ProposeInput) (*ProposeOutput, error)

	// Confirm runs the proposed action if the responder issued it
	Confirm(ctx context.Context, input *ConfirmInput) (*ConfirmOutput, error)

	// Cancel discards the proposed action if the responder issued it
	Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error)
}
