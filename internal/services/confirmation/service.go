package confirmation

import (
	"context"
	"sync"

	"github.com/KirkDiggler/jetlag/internal/common/uuid"
)

// service implements the Service interface with an in-memory proposal store
type service struct {
	mu            sync.Mutex
	proposals     map[string]*proposal
	uuidGenerator uuid.UUID
}

// New creates a new confirmation service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		proposals:     make(map[string]*proposal),
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// Propose registers an action and returns the id used to answer it
func (s *service) Propose(ctx context.Context, input *ProposeInput) (*ProposeOutput, error) {
	if input == nil || input.Action == nil {
		return nil, ErrNilAction
	}

	if input.IssuerID == "" {
		return nil, ErrMissingIssuer
	}

	id := s.uuidGenerator.NewUUID()

	s.mu.Lock()
	s.proposals[id] = &proposal{
		issuerID:    input.IssuerID,
		description: input.Description,
		action:      input.Action,
	}
	s.mu.Unlock()

	return &ProposeOutput{
		ProposalID: id,
	}, nil
}

// Confirm runs the proposed action if the responder issued it.
// The proposal is removed before the action runs, so a second confirm gets ErrProposalNotFound.
func (s *service) Confirm(ctx context.Context, input *ConfirmInput) (*ConfirmOutput, error) {
	if input == nil {
		return nil, ErrProposalNotFound
	}

	p, err := s.take(input.ProposalID, input.ResponderID)
	if err != nil {
		return nil, err
	}

	if err := p.action(ctx); err != nil {
		return nil, err
	}

	return &ConfirmOutput{
		Description: p.description,
	}, nil
}

// Cancel discards the proposed action if the responder issued it
func (s *service) Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error) {
	if input == nil {
		return nil, ErrProposalNotFound
	}

	p, err := s.take(input.ProposalID, input.ResponderID)
	if err != nil {
		return nil, err
	}

	return &CancelOutput{
		Description: p.description,
	}, nil
}

func (s *service) take(proposalID, responderID string) (*proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.proposals[proposalID]
	if !ok {
		return nil, ErrProposalNotFound
	}

	if p.issuerID != responderID {
		return nil, ErrNotIssuer
	}

	delete(s.proposals, proposalID)
	return p, nil
}
