package confirmation

// ConfirmationError is a custom error type for confirmation errors
type ConfirmationError string

// Error implements the error interface
func (e ConfirmationError) Error() string {
	return string(e)
}

const (
	ErrProposalNotFound ConfirmationError = "proposal not found or already answered"
	ErrNotIssuer        ConfirmationError = "only the user who issued the command can answer it"
	ErrNilAction        ConfirmationError = "action cannot be nil"
	ErrMissingIssuer    ConfirmationError = "issuer is required"
	ErrNilConfig        ConfirmationError = "config cannot be nil"
	ErrNilUUIDGenerator ConfirmationError = "UUID generator cannot be nil"
)
