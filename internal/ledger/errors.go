package ledger

import "errors"

// Validation and storage errors surfaced by the Store. Handlers translate
// these into API responses with errors.Is; the Store never panics and never
// lets a raw repository error escape unwrapped.
var (
	ErrNotAuthenticated = errors.New("no active user")
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrInvalidAmount    = errors.New("amount must be a positive number")
	ErrInvalidDate      = errors.New("invalid date")
	ErrNotFound         = errors.New("transaction not found")
	ErrStorage          = errors.New("storage failure")
)
