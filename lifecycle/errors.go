package lifecycle

import "errors"

var (
	ErrValidation         = errors.New("invalid help request")
	ErrNotFound           = errors.New("help request not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrConcurrentConflict = errors.New("help request was changed concurrently")
)
