package loan

import "errors"

var (
	ErrNotFound          = errors.New("loan not found")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("operation not allowed in current loan status")
	// ErrOutstandingBalance: the loan is in a legal state for completion but
	// still owes money.
	ErrOutstandingBalance = errors.New("loan still has an outstanding balance")
	// ErrConflict: the loan changed between read and write (lost update).
	ErrConflict = errors.New("loan was modified concurrently")
)
