package service

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of all caller-input errors. Handlers match it
// with errors.Is to map failures to a 400 response.
var ErrValidation = errors.New("validation failed")

var (
	// ErrEmptyName rejects empty or whitespace-only member names.
	ErrEmptyName = fmt.Errorf("%w: member name must not be empty", ErrValidation)

	// ErrUnknownMember rejects payments for member ids that do not exist.
	ErrUnknownMember = fmt.Errorf("%w: unknown member", ErrValidation)

	// ErrNonPositiveAmount rejects payments with amount <= 0.
	ErrNonPositiveAmount = fmt.Errorf("%w: payment amount must be positive", ErrValidation)

	// ErrBadOrder rejects reorders that are not a permutation of the
	// current schedule.
	ErrBadOrder = fmt.Errorf("%w: order must be a permutation of the current schedule", ErrValidation)
)
