package errorvalues

import (
	"errors"
	"fmt"
)

// Categories. Every specific error below wraps exactly one of them,
// so callers can switch on errors.Is(err, ErrConflict) etc.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation error")

	// Delivery outcomes reported by notifiers
	ErrTransportFailure = errors.New("push transport failure")
	ErrEndpointGone     = errors.New("push endpoint is gone")
)

// Users and auth
var (
	ErrUserExists       = fmt.Errorf("%w: such user already exists", ErrConflict)
	ErrUserNotFound     = fmt.Errorf("%w: user doesn't exists", ErrNotFound)
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
)

// Habits
var (
	ErrHabitNotFound = fmt.Errorf("%w: habit doesn't exist", ErrNotFound)
	ErrOwnerNotFound = fmt.Errorf("%w: habit owner doesn't exist", ErrNotFound)
	ErrUserHasHabit  = fmt.Errorf("%w: user already has habit with such name", ErrConflict)
	ErrWrongOwner    = fmt.Errorf("%w: resource belongs to another user", ErrForbidden)
)

// Ledger
var (
	ErrCompletionExists    = fmt.Errorf("%w: completion already recorded for this date", ErrConflict)
	ErrCompletionNotFound  = fmt.Errorf("%w: completion doesn't exist", ErrNotFound)
	ErrSkipExists          = fmt.Errorf("%w: skip already recorded for this date", ErrConflict)
	ErrSkipNotFound        = fmt.Errorf("%w: skip doesn't exist", ErrNotFound)
	ErrDayAlreadyCompleted = fmt.Errorf("%w: day is already completed", ErrConflict)
	ErrDayAlreadySkipped   = fmt.Errorf("%w: day is already skipped", ErrConflict)
	ErrDateInFuture        = fmt.Errorf("%w: date is in the future", ErrValidation)
	ErrInvalidDateRange    = fmt.Errorf("%w: 'from' is after 'to'", ErrValidation)
)

// Push subscriptions
var (
	ErrSubscriptionNotFound = fmt.Errorf("%w: subscription doesn't exist", ErrNotFound)
	ErrEndpointTaken        = fmt.Errorf("%w: endpoint is registered by another user", ErrConflict)
)
