package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAccountNotFound is reported by persistence when an account id is
	// unknown. The domain propagates it untouched.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidActivity rejects an activity with neither source nor target.
	ErrInvalidActivity = errors.New("activity requires at least one of source or target account")

	// ErrMissingAccountID is returned when a balance calculation or a
	// withdraw/deposit is attempted on an account without a persisted id.
	ErrMissingAccountID = errors.New("account has no id")

	// ErrEmptyActivityWindow is returned when asking an empty window for
	// its start or end timestamp.
	ErrEmptyActivityWindow = errors.New("activity window is empty")
)

// InsufficientBalanceError reports a withdrawal that would overdraw the
// account.
type InsufficientBalanceError struct {
	AccountID AccountID
	Attempted Money
	Balance   Money
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance on account %d: tried to withdraw %s but balance is %s",
		e.AccountID, e.Attempted, e.Balance)
}

// SameAccountTransferError reports a transfer where source and target are
// the same account.
type SameAccountTransferError struct {
	AccountID AccountID
}

func (e *SameAccountTransferError) Error() string {
	return fmt.Sprintf("cannot transfer money from account %d to itself", e.AccountID)
}

// ThresholdExceededError reports a transfer above the configured ceiling.
type ThresholdExceededError struct {
	Threshold Money
	Actual    Money
}

func (e *ThresholdExceededError) Error() string {
	return fmt.Sprintf("transfer of %s exceeds the maximum of %s", e.Actual, e.Threshold)
}
