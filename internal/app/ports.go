// Package app hosts the use-case services around the transfer core. The
// core takes no dependencies; everything it needs (persistence, locking,
// event publication) comes in through the ports defined here.
package app

import (
	"context"
	"time"

	"github.com/pvieira/go-moneytransfer/internal/domain"
)

// LoadAccountPort loads an account whose baseline balance folds in all
// activity strictly before baselineDate and whose window holds everything
// at or after it. Returns domain.ErrAccountNotFound for unknown ids.
type LoadAccountPort interface {
	LoadAccount(ctx context.Context, id domain.AccountID, baselineDate time.Time) (*domain.Account, error)
}

// UpdateAccountStatePort persists the account's unsaved activities. A no-op
// when there are none.
type UpdateAccountStatePort interface {
	UpdateActivities(ctx context.Context, account *domain.Account) error
}

// AccountLock is the advisory lock held around a read-compute-write cycle.
// Implementations range from a real in-process mutex to a no-op when the
// storage layer's own locking is trusted instead.
type AccountLock interface {
	LockAccount(id domain.AccountID)
	ReleaseAccount(id domain.AccountID)
}

// EventPublisher receives domain events after a use case commits. Publishing
// is best-effort and must never block the caller.
type EventPublisher interface {
	Publish(event domain.TransferCompleted)
}
