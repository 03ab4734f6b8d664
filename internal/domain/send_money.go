package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransferCompleted is emitted after a successful transfer. Publication is
// best-effort: the caller dispatches it after persistence and a failed
// publish never affects the transfer result.
type TransferCompleted struct {
	EventID         uuid.UUID `json:"event_id"`
	SourceAccountID AccountID `json:"source_account_id"`
	TargetAccountID AccountID `json:"target_account_id"`
	Amount          Money     `json:"-"`
	AmountValue     int64     `json:"amount"`
	OccurredAt      time.Time `json:"occurred_at"`
	IdempotencyKey  string    `json:"idempotency_key,omitempty"`
}

// ExecuteTransfer applies a two-account transfer: same-account and threshold
// rules first, then withdraw from source, then deposit into target. A
// rejected transfer never leaves partial state behind. On success it returns
// the event describing the transfer.
func ExecuteTransfer(source, target *Account, amount, threshold Money) (TransferCompleted, error) {
	sourceID, ok := source.ID()
	if !ok {
		return TransferCompleted{}, ErrMissingAccountID
	}
	targetID, ok := target.ID()
	if !ok {
		return TransferCompleted{}, ErrMissingAccountID
	}

	if sourceID == targetID {
		return TransferCompleted{}, &SameAccountTransferError{AccountID: sourceID}
	}
	if amount.GreaterThan(threshold) {
		return TransferCompleted{}, &ThresholdExceededError{Threshold: threshold, Actual: amount}
	}

	if err := source.Withdraw(amount, targetID); err != nil {
		return TransferCompleted{}, err
	}
	if err := target.Deposit(amount, sourceID); err != nil {
		// Deposit cannot currently fail on an account with an id, but if it
		// ever becomes failable the withdrawal must be compensated.
		_ = source.Deposit(amount, targetID)
		return TransferCompleted{}, err
	}

	return TransferCompleted{
		EventID:         uuid.New(),
		SourceAccountID: sourceID,
		TargetAccountID: targetID,
		Amount:          amount,
		AmountValue:     amount.Amount().IntPart(),
		OccurredAt:      time.Now(),
	}, nil
}
