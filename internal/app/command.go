package app

import (
	"fmt"

	"github.com/pvieira/go-moneytransfer/internal/domain"
)

// SendMoneyCommand is a validated transfer request.
type SendMoneyCommand struct {
	SourceAccountID domain.AccountID
	TargetAccountID domain.AccountID
	Amount          domain.Money
	IdempotencyKey  string
}

// NewSendMoneyCommand validates the raw request. The same-account rule is
// also enforced here, before any account is loaded, so obviously broken
// requests fail fast; the domain service checks it again.
func NewSendMoneyCommand(source, target domain.AccountID, amount domain.Money) (SendMoneyCommand, error) {
	if source <= 0 || target <= 0 {
		return SendMoneyCommand{}, fmt.Errorf("source and target account ids are required")
	}
	if source == target {
		return SendMoneyCommand{}, &domain.SameAccountTransferError{AccountID: source}
	}
	if !amount.IsPositive() {
		return SendMoneyCommand{}, fmt.Errorf("transfer amount must be positive, got %s", amount)
	}
	return SendMoneyCommand{
		SourceAccountID: source,
		TargetAccountID: target,
		Amount:          amount,
	}, nil
}
