package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pvieira/go-moneytransfer/internal/domain"
)

// MoneyMovementService handles external deposits and withdrawals: money
// entering or leaving the system with no counterparty account.
type MoneyMovementService struct {
	loadAccount  LoadAccountPort
	updateState  UpdateAccountStatePort
	locks        AccountLock
	windowLength time.Duration
	log          zerolog.Logger
}

func NewMoneyMovementService(
	loadAccount LoadAccountPort,
	updateState UpdateAccountStatePort,
	locks AccountLock,
	windowLength time.Duration,
	log zerolog.Logger,
) *MoneyMovementService {
	return &MoneyMovementService{
		loadAccount:  loadAccount,
		updateState:  updateState,
		locks:        locks,
		windowLength: windowLength,
		log:          log,
	}
}

// Deposit records money arriving from outside the system.
func (s *MoneyMovementService) Deposit(ctx context.Context, id domain.AccountID, amount domain.Money) error {
	return s.move(ctx, id, amount, "deposit", func(account *domain.Account) error {
		return account.DepositExternal(amount)
	})
}

// Withdraw records money leaving the system. Fails on insufficient balance.
func (s *MoneyMovementService) Withdraw(ctx context.Context, id domain.AccountID, amount domain.Money) error {
	return s.move(ctx, id, amount, "withdraw", func(account *domain.Account) error {
		return account.WithdrawExternal(amount)
	})
}

func (s *MoneyMovementService) move(ctx context.Context, id domain.AccountID, amount domain.Money, op string, apply func(*domain.Account) error) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%s amount must be positive, got %s", op, amount)
	}

	s.locks.LockAccount(id)
	defer s.locks.ReleaseAccount(id)

	account, err := s.loadAccount.LoadAccount(ctx, id, time.Now().Add(-s.windowLength))
	if err != nil {
		return fmt.Errorf("loading account %d: %w", id, err)
	}
	if err := apply(account); err != nil {
		return err
	}
	if err := s.updateState.UpdateActivities(ctx, account); err != nil {
		return fmt.Errorf("persisting activities: %w", err)
	}

	s.log.Info().
		Int64("account_id", int64(id)).
		Str("amount", amount.String()).
		Str("operation", op).
		Msg("external movement recorded")

	return nil
}

// GetBalance loads the account and returns its current balance.
func (s *MoneyMovementService) GetBalance(ctx context.Context, id domain.AccountID) (domain.Money, error) {
	account, err := s.loadAccount.LoadAccount(ctx, id, time.Now().Add(-s.windowLength))
	if err != nil {
		return domain.Money{}, err
	}
	return account.CalculateBalance()
}
