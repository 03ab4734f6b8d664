package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pvieira/go-moneytransfer/internal/domain"
)

// SendMoneyService orchestrates a transfer: lock both accounts, load them,
// run the domain service, persist both sides, then publish the completion
// event. Locks are taken lower id first so two opposite transfers between
// the same pair cannot deadlock.
type SendMoneyService struct {
	loadAccount  LoadAccountPort
	updateState  UpdateAccountStatePort
	locks        AccountLock
	events       EventPublisher
	threshold    domain.Money
	windowLength time.Duration
	log          zerolog.Logger
}

func NewSendMoneyService(
	loadAccount LoadAccountPort,
	updateState UpdateAccountStatePort,
	locks AccountLock,
	events EventPublisher,
	threshold domain.Money,
	windowLength time.Duration,
	log zerolog.Logger,
) *SendMoneyService {
	return &SendMoneyService{
		loadAccount:  loadAccount,
		updateState:  updateState,
		locks:        locks,
		events:       events,
		threshold:    threshold,
		windowLength: windowLength,
		log:          log,
	}
}

// SendMoney executes the transfer described by the command.
func (s *SendMoneyService) SendMoney(ctx context.Context, cmd SendMoneyCommand) error {
	first, second := cmd.SourceAccountID, cmd.TargetAccountID
	if second < first {
		first, second = second, first
	}
	s.locks.LockAccount(first)
	defer s.locks.ReleaseAccount(first)
	s.locks.LockAccount(second)
	defer s.locks.ReleaseAccount(second)

	baselineDate := time.Now().Add(-s.windowLength)

	source, err := s.loadAccount.LoadAccount(ctx, cmd.SourceAccountID, baselineDate)
	if err != nil {
		return fmt.Errorf("loading source account %d: %w", cmd.SourceAccountID, err)
	}
	target, err := s.loadAccount.LoadAccount(ctx, cmd.TargetAccountID, baselineDate)
	if err != nil {
		return fmt.Errorf("loading target account %d: %w", cmd.TargetAccountID, err)
	}

	event, err := domain.ExecuteTransfer(source, target, cmd.Amount, s.threshold)
	if err != nil {
		return err
	}

	if err := s.updateState.UpdateActivities(ctx, source); err != nil {
		return fmt.Errorf("persisting source activities: %w", err)
	}
	if err := s.updateState.UpdateActivities(ctx, target); err != nil {
		return fmt.Errorf("persisting target activities: %w", err)
	}

	event.IdempotencyKey = cmd.IdempotencyKey
	if s.events != nil {
		s.events.Publish(event)
	}

	s.log.Info().
		Int64("source_account_id", int64(cmd.SourceAccountID)).
		Int64("target_account_id", int64(cmd.TargetAccountID)).
		Str("amount", cmd.Amount.String()).
		Str("event_id", event.EventID.String()).
		Msg("transfer completed")

	return nil
}
