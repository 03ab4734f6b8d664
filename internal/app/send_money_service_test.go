package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvieira/go-moneytransfer/internal/domain"
)

type fakeAccountStore struct {
	accounts map[domain.AccountID]*domain.Account
	updated  []*domain.Account
}

func newFakeAccountStore(accounts ...*domain.Account) *fakeAccountStore {
	s := &fakeAccountStore{accounts: make(map[domain.AccountID]*domain.Account)}
	for _, a := range accounts {
		id, _ := a.ID()
		s.accounts[id] = a
	}
	return s
}

func (s *fakeAccountStore) LoadAccount(_ context.Context, id domain.AccountID, _ time.Time) (*domain.Account, error) {
	a, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return a, nil
}

func (s *fakeAccountStore) UpdateActivities(_ context.Context, account *domain.Account) error {
	s.updated = append(s.updated, account)
	return nil
}

type recordingLock struct {
	sequence []string
}

func (l *recordingLock) LockAccount(id domain.AccountID) {
	l.sequence = append(l.sequence, fmt.Sprintf("lock %d", id))
}

func (l *recordingLock) ReleaseAccount(id domain.AccountID) {
	l.sequence = append(l.sequence, fmt.Sprintf("release %d", id))
}

type recordingPublisher struct {
	events []domain.TransferCompleted
}

func (p *recordingPublisher) Publish(event domain.TransferCompleted) {
	p.events = append(p.events, event)
}

func testAccount(id domain.AccountID, balance int64) *domain.Account {
	return domain.ReconstituteAccount(id, domain.NewMoney(balance), domain.NewActivityWindow())
}

func newTestService(store *fakeAccountStore, locks AccountLock, events EventPublisher) *SendMoneyService {
	return NewSendMoneyService(store, store, locks, events, domain.NewMoney(1_000_000), 10*24*time.Hour, zerolog.Nop())
}

func TestSendMoney(t *testing.T) {
	alice := testAccount(1, 10_000)
	bob := testAccount(2, 5_000)
	store := newFakeAccountStore(alice, bob)
	locks := &recordingLock{}
	events := &recordingPublisher{}
	svc := newTestService(store, locks, events)

	cmd, err := NewSendMoneyCommand(1, 2, domain.NewMoney(3_000))
	require.NoError(t, err)
	cmd.IdempotencyKey = "key-123"

	require.NoError(t, svc.SendMoney(context.Background(), cmd))

	aliceBalance, err := alice.CalculateBalance()
	require.NoError(t, err)
	assert.True(t, aliceBalance.Equal(domain.NewMoney(7_000)))

	bobBalance, err := bob.CalculateBalance()
	require.NoError(t, err)
	assert.True(t, bobBalance.Equal(domain.NewMoney(8_000)))

	// Both sides persisted, event published with the idempotency key.
	require.Len(t, store.updated, 2)
	assert.Same(t, alice, store.updated[0])
	assert.Same(t, bob, store.updated[1])
	require.Len(t, events.events, 1)
	assert.Equal(t, "key-123", events.events[0].IdempotencyKey)
	assert.Equal(t, domain.AccountID(1), events.events[0].SourceAccountID)
}

func TestSendMoney_LockOrdering(t *testing.T) {
	store := newFakeAccountStore(testAccount(1, 10_000), testAccount(2, 5_000))
	locks := &recordingLock{}
	svc := newTestService(store, locks, &recordingPublisher{})

	// Transfer from the higher id to the lower: locks still go lower first.
	cmd, err := NewSendMoneyCommand(2, 1, domain.NewMoney(100))
	require.NoError(t, err)
	require.NoError(t, svc.SendMoney(context.Background(), cmd))

	assert.Equal(t, []string{"lock 1", "lock 2", "release 2", "release 1"}, locks.sequence)
}

func TestSendMoney_ThresholdExceeded(t *testing.T) {
	store := newFakeAccountStore(testAccount(1, 2_000_000), testAccount(2, 0))
	events := &recordingPublisher{}
	svc := newTestService(store, &recordingLock{}, events)

	cmd, err := NewSendMoneyCommand(1, 2, domain.NewMoney(1_000_001))
	require.NoError(t, err)
	err = svc.SendMoney(context.Background(), cmd)

	var exceeded *domain.ThresholdExceededError
	require.ErrorAs(t, err, &exceeded)
	assert.Empty(t, store.updated)
	assert.Empty(t, events.events)
}

func TestSendMoney_InsufficientBalance(t *testing.T) {
	store := newFakeAccountStore(testAccount(1, 100), testAccount(2, 0))
	locks := &recordingLock{}
	svc := newTestService(store, locks, &recordingPublisher{})

	cmd, err := NewSendMoneyCommand(1, 2, domain.NewMoney(200))
	require.NoError(t, err)
	err = svc.SendMoney(context.Background(), cmd)

	var insufficient *domain.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Empty(t, store.updated)

	// Locks are released even on failure.
	assert.Equal(t, []string{"lock 1", "lock 2", "release 2", "release 1"}, locks.sequence)
}

func TestSendMoney_AccountNotFound(t *testing.T) {
	store := newFakeAccountStore(testAccount(1, 100))
	svc := newTestService(store, &recordingLock{}, &recordingPublisher{})

	cmd, err := NewSendMoneyCommand(1, 99, domain.NewMoney(50))
	require.NoError(t, err)
	err = svc.SendMoney(context.Background(), cmd)

	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Empty(t, store.updated)
}

func TestNewSendMoneyCommand(t *testing.T) {
	_, err := NewSendMoneyCommand(0, 2, domain.NewMoney(10))
	assert.Error(t, err)

	_, err = NewSendMoneyCommand(1, 1, domain.NewMoney(10))
	var same *domain.SameAccountTransferError
	assert.ErrorAs(t, err, &same)

	_, err = NewSendMoneyCommand(1, 2, domain.NewMoney(0))
	assert.Error(t, err)

	_, err = NewSendMoneyCommand(1, 2, domain.NewMoney(-5))
	assert.Error(t, err)

	cmd, err := NewSendMoneyCommand(1, 2, domain.NewMoney(10))
	require.NoError(t, err)
	assert.Equal(t, domain.AccountID(1), cmd.SourceAccountID)
	assert.Equal(t, domain.AccountID(2), cmd.TargetAccountID)
}
