package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountWithBalance(t *testing.T, id AccountID, balance int64) *Account {
	t.Helper()
	return ReconstituteAccount(id, NewMoney(balance), NewActivityWindow())
}

func TestAccount_CalculateBalance(t *testing.T) {
	// Baseline 555, one deposit of 100, one withdrawal of 50.
	now := time.Now()
	w := NewActivityWindow(
		mustActivity(t, 1, accountRef(2), accountRef(1), now, 100),
		mustActivity(t, 1, accountRef(1), accountRef(2), now, 50),
	)
	account := ReconstituteAccount(1, NewMoney(555), w)

	balance, err := account.CalculateBalance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(NewMoney(605)))
}

func TestAccount_CalculateBalance_RequiresID(t *testing.T) {
	account := NewAccount(NewMoney(100), NewActivityWindow())
	_, err := account.CalculateBalance()
	assert.ErrorIs(t, err, ErrMissingAccountID)
}

func TestAccount_Withdraw(t *testing.T) {
	account := accountWithBalance(t, 1, 100)

	require.NoError(t, account.Withdraw(NewMoney(40), 2))

	balance, err := account.CalculateBalance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(NewMoney(60)))
	assert.Len(t, account.NewActivities(), 1)
}

func TestAccount_Withdraw_InsufficientBalance(t *testing.T) {
	account := accountWithBalance(t, 1, 100)

	err := account.Withdraw(NewMoney(200), 2)

	var insufficient *InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, AccountID(1), insufficient.AccountID)
	assert.True(t, insufficient.Attempted.Equal(NewMoney(200)))
	assert.True(t, insufficient.Balance.Equal(NewMoney(100)))

	// The refused withdrawal must not have touched the window.
	assert.Empty(t, account.NewActivities())
	assert.Empty(t, account.Window().Activities())
}

func TestAccount_Withdraw_ExactBalance(t *testing.T) {
	account := accountWithBalance(t, 1, 100)

	require.NoError(t, account.Withdraw(NewMoney(100), 2))

	balance, err := account.CalculateBalance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(ZeroMoney))
}

func TestAccount_Withdraw_RequiresID(t *testing.T) {
	account := NewAccount(NewMoney(100), NewActivityWindow())
	assert.ErrorIs(t, account.Withdraw(NewMoney(10), 2), ErrMissingAccountID)
}

func TestAccount_Deposit(t *testing.T) {
	account := accountWithBalance(t, 1, 0)

	require.NoError(t, account.Deposit(NewMoney(300), 2))

	balance, err := account.CalculateBalance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(NewMoney(300)))

	activities := account.NewActivities()
	require.Len(t, activities, 1)
	source, ok := activities[0].Source()
	require.True(t, ok)
	assert.Equal(t, AccountID(2), source)
	assert.True(t, activities[0].IsDepositFor(1))
}

func TestAccount_Deposit_RequiresID(t *testing.T) {
	account := NewAccount(NewMoney(0), NewActivityWindow())
	assert.ErrorIs(t, account.Deposit(NewMoney(10), 2), ErrMissingAccountID)
}

func TestAccount_ExternalMovements(t *testing.T) {
	account := accountWithBalance(t, 1, 50)

	require.NoError(t, account.DepositExternal(NewMoney(100)))
	require.NoError(t, account.WithdrawExternal(NewMoney(30)))

	balance, err := account.CalculateBalance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(NewMoney(120)))

	activities := account.NewActivities()
	require.Len(t, activities, 2)
	assert.True(t, activities[0].IsExternalDeposit())
	assert.True(t, activities[1].IsExternalWithdrawal())
}

func TestAccount_NewActivities(t *testing.T) {
	persisted, err := ReconstituteActivity(7, 1, accountRef(2), accountRef(1), time.Now(), NewMoney(100))
	require.NoError(t, err)
	account := ReconstituteAccount(1, NewMoney(0), NewActivityWindow(persisted))

	// Only unsaved entries count.
	assert.Empty(t, account.NewActivities())

	require.NoError(t, account.Deposit(NewMoney(10), 2))
	require.NoError(t, account.Withdraw(NewMoney(5), 2))

	first := account.NewActivities()
	second := account.NewActivities()
	assert.Len(t, first, 2)
	assert.Equal(t, first, second)

	// After a flush the account is reloaded with every entry persisted; a
	// fresh aggregate reports nothing left to save.
	var reloaded []Activity
	for i, a := range account.Window().Activities() {
		if _, saved := a.ID(); saved {
			reloaded = append(reloaded, a)
			continue
		}
		var sourceRef, targetRef *AccountID
		if source, ok := a.Source(); ok {
			sourceRef = &source
		}
		if target, ok := a.Target(); ok {
			targetRef = &target
		}
		saved, err := ReconstituteActivity(ActivityID(100+i), a.Owner(), sourceRef, targetRef, a.Timestamp(), a.Amount())
		require.NoError(t, err)
		reloaded = append(reloaded, saved)
	}
	flushed := ReconstituteAccount(1, NewMoney(0), NewActivityWindow(reloaded...))
	assert.Empty(t, flushed.NewActivities())
}
