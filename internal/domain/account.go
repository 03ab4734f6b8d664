package domain

import "time"

// Account is the aggregate root of the ledger model. Its balance is the
// baseline balance (everything before the window start, folded into one
// number) plus the net effect of the window's activities.
type Account struct {
	id              AccountID
	baselineBalance Money
	window          *ActivityWindow
}

// NewAccount creates an account that has not been persisted yet. It cannot
// compute a balance or move money until it has an id.
func NewAccount(baselineBalance Money, window *ActivityWindow) *Account {
	return &Account{baselineBalance: baselineBalance, window: window}
}

// ReconstituteAccount rebuilds a persisted account from storage.
func ReconstituteAccount(id AccountID, baselineBalance Money, window *ActivityWindow) *Account {
	return &Account{id: id, baselineBalance: baselineBalance, window: window}
}

// ID returns the account id and whether it has been persisted.
func (a *Account) ID() (AccountID, bool) {
	return a.id, a.id != 0
}

func (a *Account) BaselineBalance() Money {
	return a.baselineBalance
}

func (a *Account) Window() *ActivityWindow {
	return a.window
}

// CalculateBalance returns the account's current balance.
func (a *Account) CalculateBalance() (Money, error) {
	id, ok := a.ID()
	if !ok {
		return Money{}, ErrMissingAccountID
	}
	return a.baselineBalance.Plus(a.window.CalculateBalance(id)), nil
}

// Withdraw moves money from this account to the counterparty. It refuses,
// before appending anything, any withdrawal that would overdraw the account.
func (a *Account) Withdraw(amount Money, counterparty AccountID) error {
	return a.withdraw(amount, &counterparty)
}

// WithdrawExternal moves money out of the system entirely.
func (a *Account) WithdrawExternal(amount Money) error {
	return a.withdraw(amount, nil)
}

func (a *Account) withdraw(amount Money, target *AccountID) error {
	id, ok := a.ID()
	if !ok {
		return ErrMissingAccountID
	}
	balance, err := a.CalculateBalance()
	if err != nil {
		return err
	}
	if balance.Minus(amount).IsNegative() {
		return &InsufficientBalanceError{AccountID: id, Attempted: amount, Balance: balance}
	}
	activity, err := NewActivity(id, &id, target, time.Now(), amount)
	if err != nil {
		return err
	}
	a.window.AddActivity(activity)
	return nil
}

// Deposit moves money from the counterparty into this account. There is no
// upper bound at this layer; it only fails on a missing id.
func (a *Account) Deposit(amount Money, counterparty AccountID) error {
	return a.deposit(amount, &counterparty)
}

// DepositExternal moves money into the system from outside.
func (a *Account) DepositExternal(amount Money) error {
	return a.deposit(amount, nil)
}

func (a *Account) deposit(amount Money, source *AccountID) error {
	id, ok := a.ID()
	if !ok {
		return ErrMissingAccountID
	}
	activity, err := NewActivity(id, source, &id, time.Now(), amount)
	if err != nil {
		return err
	}
	a.window.AddActivity(activity)
	return nil
}

// NewActivities returns the window's activities that have not been
// persisted yet. Computed fresh on every call.
func (a *Account) NewActivities() []Activity {
	var out []Activity
	for _, activity := range a.window.Activities() {
		if _, saved := activity.ID(); !saved {
			out = append(out, activity)
		}
	}
	return out
}
