package domain

import "time"

// AccountID identifies an account. Zero means "not yet persisted".
type AccountID int64

// ActivityID identifies a ledger entry. Zero means "not yet persisted".
type ActivityID int64

// Activity is a single ledger entry: money moving into, out of, or between
// accounts. A nil source means the money entered from outside the system
// (external deposit); a nil target means it left (external withdrawal).
// An activity without both is meaningless and is rejected at construction.
type Activity struct {
	id        ActivityID
	owner     AccountID
	source    *AccountID
	target    *AccountID
	timestamp time.Time
	amount    Money
}

// NewActivity creates an unsaved activity (id zero).
func NewActivity(owner AccountID, source, target *AccountID, timestamp time.Time, amount Money) (Activity, error) {
	if source == nil && target == nil {
		return Activity{}, ErrInvalidActivity
	}
	a := Activity{
		owner:     owner,
		timestamp: timestamp,
		amount:    amount,
	}
	if source != nil {
		s := *source
		a.source = &s
	}
	if target != nil {
		t := *target
		a.target = &t
	}
	return a, nil
}

// ReconstituteActivity rebuilds a persisted activity from storage.
func ReconstituteActivity(id ActivityID, owner AccountID, source, target *AccountID, timestamp time.Time, amount Money) (Activity, error) {
	a, err := NewActivity(owner, source, target, timestamp, amount)
	if err != nil {
		return Activity{}, err
	}
	a.id = id
	return a, nil
}

// ID returns the activity id and whether it has been persisted.
func (a Activity) ID() (ActivityID, bool) {
	return a.id, a.id != 0
}

func (a Activity) Owner() AccountID {
	return a.owner
}

// Source returns the account the money came from, if any.
func (a Activity) Source() (AccountID, bool) {
	if a.source == nil {
		return 0, false
	}
	return *a.source, true
}

// Target returns the account the money went to, if any.
func (a Activity) Target() (AccountID, bool) {
	if a.target == nil {
		return 0, false
	}
	return *a.target, true
}

func (a Activity) Timestamp() time.Time {
	return a.timestamp
}

func (a Activity) Amount() Money {
	return a.amount
}

// IsExternalDeposit reports whether money entered from outside the system.
func (a Activity) IsExternalDeposit() bool {
	return a.source == nil && a.target != nil
}

// IsExternalWithdrawal reports whether money left the system.
func (a Activity) IsExternalWithdrawal() bool {
	return a.target == nil && a.source != nil
}

// IsTransfer reports whether money moved between two accounts.
func (a Activity) IsTransfer() bool {
	return a.source != nil && a.target != nil
}

func (a Activity) IsDepositFor(id AccountID) bool {
	return a.target != nil && *a.target == id
}

func (a Activity) IsWithdrawalFrom(id AccountID) bool {
	return a.source != nil && *a.source == id
}
