package domain

import "time"

// ActivityWindow is the working set of ledger entries for one account,
// built up in insertion order during a use case. It is the single mutable
// collection in the model; everything it holds is immutable.
type ActivityWindow struct {
	activities []Activity
}

// NewActivityWindow creates a window over the given activities, preserving
// their order.
func NewActivityWindow(activities ...Activity) *ActivityWindow {
	w := &ActivityWindow{activities: make([]Activity, len(activities))}
	copy(w.activities, activities)
	return w
}

// AddActivity appends an activity to the window.
func (w *ActivityWindow) AddActivity(activity Activity) {
	w.activities = append(w.activities, activity)
}

// Activities returns a copy of the window's entries.
func (w *ActivityWindow) Activities() []Activity {
	out := make([]Activity, len(w.activities))
	copy(out, w.activities)
	return out
}

// StartTimestamp returns the earliest activity timestamp.
func (w *ActivityWindow) StartTimestamp() (time.Time, error) {
	if len(w.activities) == 0 {
		return time.Time{}, ErrEmptyActivityWindow
	}
	start := w.activities[0].Timestamp()
	for _, a := range w.activities[1:] {
		if a.Timestamp().Before(start) {
			start = a.Timestamp()
		}
	}
	return start, nil
}

// EndTimestamp returns the latest activity timestamp.
func (w *ActivityWindow) EndTimestamp() (time.Time, error) {
	if len(w.activities) == 0 {
		return time.Time{}, ErrEmptyActivityWindow
	}
	end := w.activities[0].Timestamp()
	for _, a := range w.activities[1:] {
		if a.Timestamp().After(end) {
			end = a.Timestamp()
		}
	}
	return end, nil
}

// CalculateBalance returns the net effect of the window on the given
// account: deposits into it minus withdrawals out of it. A self-transfer
// counts on both sides and nets to zero.
func (w *ActivityWindow) CalculateBalance(id AccountID) Money {
	balance := ZeroMoney
	for _, a := range w.activities {
		if a.IsDepositFor(id) {
			balance = balance.Plus(a.Amount())
		}
		if a.IsWithdrawalFrom(id) {
			balance = balance.Minus(a.Amount())
		}
	}
	return balance
}
