package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a signed amount in the smallest currency unit (e.g. cents).
// It is immutable: every operation returns a new value.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney is the zero amount.
var ZeroMoney = Money{}

// NewMoney creates a Money from an integer amount.
func NewMoney(amount int64) Money {
	return Money{amount: decimal.NewFromInt(amount)}
}

// NewMoneyFromDecimal creates a Money from a decimal, rejecting fractional
// values. Amounts are whole units only; there is no rounding policy.
func NewMoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if !d.IsInteger() {
		return Money{}, fmt.Errorf("money amount must be an integer, got %s", d)
	}
	return Money{amount: d}, nil
}

// Amount returns the wrapped decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Plus(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Minus(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

func (m Money) Negate() Money {
	return Money{amount: m.amount.Neg()}
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsPositiveOrZero() bool {
	return !m.amount.IsNegative()
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.String()
}
