package kernel

import (
	"fmt"

	"orderdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Scale is the number of decimal places every Money amount fits in. Amounts
// are exact at this scale, so rendering never rounds and a line total always
// equals unit price times quantity on the wire and in storage.
const Scale = 2

// Money is a non-negative decimal amount with at most Scale decimal places.
// The zero value is a valid zero amount.
//
// Prices are kept as decimals so that sums of line totals never drift the way
// float64 sums do:
//
//	unit, _ := kernel.MoneyFromString("10.00")
//	total := unit.Mul(3) // 30.00
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney wraps amount, rejecting negative values and fractions of a cent.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	if !amount.Equal(amount.Truncate(Scale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s has more than %d decimal places", amount.String(), Scale),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal literal such as "19.99".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// MustMoney is MoneyFromString for literals known to be valid; it panics otherwise.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Mul returns m multiplied by a whole quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// IsPositive reports whether m > 0.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZero reports whether m == 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal compares amounts numerically, so 30 and 30.00 are equal.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal exposes the underlying amount for adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return m.amount.StringFixed(Scale)
}
