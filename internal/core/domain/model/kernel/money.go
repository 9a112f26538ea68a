package kernel

import (
	"fmt"

	"menucore/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNegative indicates an attempt to construct a negative amount.
// Prices and order totals are never negative in this domain.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// Money is a value object for exact decimal amounts. It wraps
// github.com/shopspring/decimal so unit-price snapshots and order totals never
// accumulate binary floating-point drift.
//
// Money is immutable: arithmetic methods return new values. The zero value is
// a valid zero amount, which lets totals start from ZeroMoney() and accumulate
// with Add.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money value from a decimal amount.
// Returns ErrMoneyIsNegative for amounts below zero.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a Money value from its decimal string form,
// e.g. "12.50". Used when accepting prices from collaborators and when
// loading numeric columns persisted as strings.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a zero amount, the identity element for Add.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulQuantity returns the amount multiplied by an integer quantity,
// i.e. the line total for quantity units at this unit price.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Amount returns the underlying decimal value for persistence adapters.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the fixed-point string form, e.g. "20" or "12.5".
func (m Money) String() string {
	return m.amount.String()
}

// Validate returns an error if the amount is negative. Kept for symmetry with
// the other value objects; a zero value is a legitimate zero amount.
func (m Money) Validate() error {
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%s is negative", m.amount),
		)
	}
	return nil
}
