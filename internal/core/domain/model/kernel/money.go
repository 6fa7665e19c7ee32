package kernel

import (
	"fmt"

	"mainbridge/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative monetary amount in the
// platform currency. It is backed by an arbitrary-precision decimal so that
// tariff and payout arithmetic stays exact; amounts are kept at two decimal
// places, rounded half up.
//
// The zero value of Money is a valid zero amount, which keeps restored
// aggregates and sums convenient to work with.
//
// Example usage:
//
//	freight, err := kernel.NewMoneyFromFloat(35)
//	if err != nil {
//	    // handle error
//	}
//	payout := freight.MulFraction(decimal.NewFromFloat(0.7)) // 24.50
type Money struct {
	amount decimal.Decimal
}

// moneyExponent is the scale all amounts are rounded to.
const moneyExponent = 2

// NewMoney creates a Money value from a decimal amount.
// The amount is rounded to two decimal places and must not be negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount.Round(moneyExponent)}, nil
}

// NewMoneyFromFloat creates a Money value from a float amount.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// MoneyFromString parses a Money value from its decimal string representation.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulFraction multiplies the amount by a fraction and rounds the result
// to two decimal places. Used for payout-share computation.
func (m Money) MulFraction(fraction decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(fraction).Round(moneyExponent)}
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount formatted with two decimal places, e.g. "24.50".
func (m Money) String() string {
	return m.amount.StringFixed(moneyExponent)
}
