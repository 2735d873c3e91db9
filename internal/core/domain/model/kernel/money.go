package kernel

import (
	"fmt"

	"hyperlocal/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places kept for rupee amounts.
const MoneyScale = 2

// Money is a non-negative rupee amount. The zero value is ₹0 and is valid.
type Money struct {
	amount decimal.Decimal
}

// Zero returns ₹0.
func Zero() Money {
	return Money{}
}

// NewMoney rounds d to MoneyScale and rejects negative amounts.
func NewMoney(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", d))
	}
	return Money{amount: d.Round(MoneyScale)}, nil
}

// MoneyFromFloat converts an API amount.
func MoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// MoneyFromInt returns a whole-rupee amount. Negative values are clamped to zero.
func MoneyFromInt(rupees int64) Money {
	if rupees < 0 {
		return Money{}
	}
	return Money{amount: decimal.NewFromInt(rupees)}
}

// ParseMoney parses a decimal string such as "149.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 is used at the JSON boundary only.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// Rupees renders the amount rounded to whole rupees, e.g. "₹800".
func (m Money) Rupees() string {
	return "₹" + m.amount.Round(0).String()
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other, or zero when other exceeds m.
func (m Money) Sub(other Money) Money {
	d := m.amount.Sub(other.amount)
	if d.IsNegative() {
		return Money{}
	}
	return Money{amount: d}
}

// Mul multiplies by a non-negative quantity. Negative quantities yield zero.
func (m Money) Mul(qty int64) Money {
	if qty <= 0 {
		return Money{}
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(qty))}
}

// Percent returns p percent of m rounded to MoneyScale.
func (m Money) Percent(p decimal.Decimal) Money {
	d := m.amount.Mul(p).Div(decimal.NewFromInt(100)).Round(MoneyScale)
	if d.IsNegative() {
		return Money{}
	}
	return Money{amount: d}
}

func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}
