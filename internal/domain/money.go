package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits a Money value can carry.
const MoneyScale = 4

// Money is an exact signed decimal amount with a resolution of 0.0001.
// The zero value is zero.
type Money struct {
	d decimal.Decimal
}

// ZeroMoney is the additive identity.
var ZeroMoney = Money{}

// ParseMoney parses a plain decimal literal such as "2", "2.0" or "-9.9101".
// Exponent forms like "1e3" and literals with more than MoneyScale fractional digits are rejected.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "eE") {
		return Money{}, fmt.Errorf("%w: %q uses exponent notation", ErrParse, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q is not a decimal number", ErrParse, s)
	}
	if d.Exponent() < -MoneyScale {
		return Money{}, fmt.Errorf("%w: %q has more than %d fractional digits", ErrParse, s, MoneyScale)
	}
	return Money{d: d}, nil
}

// MustParseMoney is like ParseMoney but panics on error.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return Money{d: m.d.Add(o.d)}
}

// Sub returns m - o. The result may be negative.
func (m Money) Sub(o Money) Money {
	return Money{d: m.d.Sub(o.d)}
}

// Cmp returns -1, 0 or +1 depending on whether m is less than, equal to or greater than o.
func (m Money) Cmp(o Money) int {
	return m.d.Cmp(o.d)
}

// Equal reports whether m and o denote the same amount, regardless of scale.
func (m Money) Equal(o Money) bool {
	return m.d.Equal(o.d)
}

// String renders the minimal exact decimal form: "22", "9.9101", "-9".
func (m Money) String() string {
	return m.d.String()
}

// Decimal exposes the underlying value for callers that need float conversions,
// such as metric observations.
func (m Money) Decimal() decimal.Decimal {
	return m.d
}
