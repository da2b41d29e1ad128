package amm

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is used for tokens without a declared precision.
const DefaultPrecision = 12

// ParseAmount parses a plain decimal string such as "12.5".
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount: %w", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q: %w", s, ErrInvalidAmount)
	}
	return d, nil
}

// ParsePositiveAmount is ParseAmount restricted to values greater than zero.
func ParsePositiveAmount(s string) (decimal.Decimal, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount %s must be greater than zero: %w", d, ErrInvalidAmount)
	}
	return d, nil
}

// Truncate drops every digit past precision without rounding (toward zero).
func Truncate(amount decimal.Decimal, precision int) (decimal.Decimal, error) {
	if precision < 0 || precision > MaxPrecision {
		return decimal.Zero, fmt.Errorf("precision %d: %w", precision, ErrInvalidPrecision)
	}
	return amount.Truncate(int32(precision)), nil
}

// TruncateToPrecision truncates amount to precision fractional digits and
// renders it in fixed-point notation with exactly that many digits, e.g.
// 1.23456789 at precision 4 is "1.2345".
func TruncateToPrecision(amount decimal.Decimal, precision int) (string, error) {
	t, err := Truncate(amount, precision)
	if err != nil {
		return "", err
	}
	return t.StringFixed(int32(precision)), nil
}
