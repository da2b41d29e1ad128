package amm

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Direction selects which side of a quote a slippage bound protects.
type Direction int

const (
	// Min bounds the minimum acceptable output of an exact-in swap.
	Min Direction = iota + 1
	// Max bounds the maximum acceptable input of an exact-out swap.
	Max
)

func (d Direction) String() string {
	switch d {
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection maps "min" or "max" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min":
		return Min, nil
	case "max":
		return Max, nil
	default:
		return 0, fmt.Errorf("direction %q: %w", s, ErrInvalidSlippage)
	}
}

// MaxSlippage is the largest accepted tolerance (50%).
var MaxSlippage = decimal.RequireFromString("0.5")

// ValidateSlippage reports whether tolerance lies in [0, MaxSlippage].
func ValidateSlippage(tolerance decimal.Decimal) error {
	if tolerance.IsNegative() || tolerance.GreaterThan(MaxSlippage) {
		return fmt.Errorf("tolerance %s: %w", tolerance, ErrInvalidSlippage)
	}
	return nil
}

// ApplySlippage widens amount by tolerance in the caller's favour:
// amount*(1-tolerance) for Min, amount*(1+tolerance) for Max.
func ApplySlippage(amount, tolerance decimal.Decimal, dir Direction) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount %s: %w", amount, ErrInvalidAmount)
	}
	if err := ValidateSlippage(tolerance); err != nil {
		return decimal.Zero, err
	}

	switch dir {
	case Min:
		return amount.Mul(one.Sub(tolerance)), nil
	case Max:
		return amount.Mul(one.Add(tolerance)), nil
	default:
		return decimal.Zero, fmt.Errorf("direction %s: %w", dir, ErrInvalidSlippage)
	}
}
