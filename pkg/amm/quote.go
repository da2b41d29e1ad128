// Package amm implements constant-product (x*y=k) swap quoting with a
// proportional trading fee deducted from the input side.
//
// All functions are pure and safe for concurrent use. Amounts are
// arbitrary-precision decimals; callers supply reserves and token precision.
package amm

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxPrecision is the number of fractional digits divisions are carried to.
// Quotients are truncated toward zero at this scale, which keeps any later
// truncation to a token precision exact.
const MaxPrecision = 36

var (
	// SwapFee is the pool trading fee (0.3%).
	SwapFee = decimal.RequireFromString("0.003")

	one = decimal.NewFromInt(1)
)

// QuoteExactIn returns the output amount received for amountIn:
//
//	amountInWithFee = amountIn * (1 - fee)
//	amountOut       = amountInWithFee * reserveOut / (reserveIn + amountInWithFee)
func QuoteExactIn(amountIn, reserveIn, reserveOut, fee decimal.Decimal) (decimal.Decimal, error) {
	if !amountIn.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount in %s: %w", amountIn, ErrInvalidAmount)
	}
	if err := checkPool(reserveIn, reserveOut, fee); err != nil {
		return decimal.Zero, err
	}

	amountInWithFee := amountIn.Mul(one.Sub(fee))
	numerator := amountInWithFee.Mul(reserveOut)
	denominator := reserveIn.Add(amountInWithFee)
	// reserves may come from a stale snapshot
	if !denominator.IsPositive() {
		return decimal.Zero, fmt.Errorf("denominator %s: %w", denominator, ErrInvalidLiquidity)
	}

	return quo(numerator, denominator), nil
}

// QuoteExactOut returns the input amount required to receive amountOut:
//
//	amountIn = reserveIn * amountOut / ((reserveOut - amountOut) * (1 - fee))
//
// amountOut must be strictly below reserveOut.
func QuoteExactOut(amountOut, reserveIn, reserveOut, fee decimal.Decimal) (decimal.Decimal, error) {
	if !amountOut.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount out %s: %w", amountOut, ErrInvalidAmount)
	}
	if err := checkPool(reserveIn, reserveOut, fee); err != nil {
		return decimal.Zero, err
	}
	if amountOut.GreaterThanOrEqual(reserveOut) {
		return decimal.Zero, fmt.Errorf("amount out %s, reserve %s: %w", amountOut, reserveOut, ErrInsufficientLiquidity)
	}

	numerator := reserveIn.Mul(amountOut)
	denominator := reserveOut.Sub(amountOut).Mul(one.Sub(fee))
	if !denominator.IsPositive() {
		return decimal.Zero, fmt.Errorf("denominator %s: %w", denominator, ErrInsufficientLiquidity)
	}

	return quo(numerator, denominator), nil
}

func checkPool(reserveIn, reserveOut, fee decimal.Decimal) error {
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return fmt.Errorf("reserves %s/%s: %w", reserveIn, reserveOut, ErrInvalidLiquidity)
	}
	if fee.IsNegative() || fee.GreaterThanOrEqual(one) {
		return fmt.Errorf("fee %s: %w", fee, ErrInvalidFee)
	}
	return nil
}

// quo divides a by b, truncating toward zero at MaxPrecision digits.
// b must be non-zero.
func quo(a, b decimal.Decimal) decimal.Decimal {
	q, _ := a.QuoRem(b, MaxPrecision)
	return q
}
