package amm

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PriceImpact returns, as a percentage with two decimals, how far the
// realized output of an exact-in swap falls short of the output at the pool's
// mid price (reserveOut/reserveIn). A zero ideal output yields "0.00".
func PriceImpact(amountIn, realizedOut, reserveIn, reserveOut decimal.Decimal) (string, error) {
	if err := checkImpactInputs(amountIn, realizedOut, reserveIn, reserveOut); err != nil {
		return "", err
	}

	idealOut := quo(amountIn.Mul(reserveOut), reserveIn)
	if !idealOut.IsPositive() {
		return formatPercent(decimal.Zero), nil
	}

	return formatPercent(one.Sub(quo(realizedOut, idealOut)).Mul(hundred)), nil
}

// PriceImpactExactOut is the exact-out counterpart of PriceImpact: it compares
// the required input against the input at mid price (reserveIn/reserveOut).
func PriceImpactExactOut(amountOut, requiredIn, reserveIn, reserveOut decimal.Decimal) (string, error) {
	if err := checkImpactInputs(amountOut, requiredIn, reserveIn, reserveOut); err != nil {
		return "", err
	}

	idealIn := quo(amountOut.Mul(reserveIn), reserveOut)
	if !idealIn.IsPositive() {
		return formatPercent(decimal.Zero), nil
	}

	return formatPercent(quo(requiredIn, idealIn).Sub(one).Mul(hundred)), nil
}

func checkImpactInputs(fixed, realized, reserveIn, reserveOut decimal.Decimal) error {
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return fmt.Errorf("reserves %s/%s: %w", reserveIn, reserveOut, ErrInvalidLiquidity)
	}
	if fixed.IsNegative() || realized.IsNegative() {
		return fmt.Errorf("amounts %s/%s: %w", fixed, realized, ErrInvalidAmount)
	}
	return nil
}

// formatPercent rounds half away from zero to two decimals.
func formatPercent(p decimal.Decimal) string {
	return p.StringFixed(2)
}
