package amm

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultBurnFee is the share of a burn token's transfer sent to the burn
// wallet (1%).
var DefaultBurnFee = decimal.RequireFromString("0.01")

// BurnAmount returns amount*rate. It is a separate stage applied to quoted
// amounts; ordering against slippage is left to the caller.
func BurnAmount(amount, rate decimal.Decimal) (decimal.Decimal, error) {
	if rate.IsNegative() || rate.GreaterThanOrEqual(one) {
		return decimal.Zero, fmt.Errorf("burn rate %s: %w", rate, ErrInvalidFee)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount %s: %w", amount, ErrInvalidAmount)
	}
	return amount.Mul(rate), nil
}

// DeductBurn returns amount less its burn share.
func DeductBurn(amount, rate decimal.Decimal) (decimal.Decimal, error) {
	burn, err := BurnAmount(amount, rate)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Sub(burn), nil
}
