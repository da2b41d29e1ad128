package amm

import "errors"

var (
	// ErrInvalidAmount indicates a non-positive or non-numeric amount.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidLiquidity indicates that the pool reserves cannot back any
	// trade (a reserve, or the resulting denominator, is not positive).
	ErrInvalidLiquidity = errors.New("invalid liquidity")

	// ErrInsufficientLiquidity is returned when the requested output meets or
	// exceeds the output reserve.
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")

	// ErrInvalidSlippage indicates a tolerance outside [0, MaxSlippage] or an
	// unknown slippage direction.
	ErrInvalidSlippage = errors.New("invalid slippage")

	ErrInvalidFee = errors.New("invalid fee")

	ErrInvalidPrecision = errors.New("invalid precision")
)
