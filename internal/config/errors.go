package config

import "errors"

// ErrInvalidSlippage indicates that DEFAULT_SLIPPAGE is not a decimal in
// [0, 0.5].
var ErrInvalidSlippage = errors.New("invalid DEFAULT_SLIPPAGE environment variable")

// ErrInvalidBurnOrder indicates that BURN_ORDER is neither "before" nor
// "after".
var ErrInvalidBurnOrder = errors.New("invalid BURN_ORDER environment variable")
