package main

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/nulln0ne/kadena-quote/internal/config"
	"github.com/nulln0ne/kadena-quote/internal/pool"
	"github.com/nulln0ne/kadena-quote/internal/service"
	"github.com/nulln0ne/kadena-quote/internal/tokens"
	"github.com/nulln0ne/kadena-quote/pkg/amm"
)

const (
	exitOK           = 0
	exitFailure      = 1
	exitInvalidInput = 2
	exitLiquidity    = 3
)

// errUsage marks malformed command lines.
var errUsage = errors.New("usage")

// errNoReserves is returned when neither --reserve-in/--reserve-out nor a
// pools file is provided.
var errNoReserves = errors.New("no reserves: pass --reserve-in and --reserve-out or --pools")

var invalidInput = []error{
	errUsage,
	errNoReserves,
	amm.ErrInvalidAmount,
	amm.ErrInvalidSlippage,
	amm.ErrInvalidFee,
	amm.ErrInvalidPrecision,
	service.ErrTokenRequired,
	service.ErrSameToken,
	service.ErrAmountSpec,
	service.ErrBurnOrder,
	pool.ErrSameToken,
	pool.ErrDuplicatePair,
	pool.ErrMalformed,
	tokens.ErrInvalidPrecision,
	tokens.ErrNoTokens,
	tokens.ErrMalformed,
	config.ErrInvalidSlippage,
	config.ErrInvalidBurnOrder,
}

var liquidity = []error{
	amm.ErrInvalidLiquidity,
	amm.ErrInsufficientLiquidity,
	pool.ErrPairNotFound,
}

// exitCode maps an error returned by run to the process exit status.
func exitCode(err error) int {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	for _, target := range invalidInput {
		if errors.Is(err, target) {
			return exitInvalidInput
		}
	}
	for _, target := range liquidity {
		if errors.Is(err, target) {
			return exitLiquidity
		}
	}
	return exitFailure
}
