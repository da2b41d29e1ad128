package service

import "errors"

var (
	ErrTokenRequired = errors.New("tokenIn and tokenOut are required")
	ErrSameToken     = errors.New("tokenIn and tokenOut are equal")
	ErrAmountSpec    = errors.New("provide either amountIn or amountOut, not both")
	ErrBurnOrder     = errors.New("unknown burn order")
)
