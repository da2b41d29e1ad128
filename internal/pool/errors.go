package pool

import "errors"

var (
	ErrSameToken     = errors.New("tokenIn and tokenOut are equal")
	ErrPairNotFound  = errors.New("liquidity pool not found")
	ErrDuplicatePair = errors.New("duplicate pair")
	ErrMalformed     = errors.New("malformed pools file")
)
