package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/nulln0ne/kadena-quote/internal/pool"
	"github.com/nulln0ne/kadena-quote/internal/tokens"
	"github.com/nulln0ne/kadena-quote/pkg/amm"
)

// DefaultSlippage is applied when a request leaves the tolerance empty (0.5%).
var DefaultSlippage = decimal.RequireFromString("0.005")

// QuoteRequest carries raw caller input. Exactly one of AmountIn and
// AmountOut must be set.
type QuoteRequest struct {
	TokenIn   string
	TokenOut  string
	AmountIn  string
	AmountOut string
	Slippage  string
}

// Quote is the result of one calculation. Amounts are truncated to the
// precision of their token and rendered fixed-point. The fixed side's
// WithSlippage field equals its amount.
type Quote struct {
	TokenIn               string
	TokenOut              string
	ExactIn               bool
	AmountIn              string
	AmountOut             string
	AmountInWithSlippage  string
	AmountOutWithSlippage string
	Slippage              string
	PriceImpact           string
	BurnIn                string
	BurnOut               string
	SymbolIn              string
	SymbolOut             string
}

// QuoteService turns a QuoteRequest into a Quote.
type QuoteService struct {
	BaseService
	registry        *tokens.Registry
	pools           pool.Source
	fee             decimal.Decimal
	burnFee         decimal.Decimal
	burnOrder       BurnOrder
	defaultSlippage decimal.Decimal
}

type Option func(*QuoteService)

// WithBurnOrder sets how burn fees interact with slippage bounds.
func WithBurnOrder(o BurnOrder) Option {
	return func(s *QuoteService) { s.burnOrder = o }
}

func WithDefaultSlippage(tolerance decimal.Decimal) Option {
	return func(s *QuoteService) { s.defaultSlippage = tolerance }
}

func WithFee(fee decimal.Decimal) Option {
	return func(s *QuoteService) { s.fee = fee }
}

func WithBurnFee(rate decimal.Decimal) Option {
	return func(s *QuoteService) { s.burnFee = rate }
}

// NewQuoteService constructs a QuoteService over the given registry and
// reserve source.
func NewQuoteService(logger *slog.Logger, registry *tokens.Registry, pools pool.Source, opts ...Option) *QuoteService {
	s := &QuoteService{
		BaseService:     BaseService{logger: logger},
		registry:        registry,
		pools:           pools,
		fee:             amm.SwapFee,
		burnFee:         amm.DefaultBurnFee,
		burnOrder:       BurnAfterSlippage,
		defaultSlippage: DefaultSlippage,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Quote validates req, fetches reserves for the pair and computes the
// counterpart amount, its slippage bound and the price impact.
func (s *QuoteService) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	if req.TokenIn == "" || req.TokenOut == "" {
		return nil, ErrTokenRequired
	}
	if req.TokenIn == req.TokenOut {
		return nil, ErrSameToken
	}
	if (req.AmountIn == "") == (req.AmountOut == "") {
		return nil, ErrAmountSpec
	}
	exactIn := req.AmountIn != ""

	amount, err := amm.ParsePositiveAmount(req.AmountIn + req.AmountOut)
	if err != nil {
		return nil, err
	}

	tolerance := s.defaultSlippage
	if req.Slippage != "" {
		if tolerance, err = amm.ParseAmount(req.Slippage); err != nil {
			return nil, fmt.Errorf("slippage: %w", amm.ErrInvalidSlippage)
		}
	}
	if err := amm.ValidateSlippage(tolerance); err != nil {
		return nil, err
	}

	s.logger.Debug("quoting swap", "in", req.TokenIn, "out", req.TokenOut, "amount", amount.String(), "exactIn", exactIn)

	reserves, err := s.pools.Reserves(ctx, req.TokenIn, req.TokenOut)
	if err != nil {
		return nil, fmt.Errorf("reserves: %w", err)
	}

	var q calc
	if exactIn {
		q, err = s.exactIn(amount, tolerance, reserves, req.TokenOut)
	} else {
		q, err = s.exactOut(amount, tolerance, reserves, req.TokenIn)
	}
	if err != nil {
		return nil, err
	}

	out, err := s.render(req, exactIn, tolerance, q)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("quote computed", "in", out.AmountIn, "out", out.AmountOut, "impact", out.PriceImpact)
	return out, nil
}

// calc holds untruncated results.
type calc struct {
	amountIn, amountOut             decimal.Decimal
	inWithSlippage, outWithSlippage decimal.Decimal
	impact                          string
}

func (s *QuoteService) exactIn(amountIn, tolerance decimal.Decimal, r pool.Reserves, tokenOut string) (calc, error) {
	amountOut, err := amm.QuoteExactIn(amountIn, r.In, r.Out, s.fee)
	if err != nil {
		return calc{}, err
	}

	base := amountOut
	if s.burnOrder == BurnBeforeSlippage && s.registry.IsBurnToken(tokenOut) {
		if base, err = amm.DeductBurn(amountOut, s.burnFee); err != nil {
			return calc{}, err
		}
	}
	minOut, err := amm.ApplySlippage(base, tolerance, amm.Min)
	if err != nil {
		return calc{}, err
	}

	impact, err := amm.PriceImpact(amountIn, amountOut, r.In, r.Out)
	if err != nil {
		return calc{}, err
	}

	return calc{
		amountIn:        amountIn,
		amountOut:       amountOut,
		inWithSlippage:  amountIn,
		outWithSlippage: minOut,
		impact:          impact,
	}, nil
}

func (s *QuoteService) exactOut(amountOut, tolerance decimal.Decimal, r pool.Reserves, tokenIn string) (calc, error) {
	amountIn, err := amm.QuoteExactOut(amountOut, r.In, r.Out, s.fee)
	if err != nil {
		return calc{}, err
	}

	base := amountIn
	if s.burnOrder == BurnBeforeSlippage && s.registry.IsBurnToken(tokenIn) {
		burn, err := amm.BurnAmount(amountIn, s.burnFee)
		if err != nil {
			return calc{}, err
		}
		base = amountIn.Add(burn)
	}
	maxIn, err := amm.ApplySlippage(base, tolerance, amm.Max)
	if err != nil {
		return calc{}, err
	}

	impact, err := amm.PriceImpactExactOut(amountOut, amountIn, r.In, r.Out)
	if err != nil {
		return calc{}, err
	}

	return calc{
		amountIn:        amountIn,
		amountOut:       amountOut,
		inWithSlippage:  maxIn,
		outWithSlippage: amountOut,
		impact:          impact,
	}, nil
}

func (s *QuoteService) render(req QuoteRequest, exactIn bool, tolerance decimal.Decimal, q calc) (*Quote, error) {
	inPrec := s.registry.Precision(req.TokenIn)
	outPrec := s.registry.Precision(req.TokenOut)

	out := &Quote{
		TokenIn:     req.TokenIn,
		TokenOut:    req.TokenOut,
		ExactIn:     exactIn,
		Slippage:    tolerance.String(),
		PriceImpact: q.impact,
	}
	if tok, ok := s.registry.Lookup(req.TokenIn); ok {
		out.SymbolIn = tok.Symbol
	}
	if tok, ok := s.registry.Lookup(req.TokenOut); ok {
		out.SymbolOut = tok.Symbol
	}

	fields := []struct {
		dst       *string
		amount    decimal.Decimal
		precision int
	}{
		{&out.AmountIn, q.amountIn, inPrec},
		{&out.AmountOut, q.amountOut, outPrec},
		{&out.AmountInWithSlippage, q.inWithSlippage, inPrec},
		{&out.AmountOutWithSlippage, q.outWithSlippage, outPrec},
	}
	for _, f := range fields {
		v, err := amm.TruncateToPrecision(f.amount, f.precision)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	var err error
	if out.BurnIn, err = s.burn(req.TokenIn, q.amountIn, inPrec); err != nil {
		return nil, err
	}
	if out.BurnOut, err = s.burn(req.TokenOut, q.amountOut, outPrec); err != nil {
		return nil, err
	}
	return out, nil
}

// burn returns the truncated burn share of amount, or "" when token carries
// no burn fee.
func (s *QuoteService) burn(token string, amount decimal.Decimal, precision int) (string, error) {
	if !s.registry.IsBurnToken(token) {
		return "", nil
	}
	b, err := amm.BurnAmount(amount, s.burnFee)
	if err != nil {
		return "", err
	}
	return amm.TruncateToPrecision(b, precision)
}
