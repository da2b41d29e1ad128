package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/nulln0ne/kadena-quote/internal/config"
	"github.com/nulln0ne/kadena-quote/internal/logging"
	"github.com/nulln0ne/kadena-quote/internal/pool"
	"github.com/nulln0ne/kadena-quote/internal/service"
	"github.com/nulln0ne/kadena-quote/internal/tokens"
	"github.com/nulln0ne/kadena-quote/pkg/amm"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil && !errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintln(os.Stderr, err)
	}
	stop()
	os.Exit(exitCode(err))
}

type options struct {
	tokenIn    string
	tokenOut   string
	amountIn   string
	amountOut  string
	slippage   string
	reserveIn  string
	reserveOut string
	poolsFile  string
	tokensFile string
	burnOrder  string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var opts options

	flags := pflag.NewFlagSet("quote", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.StringVarP(&opts.tokenIn, "in", "i", "coin", "token sold (Pact module, e.g. coin)")
	flags.StringVarP(&opts.tokenOut, "out", "o", "", "token bought (Pact module, e.g. kaddex.kdx)")
	flags.StringVar(&opts.amountIn, "amount-in", "", "exact input amount")
	flags.StringVar(&opts.amountOut, "amount-out", "", "exact output amount")
	flags.StringVarP(&opts.slippage, "slippage", "s", "", "slippage tolerance in [0, 0.5] (default DEFAULT_SLIPPAGE)")
	flags.StringVar(&opts.reserveIn, "reserve-in", "", "pool reserve of the input token")
	flags.StringVar(&opts.reserveOut, "reserve-out", "", "pool reserve of the output token")
	flags.StringVar(&opts.poolsFile, "pools", "", "YAML pool snapshot (default POOLS_FILE)")
	flags.StringVar(&opts.tokensFile, "tokens", "", "YAML token registry (default TOKENS_FILE or built-in)")
	flags.StringVar(&opts.burnOrder, "burn-order", "", "burn fee stage relative to slippage: before|after (default BURN_ORDER)")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", errUsage, flags.Args())
	}
	return &opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	registry, err := loadRegistry(firstNonEmpty(opts.tokensFile, cfg.TokensFile), cfg.NetworkID)
	if err != nil {
		return err
	}

	source, err := reserveSource(opts, cfg)
	if err != nil {
		return err
	}

	burnOrder, err := service.ParseBurnOrder(firstNonEmpty(opts.burnOrder, cfg.BurnOrder))
	if err != nil {
		return err
	}

	quoteService := service.NewQuoteService(logger, registry, source,
		service.WithBurnOrder(burnOrder),
		service.WithDefaultSlippage(cfg.DefaultSlippage),
	)

	q, err := quoteService.Quote(ctx, service.QuoteRequest{
		TokenIn:   opts.tokenIn,
		TokenOut:  opts.tokenOut,
		AmountIn:  opts.amountIn,
		AmountOut: opts.amountOut,
		Slippage:  opts.slippage,
	})
	if err != nil {
		return err
	}

	return printQuote(stdout, q)
}

func loadRegistry(path, network string) (*tokens.Registry, error) {
	if path == "" {
		return tokens.Default(network)
	}
	return tokens.LoadFile(path, network)
}

func reserveSource(opts *options, cfg *config.Config) (pool.Source, error) {
	if opts.reserveIn != "" || opts.reserveOut != "" {
		reserveIn, err := amm.ParseAmount(opts.reserveIn)
		if err != nil {
			return nil, fmt.Errorf("reserve-in: %w", err)
		}
		reserveOut, err := amm.ParseAmount(opts.reserveOut)
		if err != nil {
			return nil, fmt.Errorf("reserve-out: %w", err)
		}
		return pool.Static{In: reserveIn, Out: reserveOut}, nil
	}

	path := firstNonEmpty(opts.poolsFile, cfg.PoolsFile)
	if path == "" {
		return nil, errNoReserves
	}
	return pool.LoadFileSource(path)
}

func printQuote(w io.Writer, q *service.Quote) error {
	mode := "exact-in"
	if !q.ExactIn {
		mode = "exact-out"
	}

	lines := [][2]string{
		{"mode", mode},
		{"token_in", q.TokenIn},
		{"token_out", q.TokenOut},
		{"amount_in", q.AmountIn},
		{"amount_out", q.AmountOut},
		{"amount_in_with_slippage", q.AmountInWithSlippage},
		{"amount_out_with_slippage", q.AmountOutWithSlippage},
		{"slippage", q.Slippage},
		{"price_impact", q.PriceImpact},
	}
	if q.BurnIn != "" {
		lines = append(lines, [2]string{"burn_in", q.BurnIn})
	}
	if q.BurnOut != "" {
		lines = append(lines, [2]string{"burn_out", q.BurnOut})
	}
	if q.SymbolIn != "" {
		lines = append(lines, [2]string{"symbol_in", q.SymbolIn})
	}
	if q.SymbolOut != "" {
		lines = append(lines, [2]string{"symbol_out", q.SymbolOut})
	}

	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s=%s\n", l[0], l[1]); err != nil {
			return err
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
