package config

import (
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nulln0ne/kadena-quote/pkg/amm"
)

type Config struct {
	NetworkID       string
	PoolsFile       string
	TokensFile      string
	LogLevel        string
	DefaultSlippage decimal.Decimal
	BurnOrder       string
}

func FromEnv() (*Config, error) {
	networkID := os.Getenv("KADENA_NETWORK_ID")
	if networkID == "" {
		networkID = "mainnet01"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	slippage := decimal.RequireFromString("0.005")
	if v := os.Getenv("DEFAULT_SLIPPAGE"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil || amm.ValidateSlippage(d) != nil {
			return nil, ErrInvalidSlippage
		}
		slippage = d
	}

	burnOrder := strings.ToLower(strings.TrimSpace(os.Getenv("BURN_ORDER")))
	switch burnOrder {
	case "":
		burnOrder = "after"
	case "after", "before":
	default:
		return nil, ErrInvalidBurnOrder
	}

	cfg := &Config{
		NetworkID:       networkID,
		PoolsFile:       os.Getenv("POOLS_FILE"),
		TokensFile:      os.Getenv("TOKENS_FILE"),
		LogLevel:        logLevel,
		DefaultSlippage: slippage,
		BurnOrder:       burnOrder,
	}

	return cfg, nil
}
