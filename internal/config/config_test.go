package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"KADENA_NETWORK_ID", "LOG_LEVEL", "DEFAULT_SLIPPAGE", "BURN_ORDER", "POOLS_FILE", "TOKENS_FILE"} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, "mainnet01", cfg.NetworkID)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "0.005", cfg.DefaultSlippage.String())
	require.Equal(t, "after", cfg.BurnOrder)
	require.Empty(t, cfg.PoolsFile)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("KADENA_NETWORK_ID", "testnet04")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEFAULT_SLIPPAGE", "0.02")
	t.Setenv("BURN_ORDER", "Before")
	t.Setenv("POOLS_FILE", "/tmp/pools.yml")

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, "testnet04", cfg.NetworkID)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "0.02", cfg.DefaultSlippage.String())
	require.Equal(t, "before", cfg.BurnOrder)
	require.Equal(t, "/tmp/pools.yml", cfg.PoolsFile)
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Setenv("BURN_ORDER", "")
	for _, v := range []string{"0.51", "-0.1", "lots"} {
		t.Setenv("DEFAULT_SLIPPAGE", v)
		_, err := FromEnv()
		require.ErrorIs(t, err, ErrInvalidSlippage, v)
	}

	t.Setenv("DEFAULT_SLIPPAGE", "")
	t.Setenv("BURN_ORDER", "never")
	_, err := FromEnv()
	require.ErrorIs(t, err, ErrInvalidBurnOrder)
}
