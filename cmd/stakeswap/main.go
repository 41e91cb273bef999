package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"stakeSwap/internal/amount"
	"stakeSwap/internal/config"
	"stakeSwap/internal/ledger"
	"stakeSwap/internal/sim"
	"stakeSwap/internal/storage"
	"stakeSwap/internal/storage/postgres"
)

func main() {
	root := &cobra.Command{
		Use:          "stakeswap",
		Short:        "Single-sided staked-token swap pool",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run an operation script against a fresh pool",
		RunE:  runScript,
	}

	runCmd.Flags().String("script", "", "operation script JSONL path")
	runCmd.Flags().String("journal", "./data/journal.jsonl", "output journal JSONL path")
	runCmd.Flags().String("pg-dsn", "", "Postgres DSN (optional)")
	runCmd.Flags().String("ledger-name", "default", "ledger name for Postgres records")
	runCmd.Flags().Uint64("price", 0, "staked-to-underlying price (1000000 = 1.0)")
	runCmd.Flags().Uint64("min-fee", 0, "fee at or above the liquidity target (1000000 = 100%)")
	runCmd.Flags().Uint64("max-fee", 0, "fee at empty reserve (1000000 = 100%)")
	runCmd.Flags().Uint64("liquidity-target", 0, "underlying reserve target")
	runCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(runCmd)
	root.AddCommand(newReplayCmd())
	root.AddCommand(newCurveCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runScript(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadRun(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Script == "" {
		return fmt.Errorf("script path is required")
	}
	if cfg.Price == 0 {
		return fmt.Errorf("price must be greater than zero")
	}
	if cfg.LiquidityTarget == 0 {
		return fmt.Errorf("liquidity target must be greater than zero")
	}
	if cfg.MinFee > cfg.MaxFee {
		return fmt.Errorf("min fee %d exceeds max fee %d", cfg.MinFee, cfg.MaxFee)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	journals := storage.MultiJournal{storage.NewJsonlJournal(cfg.Journal)}

	var store *postgres.Store
	if cfg.PGDSN != "" {
		store, err = postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
		journals = append(journals, store.Journal(ctx, cfg.LedgerName))
	}

	file, err := os.Open(cfg.Script)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	steps, err := sim.ParseScript(file)
	file.Close()
	if err != nil {
		return err
	}

	led, err := ledger.New(
		amount.Price(cfg.Price),
		amount.Fee(cfg.MinFee),
		amount.Fee(cfg.MaxFee),
		amount.TokenAmount(cfg.LiquidityTarget),
		journals,
		logger,
	)
	if err != nil {
		return err
	}

	logger.Info("run start",
		zap.String("script", cfg.Script),
		zap.String("journal", cfg.Journal),
		zap.Int("steps", len(steps)),
		zap.Uint64("price", cfg.Price),
		zap.Uint64("liquidity_target", cfg.LiquidityTarget),
	)

	results, err := sim.NewRunner(led, logger).Run(steps)
	if err != nil {
		return err
	}

	applied, rejected := 0, 0
	for _, result := range results {
		if result.Rejected {
			rejected++
		} else {
			applied++
		}
	}

	state := led.State()
	logger.Info("run complete",
		zap.Int("applied", applied),
		zap.Int("rejected", rejected),
		zap.Uint64("token_reserve", state.TokenReserve),
		zap.Uint64("staked_reserve", state.StakedReserve),
		zap.Uint64("lp_supply", state.LpSupply),
	)

	if store != nil {
		if err := store.UpsertSnapshot(ctx, cfg.LedgerName, led.Seq(), state); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
	}

	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
