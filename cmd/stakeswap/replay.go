package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stakeSwap/internal/config"
	"stakeSwap/internal/ledger"
	"stakeSwap/internal/storage"
	"stakeSwap/internal/storage/postgres"
)

func newReplayCmd() *cobra.Command {
	replayCmd := &cobra.Command{
		Use:   "replay",
		Short: "Rebuild and verify pool state from a journal",
		RunE:  runReplay,
	}

	replayCmd.Flags().String("journal", "./data/journal.jsonl", "journal JSONL path")
	replayCmd.Flags().String("pg-dsn", "", "Postgres DSN for snapshotting the result (optional)")
	replayCmd.Flags().String("ledger-name", "default", "ledger name for Postgres records")
	replayCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	return replayCmd
}

func runReplay(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadReplay(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	records, err := storage.ReadJournal(cfg.Journal)
	if err != nil {
		return err
	}

	p, lastSeq, err := ledger.Replay(records, logger)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	state := ledger.StateOf(p)
	logger.Info("journal verified",
		zap.Uint64("last_seq", lastSeq),
		zap.Uint64("token_reserve", state.TokenReserve),
		zap.Uint64("staked_reserve", state.StakedReserve),
		zap.Uint64("lp_supply", state.LpSupply),
	)

	if cfg.PGDSN != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()

		if err := store.UpsertSnapshot(ctx, cfg.LedgerName, lastSeq, state); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
	}

	return nil
}
