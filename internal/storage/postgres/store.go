package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stakeSwap/internal/model"
)

// Store provides Postgres persistence for the operation journal and
// pool snapshots.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// AppendOps inserts operation records into the journal. Re-inserting a
// sequence number already present for the ledger is a no-op, so a
// resumed run may safely overlap its last batch.
func (s *Store) AppendOps(ctx context.Context, ledgerName string, records []model.OpRecord) error {
	if ledgerName == "" {
		return fmt.Errorf("ledger name required")
	}
	if len(records) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, record := range records {
		batch.Queue(`
			INSERT INTO pool_ops (
				ledger_name, seq, op, amount_in, lp_minted, token_out, staked_out,
				token_reserve, staked_reserve, lp_supply, applied_at, created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,now())
			ON CONFLICT (ledger_name, seq) DO NOTHING
		`,
			ledgerName,
			int64(record.Seq),
			record.Op,
			int64(record.AmountIn),
			int64(record.LpMinted),
			int64(record.TokenOut),
			int64(record.StakedOut),
			int64(record.State.TokenReserve),
			int64(record.State.StakedReserve),
			int64(record.State.LpSupply),
			record.AppliedAt,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range records {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// UpsertSnapshot inserts or updates the latest pool state for a ledger.
func (s *Store) UpsertSnapshot(ctx context.Context, ledgerName string, seq uint64, state model.PoolState) error {
	if ledgerName == "" {
		return fmt.Errorf("ledger name required")
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO pool_snapshots (
			ledger_name, seq, price, token_reserve, staked_reserve, lp_supply,
			liquidity_target, min_fee, max_fee, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,now(),now())
		ON CONFLICT (ledger_name) DO UPDATE SET
			seq = EXCLUDED.seq,
			price = EXCLUDED.price,
			token_reserve = EXCLUDED.token_reserve,
			staked_reserve = EXCLUDED.staked_reserve,
			lp_supply = EXCLUDED.lp_supply,
			liquidity_target = EXCLUDED.liquidity_target,
			min_fee = EXCLUDED.min_fee,
			max_fee = EXCLUDED.max_fee,
			updated_at = now()
	`,
		ledgerName,
		int64(seq),
		int64(state.Price),
		int64(state.TokenReserve),
		int64(state.StakedReserve),
		int64(state.LpSupply),
		int64(state.LiquidityTarget),
		int64(state.MinFee),
		int64(state.MaxFee),
	)
	return err
}

// LastSeq returns the highest journaled sequence number for a ledger.
func (s *Store) LastSeq(ctx context.Context, ledgerName string) (uint64, bool, error) {
	if ledgerName == "" {
		return 0, false, fmt.Errorf("ledger name required")
	}
	var seq int64
	row := s.pool.QueryRow(ctx, `SELECT seq FROM pool_ops WHERE ledger_name=$1 ORDER BY seq DESC LIMIT 1`, ledgerName)
	if err := row.Scan(&seq); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return uint64(seq), true, nil
}
