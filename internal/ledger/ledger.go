// Package ledger hosts a pool value behind a single-writer sequencer:
// operations are applied in submission order, assigned sequence
// numbers, and journaled before the new state is committed.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"stakeSwap/internal/amount"
	"stakeSwap/internal/model"
	"stakeSwap/internal/pool"
	"stakeSwap/internal/storage"
)

// Ledger owns the current pool value and serializes operations
// against it. A failed journal write leaves the pool unchanged.
type Ledger struct {
	mu      sync.Mutex
	pool    pool.Pool
	seq     uint64
	journal storage.Journal
	logger  *zap.Logger
}

// New creates a ledger over a freshly initialized pool and journals
// the init operation as sequence zero.
func New(price amount.Price, minFee, maxFee amount.Fee, liquidityTarget amount.TokenAmount, journal storage.Journal, logger *zap.Logger) (*Ledger, error) {
	if journal == nil {
		return nil, fmt.Errorf("journal is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	p := pool.Init(price, minFee, maxFee, liquidityTarget)
	record := model.OpRecord{
		Op:        model.OpInit,
		State:     StateOf(p),
		AppliedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := journal.Append([]model.OpRecord{record}); err != nil {
		return nil, fmt.Errorf("journal init: %w", err)
	}

	return &Ledger{pool: p, journal: journal, logger: logger}, nil
}

// AddLiquidity deposits underlying tokens and returns the minted
// shares.
func (l *Ledger) AddLiquidity(deposit amount.TokenAmount) (amount.LpTokenAmount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next, minted := l.pool.AddLiquidity(deposit)
	record := model.OpRecord{
		Op:       model.OpAddLiquidity,
		AmountIn: deposit.Raw(),
		LpMinted: minted.Raw(),
	}
	if err := l.commit(next, record); err != nil {
		return 0, err
	}
	return minted, nil
}

// RemoveLiquidity burns shares and returns the withdrawn amounts.
func (l *Ledger) RemoveLiquidity(burn amount.LpTokenAmount) (amount.TokenAmount, amount.StakedTokenAmount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next, tokenOut, stakedOut, err := l.pool.RemoveLiquidity(burn)
	if err != nil {
		return 0, 0, err
	}
	record := model.OpRecord{
		Op:        model.OpRemoveLiquidity,
		AmountIn:  burn.Raw(),
		TokenOut:  tokenOut.Raw(),
		StakedOut: stakedOut.Raw(),
	}
	if err := l.commit(next, record); err != nil {
		return 0, 0, err
	}
	return tokenOut, stakedOut, nil
}

// Swap exchanges staked tokens and returns the net underlying amount.
func (l *Ledger) Swap(staked amount.StakedTokenAmount) (amount.TokenAmount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next, net, err := l.pool.Swap(staked)
	if err != nil {
		return 0, err
	}
	record := model.OpRecord{
		Op:       model.OpSwap,
		AmountIn: staked.Raw(),
		TokenOut: net.Raw(),
	}
	if err := l.commit(next, record); err != nil {
		return 0, err
	}
	return net, nil
}

// Seq returns the sequence number of the last applied operation.
func (l *Ledger) Seq() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.seq
}

// State returns a snapshot of the current pool.
func (l *Ledger) State() model.PoolState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return StateOf(l.pool)
}

func (l *Ledger) commit(next pool.Pool, record model.OpRecord) error {
	record.Seq = l.seq + 1
	record.State = StateOf(next)
	record.AppliedAt = time.Now().UTC().Format(time.RFC3339Nano)

	if err := l.journal.Append([]model.OpRecord{record}); err != nil {
		return fmt.Errorf("journal op %d: %w", record.Seq, err)
	}

	l.pool = next
	l.seq = record.Seq
	l.logger.Debug("op applied",
		zap.Uint64("seq", record.Seq),
		zap.String("op", record.Op),
		zap.Uint64("amount_in", record.AmountIn),
		zap.Uint64("token_reserve", record.State.TokenReserve),
		zap.Uint64("lp_supply", record.State.LpSupply),
	)
	return nil
}

// StateOf converts a pool value into its snapshot form.
func StateOf(p pool.Pool) model.PoolState {
	return model.PoolState{
		Price:           p.Price.Raw(),
		TokenReserve:    p.TokenReserve.Raw(),
		StakedReserve:   p.StakedReserve.Raw(),
		LpSupply:        p.LpSupply.Raw(),
		LiquidityTarget: p.LiquidityTarget.Raw(),
		MinFee:          p.MinFee.Raw(),
		MaxFee:          p.MaxFee.Raw(),
	}
}
