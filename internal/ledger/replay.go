package ledger

import (
	"fmt"

	"go.uber.org/zap"

	"stakeSwap/internal/amount"
	"stakeSwap/internal/model"
	"stakeSwap/internal/pool"
)

// Replay rebuilds pool state by re-applying journaled operations in
// order, verifying that every recorded output and resulting state
// matches the recomputation. It returns the final pool value and the
// last sequence number.
func Replay(records []model.OpRecord, logger *zap.Logger) (pool.Pool, uint64, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(records) == 0 {
		return pool.Pool{}, 0, fmt.Errorf("journal is empty")
	}

	first := records[0]
	if first.Op != model.OpInit {
		return pool.Pool{}, 0, fmt.Errorf("journal does not start with init, got %q", first.Op)
	}
	p := pool.Init(
		amount.Price(first.State.Price),
		amount.Fee(first.State.MinFee),
		amount.Fee(first.State.MaxFee),
		amount.TokenAmount(first.State.LiquidityTarget),
	)
	if StateOf(p) != first.State {
		return pool.Pool{}, 0, fmt.Errorf("init state mismatch at seq %d", first.Seq)
	}

	lastSeq := first.Seq
	for _, record := range records[1:] {
		if record.Seq != lastSeq+1 {
			return pool.Pool{}, 0, fmt.Errorf("sequence gap: %d after %d", record.Seq, lastSeq)
		}

		var err error
		p, err = replayOp(p, record)
		if err != nil {
			return pool.Pool{}, 0, err
		}
		lastSeq = record.Seq
	}

	logger.Info("replay complete",
		zap.Uint64("last_seq", lastSeq),
		zap.Int("ops", len(records)-1),
	)
	return p, lastSeq, nil
}

func replayOp(p pool.Pool, record model.OpRecord) (pool.Pool, error) {
	var next pool.Pool

	switch record.Op {
	case model.OpAddLiquidity:
		var minted amount.LpTokenAmount
		next, minted = p.AddLiquidity(amount.TokenAmount(record.AmountIn))
		if minted.Raw() != record.LpMinted {
			return pool.Pool{}, fmt.Errorf("seq %d: minted %d, journal has %d", record.Seq, minted.Raw(), record.LpMinted)
		}
	case model.OpRemoveLiquidity:
		var tokenOut amount.TokenAmount
		var stakedOut amount.StakedTokenAmount
		var err error
		next, tokenOut, stakedOut, err = p.RemoveLiquidity(amount.LpTokenAmount(record.AmountIn))
		if err != nil {
			return pool.Pool{}, fmt.Errorf("seq %d: %w", record.Seq, err)
		}
		if tokenOut.Raw() != record.TokenOut || stakedOut.Raw() != record.StakedOut {
			return pool.Pool{}, fmt.Errorf("seq %d: withdrew %d/%d, journal has %d/%d",
				record.Seq, tokenOut.Raw(), stakedOut.Raw(), record.TokenOut, record.StakedOut)
		}
	case model.OpSwap:
		var net amount.TokenAmount
		var err error
		next, net, err = p.Swap(amount.StakedTokenAmount(record.AmountIn))
		if err != nil {
			return pool.Pool{}, fmt.Errorf("seq %d: %w", record.Seq, err)
		}
		if net.Raw() != record.TokenOut {
			return pool.Pool{}, fmt.Errorf("seq %d: swapped for %d, journal has %d", record.Seq, net.Raw(), record.TokenOut)
		}
	default:
		return pool.Pool{}, fmt.Errorf("seq %d: unknown op %q", record.Seq, record.Op)
	}

	if StateOf(next) != record.State {
		return pool.Pool{}, fmt.Errorf("seq %d: state diverged from journal", record.Seq)
	}
	return next, nil
}
