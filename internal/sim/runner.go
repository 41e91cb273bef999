package sim

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"stakeSwap/internal/amount"
	"stakeSwap/internal/ledger"
	"stakeSwap/internal/model"
	"stakeSwap/internal/pool"
)

// StepResult reports the outcome of one applied script step.
type StepResult struct {
	Step      Step
	Minted    uint64
	TokenOut  uint64
	StakedOut uint64
	Rejected  bool
}

// Runner applies script steps to a ledger in order.
type Runner struct {
	ledger *ledger.Ledger
	logger *zap.Logger
}

func NewRunner(l *ledger.Ledger, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{ledger: l, logger: logger}
}

// Run applies each step in order. Steps rejected for insufficient
// liquidity are reported and skipped; any other failure aborts the
// run.
func (r *Runner) Run(steps []Step) ([]StepResult, error) {
	if r.ledger == nil {
		return nil, fmt.Errorf("ledger is nil")
	}

	results := make([]StepResult, 0, len(steps))
	for i, step := range steps {
		result := StepResult{Step: step}
		raw := uint64(step.Amount)

		var err error
		switch step.Op {
		case model.OpAddLiquidity:
			var minted amount.LpTokenAmount
			minted, err = r.ledger.AddLiquidity(amount.TokenAmount(raw))
			result.Minted = minted.Raw()
		case model.OpRemoveLiquidity:
			var tokenOut amount.TokenAmount
			var stakedOut amount.StakedTokenAmount
			tokenOut, stakedOut, err = r.ledger.RemoveLiquidity(amount.LpTokenAmount(raw))
			result.TokenOut = tokenOut.Raw()
			result.StakedOut = stakedOut.Raw()
		case model.OpSwap:
			var net amount.TokenAmount
			net, err = r.ledger.Swap(amount.StakedTokenAmount(raw))
			result.TokenOut = net.Raw()
		default:
			return results, fmt.Errorf("step %d: unknown op %q", i+1, step.Op)
		}

		if err != nil {
			if errors.Is(err, pool.ErrInsufficientLiquidity) {
				result.Rejected = true
				results = append(results, result)
				r.logger.Warn("step rejected",
					zap.Int("step", i+1),
					zap.String("op", step.Op),
					zap.Uint64("amount", raw),
				)
				continue
			}
			return results, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}

		results = append(results, result)
	}

	return results, nil
}
