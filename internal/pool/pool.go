// Package pool implements a single-sided liquidity pool that exchanges
// a staked token for an underlying token at a fixed price, charging a
// fee that rises linearly as the underlying reserve drops below a
// target level.
//
// A Pool is an immutable value: every operation consumes the receiver
// and returns the next pool state. Callers must thread the returned
// value through subsequent calls; on error paths the receiver is
// returned unchanged.
package pool

import "stakeSwap/internal/amount"

// Pool holds the reserves and immutable pricing parameters of one pool.
type Pool struct {
	Price           amount.Price
	TokenReserve    amount.TokenAmount
	StakedReserve   amount.StakedTokenAmount
	LpSupply        amount.LpTokenAmount
	LiquidityTarget amount.TokenAmount
	MinFee          amount.Fee
	MaxFee          amount.Fee
}

// Init creates a pool with empty reserves and the given immutable
// parameters. Parameters are not validated: callers must ensure
// minFee <= maxFee and liquidityTarget > 0 before constructing, or the
// fee curve is nonsensical and the first sub-target swap divides by
// zero.
func Init(price amount.Price, minFee, maxFee amount.Fee, liquidityTarget amount.TokenAmount) Pool {
	return Pool{
		Price:           price,
		LiquidityTarget: liquidityTarget,
		MinFee:          minFee,
		MaxFee:          maxFee,
	}
}

// AddLiquidity deposits underlying tokens and mints pool shares. The
// first deposit into an empty pool mints shares 1:1; afterwards the
// mint is proportional to the existing underlying reserve only, with
// the staked reserve not diluting share value. A zero deposit mints
// zero shares.
func (p Pool) AddLiquidity(deposit amount.TokenAmount) (Pool, amount.LpTokenAmount) {
	var minted amount.LpTokenAmount
	if p.LpSupply == 0 {
		minted = amount.LpTokenAmount(deposit.Raw())
	} else {
		minted = amount.LpTokenAmount(mulDiv(deposit.Raw(), p.LpSupply.Raw(), p.TokenReserve.Raw()))
	}

	next := p
	next.TokenReserve = p.TokenReserve.Add(deposit)
	next.LpSupply = p.LpSupply.Add(minted)
	return next, minted
}

// RemoveLiquidity burns shares and withdraws from both reserves. It
// returns ErrInsufficientLiquidity if burn exceeds the outstanding
// supply, leaving the pool unchanged.
//
// The share proportion is an unscaled integer division and truncates
// to zero unless the full supply is burned, so partial redemptions
// withdraw no staked tokens. The underlying withdrawal scales by the
// absolute share count rather than the share proportion. Both formulas
// are kept bit-exact for compatibility and are not proportional to the
// caller's actual share in the general case.
func (p Pool) RemoveLiquidity(burn amount.LpTokenAmount) (Pool, amount.TokenAmount, amount.StakedTokenAmount, error) {
	if burn > p.LpSupply {
		return p, 0, 0, ErrInsufficientLiquidity
	}
	proportion := burn.Raw() / p.LpSupply.Raw()

	tokenOut := amount.TokenAmount(mulWrap(p.TokenReserve.Raw(), burn.Raw()))
	stakedOut := amount.StakedTokenAmount(p.StakedReserve.Raw() * proportion)

	next := p
	next.TokenReserve = p.TokenReserve.Sub(tokenOut)
	next.StakedReserve = p.StakedReserve.Sub(stakedOut)
	next.LpSupply = p.LpSupply.Sub(burn)
	return next, tokenOut, stakedOut, nil
}

// Swap exchanges staked tokens for underlying tokens at the pool price,
// minus the dynamic fee. It returns ErrInsufficientLiquidity if the
// gross underlying value exceeds the reserve, leaving the pool
// unchanged. The fee is evaluated against the reserve level left after
// honoring the gross swap and stays in the pool's underlying reserve.
func (p Pool) Swap(staked amount.StakedTokenAmount) (Pool, amount.TokenAmount, error) {
	gross := mulDiv(staked.Raw(), p.Price.Raw(), amount.Scale)
	if gross > p.TokenReserve.Raw() {
		return p, 0, ErrInsufficientLiquidity
	}

	reserveAfter := p.TokenReserve.Sub(amount.TokenAmount(gross))
	fee := FeeCurve(p.MinFee, p.MaxFee, p.LiquidityTarget, reserveAfter)
	feeAmount := mulDiv(gross, fee.Raw(), amount.Scale)
	net := amount.TokenAmount(gross - feeAmount)

	next := p
	next.TokenReserve = reserveAfter
	next.StakedReserve = p.StakedReserve.Add(staked)
	return next, net, nil
}

// FeeCurve interpolates the fee rate for a given post-swap reserve
// level: minFee at or above the liquidity target, rising linearly to
// maxFee at an empty reserve. liquidityTarget must be non-zero when
// the reserve is below it.
func FeeCurve(minFee, maxFee amount.Fee, liquidityTarget, reserveAfter amount.TokenAmount) amount.Fee {
	if reserveAfter >= liquidityTarget {
		return minFee
	}
	adjustment := mulDiv(maxFee.Raw()-minFee.Raw(), reserveAfter.Raw(), liquidityTarget.Raw())
	return amount.Fee(maxFee.Raw() - adjustment)
}
