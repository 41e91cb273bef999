package pool

import "errors"

var (
	// ErrInsufficientLiquidity is returned when a swap or a share
	// redemption asks for more than the pool holds. The input pool
	// value is unchanged on this path.
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")

	// ErrInvalidAmount is reserved for input validation at the host
	// boundary; no pool operation raises it.
	ErrInvalidAmount = errors.New("invalid amount")
)
