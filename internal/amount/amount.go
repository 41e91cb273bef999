// Package amount provides fixed-point integer quantities tagged by
// denomination, so that amounts of different tokens cannot be mixed
// without an explicit conversion through their raw integers.
package amount

// Scale is the fixed-point scale: 1_000_000 raw units equal 1.0 for
// Price, and 100% for Fee.
const Scale = 1_000_000

type (
	token  struct{}
	staked struct{}
	lp     struct{}
)

// Unit is the set of denominations an Amount can carry. The unit types
// are sealed; use the TokenAmount, StakedTokenAmount and LpTokenAmount
// aliases.
type Unit interface {
	token | staked | lp
}

// Amount is a non-negative fixed-point quantity of a single
// denomination U. Addition and subtraction are only defined between
// amounts of the same denomination.
type Amount[U Unit] uint64

type (
	// TokenAmount is a quantity of the underlying token.
	TokenAmount = Amount[token]
	// StakedTokenAmount is a quantity of the staked token.
	StakedTokenAmount = Amount[staked]
	// LpTokenAmount is a quantity of pool shares.
	LpTokenAmount = Amount[lp]
)

// Price is the staked-to-underlying exchange rate, Scale = 1.0.
type Price uint64

// Fee is a fee rate, Scale = 100%.
type Fee uint64

// Raw returns the amount as its raw integer, for use in explicit
// cross-denomination scaled computations.
func (a Amount[U]) Raw() uint64 { return uint64(a) }

// Add returns a+b. It panics on overflow; balances in this system stay
// far below the 64-bit range, so an overflow is an invariant violation.
func (a Amount[U]) Add(b Amount[U]) Amount[U] {
	sum := a + b
	if sum < a {
		panic("amount: addition overflow")
	}
	return sum
}

// Sub returns a-b. It panics if b exceeds a: amounts are non-negative
// at every observable state, so an underflow is an invariant violation
// and must never wrap silently.
func (a Amount[U]) Sub(b Amount[U]) Amount[U] {
	if b > a {
		panic("amount: subtraction underflow")
	}
	return a - b
}

// Raw returns the price as its raw integer.
func (p Price) Raw() uint64 { return uint64(p) }

// Raw returns the fee rate as its raw integer.
func (f Fee) Raw() uint64 { return uint64(f) }
