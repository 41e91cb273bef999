package model

// Operation kinds recorded in the journal.
const (
	OpInit            = "init"
	OpAddLiquidity    = "add_liquidity"
	OpRemoveLiquidity = "remove_liquidity"
	OpSwap            = "swap"
)

// OpRecord is one applied pool operation with its inputs, outputs and
// the resulting pool state.
type OpRecord struct {
	Seq       uint64    `json:"seq"`
	Op        string    `json:"op"`
	AmountIn  uint64    `json:"amount_in,omitempty"`
	LpMinted  uint64    `json:"lp_minted,omitempty"`
	TokenOut  uint64    `json:"token_out,omitempty"`
	StakedOut uint64    `json:"staked_out,omitempty"`
	State     PoolState `json:"state"`
	AppliedAt string    `json:"applied_at"`
}
