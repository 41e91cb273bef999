package model

// PoolState is a snapshot of a pool's reserves and immutable
// parameters, in raw fixed-point units.
type PoolState struct {
	Price           uint64 `json:"price"`
	TokenReserve    uint64 `json:"token_reserve"`
	StakedReserve   uint64 `json:"staked_reserve"`
	LpSupply        uint64 `json:"lp_supply"`
	LiquidityTarget uint64 `json:"liquidity_target"`
	MinFee          uint64 `json:"min_fee"`
	MaxFee          uint64 `json:"max_fee"`
}
