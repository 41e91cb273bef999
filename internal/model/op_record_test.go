package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestOpRecordJSONRoundTrip(t *testing.T) {
	original := OpRecord{
		Seq:      3,
		Op:       OpSwap,
		AmountIn: 6_000_000,
		TokenOut: 8_991_000,
		State: PoolState{
			Price:           1_500_000,
			TokenReserve:    99_991_000_000,
			StakedReserve:   6_000_000,
			LpSupply:        100_000_000_000,
			LiquidityTarget: 90_000_000,
			MinFee:          1_000,
			MaxFee:          90_000,
		},
		AppliedAt: "2024-01-01T00:00:00Z",
	}

	b, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded OpRecord
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round-trip mismatch: %+v != %+v", original, decoded)
	}
}
