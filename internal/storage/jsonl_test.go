package storage

import (
	"path/filepath"
	"reflect"
	"testing"

	"stakeSwap/internal/model"
)

func TestJsonlJournalRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	journal := NewJsonlJournal(path)

	records := []model.OpRecord{
		{
			Seq: 0,
			Op:  model.OpInit,
			State: model.PoolState{
				Price:           1_500_000,
				LiquidityTarget: 90_000_000,
				MinFee:          1_000,
				MaxFee:          90_000,
			},
			AppliedAt: "2024-01-01T00:00:00Z",
		},
		{
			Seq:      1,
			Op:       model.OpAddLiquidity,
			AmountIn: 100_000_000_000,
			LpMinted: 100_000_000_000,
			State: model.PoolState{
				Price:           1_500_000,
				TokenReserve:    100_000_000_000,
				LpSupply:        100_000_000_000,
				LiquidityTarget: 90_000_000,
				MinFee:          1_000,
				MaxFee:          90_000,
			},
			AppliedAt: "2024-01-01T00:00:01Z",
		},
	}

	if err := journal.Append(records[:1]); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := journal.Append(records[1:]); err != nil {
		t.Fatalf("second append: %v", err)
	}

	got, err := ReadJournal(path)
	if err != nil {
		t.Fatalf("read journal: %v", err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Fatalf("round-trip mismatch: %+v != %+v", got, records)
	}
}

func TestReadJournalMissingFile(t *testing.T) {
	if _, err := ReadJournal(filepath.Join(t.TempDir(), "absent.jsonl")); err == nil {
		t.Fatalf("expected error for missing journal")
	}
}
