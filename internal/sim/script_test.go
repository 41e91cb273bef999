package sim

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"stakeSwap/internal/pool"
)

func TestParseScript(t *testing.T) {
	input := `{"op":"add_liquidity","amount":100000000000}

{"op":"swap","amount":6000000}
{"op":"remove_liquidity","amount":1}
`
	got, err := ParseScript(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Step{
		{Op: "add_liquidity", Amount: 100_000_000_000},
		{Op: "swap", Amount: 6_000_000},
		{Op: "remove_liquidity", Amount: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("steps mismatch: %+v != %+v", got, want)
	}
}

func TestParseScriptUnknownOp(t *testing.T) {
	if _, err := ParseScript(strings.NewReader(`{"op":"stake","amount":1}`)); err == nil {
		t.Fatalf("expected error for unknown op")
	}
}

func TestParseScriptNegativeAmount(t *testing.T) {
	_, err := ParseScript(strings.NewReader(`{"op":"swap","amount":-5}`))
	if !errors.Is(err, pool.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestParseScriptMalformedLine(t *testing.T) {
	if _, err := ParseScript(strings.NewReader(`{"op":`)); err == nil {
		t.Fatalf("expected error for malformed line")
	}
}
