package amount

import "testing"

func TestAddAndSub(t *testing.T) {
	a := TokenAmount(1_500_000)
	b := TokenAmount(500_000)

	if got := a.Add(b); got != 2_000_000 {
		t.Fatalf("add: got %d, want 2000000", got)
	}
	if got := a.Sub(b); got != 1_000_000 {
		t.Fatalf("sub: got %d, want 1000000", got)
	}
	if got := a.Sub(a); got != 0 {
		t.Fatalf("sub to zero: got %d", got)
	}
}

func TestSubUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on underflow")
		}
	}()
	LpTokenAmount(1).Sub(LpTokenAmount(2))
}

func TestAddOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on overflow")
		}
	}()
	StakedTokenAmount(1 << 63).Add(StakedTokenAmount(1 << 63))
}

func TestRaw(t *testing.T) {
	if got := TokenAmount(42).Raw(); got != 42 {
		t.Fatalf("token raw: %d", got)
	}
	if got := Price(1_500_000).Raw(); got != 1_500_000 {
		t.Fatalf("price raw: %d", got)
	}
	if got := Fee(90_000).Raw(); got != 90_000 {
		t.Fatalf("fee raw: %d", got)
	}
}
