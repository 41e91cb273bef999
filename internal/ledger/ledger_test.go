package ledger

import (
	"errors"
	"testing"

	"stakeSwap/internal/amount"
	"stakeSwap/internal/model"
)

type memJournal struct {
	records []model.OpRecord
	failing bool
}

func (m *memJournal) Append(records []model.OpRecord) error {
	if m.failing {
		return errors.New("sink unavailable")
	}
	m.records = append(m.records, records...)
	return nil
}

func newTestLedger(t *testing.T, journal *memJournal) *Ledger {
	t.Helper()
	led, err := New(
		amount.Price(1_500_000),
		amount.Fee(1_000),
		amount.Fee(90_000),
		amount.TokenAmount(90_000_000),
		journal,
		nil,
	)
	if err != nil {
		t.Fatalf("new ledger: %v", err)
	}
	return led
}

func TestLedgerJournalsOperations(t *testing.T) {
	journal := &memJournal{}
	led := newTestLedger(t, journal)

	minted, err := led.AddLiquidity(100_000_000_000)
	if err != nil {
		t.Fatalf("add liquidity: %v", err)
	}
	if minted != 100_000_000_000 {
		t.Fatalf("minted %d", minted)
	}

	net, err := led.Swap(6_000_000)
	if err != nil {
		t.Fatalf("swap: %v", err)
	}
	if net != 8_991_000 {
		t.Fatalf("net %d", net)
	}

	if led.Seq() != 2 {
		t.Fatalf("seq %d, want 2", led.Seq())
	}
	if len(journal.records) != 3 {
		t.Fatalf("journal has %d records, want 3", len(journal.records))
	}
	if journal.records[0].Op != model.OpInit || journal.records[0].Seq != 0 {
		t.Fatalf("first record: %+v", journal.records[0])
	}
	if journal.records[2].Op != model.OpSwap || journal.records[2].TokenOut != 8_991_000 {
		t.Fatalf("swap record: %+v", journal.records[2])
	}

	state := led.State()
	if state.TokenReserve != 99_991_000_000 || state.StakedReserve != 6_000_000 {
		t.Fatalf("state: %+v", state)
	}
	if journal.records[2].State != state {
		t.Fatalf("journaled state diverges: %+v != %+v", journal.records[2].State, state)
	}
}

func TestLedgerRejectedOpNotJournaled(t *testing.T) {
	journal := &memJournal{}
	led := newTestLedger(t, journal)

	if _, err := led.AddLiquidity(10_000_000); err != nil {
		t.Fatalf("add liquidity: %v", err)
	}
	if _, err := led.Swap(10_000_000); err == nil {
		t.Fatalf("expected insufficient liquidity")
	}

	if led.Seq() != 1 {
		t.Fatalf("seq %d, want 1", led.Seq())
	}
	if len(journal.records) != 2 {
		t.Fatalf("journal has %d records, want 2", len(journal.records))
	}
}

func TestLedgerJournalFailureLeavesStateUnchanged(t *testing.T) {
	journal := &memJournal{}
	led := newTestLedger(t, journal)

	before := led.State()
	journal.failing = true

	if _, err := led.AddLiquidity(1_000_000); err == nil {
		t.Fatalf("expected journal error")
	}
	if led.Seq() != 0 {
		t.Fatalf("seq advanced to %d on failed journal write", led.Seq())
	}
	if led.State() != before {
		t.Fatalf("state changed on failed journal write")
	}
}

func TestReplayRebuildsState(t *testing.T) {
	journal := &memJournal{}
	led := newTestLedger(t, journal)

	if _, err := led.AddLiquidity(100_000_000_000); err != nil {
		t.Fatalf("add liquidity: %v", err)
	}
	if _, err := led.Swap(6_000_000); err != nil {
		t.Fatalf("swap: %v", err)
	}
	if _, err := led.AddLiquidity(10_000_000_000); err != nil {
		t.Fatalf("second add: %v", err)
	}
	if _, err := led.Swap(30_000_000); err != nil {
		t.Fatalf("second swap: %v", err)
	}

	p, lastSeq, err := Replay(journal.records, nil)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if lastSeq != led.Seq() {
		t.Fatalf("replayed to seq %d, ledger at %d", lastSeq, led.Seq())
	}
	if StateOf(p) != led.State() {
		t.Fatalf("replayed state %+v != ledger state %+v", StateOf(p), led.State())
	}
}

func TestReplayDetectsTampering(t *testing.T) {
	journal := &memJournal{}
	led := newTestLedger(t, journal)

	if _, err := led.AddLiquidity(100_000_000_000); err != nil {
		t.Fatalf("add liquidity: %v", err)
	}
	if _, err := led.Swap(6_000_000); err != nil {
		t.Fatalf("swap: %v", err)
	}

	tampered := make([]model.OpRecord, len(journal.records))
	copy(tampered, journal.records)
	tampered[2].TokenOut++

	if _, _, err := Replay(tampered, nil); err == nil {
		t.Fatalf("expected replay to reject tampered output")
	}
}

func TestReplayInvalidJournals(t *testing.T) {
	if _, _, err := Replay(nil, nil); err == nil {
		t.Fatalf("expected error for empty journal")
	}

	records := []model.OpRecord{{Op: model.OpSwap, Seq: 0}}
	if _, _, err := Replay(records, nil); err == nil {
		t.Fatalf("expected error for journal without init")
	}

	journal := &memJournal{}
	led := newTestLedger(t, journal)
	if _, err := led.AddLiquidity(1_000_000); err != nil {
		t.Fatalf("add liquidity: %v", err)
	}
	gapped := []model.OpRecord{journal.records[0], journal.records[1]}
	gapped[1].Seq = 5
	if _, _, err := Replay(gapped, nil); err == nil {
		t.Fatalf("expected error for sequence gap")
	}
}
