package postgres

import (
	"context"

	"stakeSwap/internal/model"
)

// OpJournal adapts a Store to the storage.Journal interface for one
// named ledger.
type OpJournal struct {
	store *Store
	ctx   context.Context
	name  string
}

// Journal returns a journal sink writing to this store under the given
// ledger name. The context bounds every append issued through the
// sink.
func (s *Store) Journal(ctx context.Context, name string) *OpJournal {
	return &OpJournal{store: s, ctx: ctx, name: name}
}

func (j *OpJournal) Append(records []model.OpRecord) error {
	return j.store.AppendOps(j.ctx, j.name, records)
}
