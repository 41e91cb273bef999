package storage

import "stakeSwap/internal/model"

// MultiJournal fans appends out to several journals. The first failure
// aborts the append; earlier sinks may already have the batch, which
// replay tolerates through idempotent writes.
type MultiJournal []Journal

func (m MultiJournal) Append(records []model.OpRecord) error {
	for _, journal := range m {
		if err := journal.Append(records); err != nil {
			return err
		}
	}
	return nil
}
