package storage

import "stakeSwap/internal/model"

// Journal defines a sink for applied operation records.
type Journal interface {
	Append(records []model.OpRecord) error
}
