package ports

import (
	"context"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/settlement"
)

type SettlementRepository interface {
	Add(ctx context.Context, aggregate *settlement.Settlement) error
	// Update only moves a pending row; a row that is no longer pending yields
	// settlement.ErrAlreadySettled.
	Update(ctx context.Context, aggregate *settlement.Settlement) error
	Get(ctx context.Context, id kernel.UUID) (*settlement.Settlement, error)
}
