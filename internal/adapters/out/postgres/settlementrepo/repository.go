package settlementrepo

import (
	"context"
	"errors"
	"fmt"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/settlement"
	"hyperlocal/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormSettlementRepository implements ports.SettlementRepository using GORM.
type GormSettlementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormSettlementRepository(db *gorm.DB, tracker aggregateTracker) *GormSettlementRepository {
	return &GormSettlementRepository{db: db, tracker: tracker}
}

func (r *GormSettlementRepository) Add(ctx context.Context, aggregate *settlement.Settlement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update only moves rows that are still pending, so two admins cannot both settle one request.
func (r *GormSettlementRepository) Update(ctx context.Context, aggregate *settlement.Settlement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SettlementDTO{}).
		Where("id = ? AND status = ?", dto.ID, settlement.Pending.String()).
		Updates(map[string]any{
			"status":        dto.Status,
			"settled_at":    dto.SettledAt,
			"settled_by_id": dto.SettledByID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", settlement.ErrAlreadySettled, aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormSettlementRepository) Get(ctx context.Context, id kernel.UUID) (*settlement.Settlement, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SettlementDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("settlement", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
