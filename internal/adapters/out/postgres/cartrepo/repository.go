package cartrepo

import (
	"context"
	"errors"
	"time"

	"hyperlocal/internal/core/domain/model/cart"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{db: db, tracker: tracker}
}

func (r *GormCartRepository) Get(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		First(&dto, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save upserts the cart row and replaces its lines.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	lines := dto.Lines
	dto.Lines = nil

	db := r.db.WithContext(ctx)
	err := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"store_id", "distance_km", "updated_at"}),
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	if err := db.Where("cart_user_id = ?", dto.UserID).Delete(&LineDTO{}).Error; err != nil {
		return err
	}
	if len(lines) > 0 {
		if err := db.Create(&lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.UserID(), aggregate)
	return nil
}

// DeleteStale removes carts untouched since before and reports how many were removed.
func (r *GormCartRepository) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	db := r.db.WithContext(ctx)

	stale := db.Model(&CartDTO{}).Select("user_id").Where("updated_at < ?", before)
	if err := db.Where("cart_user_id IN (?)", stale).Delete(&LineDTO{}).Error; err != nil {
		return 0, err
	}

	result := db.Where("updated_at < ?", before).Delete(&CartDTO{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
