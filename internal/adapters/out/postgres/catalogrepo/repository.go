package catalogrepo

import (
	"context"
	"errors"

	"hyperlocal/internal/core/domain/model/catalog"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormStoreRepository implements ports.StoreRepository using GORM.
type GormStoreRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormStoreRepository(db *gorm.DB, tracker aggregateTracker) *GormStoreRepository {
	return &GormStoreRepository{db: db, tracker: tracker}
}

func (r *GormStoreRepository) Add(ctx context.Context, aggregate *catalog.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := storeFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormStoreRepository) Update(ctx context.Context, aggregate *catalog.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := storeFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&StoreDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "is_open", "working_hours").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("store", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormStoreRepository) IncrementOrders(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&StoreDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("total_orders", gorm.Expr("total_orders + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("store", id.String())
	}
	return nil
}

func (r *GormStoreRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StoreDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("store", id.String())
		}
		return nil, err
	}

	return StoreToDomain(dto)
}

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{db: db, tracker: tracker}
}

// Add inserts the product, its variants and their sizes.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *catalog.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := PreloadVariants(r.db.WithContext(ctx)).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return ProductToDomain(dto)
}

func (r *GormProductRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if err := PreloadVariants(r.db.WithContext(ctx)).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	products := make([]*catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := ProductToDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// PreloadVariants loads variants and sizes in their declared order.
func PreloadVariants(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Variants", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		Preload("Variants.Sizes", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") })
}
