package contentrepo

import (
	"context"

	"hyperlocal/internal/core/domain/model/content"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormContentRepository implements ports.ContentRepository using GORM.
type GormContentRepository struct {
	db *gorm.DB
}

func NewGormContentRepository(db *gorm.DB) *GormContentRepository {
	return &GormContentRepository{db: db}
}

func (r *GormContentRepository) AddBanner(ctx context.Context, banner *content.Banner) error {
	dto := bannerFromDomain(banner)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpsertCMS replaces the value stored under the entry's key.
func (r *GormContentRepository) UpsertCMS(ctx context.Context, entry *content.CMSEntry) error {
	dto := cmsFromDomain(entry)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&dto).Error
}

func (r *GormContentRepository) AddPromotion(ctx context.Context, promotion *content.Promotion) error {
	dto := promotionFromDomain(promotion)
	return r.db.WithContext(ctx).Create(&dto).Error
}
