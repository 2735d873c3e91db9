// Package contentrepo persists banners, CMS entries and promotions.
package contentrepo

import (
	"time"

	"hyperlocal/internal/core/domain/model/content"

	"github.com/google/uuid"
)

type BannerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	ImageURL  string    `gorm:"type:varchar(512);not null"`
	Link      string    `gorm:"type:varchar(512)"`
	Position  int       `gorm:"not null;index"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
}

func (BannerDTO) TableName() string {
	return "banners"
}

type CMSEntryDTO struct {
	Key       string    `gorm:"type:varchar(64);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (CMSEntryDTO) TableName() string {
	return "cms_entries"
}

type PromotionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	PromoType string    `gorm:"type:varchar(64);not null"`
	Config    string    `gorm:"type:text;not null"`
	IsActive  bool      `gorm:"not null;default:true;index"`
	CreatedAt time.Time `gorm:"not null"`
}

func (PromotionDTO) TableName() string {
	return "promotions"
}

func bannerFromDomain(b *content.Banner) BannerDTO {
	return BannerDTO{
		ID:        b.ID.Bytes(),
		Title:     b.Title,
		ImageURL:  b.ImageURL,
		Link:      b.Link,
		Position:  b.Position,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
	}
}

func cmsFromDomain(e *content.CMSEntry) CMSEntryDTO {
	return CMSEntryDTO{Key: e.Key, Value: string(e.Value), UpdatedAt: e.UpdatedAt}
}

func promotionFromDomain(p *content.Promotion) PromotionDTO {
	return PromotionDTO{
		ID:        p.ID.Bytes(),
		Name:      p.Name,
		PromoType: p.PromoType,
		Config:    string(p.Config),
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
	}
}
