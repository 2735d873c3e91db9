package queries

import (
	"context"
	"encoding/json"
	"time"

	"hyperlocal/internal/core/domain/model/content"
	"hyperlocal/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Content reads take no parameters, so they have no query structs.

type ListBannersQueryHandler struct {
	db *gorm.DB
}

func NewListBannersQueryHandler(db *gorm.DB) ListBannersQueryHandler {
	return ListBannersQueryHandler{db: db}
}

// Handle returns active banners ordered by position.
func (h ListBannersQueryHandler) Handle(ctx context.Context) ([]content.Banner, error) {
	var rows []struct {
		ID        uuid.UUID
		Title     string
		ImageURL  string
		Link      string
		Position  int
		IsActive  bool
		CreatedAt time.Time
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, title, image_url, link, position, is_active, created_at
		FROM banners
		WHERE is_active = ?
		ORDER BY position, created_at
	`, true).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]content.Banner, 0, len(rows))
	for _, r := range rows {
		id, err := kernel.UUIDFromBytes(r.ID[:])
		if err != nil {
			return nil, err
		}
		out = append(out, content.Banner{
			ID:        id,
			Title:     r.Title,
			ImageURL:  r.ImageURL,
			Link:      r.Link,
			Position:  r.Position,
			IsActive:  r.IsActive,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

type GetCMSQueryHandler struct {
	db *gorm.DB
}

func NewGetCMSQueryHandler(db *gorm.DB) GetCMSQueryHandler {
	return GetCMSQueryHandler{db: db}
}

// Handle returns every CMS entry keyed by its key.
func (h GetCMSQueryHandler) Handle(ctx context.Context) (map[string]json.RawMessage, error) {
	var rows []struct {
		Key   string
		Value string
	}
	if err := h.db.WithContext(ctx).Raw(`SELECT key, value FROM cms_entries ORDER BY key`).Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]json.RawMessage, len(rows))
	for _, r := range rows {
		out[r.Key] = json.RawMessage(r.Value)
	}
	return out, nil
}

type ListPromotionsQueryHandler struct {
	db *gorm.DB
}

func NewListPromotionsQueryHandler(db *gorm.DB) ListPromotionsQueryHandler {
	return ListPromotionsQueryHandler{db: db}
}

// Handle returns the active promotions, oldest first.
func (h ListPromotionsQueryHandler) Handle(ctx context.Context) ([]content.Promotion, error) {
	var rows []struct {
		ID        uuid.UUID
		Name      string
		PromoType string
		Config    string
		IsActive  bool
		CreatedAt time.Time
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, promo_type, config, is_active, created_at
		FROM promotions
		WHERE is_active = ?
		ORDER BY created_at
	`, true).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]content.Promotion, 0, len(rows))
	for _, r := range rows {
		id, err := kernel.UUIDFromBytes(r.ID[:])
		if err != nil {
			return nil, err
		}
		out = append(out, content.Promotion{
			ID:        id,
			Name:      r.Name,
			PromoType: r.PromoType,
			Config:    json.RawMessage(r.Config),
			IsActive:  r.IsActive,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}
