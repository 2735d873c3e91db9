package ports

import (
	"context"

	"hyperlocal/internal/core/domain/model/content"
)

type ContentRepository interface {
	AddBanner(ctx context.Context, banner *content.Banner) error
	UpsertCMS(ctx context.Context, entry *content.CMSEntry) error
	AddPromotion(ctx context.Context, promotion *content.Promotion) error
}
