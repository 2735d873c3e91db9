package ports

import (
	"context"

	"hyperlocal/internal/core/domain/model/catalog"
	"hyperlocal/internal/core/domain/model/kernel"
)

// ProductSearchIndex is an optional full-text index over products.
type ProductSearchIndex interface {
	Index(ctx context.Context, product *catalog.Product) error
	// Search returns ids of matching products, best match first.
	Search(ctx context.Context, query string, limit int) ([]kernel.UUID, error)
}

// QRRenderer renders content as a PNG QR code of size x size pixels.
type QRRenderer interface {
	PNG(content string, size int) ([]byte, error)
}
