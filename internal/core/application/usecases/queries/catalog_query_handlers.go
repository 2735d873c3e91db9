package queries

import (
	"context"

	"hyperlocal/internal/core/ports"
	"hyperlocal/internal/pkg/errs"
	"hyperlocal/internal/pkg/logging"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListProductsQueryHandler reads the catalogue. When a search index is configured, free-text
// matches come from the index and keep its ranking; otherwise names and descriptions are
// matched with LIKE.
type ListProductsQueryHandler struct {
	db    *gorm.DB
	index ports.ProductSearchIndex
}

// NewListProductsQueryHandler accepts a nil index.
func NewListProductsQueryHandler(db *gorm.DB, index ports.ProductSearchIndex) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db, index: index}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).Table("products").Select(productColumns)
	if id := query.StoreID(); id != nil {
		stmt = stmt.Where("store_id = ?", id.Bytes())
	}
	if query.BaseType() != "" {
		stmt = stmt.Where("base_type = ?", query.BaseType())
	}

	var ranked []uuid.UUID
	if term := query.Search(); term != "" {
		hits, ok := searchIndex(ctx, h.index, term, defaultListLimit)
		if ok {
			if len(hits) == 0 {
				return []ProductView{}, nil
			}
			ranked = hits
			stmt = stmt.Where("id IN ?", hits)
		} else {
			p := likePattern(term)
			stmt = stmt.Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", p, p)
		}
	}

	var rows []productRow
	if err := stmt.Order("created_at DESC").Limit(defaultListLimit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if ranked != nil {
		rows = rankRows(rows, ranked)
	}

	return productViews(ctx, h.db, rows)
}

// searchIndex asks the index for matches. ok is false when there is no index or it failed, in
// which case the caller falls back to SQL.
func searchIndex(ctx context.Context, index ports.ProductSearchIndex, term string, limit int) ([]uuid.UUID, bool) {
	if index == nil {
		return nil, false
	}
	ids, err := index.Search(ctx, term, limit)
	if err != nil {
		logging.FromContext(ctx).Warn("product search index failed, falling back to sql", "error", err)
		return nil, false
	}
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return raw, true
}

func rankRows(rows []productRow, ranked []uuid.UUID) []productRow {
	byID := make(map[uuid.UUID]productRow, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}
	out := make([]productRow, 0, len(rows))
	for _, id := range ranked {
		if r, ok := byID[id]; ok {
			out = append(out, r)
		}
	}
	return out
}

type GetProductQueryHandler struct {
	db *gorm.DB
}

func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductView, error) {
	if err := query.Validate(); err != nil {
		return ProductView{}, err
	}

	var rows []productRow
	err := h.db.WithContext(ctx).Raw(`SELECT `+productColumns+` FROM products WHERE id = ?`, query.productID.Bytes()).
		Scan(&rows).Error
	if err != nil {
		return ProductView{}, err
	}
	if len(rows) == 0 {
		return ProductView{}, errs.NewObjectNotFoundError("product", query.productID.String())
	}

	views, err := productViews(ctx, h.db, rows)
	if err != nil {
		return ProductView{}, err
	}
	return views[0], nil
}

type ListStoresQueryHandler struct {
	db *gorm.DB
}

func NewListStoresQueryHandler(db *gorm.DB) ListStoresQueryHandler {
	return ListStoresQueryHandler{db: db}
}

func (h ListStoresQueryHandler) Handle(ctx context.Context, query ListStoresQuery) ([]StoreView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return findStores(ctx, h.db, query.search, defaultListLimit)
}

func findStores(ctx context.Context, db *gorm.DB, term string, limit int) ([]StoreView, error) {
	stmt := db.WithContext(ctx).Table("stores").Select(storeColumns)
	if term != "" {
		stmt = stmt.Where("LOWER(name) LIKE ?", likePattern(term))
	}

	var rows []storeRow
	if err := stmt.Order("name").Limit(limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return storeViews(rows)
}

type GetStoreQueryHandler struct {
	db *gorm.DB
}

func NewGetStoreQueryHandler(db *gorm.DB) GetStoreQueryHandler {
	return GetStoreQueryHandler{db: db}
}

// Handle returns the store and every product it sells.
func (h GetStoreQueryHandler) Handle(ctx context.Context, query GetStoreQuery) (StoreDetail, error) {
	if err := query.Validate(); err != nil {
		return StoreDetail{}, err
	}

	var stores []storeRow
	err := h.db.WithContext(ctx).Raw(`SELECT `+storeColumns+` FROM stores WHERE id = ?`, query.storeID.Bytes()).
		Scan(&stores).Error
	if err != nil {
		return StoreDetail{}, err
	}
	if len(stores) == 0 {
		return StoreDetail{}, errs.NewObjectNotFoundError("store", query.storeID.String())
	}
	store, err := stores[0].view()
	if err != nil {
		return StoreDetail{}, err
	}

	var rows []productRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT `+productColumns+`
		FROM products
		WHERE store_id = ?
		ORDER BY created_at, name
	`, query.storeID.Bytes()).Scan(&rows).Error
	if err != nil {
		return StoreDetail{}, err
	}

	products, err := productViews(ctx, h.db, rows)
	if err != nil {
		return StoreDetail{}, err
	}
	return StoreDetail{Store: store, Products: products}, nil
}

type SearchQueryHandler struct {
	db    *gorm.DB
	index ports.ProductSearchIndex
}

func NewSearchQueryHandler(db *gorm.DB, index ports.ProductSearchIndex) SearchQueryHandler {
	return SearchQueryHandler{db: db, index: index}
}

func (h SearchQueryHandler) Handle(ctx context.Context, query SearchQuery) (SearchResult, error) {
	if err := query.Validate(); err != nil {
		return SearchResult{}, err
	}
	if query.term == "" {
		return SearchResult{Stores: []StoreView{}, Products: []ProductView{}}, nil
	}

	stores, err := findStores(ctx, h.db, query.term, defaultSearchLimit)
	if err != nil {
		return SearchResult{}, err
	}

	stmt := h.db.WithContext(ctx).Table("products").Select(productColumns)
	hits, indexed := searchIndex(ctx, h.index, query.term, defaultSearchLimit)
	switch {
	case indexed && len(hits) == 0:
		return SearchResult{Stores: stores, Products: []ProductView{}}, nil
	case indexed:
		stmt = stmt.Where("id IN ?", hits)
	default:
		p := likePattern(query.term)
		stmt = stmt.Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", p, p).Order("name")
	}

	var rows []productRow
	if err := stmt.Limit(defaultSearchLimit).Scan(&rows).Error; err != nil {
		return SearchResult{}, err
	}
	if indexed {
		rows = rankRows(rows, hits)
	}

	products, err := productViews(ctx, h.db, rows)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Stores: stores, Products: products}, nil
}

