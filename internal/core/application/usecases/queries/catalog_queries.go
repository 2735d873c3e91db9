package queries

import (
	"errors"
	"strings"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/guard"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New("ListProductsQuery must be created via NewListProductsQuery")
	ErrGetProductQueryIsNotConstructed   = errors.New("GetProductQuery must be created via NewGetProductQuery")
	ErrListStoresQueryIsNotConstructed   = errors.New("ListStoresQuery must be created via NewListStoresQuery")
	ErrGetStoreQueryIsNotConstructed     = errors.New("GetStoreQuery must be created via NewGetStoreQuery")
	ErrSearchQueryIsNotConstructed       = errors.New("SearchQuery must be created via NewSearchQuery")
)

// ListProductsQuery filters the catalogue. Every filter is optional.
type ListProductsQuery struct {
	storeID  *kernel.UUID
	search   string
	baseType string

	guard guard.ConstructorGuard
}

func NewListProductsQuery(storeID *kernel.UUID, search, baseType string) ListProductsQuery {
	return ListProductsQuery{
		storeID:  storeID,
		search:   strings.TrimSpace(search),
		baseType: strings.TrimSpace(baseType),
		guard:    guard.NewConstructorGuard(),
	}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

func (q ListProductsQuery) StoreID() *kernel.UUID { return q.storeID }
func (q ListProductsQuery) Search() string { return q.search }
func (q ListProductsQuery) BaseType() string { return q.baseType }

type GetProductQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, err
	}
	return GetProductQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

type ListStoresQuery struct {
	search string

	guard guard.ConstructorGuard
}

func NewListStoresQuery(search string) ListStoresQuery {
	return ListStoresQuery{search: strings.TrimSpace(search), guard: guard.NewConstructorGuard()}
}

func (q ListStoresQuery) Validate() error {
	return q.guard.Validate(ErrListStoresQueryIsNotConstructed)
}

type GetStoreQuery struct {
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetStoreQuery(storeID kernel.UUID) (GetStoreQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetStoreQuery{}, err
	}
	return GetStoreQuery{storeID: storeID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStoreQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreQueryIsNotConstructed)
}

// StoreDetail is a store with its catalogue.
type StoreDetail struct {
	Store    StoreView
	Products []ProductView
}

// SearchQuery matches stores by name and products by name or description. An empty term
// matches nothing.
type SearchQuery struct {
	term string

	guard guard.ConstructorGuard
}

func NewSearchQuery(term string) SearchQuery {
	return SearchQuery{term: strings.TrimSpace(term), guard: guard.NewConstructorGuard()}
}

func (q SearchQuery) Validate() error {
	return q.guard.Validate(ErrSearchQueryIsNotConstructed)
}

type SearchResult struct {
	Stores   []StoreView
	Products []ProductView
}
