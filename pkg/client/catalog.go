package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// ProductFilter narrows ListProducts; zero fields are ignored.
type ProductFilter struct {
	StoreID  uuid.UUID
	Search   string
	BaseType string
}

func (f ProductFilter) values() url.Values {
	q := url.Values{}
	if f.StoreID != uuid.Nil {
		q.Set("store_id", f.StoreID.String())
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.BaseType != "" {
		q.Set("base_type", f.BaseType)
	}
	return q
}

func (c *Client) ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error) {
	var out []Product
	if err := c.get(ctx, "/products", filter.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id uuid.UUID) (Product, error) {
	path, err := idPath("/products/%s", id)
	if err != nil {
		return Product{}, err
	}
	var p Product
	err = c.get(ctx, path, nil, &p)
	return p, err
}

func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (Product, error) {
	var created Product
	if err := c.mutate(ctx, http.MethodPost, "/products", req, &created); err != nil {
		return Product{}, err
	}
	p, err := c.GetProduct(ctx, created.Id)
	if err != nil {
		return created, &RefetchError{Resource: "product", Err: err}
	}
	return p, nil
}

func (c *Client) ListStores(ctx context.Context, search string) ([]Store, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	var out []Store
	if err := c.get(ctx, "/stores", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetStore(ctx context.Context, id uuid.UUID) (StoreDetail, error) {
	path, err := idPath("/stores/%s", id)
	if err != nil {
		return StoreDetail{}, err
	}
	var s StoreDetail
	err = c.get(ctx, path, nil, &s)
	return s, err
}

func (c *Client) CreateStore(ctx context.Context, req CreateStoreRequest) (StoreDetail, error) {
	var created StoreDetail
	if err := c.mutate(ctx, http.MethodPost, "/stores", req, &created); err != nil {
		return StoreDetail{}, err
	}
	return c.refetchStore(ctx, created)
}

func (c *Client) UpdateStore(ctx context.Context, id uuid.UUID, req UpdateStoreRequest) (StoreDetail, error) {
	path, err := idPath("/stores/%s", id)
	if err != nil {
		return StoreDetail{}, err
	}
	var updated StoreDetail
	if err := c.mutate(ctx, http.MethodPut, path, req, &updated); err != nil {
		return StoreDetail{}, err
	}
	return c.refetchStore(ctx, updated)
}

func (c *Client) refetchStore(ctx context.Context, fallback StoreDetail) (StoreDetail, error) {
	s, err := c.GetStore(ctx, fallback.Id)
	if err != nil {
		return fallback, &RefetchError{Resource: "store", Err: err}
	}
	return s, nil
}

func (c *Client) Search(ctx context.Context, q string) (SearchResult, error) {
	var out SearchResult
	err := c.get(ctx, "/search", url.Values{"q": {q}}, &out)
	return out, err
}
