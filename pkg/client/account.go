package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"hyperlocal/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Dashboard returns the statistics for the active role.
func (c *Client) Dashboard(ctx context.Context) (Dashboard, error) {
	var raw servers.DashboardStats
	if err := c.get(ctx, "/dashboard/stats", nil, &raw); err != nil {
		return Dashboard{}, err
	}
	return decodeDashboard(raw)
}

func (c *Client) ListSettlements(ctx context.Context) ([]Settlement, error) {
	var out []Settlement
	if err := c.get(ctx, "/settlements", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RequestSettlement(ctx context.Context, amount float64) (Settlement, error) {
	var created Settlement
	if err := c.mutate(ctx, http.MethodPost, "/settlements/request", servers.SettlementRequest{Amount: amount}, &created); err != nil {
		return Settlement{}, err
	}
	return c.refetchSettlement(ctx, created)
}

// Settle marks a pending settlement paid. Admin only.
func (c *Client) Settle(ctx context.Context, id uuid.UUID) (Settlement, error) {
	path, err := idPath("/settlements/%s/settle", id)
	if err != nil {
		return Settlement{}, err
	}
	var settled Settlement
	if err := c.mutate(ctx, http.MethodPut, path, nil, &settled); err != nil {
		return Settlement{}, err
	}
	if settled.Id == uuid.Nil {
		settled.Id = id
	}
	return c.refetchSettlement(ctx, settled)
}

func (c *Client) refetchSettlement(ctx context.Context, fallback Settlement) (Settlement, error) {
	list, err := c.ListSettlements(ctx)
	if err != nil {
		return fallback, &RefetchError{Resource: "settlement", Err: err}
	}
	for _, s := range list {
		if s.Id == fallback.Id {
			return s, nil
		}
	}
	return fallback, &RefetchError{
		Resource: "settlement",
		Err:      errors.Wrap(ErrNotFound, fmt.Sprintf("settlement %s missing from list", fallback.Id)),
	}
}

func (c *Client) ListBanners(ctx context.Context) ([]Banner, error) {
	var out []Banner
	if err := c.get(ctx, "/banners", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBanner(ctx context.Context, req CreateBannerRequest) (Banner, error) {
	var created Banner
	if err := c.mutate(ctx, http.MethodPost, "/banners", req, &created); err != nil {
		return Banner{}, err
	}
	list, err := c.ListBanners(ctx)
	if err != nil {
		return created, &RefetchError{Resource: "banner", Err: err}
	}
	for _, b := range list {
		if b.Id == created.Id {
			return b, nil
		}
	}
	return created, nil
}

// CMS returns every content entry keyed by name.
func (c *Client) CMS(ctx context.Context) (map[string]json.RawMessage, error) {
	out := map[string]json.RawMessage{}
	if err := c.get(ctx, "/cms", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertCMS stores value under key and returns the entry as read back.
func (c *Client) UpsertCMS(ctx context.Context, key string, value any) (json.RawMessage, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrap(err, "encode cms value")
	}
	path, err := cmsPath(key)
	if err != nil {
		return nil, err
	}
	if err := c.mutate(ctx, http.MethodPut, path, servers.UpsertCMSRequest{Value: raw}, nil); err != nil {
		return nil, err
	}
	all, err := c.CMS(ctx)
	if err != nil {
		return raw, &RefetchError{Resource: "cms", Err: err}
	}
	return all[key], nil
}

func (c *Client) ListPromotions(ctx context.Context) ([]Promotion, error) {
	var out []Promotion
	if err := c.get(ctx, "/promotions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
