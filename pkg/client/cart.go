package client

import (
	"context"
	"net/http"

	"hyperlocal/internal/generated/servers"

	"github.com/google/uuid"
)

func (c *Client) GetCart(ctx context.Context) (Cart, error) {
	var out Cart
	err := c.get(ctx, "/cart", nil, &out)
	return out, err
}

// AddToCart adds a line; a line for another store replaces the cart.
func (c *Client) AddToCart(ctx context.Context, req AddCartItemRequest) (Cart, error) {
	return c.mutateCart(ctx, http.MethodPost, "/cart/add", req)
}

// UpdateCartItem sets a line's quantity; zero or less removes it.
func (c *Client) UpdateCartItem(ctx context.Context, itemID uuid.UUID, quantity int) (Cart, error) {
	return c.mutateCart(ctx, http.MethodPut, "/cart/update",
		servers.UpdateCartItemRequest{ItemId: itemID, Quantity: quantity})
}

func (c *Client) ClearCart(ctx context.Context) (Cart, error) {
	return c.mutateCart(ctx, http.MethodDelete, "/cart/clear", nil)
}

func (c *Client) SetCartDistance(ctx context.Context, km float64) (Cart, error) {
	return c.mutateCart(ctx, http.MethodPut, "/cart/distance", servers.SetDistanceRequest{DistanceKm: km})
}

func (c *Client) mutateCart(ctx context.Context, method, path string, body any) (Cart, error) {
	var mutated Cart
	if err := c.mutate(ctx, method, path, body, &mutated); err != nil {
		return Cart{}, err
	}
	fresh, err := c.GetCart(ctx)
	if err != nil {
		return mutated, &RefetchError{Resource: "cart", Err: err}
	}
	return fresh, nil
}
