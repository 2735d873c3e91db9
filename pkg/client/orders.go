package client

import (
	"context"
	"net/http"
	"net/url"

	"hyperlocal/internal/generated/servers"

	"github.com/google/uuid"
)

// Checkout places an order from the cart. The returned order carries the delivery OTP.
func (c *Client) Checkout(ctx context.Context, req CheckoutRequest) (Order, error) {
	var placed Order
	if err := c.mutate(ctx, http.MethodPost, "/orders", req, &placed); err != nil {
		return Order{}, err
	}
	return c.refetchOrder(ctx, placed)
}

// ListOrders returns the orders visible to the active role; an empty status means all.
func (c *Client) ListOrders(ctx context.Context, status string) ([]Order, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	var out []Order
	if err := c.get(ctx, "/orders", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAvailableOrders lists unclaimed orders ready for pickup. Agents only.
func (c *Client) ListAvailableOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.get(ctx, "/orders/available", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrder(ctx context.Context, id uuid.UUID) (Order, error) {
	path, err := idPath("/orders/%s", id)
	if err != nil {
		return Order{}, err
	}
	var o Order
	err = c.get(ctx, path, nil, &o)
	return o, err
}

func (c *Client) GetOrderHistory(ctx context.Context, id uuid.UUID) ([]HistoryEntry, error) {
	path, err := idPath("/orders/%s/history", id)
	if err != nil {
		return nil, err
	}
	var out []HistoryEntry
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOrderOTPQR returns the delivery code as a PNG. Only the ordering customer may fetch it.
func (c *Client) GetOrderOTPQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	path, err := idPath("/orders/%s/otp-qr", id)
	if err != nil {
		return nil, err
	}
	var png []byte
	err = c.get(ctx, path, nil, &png)
	return png, err
}

// UpdateOrderStatus requests a move to status. The server decides whether it is legal.
func (c *Client) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (Order, error) {
	return c.orderAction(ctx, id, "/orders/%s/status", servers.StatusUpdateRequest{Status: status})
}

func (c *Client) AcceptOrder(ctx context.Context, id uuid.UUID) (Order, error) {
	return c.orderAction(ctx, id, "/orders/%s/accept", nil)
}

// ClaimOrder assigns the order to the calling agent. Losing a race yields ErrAlreadyAssigned;
// the call is never repeated automatically.
func (c *Client) ClaimOrder(ctx context.Context, id uuid.UUID) (Order, error) {
	return c.orderAction(ctx, id, "/orders/%s/assign", nil)
}

// VerifyOTP completes delivery when otp matches; a mismatch yields ErrInvalidOTP.
func (c *Client) VerifyOTP(ctx context.Context, id uuid.UUID, otp string) (Order, error) {
	return c.orderAction(ctx, id, "/orders/%s/verify-otp", servers.VerifyOTPRequest{Otp: otp})
}

func (c *Client) orderAction(ctx context.Context, id uuid.UUID, format string, body any) (Order, error) {
	path, err := idPath(format, id)
	if err != nil {
		return Order{}, err
	}
	var mutated Order
	if err := c.mutate(ctx, http.MethodPut, path, body, &mutated); err != nil {
		return Order{}, err
	}
	if mutated.Id == uuid.Nil {
		mutated.Id = id
	}
	return c.refetchOrder(ctx, mutated)
}

func (c *Client) refetchOrder(ctx context.Context, fallback Order) (Order, error) {
	o, err := c.GetOrder(ctx, fallback.Id)
	if err != nil {
		return fallback, &RefetchError{Resource: "order", Err: err}
	}
	return o, nil
}
