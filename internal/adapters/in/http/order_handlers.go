package http

import (
	"net/http"

	"hyperlocal/internal/core/application/usecases/commands"
	"hyperlocal/internal/core/application/usecases/queries"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/order"
	"hyperlocal/internal/generated/servers"
	"hyperlocal/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const otpQRSize = 256

// Checkout handles POST /api/orders. The new order is returned with its delivery code.
func (s *Server) Checkout(ctx echo.Context) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return err
	}
	var req servers.CheckoutRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(orderID, actor.ID, req.DeliveryAddress, req.Lat, req.Lng, req.DistanceKm)
	if err != nil {
		return err
	}
	if err = s.commands.Checkout.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	return s.respondOrder(ctx, http.StatusCreated, actor, orderID)
}

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return err
	}

	var status *order.Status
	if params.Status != nil && *params.Status != "" {
		st, err := order.ParseStatus(*params.Status)
		if err != nil {
			return err
		}
		status = &st
	}

	query, err := queries.NewListOrdersQuery(actor, status)
	if err != nil {
		return err
	}
	views, err := s.queries.ListOrders.Handle(requestContext(ctx), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrders(views))
}

// ListAvailableOrders handles GET /api/orders/available.
func (s *Server) ListAvailableOrders(ctx echo.Context) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListAvailableOrdersQuery(actor)
	if err != nil {
		return err
	}
	views, err := s.queries.ListAvailableOrders.Handle(requestContext(ctx), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrders(views))
}

// GetOrder handles GET /api/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	actor, orderID, err := orderRequest(ctx, id)
	if err != nil {
		return err
	}
	return s.respondOrder(ctx, http.StatusOK, actor, orderID)
}

// UpdateOrderStatus handles PUT /api/orders/{id}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id openapi_types.UUID) error {
	actor, orderID, err := orderRequest(ctx, id)
	if err != nil {
		return err
	}
	var req servers.StatusUpdateRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, actor, req.Status)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateOrderStatus.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	return s.respondOrder(ctx, http.StatusOK, actor, orderID)
}

// AcceptOrder handles PUT /api/orders/{id}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, id openapi_types.UUID) error {
	actor, orderID, err := orderRequest(ctx, id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, actor)
	if err != nil {
		return err
	}
	if err = s.commands.AcceptOrder.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	return s.respondOrder(ctx, http.StatusOK, actor, orderID)
}

// AssignOrder handles PUT /api/orders/{id}/assign: the calling agent claims the order.
func (s *Server) AssignOrder(ctx echo.Context, id openapi_types.UUID) error {
	actor, orderID, err := orderRequest(ctx, id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, actor)
	if err != nil {
		return err
	}
	if err = s.commands.ClaimOrder.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	return s.respondOrder(ctx, http.StatusOK, actor, orderID)
}

// VerifyOrderOTP handles PUT /api/orders/{id}/verify-otp.
func (s *Server) VerifyOrderOTP(ctx echo.Context, id openapi_types.UUID) error {
	actor, orderID, err := orderRequest(ctx, id)
	if err != nil {
		return err
	}
	var req servers.VerifyOTPRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewVerifyOTPCommand(orderID, actor, req.Otp)
	if err != nil {
		return err
	}
	if err = s.commands.VerifyOTP.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	return s.respondOrder(ctx, http.StatusOK, actor, orderID)
}

// GetOrderHistory handles GET /api/orders/{id}/history.
func (s *Server) GetOrderHistory(ctx echo.Context, id openapi_types.UUID) error {
	actor, orderID, err := orderRequest(ctx, id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderHistoryQuery(actor, orderID)
	if err != nil {
		return err
	}
	entries, err := s.queries.GetOrderHistory.Handle(requestContext(ctx), query)
	if err != nil {
		return err
	}

	out := make([]servers.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, servers.HistoryEntry{
			From:      e.From,
			To:        e.To,
			ActorId:   e.ActorID.Bytes(),
			ActorName: e.ActorName,
			ActorRole: e.ActorRole,
			ChangedAt: e.ChangedAt,
		})
	}
	return ctx.JSON(http.StatusOK, out)
}

// GetOrderOTPQR handles GET /api/orders/{id}/otp-qr. Only the customer sees the code.
func (s *Server) GetOrderOTPQR(ctx echo.Context, id openapi_types.UUID) error {
	actor, orderID, err := orderRequest(ctx, id)
	if err != nil {
		return err
	}

	view, err := s.loadOrder(ctx, actor, orderID)
	if err != nil {
		return err
	}
	if view.OTP == "" {
		return errs.NewForbiddenError("view delivery code")
	}

	png, err := s.qr.PNG(view.OTP, otpQRSize)
	if err != nil {
		return err
	}
	return ctx.Blob(http.StatusOK, "image/png", png)
}

func orderRequest(ctx echo.Context, id openapi_types.UUID) (order.Actor, kernel.UUID, error) {
	actor, err := currentActor(ctx)
	if err != nil {
		return order.Actor{}, kernel.UUID{}, err
	}
	orderID, err := kernelID(id)
	if err != nil {
		return order.Actor{}, kernel.UUID{}, err
	}
	return actor, orderID, nil
}

func (s *Server) loadOrder(ctx echo.Context, actor order.Actor, orderID kernel.UUID) (queries.OrderView, error) {
	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return queries.OrderView{}, err
	}
	return s.queries.GetOrder.Handle(requestContext(ctx), query)
}

func (s *Server) respondOrder(ctx echo.Context, status int, actor order.Actor, orderID kernel.UUID) error {
	view, err := s.loadOrder(ctx, actor, orderID)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toOrder(view))
}
