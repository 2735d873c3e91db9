package http

import (
	"net/http"

	"hyperlocal/internal/core/application/usecases/commands"
	"hyperlocal/internal/core/application/usecases/queries"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetCart handles GET /api/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	u, err := currentUser(ctx)
	if err != nil {
		return err
	}
	return s.respondCart(ctx, u.ID)
}

// AddCartItem handles POST /api/cart/add. Adding from another store starts a new cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	u, err := currentUser(ctx)
	if err != nil {
		return err
	}
	var req servers.AddCartItemRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	productID, err := kernelID(req.ProductId)
	if err != nil {
		return err
	}
	variantID, err := kernelID(req.VariantId)
	if err != nil {
		return err
	}
	sizeID, err := optionalKernelID(req.SizeId)
	if err != nil {
		return err
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	cmd, err := commands.NewAddCartItemCommand(u.ID, productID, variantID, sizeID, quantity)
	if err != nil {
		return err
	}
	if err = s.commands.AddCartItem.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	return s.respondCart(ctx, u.ID)
}

// UpdateCartItem handles PUT /api/cart/update. Quantity 0 removes the line.
func (s *Server) UpdateCartItem(ctx echo.Context) error {
	u, err := currentUser(ctx)
	if err != nil {
		return err
	}
	var req servers.UpdateCartItemRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	lineID, err := kernelID(req.ItemId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateCartItemCommand(u.ID, lineID, req.Quantity)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateCartItem.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	return s.respondCart(ctx, u.ID)
}

// ClearCart handles DELETE /api/cart/clear.
func (s *Server) ClearCart(ctx echo.Context) error {
	u, err := currentUser(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewClearCartCommand(u.ID)
	if err != nil {
		return err
	}
	if err = s.commands.ClearCart.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	return s.respondCart(ctx, u.ID)
}

// SetCartDistance handles PUT /api/cart/distance.
func (s *Server) SetCartDistance(ctx echo.Context) error {
	u, err := currentUser(ctx)
	if err != nil {
		return err
	}
	var req servers.SetDistanceRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetCartDistanceCommand(u.ID, req.DistanceKm)
	if err != nil {
		return err
	}
	if err = s.commands.SetCartDistance.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	return s.respondCart(ctx, u.ID)
}

func (s *Server) respondCart(ctx echo.Context, userID kernel.UUID) error {
	query, err := queries.NewGetCartQuery(userID)
	if err != nil {
		return err
	}
	summary, err := s.queries.GetCart.Handle(requestContext(ctx), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toCart(summary))
}
