package http

import (
	"net/http"

	"hyperlocal/internal/core/application/usecases/commands"
	"hyperlocal/internal/core/application/usecases/queries"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/generated/servers"
	"hyperlocal/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetDashboardStats handles GET /api/dashboard/stats for the caller's active role.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	u, err := currentUser(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDashboardQuery(u.ID, u.ActiveRole)
	if err != nil {
		return err
	}
	stats, err := s.queries.GetDashboard.Handle(requestContext(ctx), query)
	if err != nil {
		return err
	}

	out, err := toDashboard(stats)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, out)
}

// ListSettlements handles GET /api/settlements.
func (s *Server) ListSettlements(ctx echo.Context) error {
	u, err := currentUser(ctx)
	if err != nil {
		return err
	}

	views, err := s.listSettlements(ctx, u)
	if err != nil {
		return err
	}

	out := make([]servers.Settlement, 0, len(views))
	for _, v := range views {
		out = append(out, toSettlement(v))
	}
	return ctx.JSON(http.StatusOK, out)
}

// RequestSettlement handles POST /api/settlements/request.
func (s *Server) RequestSettlement(ctx echo.Context) error {
	u, err := currentUser(ctx)
	if err != nil {
		return err
	}
	var req servers.SettlementRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	amount, err := kernel.MoneyFromFloat(req.Amount)
	if err != nil {
		return err
	}
	settlementID := kernel.NewUUID()
	cmd, err := commands.NewRequestSettlementCommand(settlementID, u.ID, amount)
	if err != nil {
		return err
	}
	if err = s.commands.RequestSettlement.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	return s.respondSettlement(ctx, http.StatusCreated, u, settlementID)
}

// SettleSettlement handles PUT /api/settlements/{id}/settle. Admin only.
func (s *Server) SettleSettlement(ctx echo.Context, id openapi_types.UUID) error {
	u, err := currentUser(ctx)
	if err != nil {
		return err
	}
	settlementID, err := kernelID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSettleCommand(settlementID, u.ID, u.ActiveRole)
	if err != nil {
		return err
	}
	if err = s.commands.Settle.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	return s.respondSettlement(ctx, http.StatusOK, u, settlementID)
}

func (s *Server) listSettlements(ctx echo.Context, u queries.UserView) ([]queries.SettlementView, error) {
	query, err := queries.NewListSettlementsQuery(u.ID, u.ActiveRole)
	if err != nil {
		return nil, err
	}
	return s.queries.ListSettlements.Handle(requestContext(ctx), query)
}

func (s *Server) respondSettlement(ctx echo.Context, status int, u queries.UserView, settlementID kernel.UUID) error {
	views, err := s.listSettlements(ctx, u)
	if err != nil {
		return err
	}
	for _, v := range views {
		if v.ID.IsEqual(settlementID) {
			return ctx.JSON(status, toSettlement(v))
		}
	}
	return errs.NewObjectNotFoundError("settlement", settlementID)
}
