package http

import (
	"net/http"

	"hyperlocal/internal/core/application/usecases/commands"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/generated/servers"
	"hyperlocal/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListBanners handles GET /api/banners.
func (s *Server) ListBanners(ctx echo.Context) error {
	banners, err := s.queries.ListBanners.Handle(requestContext(ctx))
	if err != nil {
		return err
	}

	out := make([]servers.Banner, 0, len(banners))
	for _, b := range banners {
		out = append(out, toBanner(b))
	}
	return ctx.JSON(http.StatusOK, out)
}

// CreateBanner handles POST /api/banners.
func (s *Server) CreateBanner(ctx echo.Context) error {
	u, err := currentUser(ctx)
	if err != nil {
		return err
	}
	var req servers.CreateBannerRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	bannerID := kernel.NewUUID()
	cmd, err := commands.NewCreateBannerCommand(bannerID, u.ActiveRole, req.Title, req.ImageUrl, req.Link, req.Position)
	if err != nil {
		return err
	}
	if err = s.commands.CreateBanner.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	banners, err := s.queries.ListBanners.Handle(requestContext(ctx))
	if err != nil {
		return err
	}
	for _, b := range banners {
		if b.ID.IsEqual(bannerID) {
			return ctx.JSON(http.StatusCreated, toBanner(b))
		}
	}
	return errs.NewObjectNotFoundError("banner", bannerID)
}

// GetCMS handles GET /api/cms.
func (s *Server) GetCMS(ctx echo.Context) error {
	entries, err := s.queries.GetCMS.Handle(requestContext(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, entries)
}

// UpsertCMS handles PUT /api/cms/{key}.
func (s *Server) UpsertCMS(ctx echo.Context, key string) error {
	u, err := currentUser(ctx)
	if err != nil {
		return err
	}
	var req servers.UpsertCMSRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpsertCMSCommand(u.ActiveRole, key, req.Value)
	if err != nil {
		return err
	}
	if err = s.commands.UpsertCMS.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: "CMS updated"})
}

// ListPromotions handles GET /api/promotions.
func (s *Server) ListPromotions(ctx echo.Context) error {
	promotions, err := s.queries.ListPromotions.Handle(requestContext(ctx))
	if err != nil {
		return err
	}

	out := make([]servers.Promotion, 0, len(promotions))
	for _, p := range promotions {
		out = append(out, servers.Promotion{
			Id:        p.ID.Bytes(),
			Name:      p.Name,
			PromoType: p.PromoType,
			Config:    p.Config,
			IsActive:  p.IsActive,
		})
	}
	return ctx.JSON(http.StatusOK, out)
}
