package http

import (
	"net/http"

	"hyperlocal/internal/core/application/usecases/commands"
	"hyperlocal/internal/core/application/usecases/queries"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/user"
	"hyperlocal/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Message{Message: "healthy"})
}

// Register handles POST /api/auth/register and signs the new user in.
func (s *Server) Register(ctx echo.Context) error {
	var req servers.RegisterRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, req.Name, req.Email, req.Phone, req.Password, req.Roles, user.Profile{
		LicenseNo:    req.LicenseNo,
		VehicleNo:    req.VehicleNo,
		ShopName:     req.ShopName,
		ShopAddress:  req.ShopAddress,
		WorkingHours: req.WorkingHours,
		JoinWhatsapp: req.JoinWhatsapp,
	})
	if err != nil {
		return err
	}
	if err = s.commands.RegisterUser.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	token, expiresAt, err := s.tokens.Issue(userID)
	if err != nil {
		return err
	}
	view, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.AuthResponse{Token: token, ExpiresAt: expiresAt, User: toUser(view)})
}

// Login handles POST /api/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req servers.LoginRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	query, err := queries.NewLoginQuery(req.Email, req.Password)
	if err != nil {
		return err
	}
	res, err := s.queries.Login.Handle(requestContext(ctx), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.AuthResponse{Token: res.Token, ExpiresAt: res.ExpiresAt, User: toUser(res.User)})
}

// GetMe handles GET /api/auth/me.
func (s *Server) GetMe(ctx echo.Context) error {
	u, err := currentUser(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toUser(u))
}

// SwitchRole handles PUT /api/auth/switch-role.
func (s *Server) SwitchRole(ctx echo.Context) error {
	u, err := currentUser(ctx)
	if err != nil {
		return err
	}
	var req servers.SwitchRoleRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSwitchRoleCommand(u.ID, req.Role)
	if err != nil {
		return err
	}
	if err = s.commands.SwitchRole.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	return s.respondUser(ctx, u.ID)
}

// ToggleOnline handles PUT /api/auth/toggle-online.
func (s *Server) ToggleOnline(ctx echo.Context) error {
	u, err := currentUser(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewToggleOnlineCommand(u.ID)
	if err != nil {
		return err
	}
	online, err := s.commands.ToggleOnline.Handle(requestContext(ctx), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.ToggleOnlineResponse{IsOnline: online})
}

// UpdateProfile handles PUT /api/auth/profile.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	u, err := currentUser(ctx)
	if err != nil {
		return err
	}
	var req servers.ProfileUpdateRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProfileCommand(u.ID, user.ProfilePatch{
		Name:         req.Name,
		Phone:        req.Phone,
		ProfilePhoto: req.ProfilePhoto,
	})
	if err != nil {
		return err
	}
	if err = s.commands.UpdateProfile.Handle(requestContext(ctx), cmd); err != nil {
		return err
	}

	return s.respondUser(ctx, u.ID)
}

func (s *Server) loadUser(ctx echo.Context, userID kernel.UUID) (queries.UserView, error) {
	query, err := queries.NewGetCurrentUserQuery(userID)
	if err != nil {
		return queries.UserView{}, err
	}
	return s.queries.GetCurrentUser.Handle(requestContext(ctx), query)
}

func (s *Server) respondUser(ctx echo.Context, userID kernel.UUID) error {
	view, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toUser(view))
}
