package http

import (
	"log/slog"

	"hyperlocal/internal/core/application/usecases/queries"
	"hyperlocal/internal/core/ports"
	"hyperlocal/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// BaseURL prefixes every API route.
const BaseURL = "/api"

// RouterConfig tunes the outer middleware.
type RouterConfig struct {
	AllowOrigins []string
	BodyLimit    string
}

// NewRouter assembles the echo instance: middleware, health, swagger and the API routes.
func NewRouter(
	cfg RouterConfig,
	server *Server,
	tokens ports.TokenVerifier,
	users queries.GetCurrentUserQueryHandler,
	log *slog.Logger,
) (*echo.Echo, error) {
	if err := servers.RegisterSwagger(); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewErrorHandler()

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	limit := cfg.BodyLimit
	if limit == "" {
		limit = "1M"
	}

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: origins}))
	e.Use(middleware.BodyLimit(limit))
	e.Use(Authenticate(tokens, users))

	e.GET("/health", server.GetHealth)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	servers.RegisterHandlersWithBaseURL(e, server, BaseURL)

	return e, nil
}
