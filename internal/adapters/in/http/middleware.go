package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hyperlocal/internal/core/application/usecases/queries"
	"hyperlocal/internal/core/domain/model/order"
	"hyperlocal/internal/core/ports"
	"hyperlocal/internal/pkg/errs"
	"hyperlocal/internal/pkg/logging"

	"github.com/labstack/echo/v4"
)

const currentUserKey = "current_user"

// ErrUnauthorized marks requests without a usable bearer token.
var ErrUnauthorized = errors.New("authentication required")

// RequestLogger puts a request-scoped logger into the request context and logs one line per
// request. Errors are rendered here so the logged status is the one sent.
func RequestLogger(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			l := base.With(
				"method", c.Request().Method,
				"path", c.Path(),
				"url", c.Request().URL.Path,
				"remote_ip", c.RealIP(),
			)
			if rid != "" {
				l = l.With("request_id", rid)
			}
			c.SetRequest(c.Request().WithContext(logging.IntoContext(c.Request().Context(), l)))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			dur := time.Since(start)
			status := c.Response().Status

			switch {
			case status >= 500:
				l.Error("request completed", "status", status, "duration_ms", dur.Milliseconds(), "error", errString(err))
			case status >= 400:
				l.Warn("request completed", "status", status, "duration_ms", dur.Milliseconds(), "error", errString(err))
			default:
				l.Info("request completed", "status", status, "duration_ms", dur.Milliseconds(), "bytes", c.Response().Size)
			}
			return nil
		}
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Authenticate resolves a bearer token to the stored user, so role and online state always
// come from storage. Requests without a token continue anonymously; a bad token is rejected.
func Authenticate(tokens ports.TokenVerifier, users queries.GetCurrentUserQueryHandler) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			scheme, token, ok := strings.Cut(header, " ")
			token = strings.TrimSpace(token)
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				return fmt.Errorf("%w: malformed authorization header", ErrUnauthorized)
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrUnauthorized, err)
			}

			query, err := queries.NewGetCurrentUserQuery(userID)
			if err != nil {
				return err
			}
			ctx := c.Request().Context()
			u, err := users.Handle(ctx, query)
			if errors.Is(err, errs.ErrObjectNotFound) {
				return fmt.Errorf("%w: account no longer exists", ErrUnauthorized)
			}
			if err != nil {
				return err
			}

			c.Set(currentUserKey, u)
			l := logging.FromContext(ctx).With("user_id", u.ID.String(), "role", u.ActiveRole.String())
			c.SetRequest(c.Request().WithContext(logging.IntoContext(ctx, l)))
			return next(c)
		}
	}
}

func currentUser(c echo.Context) (queries.UserView, error) {
	u, ok := c.Get(currentUserKey).(queries.UserView)
	if !ok {
		return queries.UserView{}, ErrUnauthorized
	}
	return u, nil
}

func currentActor(c echo.Context) (order.Actor, error) {
	u, err := currentUser(c)
	if err != nil {
		return order.Actor{}, err
	}
	return order.NewActor(u.ID, u.ActiveRole, u.IsOnline), nil
}

func requestContext(c echo.Context) context.Context {
	return c.Request().Context()
}

// bindBody decodes and validates a JSON body.
func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return err
	}
	return c.Validate(dst)
}
