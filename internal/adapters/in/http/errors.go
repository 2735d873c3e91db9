package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"hyperlocal/internal/core/application/usecases/queries"
	"hyperlocal/internal/core/domain/model/order"
	"hyperlocal/internal/core/domain/model/settlement"
	"hyperlocal/internal/generated/servers"
	"hyperlocal/internal/pkg/errs"
	"hyperlocal/internal/pkg/logging"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorResponse maps an error to its status and body. Anything unrecognised is internal and
// its text is not exposed.
func ErrorResponse(err error) (int, servers.Error) {
	var (
		httpErr *echo.HTTPError
		verrs   validator.ValidationErrors
	)

	switch {
	case errors.As(err, &httpErr):
		return fromHTTPError(httpErr)
	case errors.As(err, &verrs):
		return body(http.StatusBadRequest, servers.CodeValidationError, describe(verrs))
	case errors.Is(err, ErrUnauthorized), errors.Is(err, queries.ErrInvalidCredentials):
		return body(http.StatusUnauthorized, servers.CodeUnauthorized, err.Error())
	case errors.Is(err, order.ErrAlreadyAssigned):
		return body(http.StatusConflict, servers.CodeAlreadyAssigned, err.Error())
	case errors.Is(err, order.ErrInvalidTransition):
		return body(http.StatusConflict, servers.CodeInvalidTransition, err.Error())
	case errors.Is(err, order.ErrInvalidOTP):
		return body(http.StatusUnprocessableEntity, servers.CodeInvalidOTP, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return body(http.StatusForbidden, servers.CodeForbidden, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return body(http.StatusNotFound, servers.CodeNotFound, err.Error())
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, settlement.ErrAlreadySettled):
		return body(http.StatusConflict, servers.CodeConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return body(http.StatusBadRequest, servers.CodeValidationError, err.Error())
	default:
		return body(http.StatusInternalServerError, servers.CodeInternal, "internal server error")
	}
}

func fromHTTPError(he *echo.HTTPError) (int, servers.Error) {
	msg := fmt.Sprint(he.Message)
	switch {
	case he.Code == http.StatusUnauthorized:
		return body(he.Code, servers.CodeUnauthorized, msg)
	case he.Code == http.StatusForbidden:
		return body(he.Code, servers.CodeForbidden, msg)
	case he.Code == http.StatusNotFound, he.Code == http.StatusMethodNotAllowed:
		return body(he.Code, servers.CodeNotFound, msg)
	case he.Code >= http.StatusInternalServerError:
		return body(he.Code, servers.CodeInternal, msg)
	default:
		return body(he.Code, servers.CodeValidationError, msg)
	}
}

func body(status int, code, message string) (int, servers.Error) {
	return status, servers.Error{Code: code, Error: http.StatusText(status), Message: message}
}

// NewErrorHandler renders every handler error through ErrorResponse.
func NewErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, payload := ErrorResponse(err)
		if status >= http.StatusInternalServerError {
			logging.FromContext(c.Request().Context()).Error("request failed",
				slog.String("error", err.Error()),
				slog.String("path", c.Request().URL.Path),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, payload)
	}
}
