package http

import (
	"errors"
	"log/slog"
	"net/http"

	"freight/internal/core/domain/model/operator"
	"freight/internal/generated/servers"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps a use case error onto an HTTP status code.
func statusOf(err error) int {
	switch {
	case errors.Is(err, operator.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// problem writes err as an Error body. Internal failures are logged and
// reported without detail.
func problem(ctx echo.Context, err error) error {
	code := statusOf(err)
	body := servers.Error{Code: code, Message: err.Error()}

	switch code {
	case http.StatusInternalServerError:
		slog.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		body.Message = http.StatusText(code)
	case http.StatusUnauthorized:
		body.Message = "invalid email or password"
	case http.StatusBadRequest:
		if field := errs.ParamName(err); field != "" {
			body.Field = &field
		}
	}

	return ctx.JSON(code, body)
}

// ErrorHandler renders errors that escape the handlers, such as binding and
// routing failures, with the same body as use case errors.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		_ = problem(ctx, err)
		return
	}

	body := servers.Error{Code: httpErr.Code, Message: http.StatusText(httpErr.Code)}
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		body.Message = msg
	}
	if httpErr.Code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(httpErr.Code)
		return
	}
	_ = ctx.JSON(httpErr.Code, body)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
