package middlewares

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/l3montree-dev/threadline/monitoring"
	"github.com/l3montree-dev/threadline/shared"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

func registerMiddlewares(e *echo.Echo) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(logger())
	e.Use(recovermiddleware())
	e.HTTPErrorHandler = errorHandler(e)
}

func recovermiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) (returnErr error) {
			defer func() {
				if r := recover(); r != nil {
					if r == http.ErrAbortHandler {
						panic(r)
					}
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}
					stack := make([]byte, 4<<10) // 4 KB
					length := runtime.Stack(stack, false)
					monitoring.RecoverAndAlert("recovered from panic in request handler", err)
					slog.Error("stack trace", "stack", string(stack[:length]))
					returnErr = echo.NewHTTPError(http.StatusInternalServerError).WithInternal(err)
				}
			}()
			return next(ctx)
		}
	}
}

// StatusCodeOf maps an error returned by a service to a response status.
// Errors without a kind are internal server errors.
func StatusCodeOf(err error) int {
	var pErr *shared.PipelineError
	if !errors.As(err, &pErr) {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return http.StatusNotFound
		}
		return http.StatusInternalServerError
	}
	switch pErr.Kind {
	case shared.ErrorKindValidation:
		return http.StatusBadRequest
	case shared.ErrorKindNotFound:
		return http.StatusNotFound
	case shared.ErrorKindAuth:
		return http.StatusUnauthorized
	case shared.ErrorKindRouting, shared.ErrorKindMapping, shared.ErrorKindFatal:
		return http.StatusUnprocessableEntity
	case shared.ErrorKindTransient:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		// do the logging straight inside the error handler
		// this keeps controller methods clean
		slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)

		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var message any = echo.Map{"message": http.StatusText(code)}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			switch m := he.Message.(type) {
			case string:
				message = echo.Map{"message": m}
			case error:
				message = echo.Map{"message": m.Error()}
			default:
				message = m
			}
		} else {
			code = StatusCodeOf(err)
			if code != http.StatusInternalServerError || e.Debug {
				message = echo.Map{"message": err.Error(), "kind": shared.KindOf(err)}
			}
		}

		// Send response
		if ctx.Request().Method == http.MethodHead { // Issue #608
			if err := ctx.NoContent(code); err != nil {
				slog.Error("could not send error response", "error", err)
			}
			return
		}
		if err := ctx.JSON(code, message); err != nil {
			slog.Error("could not send error response", "error", err)
		}
	}
}

func Server() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e)
	return e
}
