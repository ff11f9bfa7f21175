package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/tinyhouse/internal/middleware"
)

// setupErrorHandling installs the central HTTP error handler. Expected
// errors (echo.HTTPError) are answered with their status; anything else is
// logged with a stack trace and answered with 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := middleware.FromContext(c.Request().Context())

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
			if he.Internal != nil {
				logger.Warn("Request rejected", "event", "http_error", "status", code, "error", he.Internal)
			}
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				"event", "unhandled_error",
				"error", err.Error(),
				"method", c.Request().Method,
				"stack_trace", string(debug.Stack()),
			)
		}

		var respErr error
		if c.Request().Method == http.MethodHead {
			respErr = c.NoContent(code)
		} else {
			respErr = c.String(code, message)
		}
		if respErr != nil {
			logger.Error("Failed to write error response", "event", "error_response_failed", "error", respErr)
		}
	}
}
