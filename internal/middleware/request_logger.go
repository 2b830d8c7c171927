package middleware

import (
	"time"

	"workshoppro/internal/logging"

	"github.com/labstack/echo/v4"
)

// RequestLogger tags the request context with echo's request id and writes
// one access log line per request.
func RequestLogger(logger *logging.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = req.Header.Get(echo.HeaderXRequestID)
			}
			if requestID != "" {
				c.SetRequest(req.WithContext(logger.WithRequestID(req.Context(), requestID)))
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.LogRequest(c.Request().Context(), req.Method, req.RequestURI, c.Response().Status, time.Since(start), err)
			return nil
		}
	}
}
