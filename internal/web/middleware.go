package web

import (
	"time"

	"github.com/google/uuid"
	"github.com/kapu/celestia-ai-go/internal/constants"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestIDMiddleware ensures every request carries an X-Request-Id.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(constants.HTTPConfig.HeaderID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(constants.HTTPConfig.HeaderID, id)
			c.Set(constants.HTTPConfig.RequestIDKey, id)
			return next(c)
		}
	}
}

// LoggingMiddleware logs each request with structured fields.
func LoggingMiddleware(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			logger.Info("Request",
				zap.String("request_id", requestID(c)),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Int64("latency_ms", time.Since(start).Milliseconds()),
			)
			return nil
		}
	}
}

func requestID(c echo.Context) string {
	id, _ := c.Get(constants.HTTPConfig.RequestIDKey).(string)
	return id
}
