package web

import (
	"net/http"

	"github.com/kapu/celestia-ai-go/internal/constants"
	"github.com/labstack/echo/v4"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

// NewServer builds the echo instance with every route registered. The caller
// owns Start and Shutdown.
func NewServer(cfg ServerConfig, handler *Handler, logger *zap.Logger) (*echo.Echo, error) {
	renderer, err := NewTemplateRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	e.Server.Addr = cfg.Addr
	e.Server.ReadHeaderTimeout = constants.HTTPConfig.ReadHeaderTimeout
	e.Server.WriteTimeout = constants.HTTPConfig.WriteTimeout

	e.Use(RequestIDMiddleware())
	e.Use(LoggingMiddleware(logger))

	handler.Register(e, cfg.AllowedOrigins)
	return e, nil
}

func (h *Handler) Register(e *echo.Echo, allowedOrigins []string) {
	e.GET("/healthz", h.Healthz)

	e.GET("/", h.Index)
	e.POST("/reading", h.SubmitReading)
	e.POST("/reset", h.Reset)

	api := e.Group("/api", echo.WrapMiddleware(newCORS(allowedOrigins).Handler))
	api.POST("/reading", h.CreateReading)
	api.OPTIONS("/reading", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
}

func newCORS(allowedOrigins []string) *cors.Cors {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", constants.HTTPConfig.HeaderID},
		ExposedHeaders: []string{constants.HTTPConfig.HeaderID},
	})
}
