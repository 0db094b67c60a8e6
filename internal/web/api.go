package web

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/kapu/celestia-ai-go/internal/domain"
	"github.com/kapu/celestia-ai-go/pkg/errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON body of every non-2xx API reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// connectionChecker is implemented by session stores that live on another server.
type connectionChecker interface {
	IsConnected(ctx context.Context) bool
}

func (h *Handler) Healthz(c echo.Context) error {
	if checker, ok := h.store.(connectionChecker); ok && !checker.IsConnected(c.Request().Context()) {
		h.logger.Warn("Health check failed, session store unreachable")
		return c.String(http.StatusServiceUnavailable, "UNAVAILABLE")
	}
	return c.String(http.StatusOK, "OK")
}

// CreateReading is the stateless JSON twin of SubmitReading.
func (h *Handler) CreateReading(c echo.Context) error {
	var details domain.BirthDetails
	if err := c.Bind(&details); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := details.Validate(); err != nil {
		return h.mapError(c, err)
	}

	reading, err := h.oracle.Reading(c.Request().Context(), details)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, reading)
}

func (h *Handler) mapError(c echo.Context, err error) error {
	var validation *errors.ValidationError

	switch {
	case stderrors.As(err, &validation):
		return c.JSON(validation.StatusCode, ErrorResponse{Error: validation.Message, Field: validation.Field})
	case stderrors.Is(err, errors.ErrReadingUnavailable):
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: errors.ErrReadingUnavailable.Error()})
	default:
		h.logger.Error("Internal error",
			zap.String("request_id", requestID(c)),
			zap.Error(err))
		return c.JSON(errors.StatusCode(err), ErrorResponse{Error: "internal error"})
	}
}
