package web

import (
	"context"
	"net/http"
	"time"

	"github.com/kapu/celestia-ai-go/internal/constants"
	"github.com/kapu/celestia-ai-go/internal/domain"
	"github.com/kapu/celestia-ai-go/internal/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const pageTemplate = "page"

// Handler serves the HTML form flow and the JSON API.
type Handler struct {
	oracle domain.Oracle
	store  session.Store
	cookie CookieConfig
	logger *zap.Logger
	// A loading state older than this outlived its request and is discarded.
	loadingTimeout time.Duration
}

func NewHandler(oracle domain.Oracle, store session.Store, cookie CookieConfig, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cookie.TTL <= 0 {
		cookie.TTL = session.DefaultTTL
	}
	return &Handler{
		oracle: oracle,
		store:  store,
		cookie: cookie,
		logger: logger,

		loadingTimeout: constants.HTTPConfig.WriteTimeout,
	}
}

// Index renders whichever view the visitor's stored state selects.
func (h *Handler) Index(c echo.Context) error {
	ctx := c.Request().Context()
	state := h.loadState(ctx, h.sessionID(c))
	return c.Render(http.StatusOK, pageTemplate, newPageView(state, c.QueryParam("tab")))
}

// SubmitReading runs one submission to completion and redirects back to the index.
func (h *Handler) SubmitReading(c echo.Context) error {
	ctx := c.Request().Context()
	id := h.sessionID(c)
	state := h.loadState(ctx, id)

	details := domain.BirthDetails{
		Date:    c.FormValue("date"),
		Time:    c.FormValue("time"),
		City:    c.FormValue("city"),
		Country: c.FormValue("country"),
	}

	if state.IsLoading() {
		h.logger.Info("Submission ignored, reading already in flight",
			zap.String("session_id", id))
		view := newPageView(state, "")
		view.Details = details
		return c.Render(http.StatusConflict, pageTemplate, view)
	}

	if err := details.Validate(); err != nil {
		view := newPageView(state, "")
		view.Details = details
		view.Notice = constants.Messages.MissingField
		return c.Render(http.StatusBadRequest, pageTemplate, view)
	}

	// Once loading is stored the submission runs to completion even if the client goes away.
	detached := context.WithoutCancel(ctx)
	state.Begin()
	h.saveState(detached, id, state)

	reading, err := h.oracle.Reading(detached, details)
	if err != nil {
		state.Fail(constants.Messages.ReadingUnavailable)
	} else {
		state.Succeed(reading)
	}
	h.saveState(detached, id, state)

	return c.Redirect(http.StatusSeeOther, "/")
}

// Reset returns the visitor to an empty form. It is also the way out of a
// loading view whose request is gone.
func (h *Handler) Reset(c echo.Context) error {
	id := h.sessionID(c)
	if err := h.store.Delete(c.Request().Context(), id); err != nil {
		h.logger.Error("Failed to clear session",
			zap.String("session_id", id),
			zap.Error(err))
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
