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

// CookieConfig controls the session cookie written for every visitor.
type CookieConfig struct {
	Secure bool
	TTL    time.Duration
}

// sessionID returns the visitor's session id, issuing a new cookie when the
// request carries none or one we could not have minted.
func (h *Handler) sessionID(c echo.Context) string {
	if cookie, err := c.Cookie(constants.SessionConfig.CookieName); err == nil && session.ValidID(cookie.Value) {
		return cookie.Value
	}

	id := session.NewID()
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionConfig.CookieName,
		Value:    id,
		Path:     constants.SessionConfig.CookiePath,
		MaxAge:   int(h.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (h *Handler) loadState(ctx context.Context, id string) *domain.ViewState {
	state, err := h.store.Load(ctx, id)
	if err != nil || state == nil {
		if err != nil {
			h.logger.Warn("Failed to load session, starting fresh",
				zap.String("session_id", id),
				zap.Error(err))
		}
		return domain.NewViewState()
	}
	if state.Stale(time.Now(), h.loadingTimeout) {
		h.logger.Warn("Abandoned reading found, returning to form",
			zap.String("session_id", id),
			zap.Time("loading_since", state.UpdatedAt))
		state.Reset()
	}
	return state
}

func (h *Handler) saveState(ctx context.Context, id string, state *domain.ViewState) {
	if err := h.store.Save(ctx, id, state); err != nil {
		h.logger.Error("Failed to save session",
			zap.String("session_id", id),
			zap.String("status", string(state.Status)),
			zap.Error(err))
	}
}
