package handler

import (
	"net/http"

	"github.com/Astemirdum/shelfshare/web/config"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Astemirdum/shelfshare/web/internal/view"
)

const flashSession = "shelfshare_flash"

func newFlashStore(cfg config.Flash) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// flash queues a toast for the next rendered page, surviving a redirect.
func (h *Handler) flash(c echo.Context, kind view.ToastKind, text string) {
	s, err := h.flashes.Get(c.Request(), flashSession)
	if err != nil {
		h.log.Debug("flash session reset", zap.Error(err))
	}
	s.AddFlash(text, string(kind))
	if err := s.Save(c.Request(), c.Response()); err != nil {
		h.log.Warn("flash save", zap.Error(err))
	}
}

func (h *Handler) popFlashes(c echo.Context) []view.Toast {
	s, err := h.flashes.Get(c.Request(), flashSession)
	if err != nil {
		return nil
	}
	var toasts []view.Toast
	for _, kind := range []view.ToastKind{view.ToastSuccess, view.ToastError} {
		for _, f := range s.Flashes(string(kind)) {
			if text, ok := f.(string); ok {
				toasts = append(toasts, view.Toast{Kind: kind, Text: text})
			}
		}
	}
	if len(toasts) > 0 {
		if err := s.Save(c.Request(), c.Response()); err != nil {
			h.log.Warn("flash save", zap.Error(err))
		}
	}
	return toasts
}
