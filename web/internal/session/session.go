// Package session keeps the signed-in user for the lifetime of one request.
package session

import (
	"context"

	"github.com/Astemirdum/shelfshare/web/internal/model"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Session struct {
	User *model.User
}

func (s Session) Authenticated() bool {
	return s.User != nil
}

// UserID is empty for the anonymous session.
func (s Session) UserID() string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}

func (s Session) IsOwner() bool {
	return s.User != nil && s.User.Role == model.RoleOwner
}

type ctxKey struct{}

type ProfileLoader interface {
	Profile(ctx context.Context) (model.User, int, error)
}

func From(c echo.Context) Session {
	s, _ := c.Request().Context().Value(ctxKey{}).(Session)
	return s
}

func Set(c echo.Context, u model.User) {
	put(c, Session{User: &u})
}

func Clear(c echo.Context) {
	put(c, Session{})
}

func put(c echo.Context, s Session) {
	r := c.Request()
	c.SetRequest(r.WithContext(context.WithValue(r.Context(), ctxKey{}, s)))
}

// Middleware hydrates the session once per request when the session cookie is present.
// A failed profile fetch leaves the request anonymous.
func Middleware(log *zap.Logger, loader ProfileLoader, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			Clear(c)
			if ck, err := c.Cookie(cookieName); err == nil && ck.Value != "" {
				u, code, err := loader.Profile(c.Request().Context())
				if err != nil {
					log.Debug("session hydrate", zap.Int("code", code), zap.Error(err))
				} else {
					Set(c, u)
				}
			}
			return next(c)
		}
	}
}
