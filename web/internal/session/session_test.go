package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Astemirdum/shelfshare/web/internal/errs"
	"github.com/Astemirdum/shelfshare/web/internal/model"
	"github.com/Astemirdum/shelfshare/web/internal/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type loaderFunc func(ctx context.Context) (model.User, int, error)

func (f loaderFunc) Profile(ctx context.Context) (model.User, int, error) { return f(ctx) }

func TestMiddleware(t *testing.T) {
	t.Parallel()
	ann := model.User{ID: "u1", Name: "ann", Role: model.RoleOwner}

	tests := []struct {
		name      string
		cookie    *http.Cookie
		loader    loaderFunc
		wantUser  string
		wantCalls int
	}{
		{
			name:   "no cookie stays anonymous without a call",
			loader: func(context.Context) (model.User, int, error) { return ann, http.StatusOK, nil },
		},
		{
			name:   "empty cookie stays anonymous",
			cookie: &http.Cookie{Name: "token"},
			loader: func(context.Context) (model.User, int, error) { return ann, http.StatusOK, nil },
		},
		{
			name:      "hydrated",
			cookie:    &http.Cookie{Name: "token", Value: "abc"},
			loader:    func(context.Context) (model.User, int, error) { return ann, http.StatusOK, nil },
			wantUser:  "u1",
			wantCalls: 1,
		},
		{
			name:   "profile failure clears",
			cookie: &http.Cookie{Name: "token", Value: "expired"},
			loader: func(context.Context) (model.User, int, error) {
				return model.User{}, http.StatusUnauthorized, &errs.UpstreamError{Status: http.StatusUnauthorized}
			},
			wantCalls: 1,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			calls := 0
			loader := loaderFunc(func(ctx context.Context) (model.User, int, error) {
				calls++
				return tt.loader(ctx)
			})
			e := echo.New()
			e.Use(session.Middleware(zap.NewNop(), loader, "token"))
			var got session.Session
			e.GET("/feed", func(c echo.Context) error {
				got = session.From(c)
				return c.NoContent(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/feed", http.NoBody)
			if tt.cookie != nil {
				r.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, tt.wantCalls, calls)
			require.Equal(t, tt.wantUser != "", got.Authenticated())
			require.Equal(t, tt.wantUser, got.UserID())
		})
	}
}

func TestSetClear(t *testing.T) {
	t.Parallel()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", http.NoBody), httptest.NewRecorder())

	require.False(t, session.From(c).Authenticated())
	session.Set(c, model.User{ID: "u1", Role: model.RoleSeeker})
	require.Equal(t, "u1", session.From(c).UserID())
	require.False(t, session.From(c).IsOwner())
	session.Clear(c)
	require.False(t, session.From(c).Authenticated())
}
