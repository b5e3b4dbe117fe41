package gate_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Astemirdum/shelfshare/web/config"
	"github.com/Astemirdum/shelfshare/web/internal/gate"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func defaultGateConfig() config.Gate {
	return config.Gate{
		CookieName: "token",
		LoginPath:  "/login",
		FeedPath:   "/feed",
		AuthOnly:   []string{"/login", "/signup"},
		Matcher: strings.Split(
			"/,/books/:path*,/feed/:path*,/profile/:path*,/dashboard/:path*,/book/:path*,/requests/:path*,/library/:path*,/login,/signup",
			","),
	}
}

func TestGate_Classify(t *testing.T) {
	t.Parallel()
	g := gate.New(defaultGateConfig())

	tests := []struct {
		path string
		want gate.Class
	}{
		{path: "/", want: gate.Protected},
		{path: "/feed", want: gate.Protected},
		{path: "/feed/", want: gate.Protected},
		{path: "/feed/2", want: gate.Protected},
		{path: "/feedback", want: gate.Public},
		{path: "/profile/edit", want: gate.Protected},
		{path: "/books/a/b/c", want: gate.Protected},
		{path: "/dashboard", want: gate.Protected},
		{path: "/book/42/edit", want: gate.Protected},
		{path: "/requests", want: gate.Protected},
		{path: "/login", want: gate.AuthOnly},
		{path: "/signup", want: gate.AuthOnly},
		{path: "/login/extra", want: gate.Public},
		{path: "/login-help", want: gate.Public},
		{path: "/api/proxy/book", want: gate.Public},
		{path: "/manage/health", want: gate.Public},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, g.Classify(tt.path))
		})
	}
}

func TestGate_Decide(t *testing.T) {
	t.Parallel()
	g := gate.New(defaultGateConfig())

	tests := []struct {
		name     string
		path     string
		token    string
		redirect bool
		location string
	}{
		{name: "no token protected", path: "/feed", redirect: true, location: "/login"},
		{name: "no token root", path: "/", redirect: true, location: "/login"},
		{name: "no token auth-only", path: "/login", redirect: false},
		{name: "no token signup", path: "/signup", redirect: false},
		{name: "token protected", path: "/feed", token: "abc", redirect: false},
		{name: "token login", path: "/login", token: "abc", redirect: true, location: "/feed"},
		{name: "token signup", path: "/signup", token: "abc", redirect: true, location: "/feed"},
		{name: "no token public", path: "/api/proxy/login", redirect: false},
		{name: "token public", path: "/api/proxy/login", token: "abc", redirect: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := g.Decide(tt.path, tt.token)
			require.Equal(t, tt.redirect, d.Redirect)
			require.Equal(t, tt.location, d.Location)
		})
	}
}

func TestGate_Middleware(t *testing.T) {
	t.Parallel()
	g := gate.New(defaultGateConfig())

	tests := []struct {
		name         string
		method       string
		path         string
		cookie       *http.Cookie
		expectedCode int
		location     string
	}{
		{name: "no cookie on feed redirects to login", method: http.MethodGet, path: "/feed", expectedCode: http.StatusTemporaryRedirect, location: "/login"},
		{name: "cookie on login redirects to feed", method: http.MethodGet, path: "/login", cookie: &http.Cookie{Name: "token", Value: "abc"}, expectedCode: http.StatusTemporaryRedirect, location: "/feed"},
		{name: "empty cookie counts as absent", method: http.MethodGet, path: "/feed", cookie: &http.Cookie{Name: "token", Value: ""}, expectedCode: http.StatusTemporaryRedirect, location: "/login"},
		{name: "other cookie ignored", method: http.MethodGet, path: "/profile", cookie: &http.Cookie{Name: "sid", Value: "abc"}, expectedCode: http.StatusTemporaryRedirect, location: "/login"},
		{name: "served", method: http.MethodGet, path: "/profile", cookie: &http.Cookie{Name: "token", Value: "abc"}, expectedCode: http.StatusOK},
		{name: "form post redirected as see other", method: http.MethodPost, path: "/login", cookie: &http.Cookie{Name: "token", Value: "abc"}, expectedCode: http.StatusSeeOther, location: "/feed"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.Use(g.Middleware())
			ok := func(c echo.Context) error { return c.String(http.StatusOK, "page") }
			e.Any("/*", ok)
			e.Any("/", ok)

			r := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.cookie != nil {
				r.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.location, w.Header().Get(echo.HeaderLocation))
			if tt.cookie != nil {
				require.Empty(t, w.Header().Values(echo.HeaderSetCookie))
			}
		})
	}
}
