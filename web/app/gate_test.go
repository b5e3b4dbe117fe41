package app_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/shelfshare/web/app"
	"github.com/Astemirdum/shelfshare/web/config"
)

func TestExplainGate(t *testing.T) {
	t.Parallel()
	cfg := config.Gate{
		CookieName: "token",
		LoginPath:  "/login",
		FeedPath:   "/feed",
		AuthOnly:   []string{"/login", "/signup"},
		Matcher:    []string{"/", "/feed/:path*", "/login", "/signup"},
	}

	tests := []struct {
		name  string
		token string
		paths []string
		want  string
	}{
		{
			name:  "anonymous",
			paths: []string{"/feed", "/login", "/api/proxy/book"},
			want:  "/feed\tprotected\tredirect /login\n/login\tauth-only\tserve\n/api/proxy/book\tpublic\tserve\n",
		},
		{
			name:  "signed in",
			token: "abc",
			paths: []string{"/feed/2", "/signup"},
			want:  "/feed/2\tprotected\tserve\n/signup\tauth-only\tredirect /feed\n",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, app.ExplainGate(&buf, cfg, tt.token, tt.paths...))
			require.Equal(t, tt.want, buf.String())
		})
	}
}
