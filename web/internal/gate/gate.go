// Package gate decides, from the request path and the presence of the session
// cookie alone, whether a page is served or the browser is sent elsewhere.
// The cookie value is trusted at face value; the remote API checks it on use.
package gate

import (
	"net/http"
	"strings"

	"github.com/Astemirdum/shelfshare/web/config"
	"github.com/labstack/echo/v4"
)

type Class uint8

const (
	// Public paths are outside the matcher; the gate never runs for them.
	Public Class = iota
	Protected
	AuthOnly
)

func (c Class) String() string {
	switch c {
	case Protected:
		return "protected"
	case AuthOnly:
		return "auth-only"
	}
	return "public"
}

type Decision struct {
	Class    Class
	Redirect bool
	Location string
}

// pattern is a matcher entry: "/feed/:path*" matches /feed and everything under it,
// anything else matches only itself.
type pattern struct {
	base     string
	wildcard bool
}

func parsePattern(s string) pattern {
	s = strings.TrimSpace(s)
	if base, ok := strings.CutSuffix(s, "/:path*"); ok {
		return pattern{base: base, wildcard: true}
	}
	return pattern{base: s}
}

func (p pattern) match(path string) bool {
	if path == p.base {
		return true
	}
	return p.wildcard && strings.HasPrefix(path, p.base+"/")
}

type Gate struct {
	cookieName string
	loginPath  string
	feedPath   string
	authOnly   []string
	matcher    []pattern
}

func New(cfg config.Gate) *Gate {
	g := &Gate{
		cookieName: cfg.CookieName,
		loginPath:  cfg.LoginPath,
		feedPath:   cfg.FeedPath,
		authOnly:   cfg.AuthOnly,
		matcher:    make([]pattern, 0, len(cfg.Matcher)),
	}
	for _, m := range cfg.Matcher {
		if m = strings.TrimSpace(m); m != "" {
			g.matcher = append(g.matcher, parsePattern(m))
		}
	}
	return g
}

func (g *Gate) Classify(path string) Class {
	matched := false
	for _, p := range g.matcher {
		if p.match(path) {
			matched = true
			break
		}
	}
	if !matched {
		return Public
	}
	for _, prefix := range g.authOnly {
		if strings.HasPrefix(path, prefix) {
			return AuthOnly
		}
	}
	return Protected
}

// Decide is total: every (path, token) pair yields exactly one decision.
func (g *Gate) Decide(path, token string) Decision {
	class := g.Classify(path)
	hasToken := token != ""
	switch {
	case class == Protected && !hasToken:
		return Decision{Class: class, Redirect: true, Location: g.loginPath}
	case class == AuthOnly && hasToken:
		return Decision{Class: class, Redirect: true, Location: g.feedPath}
	}
	return Decision{Class: class}
}

// Token returns the session cookie value, empty when the cookie is absent.
func (g *Gate) Token(r *http.Request) string {
	cookie, err := r.Cookie(g.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (g *Gate) CookieName() string {
	return g.cookieName
}

func (g *Gate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			d := g.Decide(req.URL.Path, g.Token(req))
			if !d.Redirect {
				return next(c)
			}
			code := http.StatusTemporaryRedirect
			if req.Method != http.MethodGet && req.Method != http.MethodHead {
				// a form post must land on the target page as a GET
				code = http.StatusSeeOther
			}
			return c.Redirect(code, d.Location)
		}
	}
}
