// Package relay forwards same-origin calls under /api/proxy to the remote API and
// hands the answer back untouched, so cookies the API sets land on this origin.
package relay

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Astemirdum/shelfshare/web/config"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Relay struct {
	log    *zap.Logger
	client *http.Client
	origin *url.URL
	base   string
}

func New(log *zap.Logger, cfg config.Upstream) (*Relay, error) {
	origin, err := cfg.URL()
	if err != nil {
		return nil, errors.Wrap(err, "parse upstream origin")
	}
	return &Relay{
		log:    log.Named("relay"),
		client: &http.Client{Timeout: cfg.Timeout},
		origin: origin,
		base:   strings.TrimRight(cfg.Origin, "/"),
	}, nil
}

// Register mounts the relay for every verb the client uses on the group's wildcard.
func (r *Relay) Register(g *echo.Group) {
	g.GET("/*", r.Forward)
	g.POST("/*", r.Forward)
	g.PUT("/*", r.Forward)
	g.PATCH("/*", r.Forward)
	g.DELETE("/*", r.Forward)
}

// Target builds the upstream URL for a wildcard path and raw query.
func (r *Relay) Target(path, rawQuery string) string {
	target := r.base + "/" + strings.TrimLeft(path, "/")
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	return target
}

// Forward godoc
// @Summary Relay a call to the ShelfShare API
// @Description Forwards method, headers, cookies and body to UPSTREAM_ORIGIN/{path} and returns the upstream status, headers and body unchanged.
// @Tags relay
// @Param path path string true "upstream path"
// @Success 200 {string} string "upstream body"
// @Failure 500 {object} model.Message "upstream unreachable"
// @Router /api/proxy/{path} [get]
// @Router /api/proxy/{path} [post]
// @Router /api/proxy/{path} [put]
// @Router /api/proxy/{path} [patch]
// @Router /api/proxy/{path} [delete]
func (r *Relay) Forward(c echo.Context) error {
	in := c.Request()

	var body io.Reader = http.NoBody
	if in.Method != http.MethodGet && in.Method != http.MethodHead {
		data, err := io.ReadAll(in.Body)
		if err != nil {
			return errors.Wrap(err, "read request body")
		}
		body = bytes.NewReader(data)
	}

	target := r.Target(c.Param("*"), in.URL.RawQuery)
	out, err := http.NewRequestWithContext(in.Context(), in.Method, target, body)
	if err != nil {
		return errors.Wrap(err, "build upstream request")
	}
	out.Header = in.Header.Clone()
	out.Host = r.origin.Host
	out.Header.Set("Host", r.origin.Host)
	out.Header.Set("Accept-Encoding", "identity")
	out.Header.Del("Content-Length")

	resp, err := r.client.Do(out)
	if err != nil {
		r.log.Error("upstream unreachable", zap.String("target", target), zap.Error(err))
		return errors.Wrap(err, "relay")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read upstream body")
	}

	h := c.Response().Header()
	for k, vv := range resp.Header {
		if k == echo.HeaderSetCookie {
			continue
		}
		for _, v := range vv {
			h.Add(k, v)
		}
	}
	for _, v := range resp.Header.Values(echo.HeaderSetCookie) {
		h.Add(echo.HeaderSetCookie, v)
	}

	r.log.Debug("relayed",
		zap.String("method", in.Method),
		zap.String("target", target),
		zap.Int("status", resp.StatusCode))

	c.Response().WriteHeader(resp.StatusCode)
	_, err = c.Response().Write(data)
	return err
}
