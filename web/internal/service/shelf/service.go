package shelf

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Astemirdum/shelfshare/web/config"
	"github.com/Astemirdum/shelfshare/web/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type credentialsKey struct{}

// WithCredentials attaches the browser's cookies to ctx so every upstream call made
// on its behalf carries them, the server-side twin of `credentials: include`.
func WithCredentials(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, credentialsKey{}, r.Header.Get(echo.HeaderCookie))
}

func setCredentials(ctx context.Context, req *http.Request) {
	if cookie, ok := ctx.Value(credentialsKey{}).(string); ok && cookie != "" {
		req.Header.Set(echo.HeaderCookie, cookie)
	}
}

type Service struct {
	log    *zap.Logger
	client *http.Client
	tracer trace.Tracer
	base   string
}

func NewService(log *zap.Logger, cfg config.Upstream, tracer trace.Tracer) *Service {
	return &Service{
		log:    log.Named("shelf"),
		client: &http.Client{Timeout: cfg.Timeout},
		tracer: tracer,
		base:   strings.TrimRight(cfg.Origin, "/"),
	}
}

type call struct {
	name        string
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

func jsonCall(name, method, path string, v any) (call, error) {
	b := bytes.NewBuffer(nil)
	if err := json.NewEncoder(b).Encode(v); err != nil {
		return call{}, err
	}
	return call{name: name, method: method, path: path, body: b, contentType: echo.MIMEApplicationJSON}, nil
}

// do performs c and decodes a 2xx body into out. Transport failures report 503,
// undecodable answers 502 and upstream faults their own status as *errs.UpstreamError.
func (s *Service) do(ctx context.Context, c call, out any) (http.Header, int, error) {
	ctx, span := s.tracer.Start(ctx, "shelf."+c.name)
	defer span.End()

	u := s.base + c.path
	if len(c.query) > 0 {
		u += "?" + c.query.Encode()
	}
	body := c.body
	if body == nil {
		body = http.NoBody
	}
	req, err := http.NewRequestWithContext(ctx, c.method, u, body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, http.StatusBadRequest, err
	}
	setCredentials(ctx, req)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	if c.contentType != "" {
		req.Header.Set(echo.HeaderContentType, c.contentType)
	}
	span.SetAttributes(attribute.String("http.method", c.method), attribute.String("http.path", c.path))

	resp, err := s.client.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, "upstream unavailable")
		s.log.Warn("upstream unavailable", zap.String("call", c.name), zap.Error(err))
		return nil, http.StatusServiceUnavailable, errors.Wrap(err, "ShelfShare API unavailable")
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode >= 400 {
		var msg struct {
			Message string `json:"message"`
		}
		d, _ := io.ReadAll(resp.Body) //nolint:errcheck
		_ = json.Unmarshal(d, &msg)   //nolint:errcheck
		span.SetStatus(codes.Error, msg.Message)
		return resp.Header, resp.StatusCode, &errs.UpstreamError{Status: resp.StatusCode, Message: msg.Message}
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
			span.SetStatus(codes.Error, err.Error())
			return resp.Header, http.StatusBadGateway, errors.Wrapf(err, "decode %s", c.name)
		}
	}
	return resp.Header, resp.StatusCode, nil
}
