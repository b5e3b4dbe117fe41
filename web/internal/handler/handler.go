package handler

import (
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	mw "github.com/Astemirdum/shelfshare/pkg/middleware"
	"github.com/Astemirdum/shelfshare/pkg/validate"
	_ "github.com/Astemirdum/shelfshare/swagger"
	"github.com/Astemirdum/shelfshare/web/config"
	"github.com/Astemirdum/shelfshare/web/internal/gate"
	"github.com/Astemirdum/shelfshare/web/internal/relay"
	"github.com/Astemirdum/shelfshare/web/internal/service/shelf"
	"github.com/Astemirdum/shelfshare/web/internal/session"
	"github.com/Astemirdum/shelfshare/web/internal/view"
)

type Handler struct {
	svc      ShelfService
	activity ActivityLog
	flashes  sessions.Store
	gate     *gate.Gate
	relay    *relay.Relay
	renderer *view.Renderer
	cfg      config.Config
	log      *zap.Logger
}

func New(log *zap.Logger, cfg config.Config, svc ShelfService, activity ActivityLog) (*Handler, error) {
	rl, err := relay.New(log, cfg.Upstream)
	if err != nil {
		return nil, err
	}
	renderer, err := view.New()
	if err != nil {
		return nil, errors.Wrap(err, "views")
	}
	return &Handler{
		svc:      svc,
		activity: activity,
		flashes:  newFlashStore(cfg.Flash),
		gate:     gate.New(cfg.Gate),
		relay:    rl,
		renderer: renderer,
		cfg:      cfg,
		log:      log.Named("handler"),
	}, nil
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		pageRPS = 50
	)
	e.HideBanner = true
	e.Renderer = h.renderer
	e.Validator = validate.NewCustomValidator()
	e.HTTPErrorHandler = h.errorHandler

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Use(mw.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)))
	e.Use(h.gate.Middleware())

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	// the relay answers with whatever upstream answers, including its throttling
	h.relay.Register(e.Group("/api/proxy"))

	pages := e.Group("",
		mw.NewRateLimiter(pageRPS),
		credentials,
		session.Middleware(h.log, h.svc, h.gate.CookieName()),
	)
	pages.GET("/", h.Landing)
	pages.GET("/login", h.LoginPage)
	pages.POST("/login", h.Login)
	pages.GET("/signup", h.SignupPage)
	pages.GET("/forgot-password", h.ForgotPasswordPage)
	pages.POST("/signup", h.Signup)
	pages.POST("/logout", h.Logout)

	pages.GET("/feed", h.Feed)
	pages.GET("/book/new", h.NewBookPage)
	pages.POST("/book/new", h.CreateBook)
	pages.GET("/book/:id", h.Book)
	pages.POST("/book/:id/request", h.RequestBook)
	pages.POST("/book/:id/cancel", h.CancelBookRequest)
	pages.GET("/book/:id/edit", h.EditBookPage)
	pages.POST("/book/:id/edit", h.UpdateBook)
	pages.POST("/book/:id/delete", h.DeleteBook)
	pages.POST("/book/:id/returned", h.MarkReturned)

	pages.GET("/requests", h.Requests)
	pages.POST("/requests/:id/:action", h.ActOnRequest)

	pages.GET("/library", h.Library)
	pages.GET("/profile", h.Profile)
	pages.GET("/profile/edit", h.EditProfilePage)
	pages.POST("/profile/edit", h.EditProfile)
	pages.POST("/profile/password", h.ChangePassword)

	return e
}

// Health godoc
// @Summary Liveness check
// @Tags manage
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /manage/health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// credentials lets the upstream client act with the browser's cookies.
func credentials(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := c.Request()
		c.SetRequest(r.WithContext(shelf.WithCredentials(r.Context(), r)))
		return next(c)
	}
}

func (h *Handler) render(c echo.Context, code int, name, title string, data any, toasts ...view.Toast) error {
	return c.Render(code, name, view.Page{
		Title:   title,
		Session: session.From(c),
		Toasts:  append(h.popFlashes(c), toasts...),
		Data:    data,
	})
}

func seeOther(c echo.Context, url string) error {
	return c.Redirect(http.StatusSeeOther, url)
}

func errorToast(text string) view.Toast {
	return view.Toast{Kind: view.ToastError, Text: text}
}

// failureStatus is the status a re-rendered form carries after the API refused it.
func failureStatus(code int) int {
	if code >= http.StatusBadRequest && code < 600 {
		return code
	}
	return http.StatusBadGateway
}

type errorView struct {
	Code    int
	Message string
}

func (h *Handler) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	p := c.Request().URL.Path
	if strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/swagger/") || strings.HasPrefix(p, "/manage/") {
		c.Echo().DefaultHTTPErrorHandler(err, c)
		return
	}
	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = http.StatusText(code)
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}
	if code >= http.StatusInternalServerError {
		h.log.Error("page failed", zap.String("path", p), zap.Error(err))
	}
	if rerr := h.render(c, code, "error", http.StatusText(code), errorView{Code: code, Message: msg}); rerr != nil {
		h.log.Error("render error page", zap.Error(rerr))
		c.Echo().DefaultHTTPErrorHandler(err, c)
	}
}
