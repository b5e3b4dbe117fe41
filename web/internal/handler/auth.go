package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Astemirdum/shelfshare/pkg/kafka"
	"github.com/Astemirdum/shelfshare/web/internal/errs"
	"github.com/Astemirdum/shelfshare/web/internal/model"
	"github.com/Astemirdum/shelfshare/web/internal/session"
	"github.com/Astemirdum/shelfshare/web/internal/view"
)

type authForm struct {
	Name    string
	EmailID string
}

func (h *Handler) Landing(c echo.Context) error {
	return h.render(c, http.StatusOK, "landing", "", nil)
}

func (h *Handler) LoginPage(c echo.Context) error {
	return h.render(c, http.StatusOK, "login", "Login", authForm{})
}

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	form := authForm{EmailID: req.EmailID}
	if err := c.Validate(req); err != nil {
		return h.render(c, http.StatusBadRequest, "login", "Login", form, errorToast("Email and password are required."))
	}
	auth, code, err := h.svc.Login(c.Request().Context(), req)
	if err != nil {
		return h.render(c, failureStatus(code), "login", "Login", form, errorToast(errs.Message(err, "Login failed")))
	}
	h.signedIn(c, auth, kafka.EventLogin, "Login successful")
	return seeOther(c, h.cfg.Gate.FeedPath)
}

func (h *Handler) ForgotPasswordPage(c echo.Context) error {
	return h.render(c, http.StatusOK, "forgot_password", "Forgot password", h.cfg.SupportEmail)
}

func (h *Handler) SignupPage(c echo.Context) error {
	return h.render(c, http.StatusOK, "signup", "Sign up", authForm{})
}

func (h *Handler) Signup(c echo.Context) error {
	var req model.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	form := authForm{Name: req.Name, EmailID: req.EmailID}
	if req.Password != req.ConfirmPassword {
		return h.render(c, http.StatusBadRequest, "signup", "Sign up", form, errorToast(errs.ErrPasswordMismatch.Error()))
	}
	if err := c.Validate(req); err != nil {
		return h.render(c, http.StatusBadRequest, "signup", "Sign up", form, errorToast("Name, email and password are required."))
	}
	auth, code, err := h.svc.Signup(c.Request().Context(), req)
	if err != nil {
		return h.render(c, failureStatus(code), "signup", "Sign up", form, errorToast(errs.Message(err, "Signup failed")))
	}
	h.signedIn(c, auth, kafka.EventSignup, "Signup successful")
	return seeOther(c, h.cfg.Gate.FeedPath)
}

func (h *Handler) signedIn(c echo.Context, auth model.Auth, event kafka.EventType, text string) {
	propagateCookies(c, auth.Cookies)
	session.Set(c, auth.User)
	h.flash(c, view.ToastSuccess, text)
	h.track(c, event, kafka.Event{})
}

func (h *Handler) Logout(c echo.Context) error {
	userID := session.From(c).UserID()
	auth, code, err := h.svc.Logout(c.Request().Context())
	if err != nil {
		h.log.Warn("logout", zap.Int("code", code), zap.Error(err))
	}
	propagateCookies(c, auth.Cookies)
	c.SetCookie(&http.Cookie{
		Name:    h.gate.CookieName(),
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
		MaxAge:  -1,
	})
	session.Clear(c)
	h.track(c, kafka.EventLogout, kafka.Event{UserID: userID})
	return seeOther(c, "/")
}

// propagateCookies hands the API's Set-Cookie values to the browser unchanged.
func propagateCookies(c echo.Context, cookies []string) {
	for _, v := range cookies {
		c.Response().Header().Add(echo.HeaderSetCookie, v)
	}
}
