package shelf

import (
	"context"
	"net/http"

	"github.com/Astemirdum/shelfshare/web/internal/model"
	"github.com/labstack/echo/v4"
)

// profileBody accepts both `{"data": user}` and a bare user document.
type profileBody struct {
	Data *model.User `json:"data"`
	model.User
}

func (b profileBody) user() model.User {
	if b.Data != nil {
		return *b.Data
	}
	return b.User
}

func (s *Service) auth(ctx context.Context, name, path string, v any) (model.Auth, int, error) {
	c := call{name: name, method: http.MethodPost, path: path}
	if v != nil {
		var err error
		if c, err = jsonCall(name, http.MethodPost, path, v); err != nil {
			return model.Auth{}, http.StatusBadRequest, err
		}
	}
	var body profileBody
	h, code, err := s.do(ctx, c, &body)
	if err != nil {
		return model.Auth{}, code, err
	}
	return model.Auth{User: body.user(), Cookies: h.Values(echo.HeaderSetCookie)}, code, nil
}

func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.Auth, int, error) {
	return s.auth(ctx, "Login", "/login", req)
}

func (s *Service) Signup(ctx context.Context, req model.SignupRequest) (model.Auth, int, error) {
	return s.auth(ctx, "Signup", "/signup", req)
}

func (s *Service) Logout(ctx context.Context) (model.Auth, int, error) {
	return s.auth(ctx, "Logout", "/logout", nil)
}

func (s *Service) Profile(ctx context.Context) (model.User, int, error) {
	var body profileBody
	_, code, err := s.do(ctx, call{name: "Profile", method: http.MethodGet, path: "/profile/view"}, &body)
	if err != nil {
		return model.User{}, code, err
	}
	return body.user(), code, nil
}

func (s *Service) EditProfile(ctx context.Context, req model.EditProfileRequest) (model.User, int, error) {
	c, err := jsonCall("EditProfile", http.MethodPatch, "/profile/edit", req)
	if err != nil {
		return model.User{}, http.StatusBadRequest, err
	}
	var body profileBody
	_, code, err := s.do(ctx, c, &body)
	if err != nil {
		return model.User{}, code, err
	}
	return body.user(), code, nil
}

func (s *Service) ChangePassword(ctx context.Context, req model.ChangePasswordRequest) (int, error) {
	c, err := jsonCall("ChangePassword", http.MethodPatch, "/profile/password", req)
	if err != nil {
		return http.StatusBadRequest, err
	}
	_, code, err := s.do(ctx, c, nil)
	return code, err
}

func (s *Service) UserStats(ctx context.Context) (model.Stats, int, error) {
	var stats model.Stats
	_, code, err := s.do(ctx, call{name: "UserStats", method: http.MethodGet, path: "/user/stats"}, &stats)
	return stats, code, err
}
