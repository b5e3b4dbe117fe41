package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/shelfshare/web/internal/errs"
	"github.com/Astemirdum/shelfshare/web/internal/model"
	"github.com/Astemirdum/shelfshare/web/internal/session"
	"github.com/Astemirdum/shelfshare/web/internal/view"
)

var libraryTabs = []string{"owned", "borrowed", "rented", "exchanged"}

type libraryView struct {
	Tab   string
	Tabs  []string
	Books []model.Book
}

func (h *Handler) Library(c echo.Context) error {
	tab := c.QueryParam("tab")
	fetch := map[string]func(context.Context) ([]model.Book, int, error){
		"owned":     h.svc.OwnedBooks,
		"borrowed":  h.svc.BorrowedBooks,
		"rented":    h.svc.RentedBooks,
		"exchanged": h.svc.ExchangedBooks,
	}
	if _, ok := fetch[tab]; !ok {
		tab = libraryTabs[0]
	}

	shelves := make([][]model.Book, len(libraryTabs))
	gg, ctx := errgroup.WithContext(c.Request().Context())
	for i, name := range libraryTabs {
		i, f := i, fetch[name]
		gg.Go(func() error {
			books, _, err := f(ctx)
			shelves[i] = books
			return err
		})
	}
	v := libraryView{Tab: tab, Tabs: libraryTabs}
	if err := gg.Wait(); err != nil {
		return h.render(c, http.StatusOK, "library", "Library", v, errorToast(errs.Message(err, "Failed to fetch library")))
	}
	for i, name := range libraryTabs {
		if name == tab {
			v.Books = shelves[i]
		}
	}
	return h.render(c, http.StatusOK, "library", "Library", v)
}

type profileView struct {
	User  model.User
	Stats model.Stats
	Books []model.Book
}

func (h *Handler) Profile(c echo.Context) error {
	s := session.From(c)
	if !s.Authenticated() {
		return echo.NewHTTPError(http.StatusUnauthorized, "Please login again.")
	}
	v := profileView{User: *s.User}

	gg, ctx := errgroup.WithContext(c.Request().Context())
	gg.Go(func() error {
		stats, _, err := h.svc.UserStats(ctx)
		v.Stats = stats
		return err
	})
	if s.IsOwner() {
		gg.Go(func() error {
			books, _, err := h.svc.MyBooks(ctx)
			v.Books = books
			return err
		})
	}
	if err := gg.Wait(); err != nil {
		return h.render(c, http.StatusOK, "profile", "Profile", v, errorToast("Failed to load stats"))
	}
	return h.render(c, http.StatusOK, "profile", "Profile", v)
}

type profileEditView struct {
	User model.User
}

func (h *Handler) EditProfilePage(c echo.Context) error {
	s := session.From(c)
	if !s.Authenticated() {
		return echo.NewHTTPError(http.StatusUnauthorized, "Please login again.")
	}
	return h.render(c, http.StatusOK, "profile_edit", "Edit profile", profileEditView{User: *s.User})
}

func (h *Handler) EditProfile(c echo.Context) error {
	var req model.EditProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	u, code, err := h.svc.EditProfile(c.Request().Context(), req)
	if err != nil {
		draft := model.User{FullName: req.FullName, PhoneNumber: req.PhoneNumber}
		return h.render(c, failureStatus(code), "profile_edit", "Edit profile", profileEditView{User: draft},
			errorToast(errs.Message(err, "Failed to update profile")))
	}
	if u.ID != "" {
		session.Set(c, u)
	}
	h.flash(c, view.ToastSuccess, "Profile updated successfully")
	return seeOther(c, "/profile")
}

// ChangePassword rejects empty or unchanged passwords before calling the API.
func (h *Handler) ChangePassword(c echo.Context) error {
	var req model.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var local error
	switch {
	case req.CurrentPassword == "" || req.NewPassword == "":
		local = errs.ErrPasswordRequired
	case req.CurrentPassword == req.NewPassword:
		local = errs.ErrPasswordUnchanged
	}
	if local == nil {
		if err := c.Validate(req); err != nil {
			local = errs.ErrPasswordRequired
		}
	}
	if local != nil {
		h.flash(c, view.ToastError, local.Error())
		return seeOther(c, "/profile/edit")
	}

	if _, err := h.svc.ChangePassword(c.Request().Context(), req); err != nil {
		h.flash(c, view.ToastError, errs.Message(err, "Failed to change password"))
		return seeOther(c, "/profile/edit")
	}
	h.flash(c, view.ToastSuccess, "Password changed successfully")
	return seeOther(c, "/profile")
}
