package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/shelfshare/pkg/kafka"
	"github.com/Astemirdum/shelfshare/web/internal/errs"
	"github.com/Astemirdum/shelfshare/web/internal/lifecycle"
	"github.com/Astemirdum/shelfshare/web/internal/model"
	"github.com/Astemirdum/shelfshare/web/internal/view"
)

const (
	tabReceived = "received"
	tabSent     = "sent"
)

type requestRow struct {
	Request model.Request
	With    string
	Actions []lifecycle.Action
}

type requestsView struct {
	Received bool
	Rows     []requestRow
}

func requestRows(list []model.Request, party lifecycle.Party) []requestRow {
	rows := make([]requestRow, 0, len(list))
	for _, r := range list {
		with := r.Owner.DisplayName()
		if party == lifecycle.Owner {
			with = r.Requester.DisplayName()
			if with == "" {
				with = r.RequesterID.DisplayName()
			}
		}
		rows = append(rows, requestRow{Request: r, With: with, Actions: lifecycle.Actions(r.Status, party)})
	}
	return rows
}

func (h *Handler) Requests(c echo.Context) error {
	received := c.QueryParam("tab") != tabSent

	var sent, got []model.Request
	gg, ctx := errgroup.WithContext(c.Request().Context())
	gg.Go(func() error {
		list, _, err := h.svc.SentRequests(ctx)
		sent = list
		return err
	})
	gg.Go(func() error {
		list, _, err := h.svc.ReceivedRequests(ctx)
		got = list
		return err
	})
	v := requestsView{Received: received}
	if err := gg.Wait(); err != nil {
		return h.render(c, http.StatusOK, "requests", "Requests", v, errorToast(errs.Message(err, "Failed to load requests")))
	}

	party := lifecycle.PartyOf(received)
	if received {
		v.Rows = requestRows(got, party)
	} else {
		v.Rows = requestRows(sent, party)
	}
	return h.render(c, http.StatusOK, "requests", "Requests", v)
}

// ActOnRequest godoc
// @Summary Accept, reject or cancel a request
// @Tags requests
// @Param id path string true "request id"
// @Param action path string true "accept | reject | cancel"
// @Success 303 {string} string "redirect to /requests"
// @Failure 400 {object} model.Message "unknown action"
// @Router /requests/{id}/{action} [post]
func (h *Handler) ActOnRequest(c echo.Context) error {
	action, err := lifecycle.ParseAction(c.Param("action"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	tab := tabReceived
	if action == lifecycle.Cancel {
		tab = tabSent
	}
	id := c.Param("id")
	if _, err := h.svc.ActOnRequest(c.Request().Context(), id, action); err != nil {
		h.flash(c, view.ToastError, errs.Message(err, "Something went wrong"))
		return seeOther(c, "/requests?tab="+tab)
	}
	h.flash(c, view.ToastSuccess, "Request "+string(action))
	h.track(c, kafka.EventRequestActed, kafka.Event{RequestID: id, Detail: string(action)})
	return seeOther(c, "/requests?tab="+tab)
}
