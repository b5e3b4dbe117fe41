package handler

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/shelfshare/pkg/kafka"
	"github.com/Astemirdum/shelfshare/web/internal/errs"
	"github.com/Astemirdum/shelfshare/web/internal/lifecycle"
	"github.com/Astemirdum/shelfshare/web/internal/model"
	"github.com/Astemirdum/shelfshare/web/internal/session"
	"github.com/Astemirdum/shelfshare/web/internal/view"
)

const maxCoverSize = 5 << 20 // 5 MB

type feedView struct {
	Query   model.BookQuery
	Books   []model.Book
	Total   int
	PrevURL string
	NextURL string
}

func feedURL(q model.BookQuery, page int) string {
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	if q.Title != "" {
		v.Set("title", q.Title)
	}
	if q.Genre != "" {
		v.Set("genre", q.Genre)
	}
	if q.Location != "" {
		v.Set("location", q.Location)
	}
	return "/feed?" + v.Encode()
}

func (h *Handler) Feed(c echo.Context) error {
	var q model.BookQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	q.Normalize()

	v := feedView{Query: q}
	list, _, err := h.svc.ListBooks(c.Request().Context(), q)
	if err != nil {
		return h.render(c, http.StatusOK, "feed", "Books", v, errorToast("Failed to fetch books"))
	}
	v.Books, v.Total = list.Data, list.Total
	if q.Page > 1 {
		v.PrevURL = feedURL(q, q.Page-1)
	}
	if q.Page*q.Limit < list.Total {
		v.NextURL = feedURL(q, q.Page+1)
	}
	return h.render(c, http.StatusOK, "feed", "Books", v)
}

type bookView struct {
	Book         model.Book
	IsOwner      bool
	MyRequest    *model.Request
	HasRequested bool
	CanRequest   bool
}

func newBookView(b model.Book, userID string) bookView {
	v := bookView{
		Book:         b,
		IsOwner:      userID != "" && b.Owner.ID == userID,
		HasRequested: lifecycle.HasRequested(b, userID),
		CanRequest:   userID != "" && lifecycle.CanRequest(b, userID),
	}
	if r, ok := lifecycle.PendingRequestOf(b, userID); ok {
		v.MyRequest = &r
	}
	return v
}

func bookURL(id string) string {
	return "/book/" + url.PathEscape(id)
}

func (h *Handler) Book(c echo.Context) error {
	b, _, err := h.svc.GetBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.flash(c, view.ToastError, "Failed to load book.")
		return seeOther(c, h.cfg.Gate.FeedPath)
	}
	return h.render(c, http.StatusOK, "book", b.Title, newBookView(b, session.From(c).UserID()))
}

func (h *Handler) RequestBook(c echo.Context) error {
	req := model.CreateRequestRequest{
		BookID: c.Param("id"),
		Kind:   model.RequestKind(c.FormValue("type")),
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, _, err := h.svc.CreateRequest(c.Request().Context(), req)
	if err != nil {
		h.flash(c, view.ToastError, errs.Message(err, "Error sending request."))
		return seeOther(c, bookURL(req.BookID))
	}
	label := "Exchange"
	if req.Kind == model.KindRent {
		label = "Rent"
	}
	h.flash(c, view.ToastSuccess, label+" request sent!")
	h.track(c, kafka.EventRequestCreated, kafka.Event{BookID: req.BookID, RequestID: created.ID, Detail: string(req.Kind)})
	return seeOther(c, bookURL(req.BookID))
}

// CancelBookRequest withdraws the viewer's pending request on the book.
func (h *Handler) CancelBookRequest(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	b, _, err := h.svc.GetBook(ctx, id)
	if err != nil {
		h.flash(c, view.ToastError, "Failed to load book.")
		return seeOther(c, h.cfg.Gate.FeedPath)
	}
	mine, ok := lifecycle.PendingRequestOf(b, session.From(c).UserID())
	if !ok {
		h.flash(c, view.ToastError, errs.ErrNoPendingRequest.Error())
		return seeOther(c, bookURL(id))
	}
	if _, err := h.svc.ActOnRequest(ctx, mine.ID, lifecycle.Cancel); err != nil {
		h.flash(c, view.ToastError, errs.Message(err, "Failed to cancel request."))
		return seeOther(c, bookURL(id))
	}
	h.flash(c, view.ToastSuccess, "Request cancelled successfully.")
	h.track(c, kafka.EventRequestActed, kafka.Event{BookID: id, RequestID: mine.ID, Detail: string(lifecycle.Cancel)})
	return seeOther(c, bookURL(id))
}

type bookFormView struct {
	Action   string
	Edit     bool
	Form     model.BookForm
	ImageURL string
}

func formOf(b model.Book) model.BookForm {
	return model.BookForm{
		Title:       b.Title,
		Author:      b.Author,
		Genres:      b.GenreList(),
		Location:    b.Location,
		Description: b.Description,
	}
}

func (h *Handler) NewBookPage(c echo.Context) error {
	if !session.From(c).IsOwner() {
		h.flash(c, view.ToastError, "You do not have permission to create a book.")
		return seeOther(c, "/")
	}
	return h.render(c, http.StatusOK, "book_form", "Add a book", bookFormView{Action: "/book/new"})
}

func (h *Handler) CreateBook(c echo.Context) error {
	if !session.From(c).IsOwner() {
		h.flash(c, view.ToastError, "You do not have permission to create a book.")
		return seeOther(c, "/")
	}
	form, img, err := bindBookForm(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	fv := bookFormView{Action: "/book/new", Form: form}
	if err := c.Validate(form); err != nil {
		return h.render(c, http.StatusBadRequest, "book_form", "Add a book", fv, errorToast("Title, author and location are required."))
	}
	created, code, err := h.svc.CreateBook(c.Request().Context(), form, img)
	if err != nil || created.ID == "" {
		return h.render(c, failureStatus(code), "book_form", "Add a book", fv, errorToast("Failed to create the book."))
	}
	h.flash(c, view.ToastSuccess, "Book created successfully!")
	h.track(c, kafka.EventBookCreated, kafka.Event{BookID: created.ID})
	return seeOther(c, bookURL(created.ID))
}

// ownBook loads the book and checks the viewer owns it.
func (h *Handler) ownBook(c echo.Context) (model.Book, error) {
	b, _, err := h.svc.GetBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return model.Book{}, errors.Wrap(err, "Failed to fetch book data.")
	}
	if uid := session.From(c).UserID(); uid == "" || b.Owner.ID != uid {
		return model.Book{}, errs.ErrNotOwner
	}
	return b, nil
}

func (h *Handler) notOwned(c echo.Context, err error) error {
	msg := "Failed to fetch book data."
	if errors.Is(err, errs.ErrNotOwner) {
		msg = "You are not authorized to edit this book."
	}
	h.flash(c, view.ToastError, msg)
	return seeOther(c, h.cfg.Gate.FeedPath)
}

func (h *Handler) EditBookPage(c echo.Context) error {
	b, err := h.ownBook(c)
	if err != nil {
		return h.notOwned(c, err)
	}
	return h.render(c, http.StatusOK, "book_form", "Edit book", bookFormView{
		Action:   bookURL(b.ID) + "/edit",
		Edit:     true,
		Form:     formOf(b),
		ImageURL: b.ImageURL,
	})
}

func (h *Handler) UpdateBook(c echo.Context) error {
	b, err := h.ownBook(c)
	if err != nil {
		return h.notOwned(c, err)
	}
	form, img, err := bindBookForm(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	fv := bookFormView{Action: bookURL(b.ID) + "/edit", Edit: true, Form: form, ImageURL: b.ImageURL}
	if err := c.Validate(form); err != nil {
		return h.render(c, http.StatusBadRequest, "book_form", "Edit book", fv, errorToast("Title, author and location are required."))
	}
	if _, code, err := h.svc.UpdateBook(c.Request().Context(), b.ID, form, img); err != nil {
		return h.render(c, failureStatus(code), "book_form", "Edit book", fv, errorToast(errs.Message(err, "Update failed.")))
	}
	h.flash(c, view.ToastSuccess, "Book updated successfully!")
	h.track(c, kafka.EventBookUpdated, kafka.Event{BookID: b.ID})
	return seeOther(c, bookURL(b.ID))
}

func (h *Handler) DeleteBook(c echo.Context) error {
	b, err := h.ownBook(c)
	if err != nil {
		return h.notOwned(c, err)
	}
	if _, err := h.svc.DeleteBook(c.Request().Context(), b.ID); err != nil {
		h.flash(c, view.ToastError, errs.Message(err, "Failed to delete the book."))
		return seeOther(c, bookURL(b.ID))
	}
	h.flash(c, view.ToastSuccess, "Book deleted.")
	h.track(c, kafka.EventBookDeleted, kafka.Event{BookID: b.ID})
	return seeOther(c, "/library")
}

func (h *Handler) MarkReturned(c echo.Context) error {
	b, err := h.ownBook(c)
	if err != nil {
		return h.notOwned(c, err)
	}
	if _, err := h.svc.MarkReturned(c.Request().Context(), b.ID); err != nil {
		h.flash(c, view.ToastError, errs.Message(err, "Failed to mark the book as returned."))
		return seeOther(c, bookURL(b.ID))
	}
	h.flash(c, view.ToastSuccess, "Book marked as returned.")
	h.track(c, kafka.EventBookReturned, kafka.Event{BookID: b.ID})
	return seeOther(c, "/library")
}

// bindBookForm reads the book fields and the optional cover upload.
// Genres arrive comma separated in a single field.
func bindBookForm(c echo.Context) (model.BookForm, *model.Image, error) {
	form := model.BookForm{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Author:      strings.TrimSpace(c.FormValue("author")),
		Location:    strings.TrimSpace(c.FormValue("location")),
		Description: strings.TrimSpace(c.FormValue("description")),
	}
	for _, raw := range c.Request().Form["genres"] {
		for _, g := range strings.Split(raw, ",") {
			if g = strings.TrimSpace(g); g != "" {
				form.Genres = append(form.Genres, g)
			}
		}
	}

	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) || (err == nil && fh.Size == 0) {
		return form, nil, nil
	}
	if err != nil {
		return form, nil, err
	}
	if fh.Size > maxCoverSize {
		return form, nil, errors.New("cover image is too large")
	}
	f, err := fh.Open()
	if err != nil {
		return form, nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return form, nil, err
	}
	return form, &model.Image{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}
