package shelf

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"

	"github.com/Astemirdum/shelfshare/web/internal/model"
	"github.com/pkg/errors"
)

func (s *Service) ListBooks(ctx context.Context, q model.BookQuery) (model.ListBooks, int, error) {
	q.Normalize()
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	if q.Title != "" {
		v.Set("title", q.Title)
	}
	if q.Genre != "" {
		v.Set("genre", q.Genre)
	}
	if q.Location != "" {
		v.Set("location", q.Location)
	}
	var list model.ListBooks
	_, code, err := s.do(ctx, call{name: "ListBooks", method: http.MethodGet, path: "/book", query: v}, &list)
	return list, code, err
}

func (s *Service) GetBook(ctx context.Context, id string) (model.Book, int, error) {
	var body model.GetBook
	_, code, err := s.do(ctx, call{name: "GetBook", method: http.MethodGet, path: "/book/" + url.PathEscape(id)}, &body)
	return body.Data, code, err
}

// CreateBook posts the form as multipart with repeated `genres` fields and the cover as `bookImage`.
func (s *Service) CreateBook(ctx context.Context, form model.BookForm, img *model.Image) (model.Book, int, error) {
	body, contentType, err := bookMultipart(form, "genres", "bookImage", img)
	if err != nil {
		return model.Book{}, http.StatusBadRequest, err
	}
	var created model.GetBook
	_, code, err := s.do(ctx, call{
		name: "CreateBook", method: http.MethodPost, path: "/book",
		body: body, contentType: contentType,
	}, &created)
	return created.Data, code, err
}

// UpdateBook puts the form as multipart; the API names the fields `genre` and `imageUrl` here.
func (s *Service) UpdateBook(ctx context.Context, id string, form model.BookForm, img *model.Image) (model.Book, int, error) {
	body, contentType, err := bookMultipart(form, "genre", "imageUrl", img)
	if err != nil {
		return model.Book{}, http.StatusBadRequest, err
	}
	var updated model.GetBook
	_, code, err := s.do(ctx, call{
		name: "UpdateBook", method: http.MethodPut, path: "/book/" + url.PathEscape(id),
		body: body, contentType: contentType,
	}, &updated)
	return updated.Data, code, err
}

func (s *Service) DeleteBook(ctx context.Context, id string) (int, error) {
	_, code, err := s.do(ctx, call{name: "DeleteBook", method: http.MethodDelete, path: "/book/" + url.PathEscape(id)}, nil)
	return code, err
}

func (s *Service) MarkReturned(ctx context.Context, id string) (int, error) {
	_, code, err := s.do(ctx, call{
		name: "MarkReturned", method: http.MethodPut, path: "/book/" + url.PathEscape(id) + "/mark-returned",
	}, nil)
	return code, err
}

func (s *Service) books(ctx context.Context, name, path string) ([]model.Book, int, error) {
	var list model.ListBooks
	_, code, err := s.do(ctx, call{name: name, method: http.MethodGet, path: path}, &list)
	return list.Data, code, err
}

func (s *Service) OwnedBooks(ctx context.Context) ([]model.Book, int, error) {
	return s.books(ctx, "OwnedBooks", "/book/owned/me")
}

func (s *Service) BorrowedBooks(ctx context.Context) ([]model.Book, int, error) {
	return s.books(ctx, "BorrowedBooks", "/book/borrowed/me")
}

func (s *Service) MyBooks(ctx context.Context) ([]model.Book, int, error) {
	return s.books(ctx, "MyBooks", "/my-books")
}

func (s *Service) RentedBooks(ctx context.Context) ([]model.Book, int, error) {
	return s.books(ctx, "RentedBooks", "/my-rented-books")
}

func (s *Service) ExchangedBooks(ctx context.Context) ([]model.Book, int, error) {
	return s.books(ctx, "ExchangedBooks", "/my-exchanged-books")
}

func bookMultipart(form model.BookForm, genreField, imageField string, img *model.Image) (*bytes.Buffer, string, error) {
	buf := bytes.NewBuffer(nil)
	w := multipart.NewWriter(buf)
	fields := []struct{ k, v string }{
		{"title", form.Title},
		{"author", form.Author},
		{"location", form.Location},
		{"description", form.Description},
	}
	for _, f := range fields {
		if err := w.WriteField(f.k, f.v); err != nil {
			return nil, "", err
		}
	}
	for _, g := range form.Genres {
		if err := w.WriteField(genreField, g); err != nil {
			return nil, "", err
		}
	}
	if img != nil && len(img.Data) > 0 {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, imageField, img.FileName))
		ct := img.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, "", errors.Wrap(err, "write image part")
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
