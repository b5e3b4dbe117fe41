// Package view renders the server-side pages.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/Astemirdum/shelfshare/web/internal/session"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var files embed.FS

const layout = "templates/layout.html"

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is a transient notification shown on top of a page.
type Toast struct {
	Kind ToastKind
	Text string
}

type Page struct {
	Title   string
	Session session.Session
	Toasts  []Toast
	Data    any
}

type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"join":  strings.Join,
	"title": func(v any) string { return strings.Title(fmt.Sprint(v)) }, //nolint:staticcheck
}

// New parses every page template together with the shared layout.
func New() (*Renderer, error) {
	names, err := fs.Glob(files, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		if name == layout {
			continue
		}
		t, err := template.New(path.Base(layout)).Funcs(funcs).ParseFS(files, layout, name)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", name)
		}
		r.pages[strings.TrimSuffix(path.Base(name), ".html")] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return errors.Errorf("view %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
