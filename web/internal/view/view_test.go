package view_test

import (
	"bytes"
	"testing"

	"github.com/Astemirdum/shelfshare/web/internal/model"
	"github.com/Astemirdum/shelfshare/web/internal/session"
	"github.com/Astemirdum/shelfshare/web/internal/view"
	"github.com/stretchr/testify/require"
)

func TestRenderer(t *testing.T) {
	t.Parallel()
	r, err := view.New()
	require.NoError(t, err)

	u := model.User{ID: "u1", Name: "ann", Role: model.RoleOwner}
	var buf bytes.Buffer
	err = r.Render(&buf, "landing", view.Page{
		Session: session.Session{User: &u},
		Toasts:  []view.Toast{{Kind: view.ToastError, Text: "<b>boom</b>"}},
	}, nil)
	require.NoError(t, err)
	require.Contains(t, buf.String(), `href="/book/new"`)
	require.Contains(t, buf.String(), "toast-error")
	require.Contains(t, buf.String(), "&lt;b&gt;boom&lt;/b&gt;")

	buf.Reset()
	require.NoError(t, r.Render(&buf, "login", view.Page{Data: struct{ Name, EmailID string }{EmailID: "a@b.c"}}, nil))
	require.Contains(t, buf.String(), `value="a@b.c"`)
	require.NotContains(t, buf.String(), "Logout")
	require.Contains(t, buf.String(), `href="/forgot-password"`)

	require.Error(t, r.Render(&buf, "missing", view.Page{}, nil))
}
