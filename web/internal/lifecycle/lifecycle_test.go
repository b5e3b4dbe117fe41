package lifecycle_test

import (
	"testing"

	"github.com/Astemirdum/shelfshare/web/internal/errs"
	"github.com/Astemirdum/shelfshare/web/internal/lifecycle"
	"github.com/Astemirdum/shelfshare/web/internal/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		from    model.RequestStatus
		action  lifecycle.Action
		party   lifecycle.Party
		want    model.RequestStatus
		wantErr bool
	}{
		{name: "owner accepts", from: model.RequestPending, action: lifecycle.Accept, party: lifecycle.Owner, want: model.RequestAccepted},
		{name: "owner rejects", from: model.RequestPending, action: lifecycle.Reject, party: lifecycle.Owner, want: model.RequestRejected},
		{name: "requester cancels", from: model.RequestPending, action: lifecycle.Cancel, party: lifecycle.Requester, want: model.RequestCancelled},
		{name: "requester cannot accept", from: model.RequestPending, action: lifecycle.Accept, party: lifecycle.Requester, wantErr: true},
		{name: "owner cannot cancel", from: model.RequestPending, action: lifecycle.Cancel, party: lifecycle.Owner, wantErr: true},
		{name: "accepted is terminal", from: model.RequestAccepted, action: lifecycle.Reject, party: lifecycle.Owner, wantErr: true},
		{name: "rejected is terminal", from: model.RequestRejected, action: lifecycle.Accept, party: lifecycle.Owner, wantErr: true},
		{name: "cancelled is terminal", from: model.RequestCancelled, action: lifecycle.Cancel, party: lifecycle.Requester, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := lifecycle.Next(tt.from, tt.action, tt.party)
			if tt.wantErr {
				require.True(t, errors.Is(err, errs.ErrIllegalTransition))
				require.Equal(t, tt.from, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestActions(t *testing.T) {
	t.Parallel()
	require.Equal(t, []lifecycle.Action{lifecycle.Accept, lifecycle.Reject}, lifecycle.Actions(model.RequestPending, lifecycle.Owner))
	require.Equal(t, []lifecycle.Action{lifecycle.Cancel}, lifecycle.Actions(model.RequestPending, lifecycle.Requester))
	for _, s := range []model.RequestStatus{model.RequestAccepted, model.RequestRejected, model.RequestCancelled} {
		require.True(t, lifecycle.Terminal(s))
		require.Empty(t, lifecycle.Actions(s, lifecycle.Owner))
		require.Empty(t, lifecycle.Actions(s, lifecycle.Requester))
	}
	require.Equal(t, lifecycle.Owner, lifecycle.PartyOf(true))
	require.Equal(t, lifecycle.Requester, lifecycle.PartyOf(false))
}

func TestActions_MatchNext(t *testing.T) {
	t.Parallel()
	statuses := []model.RequestStatus{model.RequestPending, model.RequestAccepted, model.RequestRejected, model.RequestCancelled}
	all := []lifecycle.Action{lifecycle.Accept, lifecycle.Reject, lifecycle.Cancel}
	for _, s := range statuses {
		for _, party := range []lifecycle.Party{lifecycle.Owner, lifecycle.Requester} {
			offered := lifecycle.Actions(s, party)
			for _, a := range all {
				_, err := lifecycle.Next(s, a, party)
				require.Equal(t, err == nil, contains(offered, a), "%s by %s from %s", a, party, s)
			}
		}
	}
}

func contains(list []lifecycle.Action, a lifecycle.Action) bool {
	for _, x := range list {
		if x == a {
			return true
		}
	}
	return false
}

func TestParseAction(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"accept", "reject", "cancel"} {
		a, err := lifecycle.ParseAction(s)
		require.NoError(t, err)
		require.Equal(t, lifecycle.Action(s), a)
	}
	_, err := lifecycle.ParseAction("approve")
	require.True(t, errors.Is(err, errs.ErrUnknownAction))
}

func TestCanRequest(t *testing.T) {
	t.Parallel()
	owner := model.UserRef{User: model.User{ID: "owner"}}
	pendingByMe := model.Request{ID: "r1", RequesterID: model.UserRef{User: model.User{ID: "me"}}, Status: model.RequestPending}
	rejectedForMe := model.Request{ID: "r2", Requester: model.UserRef{User: model.User{ID: "me"}}, Status: model.RequestRejected}

	tests := []struct {
		name   string
		book   model.Book
		viewer string
		want   bool
	}{
		{name: "available", book: model.Book{Status: model.BookAvailable, Owner: owner}, viewer: "me", want: true},
		{name: "rented", book: model.Book{Status: model.BookRented, Owner: owner}, viewer: "me"},
		{name: "own book", book: model.Book{Status: model.BookAvailable, Owner: owner}, viewer: "owner"},
		{name: "already pending", book: model.Book{Status: model.BookAvailable, Owner: owner, Requests: []model.Request{pendingByMe}}, viewer: "me"},
		{name: "rejected earlier may ask again", book: model.Book{Status: model.BookAvailable, Owner: owner, Requests: []model.Request{rejectedForMe}}, viewer: "me", want: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, lifecycle.CanRequest(tt.book, tt.viewer))
		})
	}

	book := model.Book{Requests: []model.Request{rejectedForMe, pendingByMe}}
	r, ok := lifecycle.PendingRequestOf(book, "me")
	require.True(t, ok)
	require.Equal(t, "r1", r.ID)
	require.True(t, lifecycle.HasRequested(model.Book{Requests: []model.Request{rejectedForMe}}, "me"))
	require.False(t, lifecycle.HasRequested(book, "stranger"))
}
