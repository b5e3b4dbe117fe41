// Package lifecycle holds the state machine of a borrow/exchange request as the
// web client observes it. The remote API enforces it; here it only decides which
// actions a page may offer.
package lifecycle

import (
	"github.com/Astemirdum/shelfshare/web/internal/errs"
	"github.com/Astemirdum/shelfshare/web/internal/model"
	"github.com/pkg/errors"
)

type Action string

const (
	Accept Action = "accept"
	Reject Action = "reject"
	Cancel Action = "cancel"
)

// Party is the side of a request the viewer is on.
type Party string

const (
	Owner     Party = "owner"
	Requester Party = "requester"
)

type transition struct {
	from model.RequestStatus
	by   Party
	do   Action
}

var transitions = map[transition]model.RequestStatus{
	{model.RequestPending, Owner, Accept}:     model.RequestAccepted,
	{model.RequestPending, Owner, Reject}:     model.RequestRejected,
	{model.RequestPending, Requester, Cancel}: model.RequestCancelled,
}

var actionOrder = []Action{Accept, Reject, Cancel}

func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case Accept, Reject, Cancel:
		return a, nil
	}
	return "", errors.Wrapf(errs.ErrUnknownAction, "%q", s)
}

// Terminal reports whether no further transition is possible from s.
func Terminal(s model.RequestStatus) bool {
	return s != model.RequestPending
}

// Actions lists what party may do with a request in status s, in display order.
func Actions(s model.RequestStatus, party Party) []Action {
	var out []Action
	for _, a := range actionOrder {
		if _, ok := transitions[transition{from: s, by: party, do: a}]; ok {
			out = append(out, a)
		}
	}
	return out
}

func Next(s model.RequestStatus, a Action, party Party) (model.RequestStatus, error) {
	next, ok := transitions[transition{from: s, by: party, do: a}]
	if !ok {
		return s, errors.Wrapf(errs.ErrIllegalTransition, "%s by %s from %s", a, party, s)
	}
	return next, nil
}

// PartyOf maps the received tab to the owner side and the sent tab to the requester side.
func PartyOf(received bool) Party {
	if received {
		return Owner
	}
	return Requester
}

// PendingRequestOf finds the pending request userID holds on a book.
func PendingRequestOf(book model.Book, userID string) (model.Request, bool) {
	for _, r := range book.Requests {
		if r.RequesterUserID() == userID && r.Status == model.RequestPending {
			return r, true
		}
	}
	return model.Request{}, false
}

// HasRequested reports whether userID ever requested the book, whatever the outcome.
func HasRequested(book model.Book, userID string) bool {
	for _, r := range book.Requests {
		if r.RequesterUserID() == userID {
			return true
		}
	}
	return false
}

// CanRequest reports whether a new rent/exchange request may be offered to userID.
func CanRequest(book model.Book, userID string) bool {
	if book.Status != model.BookAvailable || book.Owner.ID == userID {
		return false
	}
	_, pending := PendingRequestOf(book, userID)
	return !pending
}
