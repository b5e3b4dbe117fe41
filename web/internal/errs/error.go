package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrIllegalTransition = errors.New("illegal request transition")
	ErrUnknownAction     = errors.New("unknown request action")
	ErrNotOwner          = errors.New("you are not authorized to edit this book")
	ErrNoPendingRequest  = errors.New("no pending request for this book")
	ErrPasswordMismatch  = errors.New("Passwords do not match.")                                //nolint:stylecheck
	ErrPasswordRequired  = errors.New("Both current and new passwords are required.")           //nolint:stylecheck
	ErrPasswordUnchanged = errors.New("New password should be different from the current one.") //nolint:stylecheck
)

// UpstreamError is a non-2xx answer of the remote API.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream: %d %s", e.Status, http.StatusText(e.Status))
	}
	return e.Message
}

// Message returns the upstream message when err carries one, else fallback.
func Message(err error, fallback string) string {
	var ue *UpstreamError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	return fallback
}
