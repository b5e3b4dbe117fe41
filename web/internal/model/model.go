package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

type Role string

const (
	RoleSeeker Role = "seeker"
	RoleOwner  Role = "owner"
)

type BookStatus string

const (
	BookAvailable BookStatus = "available"
	BookRented    BookStatus = "rented"
	BookExchanged BookStatus = "exchanged"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestRejected  RequestStatus = "rejected"
	RequestCancelled RequestStatus = "cancelled"
)

type RequestKind string

const (
	KindRent     RequestKind = "rent"
	KindExchange RequestKind = "exchange"
)

type User struct {
	ID          string `json:"_id"`
	Name        string `json:"name,omitempty"`
	FullName    string `json:"fullName,omitempty"`
	EmailID     string `json:"emailId,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	PhotoURL    string `json:"photoUrl,omitempty"`
	Role        Role   `json:"role,omitempty"`
}

func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Name
}

// UserRef is a user reference the API sends either as a bare id or as a populated document.
type UserRef struct {
	User
}

func (r *UserRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.HasPrefix(b, []byte(`"`)) {
		return json.Unmarshal(b, &r.User.ID)
	}
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	return json.Unmarshal(b, &r.User)
}

type BookRef struct {
	ID     string `json:"_id"`
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
}

func (r *BookRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.HasPrefix(b, []byte(`"`)) {
		return json.Unmarshal(b, &r.ID)
	}
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	type plain BookRef
	return json.Unmarshal(b, (*plain)(r))
}

// Genres accepts both a single string and a list.
type Genres []string

func (g *Genres) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.HasPrefix(b, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s != "" {
			*g = Genres{s}
		}
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*g = list
	return nil
}

func (g Genres) String() string {
	return strings.Join(g, ", ")
}

type Book struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	Genre       Genres     `json:"genre,omitempty"`
	Genres      Genres     `json:"genres,omitempty"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Status      BookStatus `json:"status"`
	Owner       UserRef    `json:"ownerId"`
	Requests    []Request  `json:"requests,omitempty"`
}

func (b Book) GenreList() Genres {
	if len(b.Genres) > 0 {
		return b.Genres
	}
	return b.Genre
}

type Request struct {
	ID          string        `json:"_id"`
	Book        BookRef       `json:"book"`
	Requester   UserRef       `json:"requester"`
	RequesterID UserRef       `json:"requesterId"`
	Owner       UserRef       `json:"owner"`
	Kind        RequestKind   `json:"type"`
	Status      RequestStatus `json:"status"`
}

// RequesterUserID returns the requester id regardless of which field the API populated.
func (r Request) RequesterUserID() string {
	if r.Requester.ID != "" {
		return r.Requester.ID
	}
	return r.RequesterID.ID
}

type Stats struct {
	OwnedCount     int `json:"ownedCount"`
	ExchangedCount int `json:"exchangedCount"`
	BorrowedCount  int `json:"borrowedCount"`
}

type ListBooks struct {
	Data  []Book `json:"data"`
	Total int    `json:"total"`
}

type GetBook struct {
	Data Book `json:"data"`
}

type ListRequests struct {
	Data []Request `json:"data"`
}

type GetRequest struct {
	Data Request `json:"data"`
}

type Message struct {
	Message string `json:"message"`
}

// Auth is the outcome of login, signup or logout: the user the API answered with
// and the Set-Cookie values that must reach the browser.
type Auth struct {
	User    User
	Cookies []string
}
