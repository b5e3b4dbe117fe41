package handler

import (
	"context"

	"github.com/Astemirdum/shelfshare/pkg/kafka"
	"github.com/Astemirdum/shelfshare/web/internal/lifecycle"
	"github.com/Astemirdum/shelfshare/web/internal/model"
	"github.com/Astemirdum/shelfshare/web/internal/service/shelf"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ ShelfService = (*shelf.Service)(nil)
	_ ActivityLog  = (*activityLog)(nil)
)

type ShelfService interface {
	Login(ctx context.Context, req model.LoginRequest) (model.Auth, int, error)
	Signup(ctx context.Context, req model.SignupRequest) (model.Auth, int, error)
	Logout(ctx context.Context) (model.Auth, int, error)
	Profile(ctx context.Context) (model.User, int, error)
	EditProfile(ctx context.Context, req model.EditProfileRequest) (model.User, int, error)
	ChangePassword(ctx context.Context, req model.ChangePasswordRequest) (int, error)
	UserStats(ctx context.Context) (model.Stats, int, error)

	ListBooks(ctx context.Context, q model.BookQuery) (model.ListBooks, int, error)
	GetBook(ctx context.Context, id string) (model.Book, int, error)
	CreateBook(ctx context.Context, form model.BookForm, img *model.Image) (model.Book, int, error)
	UpdateBook(ctx context.Context, id string, form model.BookForm, img *model.Image) (model.Book, int, error)
	DeleteBook(ctx context.Context, id string) (int, error)
	MarkReturned(ctx context.Context, id string) (int, error)
	OwnedBooks(ctx context.Context) ([]model.Book, int, error)
	BorrowedBooks(ctx context.Context) ([]model.Book, int, error)
	MyBooks(ctx context.Context) ([]model.Book, int, error)
	RentedBooks(ctx context.Context) ([]model.Book, int, error)
	ExchangedBooks(ctx context.Context) ([]model.Book, int, error)

	CreateRequest(ctx context.Context, req model.CreateRequestRequest) (model.Request, int, error)
	SentRequests(ctx context.Context) ([]model.Request, int, error)
	ReceivedRequests(ctx context.Context) ([]model.Request, int, error)
	ActOnRequest(ctx context.Context, id string, action lifecycle.Action) (int, error)
}

type ActivityLog interface {
	Log(e kafka.Event) error
}
