package model

type LoginRequest struct {
	EmailID  string `json:"emailId" form:"emailId" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type SignupRequest struct {
	Name            string `json:"name" form:"name" validate:"required"`
	EmailID         string `json:"emailId" form:"emailId" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required"`
	ConfirmPassword string `json:"-" form:"confirmPassword" validate:"eqfield=Password"`
}

type EditProfileRequest struct {
	FullName    string `json:"fullName" form:"fullName"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" form:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" form:"newPassword" validate:"required,nefield=CurrentPassword"`
}

const FeedPageSize = 10

type BookQuery struct {
	Page     int    `query:"page"`
	Limit    int    `query:"-"`
	Title    string `query:"title"`
	Genre    string `query:"genre"`
	Location string `query:"location"`
}

func (q *BookQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = FeedPageSize
	}
}

type BookForm struct {
	Title       string   `form:"title" validate:"required"`
	Author      string   `form:"author" validate:"required"`
	Genres      []string `form:"genres"`
	Location    string   `form:"location" validate:"required"`
	Description string   `form:"description"`
}

// Image is an uploaded cover forwarded to the API as a multipart file part.
type Image struct {
	FileName    string
	ContentType string
	Data        []byte
}

type CreateRequestRequest struct {
	BookID string      `json:"bookId" validate:"required"`
	Kind   RequestKind `json:"type" form:"type" validate:"required,oneof=rent exchange"`
}
