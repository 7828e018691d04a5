package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Email         string    `json:"email" db:"email"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	EmailVerified bool      `json:"email_verified" db:"email_verified"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// CurrentUser is what the identity provider exposes about a signed-in user.
type CurrentUser struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
}

func (u *User) Current() CurrentUser {
	return CurrentUser{ID: u.ID, Email: u.Email, EmailVerified: u.EmailVerified}
}

// Session lives from sign-in to sign-out and is passed explicitly to whoever needs it.
type Session struct {
	Token     string      `json:"token"`
	User      CurrentUser `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// SignUpRequest / SignInRequest carry credentials.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
