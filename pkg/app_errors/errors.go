package apperrors

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrSessionNotFound     = errors.New("session not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrTokenNotFound       = errors.New("token not found or expired")
	ErrInternalServerError = errors.New("internal server error")
)
