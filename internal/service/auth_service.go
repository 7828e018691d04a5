package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-gin-attendance-log/config"
	"go-gin-attendance-log/internal/cache"
	"go-gin-attendance-log/internal/model"
	"go-gin-attendance-log/internal/notify"
	"go-gin-attendance-log/internal/repository"
	apperrors "go-gin-attendance-log/pkg/app_errors"
	"go-gin-attendance-log/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*model.Session, error)
	SignIn(ctx context.Context, email, password string) (*model.Session, error)
	SignOut(ctx context.Context, token string) error
	// Authenticate resolves a session token to its session.
	Authenticate(ctx context.Context, token string) (*model.Session, error)
	// Me reloads the signed-in user, so EmailVerified reflects the store rather than the session.
	Me(ctx context.Context, userID uuid.UUID) (*model.CurrentUser, error)
	// RequestPasswordReset mails a reset token; unknown emails succeed silently.
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	SendEmailVerification(ctx context.Context, user model.CurrentUser) error
	VerifyEmail(ctx context.Context, token string) error
}

type AuthServiceImpl struct {
	users    repository.UserRepository
	sessions cache.SessionStore
	tokens   cache.TokenStore
	mailer   notify.Mailer
	cfg      config.AuthConfig
}

func NewAuthService(users repository.UserRepository, sessions cache.SessionStore, tokens cache.TokenStore, mailer notify.Mailer, cfg config.AuthConfig) AuthService {
	return &AuthServiceImpl{users: users, sessions: sessions, tokens: tokens, mailer: mailer, cfg: cfg}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthServiceImpl) hash(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", fmt.Errorf("password shorter than %d: %w", minPasswordLength, apperrors.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *AuthServiceImpl) SignUp(ctx context.Context, email, password string) (*model.Session, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, apperrors.ErrInvalidInput
	}
	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &model.User{ID: uuid.New(), Email: email, PasswordHash: hash})
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Create(ctx, user.Current(), s.cfg.SessionTTL)
	if err != nil {
		return nil, err
	}

	if err := s.SendEmailVerification(ctx, user.Current()); err != nil {
		logger.WithComponent("auth").Warn("send verification failed", zap.String("user_id", user.ID.String()), zap.Error(err))
	}
	return session, nil
}

func (s *AuthServiceImpl) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return s.sessions.Create(ctx, user.Current(), s.cfg.SessionTTL)
}

func (s *AuthServiceImpl) SignOut(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthorized
	}
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return session, nil
}

func (s *AuthServiceImpl) Me(ctx context.Context, userID uuid.UUID) (*model.CurrentUser, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	current := user.Current()
	return &current, nil
}

func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil
		}
		return err
	}

	token, err := s.tokens.Issue(ctx, cache.PurposePasswordReset, user.ID, s.cfg.ResetTokenTTL)
	if err != nil {
		return err
	}
	return s.mailer.Send(ctx, notify.Message{
		To:      user.Email,
		Subject: "Reset your password",
		Body:    "Use this token to choose a new password: " + token,
	})
}

func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	hash, err := s.hash(newPassword)
	if err != nil {
		return err
	}
	userID, err := s.tokens.Consume(ctx, cache.PurposePasswordReset, token)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, hash)
}

func (s *AuthServiceImpl) SendEmailVerification(ctx context.Context, user model.CurrentUser) error {
	if user.EmailVerified {
		return nil
	}
	token, err := s.tokens.Issue(ctx, cache.PurposeVerifyEmail, user.ID, s.cfg.VerifyTokenTTL)
	if err != nil {
		return err
	}
	return s.mailer.Send(ctx, notify.Message{
		To:      user.Email,
		Subject: "Verify your email",
		Body:    "Use this token to verify your email: " + token,
	})
}

func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	userID, err := s.tokens.Consume(ctx, cache.PurposeVerifyEmail, token)
	if err != nil {
		return err
	}
	return s.users.MarkEmailVerified(ctx, userID)
}
