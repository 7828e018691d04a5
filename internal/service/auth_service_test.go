package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go-gin-attendance-log/config"
	"go-gin-attendance-log/internal/cache"
	cacheMocks "go-gin-attendance-log/internal/cache/mocks"
	"go-gin-attendance-log/internal/model"
	"go-gin-attendance-log/internal/notify"
	notifyMocks "go-gin-attendance-log/internal/notify/mocks"
	repoMocks "go-gin-attendance-log/internal/repository/mocks"
	"go-gin-attendance-log/internal/service"
	apperrors "go-gin-attendance-log/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	users    *repoMocks.MockUserRepository
	sessions *cacheMocks.MockSessionStore
	tokens   *cacheMocks.MockTokenStore
	mailer   *notifyMocks.MockMailer
}

func setupAuthService(t *testing.T) (service.AuthService, authMocks, config.AuthConfig) {
	m := authMocks{
		users:    repoMocks.NewMockUserRepository(t),
		sessions: cacheMocks.NewMockSessionStore(t),
		tokens:   cacheMocks.NewMockTokenStore(t),
		mailer:   notifyMocks.NewMockMailer(t),
	}
	cfg := config.LoadTestConfig().Auth
	return service.NewAuthService(m.users, m.sessions, m.tokens, m.mailer, cfg), m, cfg
}

func hashed(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - creates user, session and verification mail", func(t *testing.T) {
		svc, m, cfg := setupAuthService(t)

		m.users.EXPECT().Create(ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "fan@example.com" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) == nil
		})).RunAndReturn(func(_ context.Context, u *model.User) (*model.User, error) {
			return u, nil
		}).Once()
		m.sessions.EXPECT().Create(ctx, mock.AnythingOfType("model.CurrentUser"), cfg.SessionTTL).
			RunAndReturn(func(_ context.Context, u model.CurrentUser, _ time.Duration) (*model.Session, error) {
				return &model.Session{Token: "tok", User: u}, nil
			}).Once()
		m.tokens.EXPECT().Issue(ctx, cache.PurposeVerifyEmail, mock.Anything, cfg.VerifyTokenTTL).Return("verify-tok", nil).Once()
		m.mailer.EXPECT().Send(ctx, mock.MatchedBy(func(msg notify.Message) bool {
			return msg.To == "fan@example.com" && strings.Contains(msg.Body, "verify-tok")
		})).Return(nil).Once()

		session, err := svc.SignUp(ctx, "  Fan@Example.com ", "secret1")

		require.NoError(t, err)
		assert.Equal(t, "tok", session.Token)
		assert.Equal(t, "fan@example.com", session.User.Email)
		assert.False(t, session.User.EmailVerified)
	})

	t.Run("Success - verification mail failure does not fail sign up", func(t *testing.T) {
		svc, m, _ := setupAuthService(t)

		m.users.EXPECT().Create(ctx, mock.Anything).RunAndReturn(func(_ context.Context, u *model.User) (*model.User, error) {
			return u, nil
		}).Once()
		m.sessions.EXPECT().Create(ctx, mock.Anything, mock.Anything).Return(&model.Session{Token: "tok"}, nil).Once()
		m.tokens.EXPECT().Issue(ctx, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("redis down")).Once()

		session, err := svc.SignUp(ctx, "fan@example.com", "secret1")

		require.NoError(t, err)
		assert.Equal(t, "tok", session.Token)
	})

	t.Run("Failed - short password", func(t *testing.T) {
		svc, m, _ := setupAuthService(t)

		_, err := svc.SignUp(ctx, "fan@example.com", "12345")

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		m.users.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - empty email", func(t *testing.T) {
		svc, _, _ := setupAuthService(t)

		_, err := svc.SignUp(ctx, "   ", "secret1")

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - email taken", func(t *testing.T) {
		svc, m, _ := setupAuthService(t)

		m.users.EXPECT().Create(ctx, mock.Anything).Return(nil, apperrors.ErrEmailTaken).Once()

		_, err := svc.SignUp(ctx, "fan@example.com", "secret1")

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
		m.sessions.AssertNotCalled(t, "Create")
	})
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()
	user := &model.User{ID: uuid.New(), Email: "fan@example.com", EmailVerified: true}

	t.Run("Success - correct password", func(t *testing.T) {
		svc, m, cfg := setupAuthService(t)
		u := *user
		u.PasswordHash = hashed(t, "secret1")

		m.users.EXPECT().FindByEmail(ctx, "fan@example.com").Return(&u, nil).Once()
		m.sessions.EXPECT().Create(ctx, u.Current(), cfg.SessionTTL).Return(&model.Session{Token: "tok", User: u.Current()}, nil).Once()

		session, err := svc.SignIn(ctx, "FAN@example.com", "secret1")

		require.NoError(t, err)
		assert.True(t, session.User.EmailVerified)
	})

	t.Run("Failed - wrong password", func(t *testing.T) {
		svc, m, _ := setupAuthService(t)
		u := *user
		u.PasswordHash = hashed(t, "secret1")

		m.users.EXPECT().FindByEmail(ctx, "fan@example.com").Return(&u, nil).Once()

		_, err := svc.SignIn(ctx, "fan@example.com", "wrong-password")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("Failed - unknown email", func(t *testing.T) {
		svc, m, _ := setupAuthService(t)

		m.users.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, apperrors.ErrUserNotFound).Once()

		_, err := svc.SignIn(ctx, "nobody@example.com", "secret1")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m, _ := setupAuthService(t)
		m.sessions.EXPECT().Get(ctx, "tok").Return(&model.Session{Token: "tok"}, nil).Once()

		session, err := svc.Authenticate(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, "tok", session.Token)
	})

	t.Run("Failed - empty token", func(t *testing.T) {
		svc, _, _ := setupAuthService(t)

		_, err := svc.Authenticate(ctx, "")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Failed - expired session", func(t *testing.T) {
		svc, m, _ := setupAuthService(t)
		m.sessions.EXPECT().Get(ctx, "old").Return(nil, apperrors.ErrSessionNotFound).Once()

		_, err := svc.Authenticate(ctx, "old")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Failed - store error passes through", func(t *testing.T) {
		svc, m, _ := setupAuthService(t)
		m.sessions.EXPECT().Get(ctx, "tok").Return(nil, errors.New("redis down")).Once()

		_, err := svc.Authenticate(ctx, "tok")

		assert.EqualError(t, err, "redis down")
	})
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success - reflects verification after sign in", func(t *testing.T) {
		svc, m, _ := setupAuthService(t)
		m.users.EXPECT().FindByID(ctx, userID).Return(&model.User{ID: userID, Email: "fan@example.com", EmailVerified: true}, nil).Once()

		user, err := svc.Me(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, model.CurrentUser{ID: userID, Email: "fan@example.com", EmailVerified: true}, *user)
	})

	t.Run("Failed - ErrUserNotFound", func(t *testing.T) {
		svc, m, _ := setupAuthService(t)
		m.users.EXPECT().FindByID(ctx, userID).Return(nil, apperrors.ErrUserNotFound).Once()

		_, err := svc.Me(ctx, userID)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestAuthService_PasswordReset(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success - request mails a token", func(t *testing.T) {
		svc, m, cfg := setupAuthService(t)

		m.users.EXPECT().FindByEmail(ctx, "fan@example.com").Return(&model.User{ID: userID, Email: "fan@example.com"}, nil).Once()
		m.tokens.EXPECT().Issue(ctx, cache.PurposePasswordReset, userID, cfg.ResetTokenTTL).Return("reset-tok", nil).Once()
		m.mailer.EXPECT().Send(ctx, mock.MatchedBy(func(msg notify.Message) bool {
			return strings.Contains(msg.Body, "reset-tok")
		})).Return(nil).Once()

		require.NoError(t, svc.RequestPasswordReset(ctx, "fan@example.com"))
	})

	t.Run("Success - unknown email is silent", func(t *testing.T) {
		svc, m, _ := setupAuthService(t)

		m.users.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, apperrors.ErrUserNotFound).Once()

		require.NoError(t, svc.RequestPasswordReset(ctx, "nobody@example.com"))
		m.mailer.AssertNotCalled(t, "Send")
	})

	t.Run("Success - reset stores a new hash", func(t *testing.T) {
		svc, m, _ := setupAuthService(t)

		m.tokens.EXPECT().Consume(ctx, cache.PurposePasswordReset, "reset-tok").Return(userID, nil).Once()
		m.users.EXPECT().UpdatePassword(ctx, userID, mock.MatchedBy(func(hash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("newsecret")) == nil
		})).Return(nil).Once()

		require.NoError(t, svc.ResetPassword(ctx, "reset-tok", "newsecret"))
	})

	t.Run("Failed - used token", func(t *testing.T) {
		svc, m, _ := setupAuthService(t)

		m.tokens.EXPECT().Consume(ctx, cache.PurposePasswordReset, "reset-tok").Return(uuid.Nil, apperrors.ErrTokenNotFound).Once()

		err := svc.ResetPassword(ctx, "reset-tok", "newsecret")

		assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
		m.users.AssertNotCalled(t, "UpdatePassword")
	})

	t.Run("Failed - short password keeps the token", func(t *testing.T) {
		svc, m, _ := setupAuthService(t)

		err := svc.ResetPassword(ctx, "reset-tok", "123")

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		m.tokens.AssertNotCalled(t, "Consume")
	})
}

func TestAuthService_EmailVerification(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success - already verified sends nothing", func(t *testing.T) {
		svc, m, _ := setupAuthService(t)

		err := svc.SendEmailVerification(ctx, model.CurrentUser{ID: userID, EmailVerified: true})

		require.NoError(t, err)
		m.tokens.AssertNotCalled(t, "Issue")
	})

	t.Run("Success - verify marks the user", func(t *testing.T) {
		svc, m, _ := setupAuthService(t)

		m.tokens.EXPECT().Consume(ctx, cache.PurposeVerifyEmail, "verify-tok").Return(userID, nil).Once()
		m.users.EXPECT().MarkEmailVerified(ctx, userID).Return(nil).Once()

		require.NoError(t, svc.VerifyEmail(ctx, "verify-tok"))
	})

	t.Run("Failed - unknown token", func(t *testing.T) {
		svc, m, _ := setupAuthService(t)

		m.tokens.EXPECT().Consume(ctx, cache.PurposeVerifyEmail, "bad").Return(uuid.Nil, apperrors.ErrTokenNotFound).Once()

		assert.ErrorIs(t, svc.VerifyEmail(ctx, "bad"), apperrors.ErrTokenNotFound)
	})
}
