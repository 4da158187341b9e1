package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shopapi/internal/mailer"
	mailMocks "shopapi/internal/mailer/mocks"
	"shopapi/internal/model"
	"shopapi/internal/repository"
	repoMocks "shopapi/internal/repository/mocks"
	"shopapi/internal/security"
)

var authNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestAuth(t *testing.T) (*authService, *repoMocks.MockUserRepository, *mailMocks.MockMailer, *security.TokenIssuer) {
	t.Helper()
	mRepo := new(repoMocks.MockUserRepository)
	mMail := new(mailMocks.MockMailer)
	tokens := security.NewTokenIssuer("test-secret", "shopapi", time.Hour)
	svc := NewAuthService(mRepo, tokens, mMail, 10*time.Minute, zap.NewNop()).(*authService)
	svc.now = func() time.Time { return authNow }
	svc.newOTP = func() (string, error) { return "123456", nil }
	return svc, mRepo, mMail, tokens
}

func userWithCode(t *testing.T, code string, exp time.Time, active bool) *model.User {
	t.Helper()
	hash, err := security.HashPassword(code)
	require.NoError(t, err)
	pw, err := security.HashPassword("secret123")
	require.NoError(t, err)
	return &model.User{
		ID: "u-1", Name: "Ana", Email: "ana@example.com", Role: model.RoleUser,
		PasswordHash: pw, Active: active, VerificationCodeHash: hash, VerificationExpiresAt: &exp,
	}
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("creates inactive user and mails code", func(t *testing.T) {
		svc, mRepo, mMail, _ := newTestAuth(t)

		mRepo.On("FindByEmail", ctx, "ana@example.com").Return(nil, repository.ErrNotFound)
		mRepo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			return !u.Active &&
				u.Role == model.RoleUser &&
				u.VerificationExpiresAt.Equal(authNow.Add(10*time.Minute)) &&
				security.ComparePassword(u.VerificationCodeHash, "123456")
		})).Return(&model.User{ID: "u-1", Name: "Ana", Email: "ana@example.com"}, nil)
		mMail.On("Send", ctx, mock.MatchedBy(func(m mailer.Message) bool {
			return m.To == "ana@example.com" && m.Subject == "Verify your email" && strings.Contains(m.HTML, "123456")
		})).Return(nil)

		u, err := svc.SignUp(ctx, SignUpInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
		mRepo.AssertExpectations(t)
		mMail.AssertExpectations(t)
	})

	t.Run("email taken", func(t *testing.T) {
		svc, mRepo, mMail, _ := newTestAuth(t)
		mRepo.On("FindByEmail", ctx, "ana@example.com").Return(&model.User{ID: "u-1"}, nil)

		_, err := svc.SignUp(ctx, SignUpInput{Email: "ana@example.com", Password: "secret123"})
		assert.ErrorIs(t, err, ErrConflict)
		mMail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestAuthService_VerifyEmail(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		user    func(t *testing.T) *model.User
		code    string
		wantErr string
	}{
		{
			name:    "already active",
			user:    func(t *testing.T) *model.User { return userWithCode(t, "123456", authNow.Add(time.Minute), true) },
			code:    "123456",
			wantErr: "Account is already verified",
		},
		{
			name: "no code",
			user: func(t *testing.T) *model.User {
				return &model.User{ID: "u-1", Email: "ana@example.com"}
			},
			code:    "123456",
			wantErr: "No verification code was issued for this account",
		},
		{
			name:    "expired",
			user:    func(t *testing.T) *model.User { return userWithCode(t, "123456", authNow.Add(-time.Second), false) },
			code:    "123456",
			wantErr: "Verification code has expired",
		},
		{
			name:    "mismatch",
			user:    func(t *testing.T) *model.User { return userWithCode(t, "123456", authNow.Add(time.Minute), false) },
			code:    "654321",
			wantErr: "Invalid verification code",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mRepo, _, _ := newTestAuth(t)
			mRepo.On("FindByEmail", ctx, "ana@example.com").Return(tt.user(t), nil)

			err := svc.VerifyEmail(ctx, "ana@example.com", tt.code)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.EqualError(t, err, tt.wantErr)
		})
	}

	t.Run("unknown email", func(t *testing.T) {
		svc, mRepo, _, _ := newTestAuth(t)
		mRepo.On("FindByEmail", ctx, "x@example.com").Return(nil, repository.ErrNotFound)
		assert.ErrorIs(t, svc.VerifyEmail(ctx, "x@example.com", "1"), ErrInvalid)
	})

	t.Run("activates and clears code", func(t *testing.T) {
		svc, mRepo, _, _ := newTestAuth(t)
		mRepo.On("FindByEmail", ctx, "ana@example.com").
			Return(userWithCode(t, "123456", authNow.Add(time.Minute), false), nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Active && !u.HasVerificationCode()
		})).Return(&model.User{ID: "u-1"}, nil)

		require.NoError(t, svc.VerifyEmail(ctx, "ana@example.com", "123456"))
		mRepo.AssertExpectations(t)
	})
}

func TestAuthService_ResendOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("code still valid", func(t *testing.T) {
		svc, mRepo, _, _ := newTestAuth(t)
		mRepo.On("FindByEmail", ctx, "ana@example.com").
			Return(userWithCode(t, "111111", authNow.Add(time.Minute), false), nil)

		assert.ErrorIs(t, svc.ResendOTP(ctx, "ana@example.com"), ErrConflict)
	})

	t.Run("no code", func(t *testing.T) {
		svc, mRepo, _, _ := newTestAuth(t)
		mRepo.On("FindByEmail", ctx, "ana@example.com").Return(&model.User{ID: "u-1"}, nil)

		assert.ErrorIs(t, svc.ResendOTP(ctx, "ana@example.com"), ErrNotFound)
	})

	t.Run("expired code is replaced", func(t *testing.T) {
		svc, mRepo, mMail, _ := newTestAuth(t)
		mRepo.On("FindByEmail", ctx, "ana@example.com").
			Return(userWithCode(t, "111111", authNow.Add(-time.Minute), false), nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
			return security.ComparePassword(u.VerificationCodeHash, "123456")
		})).Return(&model.User{ID: "u-1"}, nil)
		mMail.On("Send", ctx, mock.Anything).Return(nil)

		require.NoError(t, svc.ResendOTP(ctx, "ana@example.com"))
		mRepo.AssertExpectations(t)
		mMail.AssertExpectations(t)
	})
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("returns token", func(t *testing.T) {
		svc, mRepo, _, tokens := newTestAuth(t)
		u := userWithCode(t, "1", authNow, true)
		mRepo.On("FindByEmail", ctx, "ana@example.com").Return(u, nil)

		token, err := svc.SignIn(ctx, "ANA@example.com", "secret123")
		require.NoError(t, err)

		claims, err := tokens.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.UserID())
		assert.Equal(t, model.RoleUser, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, mRepo, _, _ := newTestAuth(t)
		mRepo.On("FindByEmail", ctx, "ana@example.com").Return(userWithCode(t, "1", authNow, true), nil)

		_, err := svc.SignIn(ctx, "ana@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, mRepo, _, _ := newTestAuth(t)
		mRepo.On("FindByEmail", ctx, "x@example.com").Return(nil, repository.ErrNotFound)

		_, err := svc.SignIn(ctx, "x@example.com", "secret123")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("inactive", func(t *testing.T) {
		svc, mRepo, _, _ := newTestAuth(t)
		mRepo.On("FindByEmail", ctx, "ana@example.com").Return(userWithCode(t, "1", authNow, false), nil)

		_, err := svc.SignIn(ctx, "ana@example.com", "secret123")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("inactive", func(t *testing.T) {
		svc, mRepo, _, _ := newTestAuth(t)
		mRepo.On("FindByEmail", ctx, "ana@example.com").Return(&model.User{ID: "u-1", Active: false}, nil)
		assert.ErrorIs(t, svc.ForgotPassword(ctx, "ana@example.com"), ErrInvalid)
	})

	t.Run("pending code", func(t *testing.T) {
		svc, mRepo, _, _ := newTestAuth(t)
		mRepo.On("FindByEmail", ctx, "ana@example.com").
			Return(userWithCode(t, "1", authNow.Add(time.Minute), true), nil)
		assert.ErrorIs(t, svc.ForgotPassword(ctx, "ana@example.com"), ErrConflict)
	})

	t.Run("sends reset mail", func(t *testing.T) {
		svc, mRepo, mMail, _ := newTestAuth(t)
		mRepo.On("FindByEmail", ctx, "ana@example.com").Return(&model.User{ID: "u-1", Name: "Ana", Email: "ana@example.com", Active: true}, nil)
		mRepo.On("Update", ctx, mock.Anything).Return(&model.User{ID: "u-1"}, nil)
		mMail.On("Send", ctx, mock.MatchedBy(func(m mailer.Message) bool {
			return m.Subject == "Reset your password"
		})).Return(nil)

		require.NoError(t, svc.ForgotPassword(ctx, "ana@example.com"))
		mMail.AssertExpectations(t)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	svc, mRepo, _, _ := newTestAuth(t)

	mRepo.On("FindByEmail", ctx, "ana@example.com").
		Return(userWithCode(t, "123456", authNow.Add(time.Minute), true), nil)
	mRepo.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
		return security.ComparePassword(u.PasswordHash, "brand-new-pass") && !u.HasVerificationCode()
	})).Return(&model.User{ID: "u-1"}, nil)

	require.NoError(t, svc.ResetPassword(ctx, "ana@example.com", "123456", "brand-new-pass"))
	mRepo.AssertExpectations(t)
}
