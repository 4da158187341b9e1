package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"shopapi/internal/mailer"
	"shopapi/internal/model"
	"shopapi/internal/repository"
	"shopapi/internal/security"
)

const (
	subjectVerifyEmail   = "Verify your email"
	subjectResetPassword = "Reset your password"
)

// SignUpInput is a self-registration request.
type SignUpInput struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Address     string
	Gender      model.Gender
}

// AuthService handles registration, email verification and credentials.
type AuthService interface {
	// SignUp creates an inactive account and emails a verification code.
	SignUp(ctx context.Context, in SignUpInput) (*model.User, error)
	VerifyEmail(ctx context.Context, email, code string) error
	ResendOTP(ctx context.Context, email string) error
	// SignIn returns a signed access token.
	SignIn(ctx context.Context, email, password string) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

type authService struct {
	users  repository.UserRepository
	tokens *security.TokenIssuer
	mail   mailer.Mailer
	otpTTL time.Duration
	lg     *zap.Logger

	now    func() time.Time
	newOTP func() (string, error)
}

func NewAuthService(users repository.UserRepository, tokens *security.TokenIssuer, mail mailer.Mailer, otpTTL time.Duration, lg *zap.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		mail:   mail,
		otpTTL: otpTTL,
		lg:     lg,
		now:    time.Now,
		newOTP: security.NewOTP,
	}
}

func (s *authService) SignUp(ctx context.Context, in SignUpInput) (*model.User, error) {
	email := normalizeEmail(in.Email)
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, conflictf("Email already exists")
	} else if !isNotFound(err) {
		return nil, errors.Wrap(err, "find user by email")
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	code, err := s.issueCode()
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleUser,
		PhoneNumber:  in.PhoneNumber,
		Address:      in.Address,
		Gender:       in.Gender,
		Active:       false,
	}
	if u.Gender == "" {
		u.Gender = model.GenderMale
	}
	if err := s.setCode(u, code); err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, u)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, conflictf("Email already exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "create user")
	}

	s.sendCode(ctx, created, subjectVerifyEmail, code)
	return created, nil
}

func (s *authService) VerifyEmail(ctx context.Context, email, code string) error {
	u, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if isNotFound(err) {
		return invalidf("Invalid email")
	}
	if err != nil {
		return errors.Wrap(err, "find user by email")
	}
	if u.Active {
		return invalidf("Account is already verified")
	}
	if err := s.checkCode(u, code); err != nil {
		return err
	}

	u.Active = true
	clearCode(u)
	if _, err := s.users.Update(ctx, u); err != nil {
		return errors.Wrap(err, "activate user")
	}
	return nil
}

func (s *authService) ResendOTP(ctx context.Context, email string) error {
	u, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return notFoundOr(err, "find user by email", "User not found")
	}
	if u.Active {
		return invalidf("Account is already verified")
	}
	if !u.HasVerificationCode() {
		return notFoundf("No verification code was issued for this account")
	}
	if !u.VerificationExpired(s.now()) {
		return conflictf("The current verification code is still valid")
	}
	return s.reissue(ctx, u, subjectVerifyEmail)
}

func (s *authService) SignIn(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if isNotFound(err) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", errors.Wrap(err, "find user by email")
	}
	if !security.ComparePassword(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	if !u.Active {
		return "", ErrAccountInactive
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return "", errors.Wrap(err, "issue token")
	}
	return token, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return notFoundOr(err, "find user by email", "User not found")
	}
	if !u.Active {
		return invalidf("Account is not active")
	}
	if u.HasVerificationCode() && !u.VerificationExpired(s.now()) {
		return conflictf("A reset code was already sent and is still valid")
	}
	return s.reissue(ctx, u, subjectResetPassword)
}

func (s *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	u, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if isNotFound(err) {
		return invalidf("Invalid email")
	}
	if err != nil {
		return errors.Wrap(err, "find user by email")
	}
	if !u.Active {
		return invalidf("Account is not active")
	}
	if err := s.checkCode(u, code); err != nil {
		return err
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	u.PasswordHash = hash
	clearCode(u)
	if _, err := s.users.Update(ctx, u); err != nil {
		return errors.Wrap(err, "reset password")
	}
	return nil
}

func (s *authService) checkCode(u *model.User, code string) error {
	if !u.HasVerificationCode() {
		return invalidf("No verification code was issued for this account")
	}
	if u.VerificationExpired(s.now()) {
		return invalidf("Verification code has expired")
	}
	if !security.ComparePassword(u.VerificationCodeHash, code) {
		return invalidf("Invalid verification code")
	}
	return nil
}

func (s *authService) reissue(ctx context.Context, u *model.User, subject string) error {
	code, err := s.issueCode()
	if err != nil {
		return err
	}
	if err := s.setCode(u, code); err != nil {
		return err
	}
	if _, err := s.users.Update(ctx, u); err != nil {
		return errors.Wrap(err, "store verification code")
	}
	s.sendCode(ctx, u, subject, code)
	return nil
}

func (s *authService) issueCode() (string, error) {
	code, err := s.newOTP()
	if err != nil {
		return "", errors.Wrap(err, "generate otp")
	}
	return code, nil
}

func (s *authService) setCode(u *model.User, code string) error {
	hash, err := security.HashPassword(code)
	if err != nil {
		return errors.Wrap(err, "hash otp")
	}
	exp := s.now().Add(s.otpTTL)
	u.VerificationCodeHash = hash
	u.VerificationExpiresAt = &exp
	return nil
}

func clearCode(u *model.User) {
	u.VerificationCodeHash = ""
	u.VerificationExpiresAt = nil
}

// sendCode emails code to u. Delivery problems are logged only.
func (s *authService) sendCode(ctx context.Context, u *model.User, subject, code string) {
	body, err := mailer.RenderOTP(u.Name, subject, code, s.otpTTL)
	if err != nil {
		s.lg.Error("otp_render_failed", zap.String("user_id", u.ID), zap.Error(err))
		return
	}
	if err := s.mail.Send(ctx, mailer.Message{To: u.Email, Subject: subject, HTML: body}); err != nil {
		s.lg.Error("otp_send_failed", zap.String("user_id", u.ID), zap.Error(err))
	}
}
