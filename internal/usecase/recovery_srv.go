package usecase

import (
	"context"
	"strings"
	"time"

	"nalam-grocery/internal/data/repository"
	"nalam-grocery/pkg/mailer"
	"nalam-grocery/pkg/utils"

	"go.uber.org/zap"
)

// RecoveryService implements the three-step credential recovery flow:
// issue an OTP over email, trade the OTP for a reset token, trade the
// reset token for a new password. Each secret is single-use and a new
// cycle always supersedes the previous one.
type RecoveryService interface {
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) (string, error)
	ResetPassword(ctx context.Context, email, resetToken, newPassword string) error
}

type recoveryService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
	mail   mailer.Sender
}

func NewRecoveryService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
	mail mailer.Sender,
) RecoveryService {
	return &recoveryService{
		repo:   repo,
		config: config,
		log:    log,
		mail:   mail,
	}
}

// SendOTP issues a fresh OTP for the account. It never reports whether the
// account exists, and delivery or storage failures are logged but not
// surfaced; the caller always sees the same generic success.
func (s *recoveryService) SendOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to look up account for OTP", zap.Error(err), zap.String("email", email))
		return nil
	}
	if user == nil {
		// No account, no side effects.
		s.log.Warn("OTP requested for unknown email", zap.String("email", email))
		return nil
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		s.log.Error("Failed to generate OTP", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil
	}

	expiry := time.Now().Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute)

	// Overwrites any outstanding OTP and discards a stale reset credential.
	if err := s.repo.User.SetRecoveryOTP(ctx, user.ID, otp, expiry); err != nil {
		s.log.Error("Failed to store OTP", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil
	}

	if err := s.mail.Send(ctx, user.Email, mailer.OTPEmailSubject, mailer.OTPEmailBody(otp)); err != nil {
		s.log.Error("Failed to send OTP email", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil
	}

	s.log.Info("Recovery OTP issued",
		zap.String("user_id", user.ID.String()),
		zap.Time("expires_at", expiry),
	)

	return nil
}

// VerifyOTP trades a valid OTP for a reset token. The token is returned in
// plaintext exactly once; only its hash is stored.
func (s *recoveryService) VerifyOTP(ctx context.Context, email, otp string) (string, error) {
	email = normalizeEmail(email)

	user, err := s.repo.User.FindByEmailWithRecovery(ctx, email)
	if err != nil {
		s.log.Error("Failed to look up account for OTP verification", zap.Error(err), zap.String("email", email))
		return "", err
	}

	// Unknown email and wrong code are deliberately indistinguishable.
	if user == nil || user.ResetOTP == nil || *user.ResetOTP != otp {
		return "", newError(ErrInvalidCredential, "Invalid email or OTP")
	}

	if user.ResetOTPExpiry == nil || time.Now().After(*user.ResetOTPExpiry) {
		return "", newError(ErrExpired, "OTP has expired")
	}

	resetToken, err := utils.GenerateResetToken()
	if err != nil {
		s.log.Error("Failed to generate reset token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", err
	}

	tokenExpiry := time.Now().Add(time.Duration(s.config.OTP.ResetExpiryMinutes) * time.Minute)

	ok, err := s.repo.User.ConsumeOTP(ctx, user.ID, otp, utils.HashToken(resetToken), tokenExpiry)
	if err != nil {
		s.log.Error("Failed to consume OTP", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", err
	}
	if !ok {
		// Another request consumed or superseded this code first.
		return "", newError(ErrInvalidCredential, "Invalid email or OTP")
	}

	s.log.Info("Recovery OTP verified", zap.String("user_id", user.ID.String()))

	return resetToken, nil
}

// ResetPassword commits a new password. The presented token is hashed and
// compared against the stored digest; commit and credential invalidation
// happen in a single guarded update so the token is strictly single-use.
func (s *recoveryService) ResetPassword(ctx context.Context, email, resetToken, newPassword string) error {
	// Fail fast, before any lookup.
	if len(newPassword) < 8 {
		return newError(ErrValidation, "Password must be at least 8 characters")
	}

	email = normalizeEmail(email)

	user, err := s.repo.User.FindByEmailWithRecovery(ctx, email)
	if err != nil {
		s.log.Error("Failed to look up account for password reset", zap.Error(err), zap.String("email", email))
		return err
	}
	if user == nil || user.ResetToken == nil {
		return newError(ErrInvalidCredential, "Invalid email or reset token")
	}

	tokenHash := utils.HashToken(resetToken)
	if *user.ResetToken != tokenHash {
		return newError(ErrInvalidCredential, "Invalid email or reset token")
	}

	if user.ResetTokenExpiry == nil || time.Now().After(*user.ResetTokenExpiry) {
		return newError(ErrExpired, "Reset token has expired")
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err), zap.String("user_id", user.ID.String()))
		return err
	}

	ok, err := s.repo.User.ConsumeResetToken(ctx, user.ID, tokenHash, passwordHash)
	if err != nil {
		s.log.Error("Failed to commit password reset", zap.Error(err), zap.String("user_id", user.ID.String()))
		return err
	}
	if !ok {
		return newError(ErrInvalidCredential, "Invalid email or reset token")
	}

	s.log.Info("Password reset committed", zap.String("user_id", user.ID.String()))

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
