package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/c0d3g3n/codegen-api/internal/auth"
	"github.com/c0d3g3n/codegen-api/internal/mailer"
	"github.com/c0d3g3n/codegen-api/internal/model"
	"github.com/c0d3g3n/codegen-api/internal/repository"
	"github.com/c0d3g3n/codegen-api/internal/security"
)

// PasswordResetUsecase defines the business logic for password reset.
type PasswordResetUsecase interface {
	// Request initiates the password reset process for a given email.
	Request(ctx context.Context, email string) error

	// Confirm resets the user's password using the mailed token.
	Confirm(ctx context.Context, token, newPassword string) error
}

var (
	ErrResetTokenNotFound    = errors.New("password reset token not found")
	ErrResetTokenAlreadyUsed = errors.New("password reset token has already been used")
)

type passwordResetUsecase struct {
	userRepo      repository.UserRepository
	tokenRepo     repository.PasswordResetTokenRepository
	authority     *auth.Authority
	mailer        mailer.Sender
	logger        *zerolog.Logger
	tokenLifetime time.Duration
	resetBaseURL  string
}

// NewPasswordResetUsecase creates a new PasswordResetUsecase.
func NewPasswordResetUsecase(
	userRepo repository.UserRepository,
	tokenRepo repository.PasswordResetTokenRepository,
	authority *auth.Authority,
	sender mailer.Sender,
	logger *zerolog.Logger,
	tokenLifetime time.Duration,
	resetBaseURL string,
) PasswordResetUsecase {
	return &passwordResetUsecase{
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		authority:     authority,
		mailer:        sender,
		logger:        logger,
		tokenLifetime: tokenLifetime,
		resetBaseURL:  resetBaseURL,
	}
}

func (u *passwordResetUsecase) Request(ctx context.Context, email string) error {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// To prevent email enumeration, do not reveal that the email
			// does not exist.
			u.logger.Debug().Msg("password reset requested for unknown email")
			return nil
		}

		return err
	}

	// Only the most recently requested reset link stays redeemable.
	if err := u.tokenRepo.InvalidateUserTokens(ctx, user.ID); err != nil {
		return err
	}

	jti := uuid.NewString()

	tokenStr, err := u.authority.MintReset(user.ID, jti, u.tokenLifetime)
	if err != nil {
		return fmt.Errorf("failed to mint reset token: %w", err)
	}

	if _, err := u.tokenRepo.Create(ctx, &model.PasswordResetToken{
		UserID:    user.ID,
		JTI:       jti,
		Email:     user.Email,
		ExpiresAt: time.Now().Add(u.tokenLifetime),
	}); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s?token=%s", u.resetBaseURL, tokenStr)
	htmlBody := fmt.Sprintf(`
		<p>Hi,</p>
		<p>We received a request to reset the password for your account.</p>
		<p>If you made this request, click the link below to choose a new password:</p>

		<p><a href="%s">%s</a></p>

		<p>This link expires in %s.</p>
		<p>If you did not request a password reset, you can safely ignore this email.</p>

		<p>The c0d3g3n Team</p>
	`, resetLink, resetLink, u.tokenLifetime)

	if err := u.mailer.SendHTML([]string{user.Email}, "Password Reset Request", htmlBody); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	return nil
}

func (u *passwordResetUsecase) Confirm(ctx context.Context, token, newPassword string) error {
	userID, jti, err := u.authority.VerifyResetToken(token)
	if err != nil {
		return err
	}

	record, err := u.tokenRepo.GetByJTI(ctx, jti)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrResetTokenNotFound
		}

		return err
	}

	if record.Used {
		return ErrResetTokenAlreadyUsed
	}

	if time.Now().After(record.ExpiresAt) {
		return auth.ErrExpired
	}

	passwordHash, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := u.userRepo.UpdatePasswordHash(ctx, userID, passwordHash); err != nil {
		return err
	}

	return u.tokenRepo.MarkUsed(ctx, jti)
}
