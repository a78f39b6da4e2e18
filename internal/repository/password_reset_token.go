package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/c0d3g3n/codegen-api/internal/model"
)

// PasswordResetTokenRepository defines persistence for password reset token
// bookkeeping, keyed by JTI.
type PasswordResetTokenRepository interface {
	// Create records a freshly issued reset token.
	Create(ctx context.Context, token *model.PasswordResetToken) (*model.PasswordResetToken, error)

	// GetByJTI retrieves a token record by its JTI.
	GetByJTI(ctx context.Context, jti string) (*model.PasswordResetToken, error)

	// MarkUsed marks a token as redeemed.
	MarkUsed(ctx context.Context, jti string) error

	// InvalidateUserTokens marks all unused tokens of a user as used, so only
	// the most recently requested reset link stays redeemable.
	InvalidateUserTokens(ctx context.Context, userID int64) error

	// DeleteExpired removes expired token records and reports how many were
	// deleted.
	DeleteExpired(ctx context.Context) (int64, error)
}

type passwordResetTokenPostgresRepository struct {
	db *sql.DB
}

// NewPasswordResetTokenPostgresRepository creates a Postgres-backed
// PasswordResetTokenRepository.
func NewPasswordResetTokenPostgresRepository(db *sql.DB) PasswordResetTokenRepository {
	return &passwordResetTokenPostgresRepository{db: db}
}

func (r *passwordResetTokenPostgresRepository) Create(
	ctx context.Context,
	token *model.PasswordResetToken,
) (*model.PasswordResetToken, error) {
	query := `INSERT INTO password_reset_tokens (user_id, jti, email, expires_at)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, used, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		token.UserID,
		token.JTI,
		token.Email,
		token.ExpiresAt,
	).Scan(&token.ID, &token.Used, &token.CreatedAt, &token.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create password reset token: %w", err)
	}

	return token, nil
}

func (r *passwordResetTokenPostgresRepository) GetByJTI(
	ctx context.Context,
	jti string,
) (*model.PasswordResetToken, error) {
	query := `SELECT id, user_id, jti, email, used, expires_at, created_at, updated_at
	          FROM password_reset_tokens
	          WHERE jti = $1`

	var token model.PasswordResetToken
	err := r.db.QueryRowContext(ctx, query, jti).Scan(
		&token.ID,
		&token.UserID,
		&token.JTI,
		&token.Email,
		&token.Used,
		&token.ExpiresAt,
		&token.CreatedAt,
		&token.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get password reset token: %w", err)
	}

	return &token, nil
}

func (r *passwordResetTokenPostgresRepository) MarkUsed(ctx context.Context, jti string) error {
	query := `UPDATE password_reset_tokens SET used = TRUE, updated_at = now() WHERE jti = $1`

	result, err := r.db.ExecContext(ctx, query, jti)
	if err != nil {
		return fmt.Errorf("failed to mark password reset token as used: %w", err)
	}

	return requireRow(result)
}

func (r *passwordResetTokenPostgresRepository) InvalidateUserTokens(ctx context.Context, userID int64) error {
	query := `UPDATE password_reset_tokens SET used = TRUE, updated_at = now()
	          WHERE user_id = $1 AND used = FALSE`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to invalidate password reset tokens: %w", err)
	}

	return nil
}

func (r *passwordResetTokenPostgresRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM password_reset_tokens WHERE expires_at < now()`

	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired password reset tokens: %w", err)
	}

	return result.RowsAffected()
}
