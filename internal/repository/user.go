// Package repository implements Postgres persistence for the service.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/c0d3g3n/codegen-api/internal/model"
)

// UserRepository defines the credential store contract the rest of the
// service relies on.
type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash string) (*model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
	SetAdmin(ctx context.Context, id int64, isAdmin bool) error
	Delete(ctx context.Context, id int64) error
}

type userPostgresRepository struct {
	db *sql.DB
}

// NewUserPostgresRepository creates a Postgres-backed UserRepository.
func NewUserPostgresRepository(db *sql.DB) UserRepository {
	return &userPostgresRepository{db: db}
}

const userColumns = "id, username, email, password_hash, is_admin, created_at, updated_at"

func (r *userPostgresRepository) Create(
	ctx context.Context,
	username, email, passwordHash string,
) (*model.User, error) {
	query := `INSERT INTO users (username, email, password_hash)
	          VALUES ($1, $2, $3)
	          RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRowContext(ctx, query, username, email, passwordHash))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateIdentity
		}

		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *userPostgresRepository) Get(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *userPostgresRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

func (r *userPostgresRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *userPostgresRepository) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}

	return requireRow(result)
}

func (r *userPostgresRepository) SetAdmin(ctx context.Context, id int64, isAdmin bool) error {
	query := `UPDATE users SET is_admin = $2, updated_at = now() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, isAdmin)
	if err != nil {
		return fmt.Errorf("failed to set admin flag: %w", err)
	}

	return requireRow(result)
}

func (r *userPostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return requireRow(result)
}

func scanUser(row *sql.Row) (*model.User, error) {
	var user model.User

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
