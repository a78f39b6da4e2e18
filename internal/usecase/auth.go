// Package usecase implements the business logic of the conversion service.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/c0d3g3n/codegen-api/internal/auth"
	"github.com/c0d3g3n/codegen-api/internal/model"
	"github.com/c0d3g3n/codegen-api/internal/repository"
	"github.com/c0d3g3n/codegen-api/internal/security"
)

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	Register(ctx context.Context, params RegisterParams) (*model.User, string, error)
	Login(ctx context.Context, params LoginParams) (string, error)
}

// RegisterParams defines the parameters for user registration.
type RegisterParams struct {
	Username string
	Email    string
	Password string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Username string
	Password string
}

var (
	ErrUserAlreadyExists = errors.New("username or email already in use")

	// ErrInvalidCredentials covers both unknown-username and wrong-password,
	// so a login failure never reveals whether the account exists.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type authUsecase struct {
	userRepo  repository.UserRepository
	authority *auth.Authority
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(userRepo repository.UserRepository, authority *auth.Authority) AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		authority: authority,
	}
}

func (u *authUsecase) Register(ctx context.Context, params RegisterParams) (*model.User, string, error) {
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := u.userRepo.Create(ctx, params.Username, params.Email, passwordHash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateIdentity) {
			return nil, "", ErrUserAlreadyExists
		}

		return nil, "", err
	}

	token, err := u.authority.Mint(user.ID, 0)
	if err != nil {
		return nil, "", fmt.Errorf("failed to mint token: %w", err)
	}

	return user, token, nil
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (string, error) {
	user, err := u.userRepo.GetByUsername(ctx, params.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}

		return "", err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return "", err
	} else if !ok {
		return "", ErrInvalidCredentials
	}

	token, err := u.authority.Mint(user.ID, 0)
	if err != nil {
		return "", fmt.Errorf("failed to mint token: %w", err)
	}

	return token, nil
}
