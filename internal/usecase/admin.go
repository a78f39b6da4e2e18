package usecase

import (
	"context"
	"errors"

	"github.com/c0d3g3n/codegen-api/internal/repository"
)

// AdminUsecase defines the management operations gated on the admin flag.
type AdminUsecase interface {
	DeleteUser(ctx context.Context, callerID, targetID int64) error
	SetAdmin(ctx context.Context, callerID, targetID int64, isAdmin bool) error
}

// ErrForbidden is returned when the caller lacks admin privileges.
var ErrForbidden = errors.New("admin privileges required")

type adminUsecase struct {
	userRepo repository.UserRepository
}

// NewAdminUsecase creates a new AdminUsecase.
func NewAdminUsecase(userRepo repository.UserRepository) AdminUsecase {
	return &adminUsecase{userRepo: userRepo}
}

func (u *adminUsecase) DeleteUser(ctx context.Context, callerID, targetID int64) error {
	if err := u.requireAdmin(ctx, callerID); err != nil {
		return err
	}

	return u.userRepo.Delete(ctx, targetID)
}

func (u *adminUsecase) SetAdmin(ctx context.Context, callerID, targetID int64, isAdmin bool) error {
	if err := u.requireAdmin(ctx, callerID); err != nil {
		return err
	}

	return u.userRepo.SetAdmin(ctx, targetID, isAdmin)
}

// requireAdmin reads the caller's admin flag fresh from the store on every
// call. The token does not carry roles, so a role change takes effect on the
// affected user's very next request.
func (u *adminUsecase) requireAdmin(ctx context.Context, callerID int64) error {
	caller, err := u.userRepo.Get(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrForbidden
		}

		return err
	}

	if !caller.IsAdmin {
		return ErrForbidden
	}

	return nil
}
