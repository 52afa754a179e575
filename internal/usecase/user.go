package usecase

import (
	"context"

	"github.com/jmcdev/cryptomark-api/internal/model"
	"github.com/jmcdev/cryptomark-api/internal/repository"
	"github.com/jmcdev/cryptomark-api/internal/security"
)

// UserUsecase defines the interface for user listing and administration.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	UpdateUser(ctx context.Context, id string, params UpdateUserParams) error
	DeleteUser(ctx context.Context, id string) error
}

// UpdateUserParams defines the optional parameters for updating a user.
// Only the fields that are not nil will be updated.
type UpdateUserParams struct {
	Name     *string
	Password *string
}

type userUsecase struct {
	userRepo repository.UserRepository
}

func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (u *userUsecase) ListUsers(ctx context.Context) ([]*model.User, error) {
	return u.userRepo.ListUsers(ctx)
}

func (u *userUsecase) UpdateUser(ctx context.Context, id string, params UpdateUserParams) error {
	repoParams := repository.UpdateUserParams{Name: params.Name}

	if params.Password != nil {
		passwordHash, err := security.HashPassword(*params.Password)
		if err != nil {
			return err
		}
		repoParams.PasswordHash = &passwordHash
	}

	modified, err := u.userRepo.UpdateUser(ctx, id, repoParams)
	if err != nil {
		return err
	}
	if modified == 0 {
		return ErrNoChanges
	}

	return nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, id string) error {
	deleted, err := u.userRepo.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrUserNotFound
	}

	return nil
}
