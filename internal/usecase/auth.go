package usecase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jmcdev/cryptomark-api/internal/model"
	"github.com/jmcdev/cryptomark-api/internal/repository"
	"github.com/jmcdev/cryptomark-api/internal/security"
)

// AuthUsecase defines the interface for signup, login and logout.
type AuthUsecase interface {
	Signup(ctx context.Context, params SignupParams) error
	Login(ctx context.Context, params LoginParams) (*model.User, error)
	Logout(ctx context.Context, email string) (time.Time, error)
}

// SignupParams defines the parameters for user registration.
type SignupParams struct {
	Name     string
	Email    string
	Password string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

type authUsecase struct {
	userRepo repository.UserRepository
}

func NewAuthUsecase(userRepo repository.UserRepository) AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

func (u *authUsecase) Signup(ctx context.Context, params SignupParams) error {
	if _, err := u.userRepo.GetUserByEmail(ctx, params.Email); err == nil {
		return ErrUserAlreadyExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return err
	}

	_, err = u.userRepo.CreateUser(ctx, &model.User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		// The unique email index catches signups racing past the
		// existence check above.
		if mongo.IsDuplicateKeyError(err) {
			return ErrUserAlreadyExists
		}

		return err
	}

	return nil
}

// Login verifies the credentials, then refreshes lastLogin and clears
// lastLogout in one write. The returned user carries the new timestamps.
func (u *authUsecase) Login(ctx context.Context, params LoginParams) (*model.User, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrInvalidCredentials
	}

	return u.userRepo.RecordLogin(ctx, user.ID, time.Now())
}

// Logout stamps lastLogout and leaves lastLogin untouched. There is no
// session to tear down; any caller who knows the email can log it out.
func (u *authUsecase) Logout(ctx context.Context, email string) (time.Time, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return time.Time{}, ErrUserNotFound
		}

		return time.Time{}, err
	}

	now := time.Now()
	if err := u.userRepo.RecordLogout(ctx, user.ID, now); err != nil {
		return time.Time{}, err
	}

	return now, nil
}
