package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jmcdev/cryptomark-api/internal/model"
	"github.com/jmcdev/cryptomark-api/internal/repository"
)

// BookmarkUsecase defines the interface for managing a user's saved pools.
type BookmarkUsecase interface {
	AddBookmark(ctx context.Context, email string, bookmark model.Bookmark) error
	RemoveBookmark(ctx context.Context, email, cryptoID string) error
	ListBookmarks(ctx context.Context, email string) ([]model.Bookmark, error)
}

type bookmarkUsecase struct {
	userRepo repository.UserRepository
}

func NewBookmarkUsecase(userRepo repository.UserRepository) BookmarkUsecase {
	return &bookmarkUsecase{userRepo: userRepo}
}

// AddBookmark appends the pool object to the user's bookmarks unless an
// entry with the same id is already there. The write itself is a single
// conditional update; the lookup afterwards only classifies a miss as
// "no such user" versus "already bookmarked".
func (u *bookmarkUsecase) AddBookmark(ctx context.Context, email string, bookmark model.Bookmark) error {
	pushed, err := u.userRepo.AddBookmark(ctx, email, bookmark)
	if err != nil {
		return err
	}
	if pushed {
		return nil
	}

	if _, err := u.userRepo.GetUserByEmail(ctx, email); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}

		return err
	}

	return ErrAlreadyBookmarked
}

// RemoveBookmark deletes every entry with the given id. A user that does
// not exist and a bookmark that does not exist are indistinguishable here,
// both report ErrBookmarkNotFound.
func (u *bookmarkUsecase) RemoveBookmark(ctx context.Context, email, cryptoID string) error {
	removed, err := u.userRepo.RemoveBookmark(ctx, email, cryptoID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrBookmarkNotFound
	}

	return nil
}

func (u *bookmarkUsecase) ListBookmarks(ctx context.Context, email string) ([]model.Bookmark, error) {
	bookmarks, err := u.userRepo.GetBookmarks(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	if bookmarks == nil {
		bookmarks = []model.Bookmark{}
	}

	return bookmarks, nil
}
