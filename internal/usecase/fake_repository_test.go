package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jmcdev/cryptomark-api/internal/model"
	"github.com/jmcdev/cryptomark-api/internal/repository"
)

// fakeUserRepository is an in-memory stand-in for the Mongo repository.
// It mirrors the driver's contract: mongo.ErrNoDocuments on misses and a
// duplicate-key write exception on unique index violations.
type fakeUserRepository struct {
	users []*model.User

	// createErr, when set, is returned by CreateUser. Used to simulate a
	// unique index violation that slipped past the existence pre-check.
	createErr error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{}
}

func duplicateKeyError() error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
}

func testUser(email string) *model.User {
	return &model.User{
		Name:         "test",
		Email:        email,
		PasswordHash: "$argon2id$fake",
	}
}

func (f *fakeUserRepository) findByEmail(email string) *model.User {
	for _, u := range f.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.findByEmail(user.Email) != nil {
		return nil, duplicateKeyError()
	}

	user.ID = bson.NewObjectID()
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserRepository) GetUser(_ context.Context, id string) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	for _, u := range f.users {
		if u.ID == objectID {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	if u := f.findByEmail(email); u != nil {
		return u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepository) ListUsers(_ context.Context) ([]*model.User, error) {
	return f.users, nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, id string, params repository.UpdateUserParams) (int64, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	for _, u := range f.users {
		if u.ID != objectID {
			continue
		}

		var modified int64
		if params.Name != nil && u.Name != *params.Name {
			u.Name = *params.Name
			modified = 1
		}
		if params.PasswordHash != nil && u.PasswordHash != *params.PasswordHash {
			u.PasswordHash = *params.PasswordHash
			modified = 1
		}
		return modified, nil
	}

	return 0, nil
}

func (f *fakeUserRepository) DeleteUser(_ context.Context, id string) (int64, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	for i, u := range f.users {
		if u.ID == objectID {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return 1, nil
		}
	}

	return 0, nil
}

func (f *fakeUserRepository) RecordLogin(_ context.Context, id bson.ObjectID, at time.Time) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			u.LastLogin = &at
			u.LastLogout = nil
			copied := *u
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepository) RecordLogout(_ context.Context, id bson.ObjectID, at time.Time) error {
	for _, u := range f.users {
		if u.ID == id {
			u.LastLogout = &at
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeUserRepository) AddBookmark(_ context.Context, email string, bookmark model.Bookmark) (bool, error) {
	u := f.findByEmail(email)
	if u == nil {
		return false, nil
	}
	for _, b := range u.Bookmarks {
		if b.ID == bookmark.ID {
			return false, nil
		}
	}

	u.Bookmarks = append(u.Bookmarks, bookmark)
	return true, nil
}

func (f *fakeUserRepository) RemoveBookmark(_ context.Context, email, cryptoID string) (bool, error) {
	u := f.findByEmail(email)
	if u == nil {
		return false, nil
	}

	kept := u.Bookmarks[:0]
	removed := false
	for _, b := range u.Bookmarks {
		if b.ID == cryptoID {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	u.Bookmarks = kept

	return removed, nil
}

func (f *fakeUserRepository) GetBookmarks(_ context.Context, email string) ([]model.Bookmark, error) {
	u := f.findByEmail(email)
	if u == nil {
		return nil, mongo.ErrNoDocuments
	}
	return u.Bookmarks, nil
}
