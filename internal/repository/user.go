package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jmcdev/cryptomark-api/internal/model"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	UpdateUser(ctx context.Context, id string, params UpdateUserParams) (int64, error)
	DeleteUser(ctx context.Context, id string) (int64, error)
	RecordLogin(ctx context.Context, id bson.ObjectID, at time.Time) (*model.User, error)
	RecordLogout(ctx context.Context, id bson.ObjectID, at time.Time) error
	AddBookmark(ctx context.Context, email string, bookmark model.Bookmark) (bool, error)
	RemoveBookmark(ctx context.Context, email, cryptoID string) (bool, error)
	GetBookmarks(ctx context.Context, email string) ([]model.Bookmark, error)
}

// UpdateUserParams defines the optional parameters for updating a user.
// Only the fields that are not nil will be updated.
type UpdateUserParams struct {
	Name         *string
	PasswordHash *string
}

const userCollection = "users"

type userMongoRepository struct {
	db *mongo.Database
}

// NewUserMongoRepository creates the Mongo-backed user repository and
// ensures the unique email index exists. Duplicate signups racing past the
// application-level existence check are rejected by the index.
func NewUserMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) UserRepository {
	collection := db.Collection(userCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create user indexes")
	}

	return &userMongoRepository{db: db}
}

func (r *userMongoRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	result, err := r.db.Collection(userCollection).InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		user.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return user, nil
}

func (r *userMongoRepository) GetUser(ctx context.Context, id string) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	result := r.db.Collection(userCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user model.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userMongoRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	result := r.db.Collection(userCollection).FindOne(ctx, bson.M{"email": email})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user model.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userMongoRepository) ListUsers(ctx context.Context) ([]*model.User, error) {
	cursor, err := r.db.Collection(userCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// UpdateUser applies a partial $set and reports the number of documents
// actually modified. A matched document whose fields already hold the new
// values counts as zero, same as no match at all.
func (r *userMongoRepository) UpdateUser(ctx context.Context, id string, params UpdateUserParams) (int64, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	updateMap := bson.M{}
	if params.Name != nil {
		updateMap["name"] = *params.Name
	}
	if params.PasswordHash != nil {
		updateMap["password"] = *params.PasswordHash
	}

	if len(updateMap) == 0 {
		return 0, nil
	}

	result, err := r.db.Collection(userCollection).UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
	)
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}

func (r *userMongoRepository) DeleteUser(ctx context.Context, id string) (int64, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	result, err := r.db.Collection(userCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

// RecordLogin refreshes lastLogin and clears lastLogout in one write and
// returns the updated document.
func (r *userMongoRepository) RecordLogin(ctx context.Context, id bson.ObjectID, at time.Time) (*model.User, error) {
	result := r.db.Collection(userCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"lastLogin": at, "lastLogout": nil}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user model.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userMongoRepository) RecordLogout(ctx context.Context, id bson.ObjectID, at time.Time) error {
	_, err := r.db.Collection(userCollection).UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"lastLogout": at}},
	)
	return err
}

// AddBookmark pushes the bookmark only if no entry with the same id is
// already present, in a single conditional write. It reports false when the
// filter matched nothing, which means either the user does not exist or the
// bookmark already does; the caller disambiguates.
func (r *userMongoRepository) AddBookmark(ctx context.Context, email string, bookmark model.Bookmark) (bool, error) {
	result, err := r.db.Collection(userCollection).UpdateOne(
		ctx,
		bson.M{"email": email, "bookmarks.id": bson.M{"$ne": bookmark.ID}},
		bson.M{"$push": bson.M{"bookmarks": bookmark}},
	)
	if err != nil {
		return false, err
	}

	return result.MatchedCount > 0, nil
}

// RemoveBookmark pulls every bookmark entry with the given id. It reports
// false when nothing was removed, whether because the user is missing or
// because no entry matched.
func (r *userMongoRepository) RemoveBookmark(ctx context.Context, email, cryptoID string) (bool, error) {
	result, err := r.db.Collection(userCollection).UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$pull": bson.M{"bookmarks": bson.M{"id": cryptoID}}},
	)
	if err != nil {
		return false, err
	}

	return result.ModifiedCount > 0, nil
}

func (r *userMongoRepository) GetBookmarks(ctx context.Context, email string) ([]model.Bookmark, error) {
	result := r.db.Collection(userCollection).FindOne(
		ctx,
		bson.M{"email": email},
		options.FindOne().SetProjection(bson.M{"bookmarks": 1}),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user model.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return user.Bookmarks, nil
}
