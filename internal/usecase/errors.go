package usecase

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyBookmarked  = errors.New("already bookmarked")
	ErrBookmarkNotFound   = errors.New("bookmark not found")
	ErrNoChanges          = errors.New("user not found or no changes made")
)
