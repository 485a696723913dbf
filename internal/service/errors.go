package service

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrInternal           = errors.New("internal server error")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmailTaken         = errors.New("email is already taken")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrSelfFollow         = errors.New("you cannot follow yourself")
	ErrEmptyPost          = errors.New("post must have text or an image")
	ErrNotPostOwner       = errors.New("you are not authorized to delete this post")
)

// conflictFromDuplicateKey maps a unique-index violation on the users
// collection to the conflict error for the offending field. Concurrent
// writers can slip past the service-level pre-checks; the indexes cannot.
func conflictFromDuplicateKey(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return nil
	}

	msg := err.Error()
	if strings.Contains(msg, "email") {
		return ErrEmailTaken
	}
	if strings.Contains(msg, "username") {
		return ErrUsernameTaken
	}
	return nil
}
