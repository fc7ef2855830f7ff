package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNotRecipeOwner is returned when an authenticated user attempts to
	// modify or delete a recipe created by somebody else.
	ErrNotRecipeOwner = errors.New("recipe belongs to another user")
)
