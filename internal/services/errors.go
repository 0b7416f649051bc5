package services

import "errors"

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrPostNotFound        = errors.New("post not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrPostUpdateForbidden = errors.New("you can only update your own posts")
	ErrPostDeleteForbidden = errors.New("you can only delete your own posts")
)
