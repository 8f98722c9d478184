package service

import (
	"net/http"

	"Blog/pkg/response"
)

var (
	ErrUserNotFound       = response.NewError(http.StatusNotFound, "User not found")
	ErrPostNotFound       = response.NewError(http.StatusNotFound, "Post not found")
	ErrBadCredentials     = response.NewError(http.StatusBadRequest, "Either username or password is incorrect")
	ErrIncorrectPassword  = response.NewError(http.StatusBadRequest, "Incorrect current password")
	ErrSamePassword       = response.NewError(http.StatusBadRequest, "New Password can't be same as current password")
	ErrBlankPassword      = response.NewError(http.StatusBadRequest, "New Password can't be blank")
	ErrPasswordMismatch   = response.NewError(http.StatusBadRequest, "Re-entered password doesn't match new password")
	ErrDuplicateAccount   = response.NewError(http.StatusBadRequest, "This username or email already exists")
	ErrReactionProcessing = response.NewError(http.StatusTooManyRequests, "Reaction is being processed, please retry")
)
