package post

import "errors"

var (
	ErrPostDoesNotExist = errors.New("post does not exist")
	ErrPostPermission   = errors.New("post belongs to another user")
	ErrPageNotFound     = errors.New("page not found")
	ErrEmptyTitle       = errors.New("title must not be empty")
	ErrTitleTooLong     = errors.New("title is too long")
	ErrEmptyContent     = errors.New("content must not be empty")
)
