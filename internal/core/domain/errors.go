package domain

import "errors"

var (
	ErrPaintingNotFound = errors.New("painting not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrRatingNotFound   = errors.New("rating not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrInvalidScore     = errors.New("rating score out of range")
	ErrForbidden        = errors.New("access forbidden")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidPayload   = errors.New("invalid payload")
)
