package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrBlogPostNotFound = errors.New("blog post not found")
)
