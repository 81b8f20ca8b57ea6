package admin

import "errors"

// Domain-specific errors for the admin package.
var (
	ErrNotFound = errors.New("admin not found")
)
