// internal/services/errors.go
package services

import (
	"errors"
	"fmt"
)

// Sentinel errors handlers translate into HTTP statuses.
var (
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the login response never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailTaken    = errors.New("email is already in use")
	ErrSlugTaken     = errors.New("slug is already in use")
	ErrInvalidSlug   = errors.New("cannot derive a valid slug")
	ErrWrongPassword = errors.New("current password is incorrect")

	ErrFileTooLarge       = errors.New("file exceeds the maximum allowed size")
	ErrFileTypeNotAllowed = errors.New("file type is not allowed")
)

// CategoryInUseError blocks deleting a category that still has products.
type CategoryInUseError struct {
	Count int64
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category still contains %d products", e.Count)
}
