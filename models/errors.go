package models

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map them to status codes with errors.Is.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrConflict         = errors.New("conflict")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrStoreUnavailable = errors.New("document store unavailable")
)

var (
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrGroupNotFound        = fmt.Errorf("group %w", ErrNotFound)
	ErrTaskNotFound         = fmt.Errorf("task %w", ErrNotFound)
	ErrNotGroupMember       = fmt.Errorf("%w: user is not a member of this group", ErrForbidden)
	ErrTaskNotEditable      = fmt.Errorf("%w: task cannot be edited by this user", ErrForbidden)
	ErrAdminExists          = fmt.Errorf("%w: an administrator already exists", ErrConflict)
	ErrUsernameTaken        = fmt.Errorf("%w: username already taken", ErrConflict)
	ErrInvalidCredentials   = fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	ErrNotificationNotFound = fmt.Errorf("notification %w", ErrNotFound)
)

// NewValidationError wraps ErrValidation with a message meant for the client.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
