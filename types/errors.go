package types

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrVendorNotFound       = errors.New("vendor not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	// ErrVersionConflict means a concurrent writer changed the user's task
	// array between our read and write. The task service retries on it.
	ErrVersionConflict = errors.New("task collection version conflict")
)
