package util

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailRegistered  = errors.New("email is already registered")
	ErrInvalidLogin     = errors.New("invalid email or password")
	ErrCourseNotFound   = errors.New("course not found")
	ErrPackageNotFound  = errors.New("package not found")
	ErrProgressNotFound = errors.New("progress not found")
	ErrInvalidAgeGroup  = errors.New("invalid age group")
	ErrInvalidEventType = errors.New("invalid learning event type")
	ErrAttemptConflict  = errors.New("quiz attempt number already taken")
	ErrMissingField     = errors.New("missing required field")
	ErrPermissionDenied = errors.New("permission denied")
)
