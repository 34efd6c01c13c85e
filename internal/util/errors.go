package util

import (
	"errors"
	"fmt"
)

// Error kinds. Services wrap these with fmt.Errorf("%w: ...") so controllers
// can map them to HTTP statuses with errors.Is while still surfacing a
// field-level message.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
	ErrUnavailable     = errors.New("service unavailable")
)

var (
	ErrEmailRegistered    = fmt.Errorf("%w: email already in use", ErrConflict)
	ErrAlreadyEnrolled    = fmt.Errorf("%w: already enrolled", ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)

	// A missing course and an unpublished course are deliberately the same
	// error on enroll, matching the platform's public behavior.
	ErrCourseNotFound     = fmt.Errorf("%w: course not found", ErrNotFound)
	ErrLessonNotFound     = fmt.Errorf("%w: lesson not found", ErrNotFound)
	ErrEnrollmentNotFound = fmt.Errorf("%w: enrollment not found", ErrNotFound)
)

// InvalidArgument builds a field validation failure carrying the first
// failing field's message.
func InvalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}
