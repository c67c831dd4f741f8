package domain

import "errors"

// Common validation errors shared across entities.
var (
	// ErrValidation is returned when an entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyUserID is returned when a user ID is empty.
	ErrEmptyUserID = errors.New("user ID cannot be empty")

	// ErrMissingRole is returned when a user payload has no role field.
	ErrMissingRole = errors.New("user role is required")

	// ErrEmptyExerciseID is returned when an exercise ID is empty.
	ErrEmptyExerciseID = errors.New("exercise ID cannot be empty")

	// ErrEmptyExerciseName is returned when an exercise name is empty.
	ErrEmptyExerciseName = errors.New("exercise name cannot be empty")

	// ErrEmptyProgramID is returned when a program ID is empty.
	ErrEmptyProgramID = errors.New("program ID cannot be empty")

	// ErrEmptyProgramClientID is returned when a program has no client ID.
	ErrEmptyProgramClientID = errors.New("program client ID cannot be empty")

	// ErrEmptyProgramTitle is returned when a program title is empty.
	ErrEmptyProgramTitle = errors.New("program title cannot be empty")

	// ErrEmptyNotificationID is returned when a notification ID is empty.
	ErrEmptyNotificationID = errors.New("notification ID cannot be empty")

	// ErrMissingNotificationType is returned when a notification payload has
	// no type field. An unrecognized type decodes to
	// NotificationTypeUnknown; only absence is an error.
	ErrMissingNotificationType = errors.New("notification type is required")

	// ErrEmptyNotificationTitle is returned when a notification title is empty.
	ErrEmptyNotificationTitle = errors.New("notification title cannot be empty")

	// ErrEmptyNotificationBody is returned when a notification body is empty.
	ErrEmptyNotificationBody = errors.New("notification body cannot be empty")
)
