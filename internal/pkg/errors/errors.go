package errors

import "errors"

// Custom application errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrReminderNotFound     = errors.New("reminder not found")
	ErrInvalidRequest       = errors.New("invalid request")           // Missing or malformed input from the API
	ErrInvalidDateTime      = errors.New("invalid date/time")         // Due time is zero or already in the past
	ErrDatabaseOperation    = errors.New("database operation failed") // Generic database error
	ErrScheduling           = errors.New("scheduling failed")
	ErrChannelNotConfigured = errors.New("delivery channel not configured") // Permanent: no credential or no recipient address
	ErrSendFailed           = errors.New("delivery rejected or failed")     // Possibly transient provider failure
	ErrRenderFailed         = errors.New("notification rendering failed")
	ErrInternalServer       = errors.New("internal server error")
)
