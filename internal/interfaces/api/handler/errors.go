package handler

import (
	"errors"
	"net/http"
	appErrors "reminder-notifier/internal/pkg/errors"

	"github.com/labstack/echo/v4"
)

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps application errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, appErrors.ErrInvalidRequest), errors.Is(err, appErrors.ErrInvalidDateTime):
		return http.StatusBadRequest
	case errors.Is(err, appErrors.ErrReminderNotFound), errors.Is(err, appErrors.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, appErrors.ErrDatabaseOperation):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c echo.Context, err error) error {
	status := statusFor(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status) // Internal details stay in the log
	}
	return c.JSON(status, errorResponse{Error: msg})
}
