package handler

import (
	"fmt"
	"net/http"
	"reminder-notifier/internal/application/dto"
	"reminder-notifier/internal/application/service"
	appErrors "reminder-notifier/internal/pkg/errors"
	"reminder-notifier/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ReminderHandler serves the reminder CRUD endpoints.
type ReminderHandler struct {
	reminderService service.ReminderService
	log             logger.Logger
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService service.ReminderService, log logger.Logger) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		log:             log,
	}
}

// Create handles POST /api/users/:userID/reminders.
func (h *ReminderHandler) Create(c echo.Context) error {
	var req dto.CreateReminderRequest
	if err := c.Bind(&req); err != nil {
		h.log.Warn(fmt.Sprintf("Malformed create reminder request: %v", err))
		return respondError(c, fmt.Errorf("%w: malformed body", appErrors.ErrInvalidRequest))
	}
	req.OwnerID = c.Param("userID")

	resp, err := h.reminderService.CreateReminder(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// ListUpcoming handles GET /api/users/:userID/reminders.
func (h *ReminderHandler) ListUpcoming(c echo.Context) error {
	list, err := h.reminderService.ListUpcomingReminders(c.Request().Context(), c.Param("userID"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// Get handles GET /api/users/:userID/reminders/:id.
func (h *ReminderHandler) Get(c echo.Context) error {
	resp, err := h.reminderService.GetReminder(c.Request().Context(), c.Param("userID"), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/users/:userID/reminders/:id.
func (h *ReminderHandler) Delete(c echo.Context) error {
	if err := h.reminderService.DeleteReminder(c.Request().Context(), c.Param("userID"), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
