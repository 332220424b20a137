package handler

import (
	"net/http"
	"reminder-notifier/internal/application/service"

	"github.com/labstack/echo/v4"
)

// RunHandler triggers delivery runs on demand.
type RunHandler struct {
	schedulerService service.SchedulerService
}

// NewRunHandler creates a new RunHandler.
func NewRunHandler(schedulerService service.SchedulerService) *RunHandler {
	return &RunHandler{schedulerService: schedulerService}
}

// Trigger handles POST /api/runs and returns the run summary.
func (h *RunHandler) Trigger(c echo.Context) error {
	summary, err := h.schedulerService.RunNow(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}
