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

// UserHandler serves owner profile endpoints.
type UserHandler struct {
	userService service.UserService
	log         logger.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, log logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         log,
	}
}

// Save handles PUT /api/users/:userID.
func (h *UserHandler) Save(c echo.Context) error {
	var req dto.SaveUserRequest
	if err := c.Bind(&req); err != nil {
		h.log.Warn(fmt.Sprintf("Malformed save user request: %v", err))
		return respondError(c, fmt.Errorf("%w: malformed body", appErrors.ErrInvalidRequest))
	}
	req.UserID = c.Param("userID")

	resp, err := h.userService.SaveUser(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/users/:userID.
func (h *UserHandler) Get(c echo.Context) error {
	resp, err := h.userService.GetUser(c.Request().Context(), c.Param("userID"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/users/:userID.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.DeleteUser(c.Request().Context(), c.Param("userID")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
