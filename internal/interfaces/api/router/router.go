package router

import (
	"fmt"
	"net/http"
	"reminder-notifier/internal/interfaces/api/handler"
	"reminder-notifier/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Config holds the dependencies for the router.
type Config struct {
	ReminderHandler *handler.ReminderHandler
	UserHandler     *handler.UserHandler
	RunHandler      *handler.RunHandler
	Logger          logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.RequestID())
	// Use custom logger that integrates with our logger interface
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		MaxAge:       300,
	}))

	// Routes
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")

	users := api.Group("/users/:userID")
	users.GET("", cfg.UserHandler.Get)
	users.PUT("", cfg.UserHandler.Save)
	users.DELETE("", cfg.UserHandler.Delete)

	users.POST("/reminders", cfg.ReminderHandler.Create)
	users.GET("/reminders", cfg.ReminderHandler.ListUpcoming)
	users.GET("/reminders/:id", cfg.ReminderHandler.Get)
	users.DELETE("/reminders/:id", cfg.ReminderHandler.Delete)

	// Manual delivery run, in addition to the scheduled ones
	api.POST("/runs", cfg.RunHandler.Trigger)

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
