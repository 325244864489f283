package router

import (
	"fmt"
	"net/http"
	"spotwatch/internal/interfaces/api/handler"
	"spotwatch/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Config holds the dependencies for the router.
type Config struct {
	SpotHandler         *handler.SpotHandler
	SubscriptionHandler *handler.SubscriptionHandler
	NotificationHandler *handler.NotificationHandler
	Logger              logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()

	// Middleware
	e.Use(middleware.RequestID())
	// Use custom logger that integrates with our logger interface
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogHost:      true,
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
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Routes
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api")

	api.POST("/spots", cfg.SpotHandler.Create)
	api.GET("/spots", cfg.SpotHandler.List)
	api.GET("/spots/:id", cfg.SpotHandler.Get)
	api.PATCH("/spots/:id/checklist", cfg.SpotHandler.UpdateChecklist)
	api.DELETE("/spots/:id", cfg.SpotHandler.Delete)
	api.POST("/spots/:id/sessions", cfg.SpotHandler.LogSession)
	api.GET("/spots/:id/sessions", cfg.SpotHandler.ListSessions)

	api.PUT("/subscriptions", cfg.SubscriptionHandler.Upsert)
	api.DELETE("/subscriptions/:user_id", cfg.SubscriptionHandler.Delete)

	// Invoked by an external scheduler once per day
	api.POST("/notifications/send", cfg.NotificationHandler.SendReminders)

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
