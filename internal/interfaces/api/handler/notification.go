package handler

import (
	"net/http"
	"spotwatch/internal/application/service"
	"spotwatch/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// NotificationHandler exposes the reminder run trigger.
type NotificationHandler struct {
	notificationSvc service.NotificationService
	log             logger.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationSvc service.NotificationService, log logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationSvc: notificationSvc,
		log:             log,
	}
}

// SendReminders triggers one reminder pass and returns the run report.
// Intended to be invoked by an external scheduler once per day; no body
// is required.
func (h *NotificationHandler) SendReminders(c echo.Context) error {
	report, err := h.notificationSvc.SendReminders(c.Request().Context())
	if err != nil {
		h.log.Error("Reminder run aborted", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}
