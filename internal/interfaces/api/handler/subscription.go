package handler

import (
	"net/http"
	"spotwatch/internal/application/dto"
	"spotwatch/internal/application/service"
	"spotwatch/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SubscriptionHandler exposes the push subscription lifecycle endpoints.
type SubscriptionHandler struct {
	subscriptionSvc service.SubscriptionService
	log             logger.Logger
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptionSvc service.SubscriptionService, log logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionSvc: subscriptionSvc,
		log:             log,
	}
}

// Upsert stores the subscription sent by the browser after the user grants
// notification permission, replacing any previous one for the same user.
func (h *SubscriptionHandler) Upsert(c echo.Context) error {
	var req dto.UpsertSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := h.subscriptionSvc.SaveSubscription(c.Request().Context(), req); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes the subscription for a user who disabled notifications.
func (h *SubscriptionHandler) Delete(c echo.Context) error {
	userID := c.Param("user_id")
	if err := h.subscriptionSvc.RemoveSubscription(c.Request().Context(), userID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
