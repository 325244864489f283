package handler

import (
	"net/http"
	"spotwatch/internal/application/dto"
	"spotwatch/internal/application/service"
	"spotwatch/internal/pkg/logger"
	"strconv"

	"github.com/labstack/echo/v4"
)

// SpotHandler exposes spot and session management endpoints.
type SpotHandler struct {
	spotSvc service.SpotService
	log     logger.Logger
}

// NewSpotHandler creates a new SpotHandler.
func NewSpotHandler(spotSvc service.SpotService, log logger.Logger) *SpotHandler {
	return &SpotHandler{
		spotSvc: spotSvc,
		log:     log,
	}
}

// Create creates a new spot.
func (h *SpotHandler) Create(c echo.Context) error {
	var req dto.CreateSpotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	spotID, err := h.spotSvc.CreateSpot(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]uint{"id": spotID})
}

// List lists all spots for the user given by the user_id query parameter.
func (h *SpotHandler) List(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "user_id query parameter is required"})
	}
	spots, err := h.spotSvc.ListSpots(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, spots)
}

// Get retrieves a single spot.
func (h *SpotHandler) Get(c echo.Context) error {
	id, err := spotIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid spot id"})
	}
	spot, err := h.spotSvc.GetSpot(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, spot)
}

// UpdateChecklist partially updates a spot's checklist flags.
func (h *SpotHandler) UpdateChecklist(c echo.Context) error {
	id, err := spotIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid spot id"})
	}
	var req dto.UpdateChecklistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	spot, err := h.spotSvc.UpdateChecklist(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, spot)
}

// Delete deletes a spot and its sessions.
func (h *SpotHandler) Delete(c echo.Context) error {
	id, err := spotIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid spot id"})
	}
	if err := h.spotSvc.DeleteSpot(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// LogSession logs a work-session against a spot.
func (h *SpotHandler) LogSession(c echo.Context) error {
	id, err := spotIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid spot id"})
	}
	var req dto.LogSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	sessionID, err := h.spotSvc.LogSession(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]uint{"id": sessionID})
}

// ListSessions lists the sessions logged for a spot.
func (h *SpotHandler) ListSessions(c echo.Context) error {
	id, err := spotIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid spot id"})
	}
	sessions, err := h.spotSvc.ListSessions(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, sessions)
}

func spotIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
