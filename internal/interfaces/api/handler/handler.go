package handler

import (
	"errors"
	"net/http"
	appErrors "spotwatch/internal/pkg/errors"

	"github.com/labstack/echo/v4"
)

// errorResponse is the uniform error body returned by all handlers.
type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps application errors to HTTP status codes.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, appErrors.ErrSpotNotFound),
		errors.Is(err, appErrors.ErrSubscriptionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, appErrors.ErrInvalidDate),
		errors.Is(err, appErrors.ErrInvalidUserID),
		errors.Is(err, appErrors.ErrInvalidSubscription):
		status = http.StatusBadRequest
	default:
		// Anything unmapped is a server-side failure; its details stay
		// in the logs, not in the response body.
		err = appErrors.ErrInternalServer
	}
	return c.JSON(status, errorResponse{Error: err.Error()})
}
