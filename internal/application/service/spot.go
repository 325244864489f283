package service

import (
	"context"
	"spotwatch/internal/application/dto"
)

// SpotService defines the interface for spot-related business logic.
type SpotService interface {
	// CreateSpot creates a new spot. Returns the ID of the created spot.
	CreateSpot(ctx context.Context, req dto.CreateSpotRequest) (uint, error)
	// ListSpots retrieves all spots for a user, ordered by start date.
	ListSpots(ctx context.Context, userID string) ([]dto.SpotResponse, error)
	// GetSpot retrieves a single spot by its ID.
	GetSpot(ctx context.Context, id uint) (*dto.SpotResponse, error)
	// UpdateChecklist partially updates a spot's checklist flags.
	UpdateChecklist(ctx context.Context, id uint, req dto.UpdateChecklistRequest) (*dto.SpotResponse, error)
	// DeleteSpot deletes a spot and its logged sessions.
	DeleteSpot(ctx context.Context, id uint) error
	// LogSession logs a work-session against a spot.
	LogSession(ctx context.Context, spotID uint, req dto.LogSessionRequest) (uint, error)
	// ListSessions retrieves the sessions logged for a spot.
	ListSessions(ctx context.Context, spotID uint) ([]dto.SessionResponse, error)
}
