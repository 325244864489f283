package repository

import (
	"context"
	"spotwatch/internal/domain/entity"
	"time"
)

// SpotRepository defines the interface for spot data operations.
type SpotRepository interface {
	// FindByID retrieves a spot by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Spot, error)
	// FindByUserID retrieves all spots for a specific user, ordered by start date.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Spot, error)
	// FindUpcoming retrieves spots whose start date is on or after the given day.
	FindUpcoming(ctx context.Context, from time.Time) ([]*entity.Spot, error)
	// Create creates a new spot. Returns the ID of the created spot.
	Create(ctx context.Context, spot *entity.Spot) (uint, error)
	// Update updates an existing spot.
	Update(ctx context.Context, spot *entity.Spot) error
	// Delete deletes a spot by its ID.
	Delete(ctx context.Context, id uint) error
}
