package repository

import (
	"context"
	"spotwatch/internal/domain/entity"
)

// SessionRepository defines the interface for work-session data operations.
type SessionRepository interface {
	// FindBySpotID retrieves all sessions logged for a spot.
	FindBySpotID(ctx context.Context, spotID uint) ([]*entity.Session, error)
	// CountBySpotID returns the number of sessions logged for a spot.
	CountBySpotID(ctx context.Context, spotID uint) (int64, error)
	// Create logs a new session. Returns the ID of the created session.
	Create(ctx context.Context, session *entity.Session) (uint, error)
	// DeleteBySpotID deletes all sessions for a spot (used when a spot is removed).
	DeleteBySpotID(ctx context.Context, spotID uint) error
}
