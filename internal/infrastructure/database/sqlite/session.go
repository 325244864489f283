package sqlite

import (
	"context"
	"fmt"
	"spotwatch/internal/domain/entity"
	"spotwatch/internal/domain/repository"

	"gorm.io/gorm"
)

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new instance of SessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// FindBySpotID retrieves all sessions logged for a spot.
func (r *sessionRepository) FindBySpotID(ctx context.Context, spotID uint) ([]*entity.Session, error) {
	var sessions []*entity.Session
	if err := r.db.WithContext(ctx).Where("spot_id = ?", spotID).Order("date asc").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to find sessions for spot %d: %w", spotID, err)
	}
	return sessions, nil
}

// CountBySpotID returns the number of sessions logged for a spot.
func (r *sessionRepository) CountBySpotID(ctx context.Context, spotID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Session{}).Where("spot_id = ?", spotID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count sessions for spot %d: %w", spotID, err)
	}
	return count, nil
}

// Create logs a new session. Returns the ID of the created session.
func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) (uint, error) {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return 0, fmt.Errorf("failed to create session for spot %d: %w", session.SpotID, err)
	}
	return session.ID, nil
}

// DeleteBySpotID deletes all sessions for a spot.
func (r *sessionRepository) DeleteBySpotID(ctx context.Context, spotID uint) error {
	if err := r.db.WithContext(ctx).Where("spot_id = ?", spotID).Delete(&entity.Session{}).Error; err != nil {
		return fmt.Errorf("failed to delete sessions for spot %d: %w", spotID, err)
	}
	return nil
}
