package sqlite

import (
	"context"
	"errors"
	"fmt"
	"spotwatch/internal/domain/entity"
	"spotwatch/internal/domain/repository"
	"time"

	"gorm.io/gorm"
)

type spotRepository struct {
	db *gorm.DB
}

// NewSpotRepository creates a new instance of SpotRepository.
func NewSpotRepository(db *gorm.DB) repository.SpotRepository {
	return &spotRepository{db: db}
}

// FindByID retrieves a spot by its ID.
func (r *spotRepository) FindByID(ctx context.Context, id uint) (*entity.Spot, error) {
	var spot entity.Spot
	if err := r.db.WithContext(ctx).First(&spot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("spot with ID %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find spot by id %d: %w", id, err)
	}
	return &spot, nil
}

// FindByUserID retrieves all spots for a specific user, ordered by start date.
func (r *spotRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Spot, error) {
	var spots []*entity.Spot
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("start_date asc").Find(&spots).Error; err != nil {
		return nil, fmt.Errorf("failed to find spots by user_id %s: %w", userID, err)
	}
	return spots, nil
}

// FindUpcoming retrieves spots whose start date is on or after the given day.
func (r *spotRepository) FindUpcoming(ctx context.Context, from time.Time) ([]*entity.Spot, error) {
	var spots []*entity.Spot
	if err := r.db.WithContext(ctx).Where("start_date >= ?", from).Order("start_date asc").Find(&spots).Error; err != nil {
		return nil, fmt.Errorf("failed to find upcoming spots from %v: %w", from, err)
	}
	return spots, nil
}

// Create creates a new spot. Returns the ID of the created spot.
func (r *spotRepository) Create(ctx context.Context, spot *entity.Spot) (uint, error) {
	if err := r.db.WithContext(ctx).Create(spot).Error; err != nil {
		return 0, fmt.Errorf("failed to create spot for user %s: %w", spot.UserID, err)
	}
	return spot.ID, nil
}

// Update updates an existing spot.
func (r *spotRepository) Update(ctx context.Context, spot *entity.Spot) error {
	if err := r.db.WithContext(ctx).Save(spot).Error; err != nil {
		return fmt.Errorf("failed to update spot %d: %w", spot.ID, err)
	}
	return nil
}

// Delete deletes a spot by its ID.
func (r *spotRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Spot{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete spot %d: %w", id, err)
	}
	return nil
}
