package sqlite

import (
	"context"
	"errors"
	"fmt"
	"spotwatch/internal/domain/entity"
	"spotwatch/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new instance of SubscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// FindAll retrieves all stored subscriptions (one per user).
func (r *subscriptionRepository) FindAll(ctx context.Context) ([]*entity.PushSubscription, error) {
	var subs []*entity.PushSubscription
	if err := r.db.WithContext(ctx).Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to find all push subscriptions: %w", err)
	}
	return subs, nil
}

// FindByUserID retrieves the subscription for a specific user.
func (r *subscriptionRepository) FindByUserID(ctx context.Context, userID string) (*entity.PushSubscription, error) {
	var sub entity.PushSubscription
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("subscription for user %s not found: %w", userID, err)
		}
		return nil, fmt.Errorf("failed to find subscription for user %s: %w", userID, err)
	}
	return &sub, nil
}

// Upsert inserts the subscription, replacing any existing one for the same user.
func (r *subscriptionRepository) Upsert(ctx context.Context, sub *entity.PushSubscription) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(sub).Error
	if err != nil {
		return fmt.Errorf("failed to upsert subscription for user %s: %w", sub.UserID, err)
	}
	return nil
}

// DeleteByUserID deletes the subscription for a specific user.
func (r *subscriptionRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.PushSubscription{}).Error; err != nil {
		return fmt.Errorf("failed to delete subscription for user %s: %w", userID, err)
	}
	return nil
}
