package repository

import (
	"context"
	"spotwatch/internal/domain/entity"
)

// SubscriptionRepository defines the interface for push subscription data operations.
type SubscriptionRepository interface {
	// FindAll retrieves all stored subscriptions (one per user).
	FindAll(ctx context.Context) ([]*entity.PushSubscription, error)
	// FindByUserID retrieves the subscription for a specific user.
	FindByUserID(ctx context.Context, userID string) (*entity.PushSubscription, error)
	// Upsert inserts the subscription, replacing any existing one for the same user.
	Upsert(ctx context.Context, sub *entity.PushSubscription) error
	// DeleteByUserID deletes the subscription for a specific user.
	DeleteByUserID(ctx context.Context, userID string) error
}
