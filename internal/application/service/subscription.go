package service

import (
	"context"
	"spotwatch/internal/application/dto"
)

// SubscriptionService defines the interface for push subscription lifecycle logic.
type SubscriptionService interface {
	// SaveSubscription stores a subscription, replacing any existing one
	// for the same user (re-subscribing never duplicates).
	SaveSubscription(ctx context.Context, req dto.UpsertSubscriptionRequest) error
	// RemoveSubscription deletes the subscription for a user who disabled
	// notifications.
	RemoveSubscription(ctx context.Context, userID string) error
}
