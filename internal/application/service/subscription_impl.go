package service

import (
	"context"
	"fmt"
	"spotwatch/internal/application/dto"
	"spotwatch/internal/domain/repository"
	appErrors "spotwatch/internal/pkg/errors"
	"spotwatch/internal/pkg/logger"

	"github.com/google/uuid"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	log              logger.Logger
}

// NewSubscriptionService creates a new instance of SubscriptionService implementation.
func NewSubscriptionService(subscriptionRepo repository.SubscriptionRepository, log logger.Logger) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		log:              log,
	}
}

// SaveSubscription stores a subscription, replacing any existing one for the same user.
func (s *subscriptionService) SaveSubscription(ctx context.Context, req dto.UpsertSubscriptionRequest) error {
	if _, err := uuid.Parse(req.UserID); err != nil {
		return fmt.Errorf("%w: %q", appErrors.ErrInvalidUserID, req.UserID)
	}
	if req.Endpoint == "" || req.Keys.P256dh == "" || req.Keys.Auth == "" {
		return fmt.Errorf("%w: endpoint and keys are required", appErrors.ErrInvalidSubscription)
	}

	if err := s.subscriptionRepo.Upsert(ctx, req.ToSubscriptionEntity()); err != nil {
		s.log.Error(fmt.Sprintf("Failed to save subscription for user %s", req.UserID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Saved push subscription for user %s", req.UserID))
	return nil
}

// RemoveSubscription deletes the subscription for a user.
func (s *subscriptionService) RemoveSubscription(ctx context.Context, userID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return fmt.Errorf("%w: %q", appErrors.ErrInvalidUserID, userID)
	}

	if err := s.subscriptionRepo.DeleteByUserID(ctx, userID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to remove subscription for user %s", userID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Removed push subscription for user %s", userID))
	return nil
}
