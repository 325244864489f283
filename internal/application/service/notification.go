package service

import (
	"context"
	"spotwatch/internal/application/dto"
	"spotwatch/internal/domain/entity"
)

// PushSender delivers one encrypted payload to a subscription endpoint.
type PushSender interface {
	Send(ctx context.Context, sub *entity.PushSubscription, payload dto.PushPayload) error
}

// NotificationService defines the interface for the reminder pass.
type NotificationService interface {
	// SendReminders evaluates every upcoming spot against the day-offset
	// rules, delivers the produced notifications concurrently and returns
	// the run report. A gateway failure while loading aborts the run.
	SendReminders(ctx context.Context) (*dto.ReminderRunReport, error)
}
