package service

import (
	"context"
	"fmt"
	"spotwatch/internal/infrastructure/scheduler"
	appErrors "spotwatch/internal/pkg/errors"
	"spotwatch/internal/pkg/logger"
)

type schedulerService struct {
	cronScheduler   *scheduler.Scheduler
	notificationSvc NotificationService
	log             logger.Logger
}

// NewSchedulerService creates a new instance of SchedulerService implementation.
func NewSchedulerService(
	cronScheduler *scheduler.Scheduler,
	notificationSvc NotificationService,
	log logger.Logger,
) SchedulerService {
	return &schedulerService{
		cronScheduler:   cronScheduler,
		notificationSvc: notificationSvc,
		log:             log,
	}
}

// Start registers the daily reminder pass with the given cron spec.
func (s *schedulerService) Start(spec string) error {
	jobFunc := func() {
		s.log.Info("Executing scheduled reminder run")
		// Use background context for cron job execution
		report, err := s.notificationSvc.SendReminders(context.Background())
		if err != nil {
			s.log.Error("Scheduled reminder run failed", err)
			return
		}
		s.log.Info(fmt.Sprintf("Scheduled reminder run finished. Sent: %d, Failed: %d, Total: %d",
			report.Sent, report.Failed, report.Total))
	}

	entryID, err := s.cronScheduler.AddJob(spec, jobFunc)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}
	s.log.Info(fmt.Sprintf("Scheduled daily reminder run with spec %q (Job ID: %d)", spec, entryID))
	return nil
}

// Stop stops the underlying scheduler.
func (s *schedulerService) Stop() {
	s.cronScheduler.Stop()
}
