package service

// SchedulerService defines the interface for the recurring reminder job.
type SchedulerService interface {
	// Start registers the daily reminder pass with the given cron spec.
	Start(spec string) error
	// Stop stops the underlying scheduler.
	Stop()
}
