package scheduler

import (
	"fmt"
	"spotwatch/internal/pkg/logger"
	"sync"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron jobs.
type Scheduler struct {
	cron *cron.Cron
	log  logger.Logger
	mu   sync.Mutex
}

var (
	schedulerInstance *Scheduler
	once              sync.Once
)

// NewScheduler creates a new singleton instance of the cron scheduler.
func NewScheduler(log logger.Logger) *Scheduler {
	once.Do(func() {
		c := cron.New(cron.WithSeconds())
		c.Start()
		log.Info("Cron scheduler started.")
		schedulerInstance = &Scheduler{
			cron: c,
			log:  log,
		}
	})
	return schedulerInstance
}

// AddJob adds a new recurring job to the scheduler.
// spec follows the cron format with seconds (e.g., "0 0 9 * * *").
func (s *Scheduler) AddJob(spec string, cmd func()) (cron.EntryID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.cron.AddFunc(spec, cmd)
	if err != nil {
		s.log.Error("Failed to add cron job", err)
		return 0, fmt.Errorf("failed to add cron job: %w", err)
	}
	s.log.Info(fmt.Sprintf("Added cron job with ID %d, spec: %s", id, spec))
	return id, nil
}

// Stop stops the cron scheduler and waits for running jobs to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
		s.log.Info("Cron scheduler stopped.")
	}
}
