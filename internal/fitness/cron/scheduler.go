package cronjob

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/fitplan-app/fitplan-backend/internal/fitness/repository"
)

// Scheduler runs the nightly user-directory snapshot.
type Scheduler struct {
	repo *repository.StateRepository
	spec string
	cron *cron.Cron
}

func NewScheduler(repo *repository.StateRepository, spec string) *Scheduler {
	return &Scheduler{repo: repo, spec: spec}
}

// Start initializes cron tasks.
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(s.spec, func() {
		s.snapshot()
	})

	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Printf("Cron scheduler started (directory snapshot at %q)", s.spec)
	c.Start()
	s.cron = c
}

// Stop halts the scheduler; a running job is allowed to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) snapshot() {
	key, err := s.repo.SnapshotDirectory(time.Now())
	if err != nil {
		log.Printf("Directory snapshot failed: %v", err)
		return
	}
	if key == "" {
		log.Println("Directory snapshot skipped (no directory yet)")
		return
	}
	log.Printf("Directory snapshot written to %s", key)
}
