package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/lueberGandra/captal-api/internal/projects/domain"
)

// PendingCounter reports how many projects sit in a given status.
type PendingCounter interface {
	CountByStatus(ctx context.Context, status domain.ProjectStatus) (int64, error)
}

type Scheduler struct {
	projects PendingCounter
	cron     *cron.Cron
}

func NewScheduler(projects PendingCounter) *Scheduler {
	return &Scheduler{
		projects: projects,
		cron:     cron.New(),
	}
}

// Start registers the nightly pending-projects digest and starts the
// scheduler in its own goroutine.
func (s *Scheduler) Start() error {
	// midnight
	if _, err := s.cron.AddFunc("0 0 * * *", s.logPendingDigest); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started (pending-projects digest nightly at 12:00AM)")
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) logPendingDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := s.projects.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		log.Printf("[digest] counting pending projects failed: %v", err)
		return
	}
	log.Printf("[digest] %d project(s) awaiting review", n)
}
