package jobs

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// StartJobs starts the background job scheduler. It returns nil when no job
// is enabled.
func StartJobs(m *Monitor, intervalMinutes int) *gocron.Scheduler {
	if intervalMinutes <= 0 {
		log.Println("Upstream probe interval is 0, scheduled probing is disabled.")
		return nil
	}

	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	if err := scheduleUpstreamProbe(s, m, intervalMinutes); err != nil {
		log.Printf("Error scheduling upstream probe: %v", err)
		return nil
	}

	log.Println("Starting background job scheduler...")
	s.StartAsync()
	return s
}

func scheduleUpstreamProbe(s *gocron.Scheduler, m *Monitor, interval int) error {
	jobID := "upstream-probe"
	log.Printf("Scheduling job: '%s' to run every %d minutes.", jobID, interval)

	_, err := s.Every(interval).Minutes().Tag(jobID).Do(func() {
		if !m.Probe(context.Background()) {
			log.Printf("Scheduled job '%s' skipped: previous run still active", jobID)
		}
	})
	return err
}
