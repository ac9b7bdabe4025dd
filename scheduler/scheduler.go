package scheduler

import (
	"log"
	"time"

	"github.com/chromatone/api/reports"
)

type Scheduler struct {
	Reports reports.Generator
	ticker  *time.Ticker
	done    chan bool
}

func NewScheduler(generator reports.Generator) *Scheduler {
	return &Scheduler{
		Reports: generator,
		done:    make(chan bool),
	}
}

// Start begins the scheduler to refresh the report artifacts at midnight
// every day.
func (s *Scheduler) Start() {
	// Calculate time until next midnight
	now := time.Now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	durationUntilMidnight := nextMidnight.Sub(now)

	log.Printf("Scheduler started. Next report refresh in %v", durationUntilMidnight)

	// Wait until midnight, then refresh the first time
	time.AfterFunc(durationUntilMidnight, func() {
		s.RefreshReports()

		// After first run, schedule to run every 24 hours
		s.ticker = time.NewTicker(24 * time.Hour)
		go func() {
			for {
				select {
				case <-s.ticker.C:
					s.RefreshReports()
				case <-s.done:
					return
				}
			}
		}()
	})
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	s.done <- true
	log.Println("Scheduler stopped")
}

// RefreshReports regenerates the recommendation CSV and the distribution
// charts so the exported artifacts stay in step with the reference tables.
func (s *Scheduler) RefreshReports() error {
	log.Println("Refreshing recommendation reports...")

	paths, err := s.Reports.Generate()
	if err != nil {
		log.Printf("Error refreshing reports: %v", err)
		return err
	}

	for _, path := range paths {
		log.Printf("Report written: %s", path)
	}

	return nil
}
