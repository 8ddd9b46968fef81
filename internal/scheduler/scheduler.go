// Package scheduler runs the background jobs of the server: currently a
// single hourly usage snapshot for the admin dashboard.
package scheduler

import (
	"log"
	"time"

	"github.com/amalanberkah/internal/service"
	"github.com/go-co-op/gocron"
)

// Scheduler owns the gocron instance and its job set.
type Scheduler struct {
	scheduler *gocron.Scheduler
	analytics *service.AnalyticsService
}

// New creates a scheduler around the analytics service.
func New(analytics *service.AnalyticsService) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		analytics: analytics,
	}
}

// Start registers the jobs and runs them on a background goroutine.
func (s *Scheduler) Start() {
	if _, err := s.scheduler.Every(1).Hour().Do(s.takeSnapshot); err != nil {
		log.Printf("schedule usage snapshot: %v", err)
	}
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled jobs.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) takeSnapshot() {
	if err := s.analytics.Snapshot(); err != nil {
		log.Printf("usage snapshot failed: %v", err)
	}
}
