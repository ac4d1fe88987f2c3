package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/Prashgeek/TenWeather/internal/location"
)

// Scheduler periodically refreshes the reverse-lookup candidate pool so
// interactive reverse lookups usually serve from a warm cache.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *location.Service
	interval  time.Duration
}

// New creates a new Scheduler.
func New(interval time.Duration, service *location.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 30
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if pool := s.service.RefreshPool(ctx); len(pool) == 0 {
			log.Println("scheduler: reverse-lookup pool refresh returned no candidates")
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
