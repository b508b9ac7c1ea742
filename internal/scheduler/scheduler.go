// Package scheduler runs the recurring jobs. Currently a single morning job
// that logs the weather advisory digest for the region.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/akilima/akilima/internal/service/weather"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron       *cron.Cron
	weatherSvc *weather.Service
	schedule   string
	logger     *zap.Logger
}

// NewScheduler creates a new scheduler instance. schedule is a standard
// 5-field cron expression.
func NewScheduler(schedule string, weatherSvc *weather.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:       cron.New(),
		weatherSvc: weatherSvc,
		schedule:   schedule,
		logger:     logger,
	}
}

// Start registers the digest job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))

	if _, err := s.cron.AddFunc(s.schedule, s.logAdvisoryDigest); err != nil {
		s.logger.Error("failed to schedule weather digest", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) logAdvisoryDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report, err := s.weatherSvc.Advisory(ctx)
	if err != nil {
		s.logger.Error("failed to generate weather digest", zap.Error(err))
		return
	}

	fields := []zap.Field{
		zap.Int("temperature", report.Temperature),
		zap.Float64("humidity", report.Humidity),
		zap.Float64("rainfall", report.Rainfall),
	}
	for _, advisory := range report.Advisories {
		fields = append(fields, zap.String(advisory.Type, advisory.Message))
	}
	s.logger.Info("morning weather digest", fields...)
}
