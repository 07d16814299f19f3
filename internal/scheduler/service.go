package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/evpulse/oem-sentiment-bot/internal/config"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Runner is the work the scheduler triggers
type Runner interface {
	RunMonitoring(ctx context.Context) error
	RunUrgentCheck(ctx context.Context) error
}

// Service handles scheduling of monitoring tasks
type Service struct {
	config *config.Config
	runner Runner
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

const urgentExpression = "0 0 */4 * * *"

// NewService creates a new scheduler service running in the configured time zone
func NewService(cfg *config.Config, runner Runner) (*Service, error) {
	loc := time.UTC
	if cfg.TimeZone != "" {
		l, err := time.LoadLocation(cfg.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("invalid time zone %q: %w", cfg.TimeZone, err)
		}
		loc = l
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		config: cfg,
		runner: runner,
		cron:   cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// reportExpression maps the report schedule onto a cron expression
func reportExpression(schedule string) string {
	if schedule == "daily" {
		// 9 AM every day
		return "0 0 9 * * *"
	}
	// Monday 9 AM
	return "0 0 9 * * MON"
}

// Start begins the scheduled monitoring
func (s *Service) Start() error {
	expression := reportExpression(s.config.ReportSchedule)

	_, err := s.cron.AddFunc(expression, func() {
		logrus.Info("Starting scheduled monitoring run")
		if err := s.runner.RunMonitoring(s.ctx); err != nil {
			logrus.Errorf("Scheduled monitoring run failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	_, err = s.cron.AddFunc(urgentExpression, func() {
		logrus.Info("Starting urgent comment check (4-hour frequency)")
		if err := s.runner.RunUrgentCheck(s.ctx); err != nil {
			logrus.Errorf("Urgent comment check failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logrus.Infof("Scheduler started with %s schedule (plus urgent checks every 4 hours)", s.config.ReportSchedule)
	return nil
}

// Stop cancels running jobs and waits for them to return
func (s *Service) Stop() {
	if s.cron != nil {
		s.cancel()
		<-s.cron.Stop().Done()
		logrus.Info("Scheduler stopped")
	}
}

// Next returns the next time each job fires
func (s *Service) Next() []time.Time {
	var next []time.Time
	for _, e := range s.cron.Entries() {
		next = append(next, e.Next)
	}
	return next
}
