package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

const jobTimeout = 2 * time.Minute

// ReportRunner builds and publishes the report for a day.
type ReportRunner interface {
	RunDaily(ctx context.Context, day time.Time) (models.DailyReport, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	reports  ReportRunner
	spec     string
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

// NewScheduler creates a scheduler that runs the daily report on spec, a
// standard five-field cron expression evaluated in loc.
func NewScheduler(spec string, loc *time.Location, reports ReportRunner, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		reports:  reports,
		spec:     spec,
		location: loc,
		logger:   logger,
		now:      time.Now,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("daily_report", s.spec), zap.String("timezone", s.location.String()))

	if _, err := s.cron.AddFunc(s.spec, s.sendDailyReport); err != nil {
		return fmt.Errorf("schedule daily report %q: %w", s.spec, err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) sendDailyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	day := s.now().In(s.location)
	s.logger.Info("generating daily report", zap.String("date", day.Format(models.DateLayout)))

	report, err := s.reports.RunDaily(ctx, day)
	if err != nil {
		s.logger.Error("daily report incomplete", zap.String("date", day.Format(models.DateLayout)), zap.Error(err))
		return
	}

	s.logger.Info("daily report sent",
		zap.String("date", report.Date),
		zap.Int64("eggs", report.EggsCollected),
		zap.Int64("mortality", report.Mortality))
}
