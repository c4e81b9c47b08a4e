package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

type fakeRunner struct {
	days []time.Time
	err  error
}

func (f *fakeRunner) RunDaily(_ context.Context, day time.Time) (models.DailyReport, error) {
	f.days = append(f.days, day)
	return models.DailyReport{Date: day.Format(models.DateLayout)}, f.err
}

func TestStartRejectsInvalidSpec(t *testing.T) {
	s := NewScheduler("every evening", time.UTC, &fakeRunner{}, nil)
	if err := s.Start(); err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
}

func TestStartAndStop(t *testing.T) {
	s := NewScheduler("0 20 * * *", time.UTC, &fakeRunner{}, nil)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(s.cron.Entries()) != 1 {
		t.Fatalf("expected 1 job, got %d", len(s.cron.Entries()))
	}
	s.Stop()
}

func TestSendDailyReportUsesLocalDay(t *testing.T) {
	nairobi := time.FixedZone("EAT", 3*60*60)
	runner := &fakeRunner{}
	s := NewScheduler("0 20 * * *", nairobi, runner, nil)
	s.now = func() time.Time { return time.Date(2026, 10, 18, 21, 30, 0, 0, time.UTC) }

	s.sendDailyReport()

	if len(runner.days) != 1 {
		t.Fatalf("runner called %d times", len(runner.days))
	}
	if got := runner.days[0].Format(models.DateLayout); got != "2026-10-19" {
		t.Fatalf("day = %s, want 2026-10-19", got)
	}
}

func TestSendDailyReportSurvivesFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("sheets: quota")}
	s := NewScheduler("0 20 * * *", time.UTC, runner, nil)

	s.sendDailyReport()

	if len(runner.days) != 1 {
		t.Fatalf("runner called %d times", len(runner.days))
	}
}
