package reporting

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

// Aggregates is the query surface used to build a daily report.
type Aggregates interface {
	ActiveFlockTotals(ctx context.Context) (flocks int64, birds int64, err error)
	EggTotals(ctx context.Context, from, to string) (quantity, gradeA, gradeB int64, err error)
	MortalityTotal(ctx context.Context, from, to string) (int64, error)
	FeedPurchasedKg(ctx context.Context, from, to string) (decimal.Decimal, error)
	SalesRevenue(ctx context.Context, from, to string) (decimal.Decimal, error)
	VaccinationCount(ctx context.Context, from, to string) (int64, error)
}

// Sink receives a finished daily report, e.g. an archive or a notification channel.
type Sink interface {
	Name() string
	PublishReport(ctx context.Context, report models.DailyReport, summary string) error
}

// Service builds daily farm reports and fans them out to sinks.
type Service struct {
	store    Aggregates
	sinks    []Sink
	currency string
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a new reporting service instance.
func NewService(store Aggregates, currency string, logger *zap.Logger, sinks ...Sink) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    store,
		sinks:    sinks,
		currency: currency,
		logger:   logger,
		now:      time.Now,
	}
}

// Sinks returns the names of the configured sinks.
func (s *Service) Sinks() []string {
	names := make([]string, 0, len(s.sinks))
	for _, sink := range s.sinks {
		names = append(names, sink.Name())
	}
	return names
}

// DailyReport aggregates the figures recorded for the calendar day of day.
func (s *Service) DailyReport(ctx context.Context, day time.Time) (models.DailyReport, error) {
	key := day.Format(models.DateLayout)

	eggs, gradeA, gradeB, err := s.store.EggTotals(ctx, key, key)
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("load eggs: %w", err)
	}
	mortality, err := s.store.MortalityTotal(ctx, key, key)
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("load mortality: %w", err)
	}
	feed, err := s.store.FeedPurchasedKg(ctx, key, key)
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("load feed: %w", err)
	}
	sales, err := s.store.SalesRevenue(ctx, key, key)
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("load sales: %w", err)
	}
	vaccinations, err := s.store.VaccinationCount(ctx, key, key)
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("load vaccinations: %w", err)
	}
	flocks, birds, err := s.store.ActiveFlockTotals(ctx)
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("load flocks: %w", err)
	}

	return models.DailyReport{
		Date:            key,
		EggsCollected:   eggs,
		GradeA:          gradeA,
		GradeB:          gradeB,
		Mortality:       mortality,
		FeedPurchasedKg: feed,
		SalesAmount:     sales,
		Vaccinations:    vaccinations,
		ActiveFlocks:    flocks,
		LiveBirds:       birds,
		CreatedAt:       s.now().UTC(),
	}, nil
}

// FormatReport renders the report as a short multi-line message.
func (s *Service) FormatReport(report models.DailyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Farm report %s\n", report.Date)
	fmt.Fprintf(&b, "Eggs: %d (A %d, B %d)\n", report.EggsCollected, report.GradeA, report.GradeB)

	fmt.Fprintf(&b, "Mortality: %d birds", report.Mortality)
	if population := report.LiveBirds + report.Mortality; report.Mortality > 0 && population > 0 {
		rate := float64(report.Mortality) / float64(population) * 100
		rate = math.Round(rate*100) / 100
		fmt.Fprintf(&b, " (%.2f%%)", rate)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Feed bought: %s kg\n", report.FeedPurchasedKg.StringFixed(2))
	fmt.Fprintf(&b, "Sales: %s\n", models.FormatMoney(s.currency, report.SalesAmount))
	if report.Vaccinations > 0 {
		fmt.Fprintf(&b, "Vaccinations: %d\n", report.Vaccinations)
	}
	fmt.Fprintf(&b, "Flocks: %d active, %d live birds", report.ActiveFlocks, report.LiveBirds)
	return b.String()
}

// Publish sends the report to every sink. A failing sink does not stop the
// others; the combined error lists every failure.
func (s *Service) Publish(ctx context.Context, report models.DailyReport) error {
	summary := s.FormatReport(report)

	var errs []error
	for _, sink := range s.sinks {
		if err := sink.PublishReport(ctx, report, summary); err != nil {
			s.logger.Error("report sink failed", zap.String("sink", sink.Name()), zap.String("date", report.Date), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name(), err))
			continue
		}
		s.logger.Info("report published", zap.String("sink", sink.Name()), zap.String("date", report.Date))
	}
	return errors.Join(errs...)
}

// RunDaily builds the report for day and publishes it.
func (s *Service) RunDaily(ctx context.Context, day time.Time) (models.DailyReport, error) {
	report, err := s.DailyReport(ctx, day)
	if err != nil {
		return models.DailyReport{}, err
	}
	return report, s.Publish(ctx, report)
}
